// ippwire-dump parses binary IPP frames, optionally validates them, and
// prints the decoded structure as text, JSON or CBOR (hex).
package main

import (
    "encoding/hex"
    "flag"
    "fmt"
    "os"

    "go.uber.org/zap"

    "ippwire/pkg/config"
    "ippwire/pkg/ipp"
    "ippwire/pkg/ipp/codec"
    "ippwire/pkg/observability"
)

func main() {
    cfgPath := flag.String("config", "", "config file path (optional)")
    format := flag.String("format", "", "output format: text|json|cbor (overrides config)")
    noValidate := flag.Bool("no-validate", false, "skip the semantic validator pass")
    flag.Parse()

    if flag.NArg() == 0 {
        fatalf("usage: ippwire-dump [flags] <frame.bin>...")
    }

    cfg, err := config.Load(*cfgPath)
    if err != nil {
        fatalf("load config: %v", err)
    }
    if *format != "" {
        cfg.Dump.Format = *format
    }
    if *noValidate {
        cfg.Dump.Validate = false
    }

    logger, err := observability.SetupLogger(cfg.Log)
    if err != nil {
        fatalf("setup logger: %v", err)
    }

    exitCode := 0
    for _, path := range flag.Args() {
        if !dumpFile(path, cfg, logger) {
            exitCode = 1
        }
    }
    // os.Exit skips deferred calls, so flush explicitly
    logger.Sync()
    os.Exit(exitCode)
}

// dumpFile parses and reports one frame file. Returns false when the frame
// was partial or failed validation.
func dumpFile(path string, cfg *config.Config, logger *zap.Logger) bool {
    data, err := os.ReadFile(path)
    if err != nil {
        fatalf("read %s: %v", path, err)
    }

    plog := &ipp.ParserErrors{Max: cfg.Dump.MaxLogEntries}
    frame, complete := ipp.Parse(data, plog)

    zlog := logger.With(zap.String("file", path))
    for _, e := range plog.Entries {
        if e.Code.IsCritical() {
            zlog.Error("frame parse stopped", zap.String("path", e.Path.String()), zap.String("code", e.Code.String()))
        } else {
            zlog.Warn("frame anomaly", zap.String("path", e.Path.String()), zap.String("code", e.Code.String()))
        }
    }

    valid := true
    if cfg.Dump.Validate {
        velog := &ipp.AttrErrors{Max: cfg.Dump.MaxLogEntries}
        valid = ipp.Validate(frame, velog)
        for _, e := range velog.Entries {
            zlog.Warn("attribute violation", zap.String("path", e.Path.String()),
                zap.Int("value_index", e.ValueIndex), zap.String("code", e.Code.String()))
        }
    }

    render(path, frame, complete, valid, cfg.Dump.Format)
    return complete && valid
}

func render(path string, frame *ipp.Frame, complete, valid bool, format string) {
    doc := codec.Export(frame)
    switch format {
    case "json":
        b, err := codec.JSON().Marshal(doc)
        if err != nil {
            fatalf("encode json: %v", err)
        }
        fmt.Println(string(b))
    case "cbor":
        c, err := codec.CBOR()
        if err != nil {
            fatalf("init cbor: %v", err)
        }
        b, err := c.Marshal(doc)
        if err != nil {
            fatalf("encode cbor: %v", err)
        }
        fmt.Println(hex.EncodeToString(b))
    default:
        renderText(path, doc, complete, valid)
    }
}

func renderText(path string, doc *codec.FrameDoc, complete, valid bool) {
    fmt.Printf("%s: IPP/%s", path, doc.Version)
    if doc.CodeName != "" {
        fmt.Printf(" %s", doc.CodeName)
    }
    fmt.Printf(" code=0x%04x request-id=%d complete=%v valid=%v\n",
        doc.Code, doc.RequestID, complete, valid)
    for _, g := range doc.Groups {
        fmt.Printf("  [%s]\n", g.Tag)
        printAttrs(g.Attrs, 4)
    }
    if doc.PayloadLength > 0 {
        fmt.Printf("  payload: %d bytes\n", doc.PayloadLength)
    }
}

func printAttrs(attrs []codec.AttrDoc, indent int) {
    pad := fmt.Sprintf("%*s", indent, "")
    for _, a := range attrs {
        fmt.Printf("%s%s (%s):", pad, a.Name, a.Tag)
        if len(a.Values) == 0 {
            fmt.Println(" -")
            continue
        }
        for _, v := range a.Values {
            if sub, ok := v.([]codec.AttrDoc); ok {
                fmt.Println(" {")
                printAttrs(sub, indent+4)
                fmt.Printf("%s}\n", pad)
            } else {
                fmt.Printf(" %v", v)
            }
        }
        fmt.Println()
    }
}

func fatalf(format string, args ...any) {
    fmt.Fprintf(os.Stderr, format+"\n", args...)
    os.Exit(1)
}
