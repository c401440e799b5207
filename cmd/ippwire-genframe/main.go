// ippwire-genframe writes sample binary IPP frames to a directory. Handy
// for seeding decoder tests and for feeding other IPP implementations.
package main

import (
    "encoding/hex"
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    "ippwire/pkg/ipp"
)

func main() {
    outDir := flag.String("out", "testdata/frames", "output directory for binary frames")
    flag.Parse()
    if err := os.MkdirAll(*outDir, 0o755); err != nil {
        log.Fatal(err)
    }

    var elog ipp.AttrErrors

    // 1) Minimal Print-Job request
    f := ipp.NewRequest(2, 0, ipp.OpPrintJob, 1)
    op, _ := f.GetGroup(ipp.GroupOperationAttrs)
    mustAttr(op.AddAttr("printer-uri", ipp.TagURI, ipp.String("ipp://localhost/ipp/print")))
    mustAttr(op.AddAttr("requesting-user-name", ipp.TagNameWithoutLanguage, ipp.String("guest")))
    job, _ := f.AddGroup(ipp.GroupJobAttrs)
    mustAttr(job.AddAttr("copies", ipp.TagInteger, ipp.Integer(3)))
    writeOut(*outDir, "print_job.bin", f.Encode(&elog))

    // 2) Get-Printer-Attributes with a nested collection
    f2 := ipp.NewRequest(2, 0, ipp.OpGetPrinterAttributes, 2)
    pr, _ := f2.AddGroup(ipp.GroupPrinterAttrs)
    _, cols, err := pr.AddCollectionAttr("media-col", 1)
    if err != nil {
        log.Fatal(err)
    }
    mustAttr(cols[0].AddAttr("media-size-name", ipp.TagKeyword, ipp.String("iso_a4_210x297mm")))
    mustAttr(cols[0].AddAttr("media-source", ipp.TagKeyword, ipp.String("tray-1")))
    mustAttr(pr.AddAttr("printer-resolution", ipp.TagResolution,
        ipp.Resolution{Xres: 600, Yres: 600, Units: ipp.UnitsDotsPerInch}))
    mustAttr(pr.AddAttr("copies-supported", ipp.TagRangeOfInteger,
        ipp.RangeOfInteger{Min: 1, Max: 999}))
    writeOut(*outDir, "get_printer_attrs.bin", f2.Encode(&elog))

    // 3) Response with payload and an out-of-band attribute
    f3 := ipp.NewResponse(2, 0, ipp.StatusOK, 3)
    un, _ := f3.AddGroup(ipp.GroupUnsupportedAttrs)
    mustAttr(un.AddAttr("finishings", ipp.TagUnsupported))
    f3.Payload = []byte("%PDF-1.4 ...")
    writeOut(*outDir, "response_payload.bin", f3.Encode(&elog))

    for _, e := range elog.Entries {
        fmt.Fprintln(os.Stderr, "encode:", e)
    }
    fmt.Println("Generated frames in", *outDir)
}

func mustAttr(_ *ipp.Attribute, err error) {
    if err != nil {
        log.Fatal(err)
    }
}

func writeOut(dir, name string, b []byte) {
    p := filepath.Join(dir, name)
    if err := os.WriteFile(p, b, 0o644); err != nil {
        log.Fatal(err)
    }
    fmt.Printf("%-24s %5d bytes  head: %s\n", name, len(b), shortHex(b, 64))
}

func shortHex(b []byte, n int) string {
    if len(b) == 0 {
        return ""
    }
    if n > len(b) {
        n = len(b)
    }
    enc := hex.EncodeToString(b[:n])
    if len(b) > n {
        enc += "..."
    }
    var out []string
    for i := 0; i < len(enc); i += 4 {
        j := i + 4
        if j > len(enc) {
            j = len(enc)
        }
        out = append(out, enc[i:j])
    }
    return strings.Join(out, " ")
}
