package ipp

import (
    "bytes"
    "encoding/binary"
    "errors"
    "fmt"
    "testing"
)

func TestGetLengthMatchesOutput(t *testing.T) {
    f := NewRequest(2, 0, OpPrintJob, 123)
    op, _ := f.GetGroup(GroupOperationAttrs)
    if _, err := op.AddAttr("copies", TagInteger, Integer(3)); err != nil {
        t.Fatalf("add: %v", err)
    }

    out := f.Encode(nil)
    if len(out) != f.GetLength() {
        t.Fatalf("GetLength = %d, wrote %d", f.GetLength(), len(out))
    }

    // 8 header + 1 group tag + charset (1+2+18+2+5) + natural-language
    // (1+2+27+2+5) + copies (1+2+6+2+4) + 1 terminator
    if want := 8 + 1 + 28 + 37 + 15 + 1; len(out) != want {
        t.Fatalf("length = %d, want %d", len(out), want)
    }
}

func TestSaveToBufferShortBuffer(t *testing.T) {
    f := NewRequest(2, 0, OpPrintJob, 1)
    short := make([]byte, f.GetLength()-1)
    for i := range short {
        short[i] = 0xee
    }
    n, err := f.SaveToBuffer(short, nil)
    if !errors.Is(err, ErrBufferTooShort) || n != 0 {
        t.Fatalf("short buffer: n=%d err=%v", n, err)
    }
    // nothing may have been written
    for i, b := range short {
        if b != 0xee {
            t.Fatalf("byte %d overwritten", i)
        }
    }
}

func TestHeaderLayout(t *testing.T) {
    f := NewFrame()
    f.VersionMajor, f.VersionMinor = 2, 1
    f.OperationIDOrStatusCode = OpGetJobs
    f.RequestID = 0xdeadbeef
    f.Payload = []byte{0x42}

    out := f.Encode(nil)
    if len(out) != 10 {
        t.Fatalf("length = %d", len(out))
    }
    if out[0] != 2 || out[1] != 1 {
        t.Fatalf("version bytes: %x", out[:2])
    }
    if binary.BigEndian.Uint16(out[2:4]) != OpGetJobs {
        t.Fatalf("code bytes: %x", out[2:4])
    }
    if binary.BigEndian.Uint32(out[4:8]) != 0xdeadbeef {
        t.Fatalf("request id bytes: %x", out[4:8])
    }
    if out[8] != endOfAttributes || out[9] != 0x42 {
        t.Fatalf("tail: %x", out[8:])
    }
}

func TestScalarEncodings(t *testing.T) {
    f := NewFrame()
    g, _ := f.AddGroup(GroupPrinterAttrs)
    g.AddAttr("i", TagInteger, Integer(-2))
    g.AddAttr("b", TagBoolean, Integer(1))
    g.AddAttr("d", TagDateTime, DateTime{Year: 2024, Month: 6, Day: 1, Hour: 12, UTCSign: '+'})
    g.AddAttr("r", TagResolution, Resolution{Xres: 600, Yres: 300, Units: UnitsDotsPerInch})
    g.AddAttr("g", TagRangeOfInteger, RangeOfInteger{Min: -1, Max: 99})

    out := f.Encode(nil)
    // walk the TNV records and index their values by name
    vals := map[string][]byte{}
    off := 9
    for out[off] != endOfAttributes {
        tag := out[off]
        nl := int(binary.BigEndian.Uint16(out[off+1 : off+3]))
        name := string(out[off+3 : off+3+nl])
        vo := off + 3 + nl
        vl := int(binary.BigEndian.Uint16(out[vo : vo+2]))
        vals[name] = out[vo+2 : vo+2+vl]
        _ = tag
        off = vo + 2 + vl
    }

    if !bytes.Equal(vals["i"], []byte{0xff, 0xff, 0xff, 0xfe}) {
        t.Fatalf("integer: %x", vals["i"])
    }
    if !bytes.Equal(vals["b"], []byte{1}) {
        t.Fatalf("boolean: %x", vals["b"])
    }
    want := []byte{0x07, 0xe8, 6, 1, 12, 0, 0, 0, '+', 0, 0}
    if !bytes.Equal(vals["d"], want) {
        t.Fatalf("dateTime: %x", vals["d"])
    }
    if !bytes.Equal(vals["r"], []byte{0, 0, 0x02, 0x58, 0, 0, 0x01, 0x2c, 3}) {
        t.Fatalf("resolution: %x", vals["r"])
    }
    if !bytes.Equal(vals["g"], []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0x63}) {
        t.Fatalf("range: %x", vals["g"])
    }
}

func TestMultiValueNameConvention(t *testing.T) {
    f := NewFrame()
    g, _ := f.AddGroup(GroupJobAttrs)
    g.AddAttr("sides", TagKeyword, String("one-sided"), String("two-sided-long-edge"))

    out := f.Encode(nil)
    off := 9

    nl := int(binary.BigEndian.Uint16(out[off+1 : off+3]))
    if nl != len("sides") {
        t.Fatalf("first record name length = %d", nl)
    }
    vo := off + 3 + nl
    vl := int(binary.BigEndian.Uint16(out[vo : vo+2]))
    off = vo + 2 + vl

    // second value of the same attribute carries an empty name
    if out[off] != byte(TagKeyword) {
        t.Fatalf("second record tag = 0x%02x", out[off])
    }
    if nl2 := binary.BigEndian.Uint16(out[off+1 : off+3]); nl2 != 0 {
        t.Fatalf("second record name length = %d", nl2)
    }
}

func TestWithLanguageDowngrade(t *testing.T) {
    f := NewFrame()
    g, _ := f.AddGroup(GroupJobAttrs)
    g.AddAttr("job-name", TagNameWithLanguage, StringWithLanguage{Language: "", Value: "draft"})
    g.AddAttr("job-note", TagTextWithLanguage, StringWithLanguage{Language: "de", Value: "eilig"})

    out := f.Encode(nil)
    off := 9

    // empty language goes out as nameWithoutLanguage with raw bytes
    if out[off] != byte(TagNameWithoutLanguage) {
        t.Fatalf("downgraded tag = 0x%02x", out[off])
    }
    nl := int(binary.BigEndian.Uint16(out[off+1 : off+3]))
    vo := off + 3 + nl
    vl := int(binary.BigEndian.Uint16(out[vo : vo+2]))
    if string(out[vo+2:vo+2+vl]) != "draft" {
        t.Fatalf("downgraded value = %q", out[vo+2:vo+2+vl])
    }
    off = vo + 2 + vl

    // non-empty language keeps the tag and the pair encoding
    if out[off] != byte(TagTextWithLanguage) {
        t.Fatalf("pair tag = 0x%02x", out[off])
    }
    nl = int(binary.BigEndian.Uint16(out[off+1 : off+3]))
    vo = off + 3 + nl
    pair := out[vo+2:]
    if !bytes.Equal(pair[:2+2], []byte{0, 2, 'd', 'e'}) {
        t.Fatalf("language prefix: %x", pair[:4])
    }
}

func TestCollectionWireShape(t *testing.T) {
    f := NewFrame()
    g, _ := f.AddGroup(GroupPrinterAttrs)
    _, cols, _ := g.AddCollectionAttr("media-col", 1)
    cols[0].AddAttr("media-source", TagKeyword, String("tray-1"))

    out := f.Encode(nil)
    off := 9

    if out[off] != byte(TagBeginCollection) {
        t.Fatalf("begin tag = 0x%02x", out[off])
    }
    nl := int(binary.BigEndian.Uint16(out[off+1 : off+3]))
    if string(out[off+3:off+3+nl]) != "media-col" {
        t.Fatalf("collection attr name missing")
    }
    vo := off + 3 + nl
    if vl := binary.BigEndian.Uint16(out[vo : vo+2]); vl != 0 {
        t.Fatalf("begin-collection carries value bytes")
    }
    off = vo + 2

    // member name record: name field empty, member name in the value field
    if out[off] != byte(TagMemberName) {
        t.Fatalf("member tag = 0x%02x", out[off])
    }
    if nl2 := binary.BigEndian.Uint16(out[off+1 : off+3]); nl2 != 0 {
        t.Fatalf("member record has a name field")
    }
    vl := int(binary.BigEndian.Uint16(out[off+3 : off+5]))
    if string(out[off+5:off+5+vl]) != "media-source" {
        t.Fatalf("member name = %q", out[off+5:off+5+vl])
    }
}

func TestDeepCollectionOutputStaysDecodable(t *testing.T) {
    // one level past the nesting cap: the over-deep value is dropped with a
    // fault, and what goes out must still parse cleanly
    f := NewFrame()
    g, _ := f.AddGroup(GroupPrinterAttrs)
    _, cols, _ := g.AddCollectionAttr("c1", 1)
    cur := cols[0]
    for i := 2; i <= maxCollectionLevel+1; i++ {
        _, sub, err := cur.AddCollectionAttr(fmt.Sprintf("c%d", i), 1)
        if err != nil {
            t.Fatalf("level %d: %v", i, err)
        }
        cur = sub[0]
    }

    var elog AttrErrors
    out := f.Encode(&elog)
    if len(out) != f.GetLength() {
        t.Fatalf("length drifted: wrote %d, GetLength %d", len(out), f.GetLength())
    }
    found := false
    for _, e := range elog.Entries {
        if e.Code == ValidatorCollectionTooDeep {
            found = true
        }
    }
    if !found {
        t.Fatalf("over-deep value not logged: %v", elog.Entries)
    }

    var plog ParserErrors
    parsed, complete := Parse(out, &plog)
    if !complete {
        t.Fatalf("encoder output unparseable: %v", plog.Entries)
    }
    if len(plog.Entries) != 0 {
        t.Fatalf("anomalies on re-parse: %v", plog.Entries)
    }

    // the wire carries the cap's worth of levels, the last one empty
    coll, _ := parsed.GetGroup(GroupPrinterAttrs)
    depth := 0
    for {
        var next *Collection
        for _, a := range coll.Attrs() {
            if a.Tag() == TagBeginCollection {
                next, _ = a.GetCollection(0)
            }
        }
        if next == nil {
            break
        }
        depth++
        coll = next
    }
    if depth != maxCollectionLevel {
        t.Fatalf("wire depth = %d, want %d", depth, maxCollectionLevel)
    }
    if coll.Size() != 0 {
        t.Fatalf("deepest collection not empty: %d attrs", coll.Size())
    }
}

func TestBuilderSubstitutesBadScalar(t *testing.T) {
    f := NewFrame()
    g, _ := f.AddGroup(GroupJobAttrs)
    a, _ := g.AddAttr("ok", TagBoolean, Integer(1))
    // force an out-of-range boolean past the API checks
    a.values[0] = Integer(9)

    var elog AttrErrors
    out := f.Encode(&elog)
    if len(out) != f.GetLength() {
        t.Fatalf("length drifted after substitution")
    }
    if len(elog.Entries) == 0 || elog.Entries[0].Code != ValidatorValueSubstituted {
        t.Fatalf("substitution not logged: %v", elog.Entries)
    }
    // canonical default written in place of the bad value
    off := 9
    nl := int(binary.BigEndian.Uint16(out[off+1 : off+3]))
    vo := off + 3 + nl
    if out[vo+2] != 0 {
        t.Fatalf("substituted boolean = %d", out[vo+2])
    }
}
