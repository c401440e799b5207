package codec

import (
    "fmt"

    "ippwire/pkg/ipp"
)

// FrameDoc is the codec-friendly view of a decoded frame.
type FrameDoc struct {
    Version       string     `json:"version"`
    Code          uint16     `json:"code"`
    CodeName      string     `json:"code_name,omitempty"`
    RequestID     uint32     `json:"request_id"`
    Groups        []GroupDoc `json:"groups"`
    PayloadLength int        `json:"payload_length"`
}

// GroupDoc is one attribute group.
type GroupDoc struct {
    Tag   string    `json:"tag"`
    Attrs []AttrDoc `json:"attributes"`
}

// AttrDoc is one attribute with its rendered values. Out-of-band
// attributes have a nil value list.
type AttrDoc struct {
    Name   string `json:"name"`
    Tag    string `json:"tag"`
    Values []any  `json:"values,omitempty"`
}

// Export converts a frame into its document view. Values map to plain
// types: integers to int32, strings to string, structured values to small
// maps, collections to nested attribute lists.
func Export(f *ipp.Frame) *FrameDoc {
    doc := &FrameDoc{
        Version:       fmt.Sprintf("%d.%d", f.VersionMajor, f.VersionMinor),
        Code:          f.OperationIDOrStatusCode,
        RequestID:     f.RequestID,
        PayloadLength: len(f.Payload),
    }
    if name := ipp.OperationName(f.OperationIDOrStatusCode); name != "" {
        doc.CodeName = name
    } else if name := ipp.StatusName(f.OperationIDOrStatusCode); name != "" {
        doc.CodeName = name
    }
    for _, g := range f.Groups() {
        doc.Groups = append(doc.Groups, GroupDoc{
            Tag:   g.Tag.String(),
            Attrs: exportAttrs(g.Coll),
        })
    }
    return doc
}

func exportAttrs(c *ipp.Collection) []AttrDoc {
    out := make([]AttrDoc, 0, c.Size())
    for _, a := range c.Attrs() {
        doc := AttrDoc{Name: a.Name(), Tag: a.Tag().String()}
        for _, v := range a.Values() {
            doc.Values = append(doc.Values, exportValue(v))
        }
        out = append(out, doc)
    }
    return out
}

func exportValue(v ipp.Value) any {
    switch tv := v.(type) {
    case ipp.Integer:
        return int32(tv)
    case ipp.String:
        return string(tv)
    case ipp.StringWithLanguage:
        return map[string]string{"language": tv.Language, "value": tv.Value}
    case ipp.DateTime:
        return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%c%02d%02d",
            tv.Year, tv.Month, tv.Day, tv.Hour, tv.Minute, tv.Second,
            tv.Decisecond, tv.UTCSign, tv.UTCHours, tv.UTCMinutes)
    case ipp.Resolution:
        unit := "dpi"
        if tv.Units == ipp.UnitsDotsPerCentimeter {
            unit = "dpcm"
        }
        return fmt.Sprintf("%dx%d%s", tv.Xres, tv.Yres, unit)
    case ipp.RangeOfInteger:
        return map[string]int32{"min": tv.Min, "max": tv.Max}
    case *ipp.Collection:
        return exportAttrs(tv)
    }
    return nil
}
