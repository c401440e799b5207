package ipp

import (
    "encoding/binary"
)

// Frame builder. Two phases: preprocess flattens every group into a run of
// tag-name-value records (recursing into nested collections), then the
// write phase sums lengths and serializes. Encoding is best-effort: a value
// that cannot be encoded for its tag is logged and replaced with a
// canonical default so the rest of the frame still goes out.

// tnv is one flat wire record: 1-byte tag, 2-byte name length + name,
// 2-byte value length + value.
type tnv struct {
    tag   ValueTag
    name  string
    value []byte
}

func (r tnv) wireLen() int { return 1 + 2 + len(r.name) + 2 + len(r.value) }

// GetLength returns the exact number of bytes SaveToBuffer will write.
func (f *Frame) GetLength() int {
    length := 8 // header
    for _, g := range f.groups {
        length++ // group tag
        for _, r := range flattenGroup(g, nopErrorsLog{}) {
            length += r.wireLen()
        }
    }
    length++ // end-of-attributes
    length += len(f.Payload)
    return length
}

// SaveToBuffer serializes the frame into buf. When buf is shorter than
// GetLength it fails with ErrBufferTooShort and writes nothing. Encoding
// faults (substituted values) are reported to elog, which may be nil.
func (f *Frame) SaveToBuffer(buf []byte, elog ErrorsLog) (int, error) {
    if elog == nil {
        elog = nopErrorsLog{}
    }

    // preprocess everything before touching buf so a short buffer never
    // receives partial output
    flat := make([][]tnv, len(f.groups))
    length := 8
    for i, g := range f.groups {
        flat[i] = flattenGroup(g, elog)
        length++
        for _, r := range flat[i] {
            length += r.wireLen()
        }
    }
    length += 1 + len(f.Payload)

    if len(buf) < length {
        return 0, ErrBufferTooShort
    }

    buf[0] = f.VersionMajor
    buf[1] = f.VersionMinor
    binary.BigEndian.PutUint16(buf[2:4], f.OperationIDOrStatusCode)
    binary.BigEndian.PutUint32(buf[4:8], f.RequestID)
    off := 8

    for i, g := range f.groups {
        buf[off] = byte(g.tag)
        off++
        for _, r := range flat[i] {
            buf[off] = byte(r.tag)
            off++
            binary.BigEndian.PutUint16(buf[off:off+2], uint16(len(r.name)))
            off += 2
            off += copy(buf[off:], r.name)
            binary.BigEndian.PutUint16(buf[off:off+2], uint16(len(r.value)))
            off += 2
            off += copy(buf[off:], r.value)
        }
    }

    buf[off] = endOfAttributes
    off++
    off += copy(buf[off:], f.Payload)
    return off, nil
}

// Encode allocates a buffer of exactly GetLength bytes and serializes into it.
func (f *Frame) Encode(elog ErrorsLog) []byte {
    buf := make([]byte, f.GetLength())
    n, _ := f.SaveToBuffer(buf, elog)
    return buf[:n]
}

func flattenGroup(g frameGroup, elog ErrorsLog) []tnv {
    var out []tnv
    path := NewAttrPath(g.tag)
    for _, a := range g.coll.attrs {
        out = flattenAttr(out, a, path, 0, elog)
    }
    return out
}

// flattenAttr appends the records for one attribute. The first value of the
// attribute carries the name; subsequent values of the same attribute carry
// an empty name. Inside collections the name field stays empty throughout,
// a member-attribute-name record names each member instead (the caller has
// already emitted it when named is false).
func flattenAttr(out []tnv, a *Attribute, path AttrPath, level int, elog ErrorsLog) []tnv {
    if a.tag.IsOutOfBand() {
        name := ""
        if level == 0 {
            name = a.name
        }
        return append(out, tnv{tag: a.tag, name: name})
    }
    for i, v := range a.values {
        name := ""
        if level == 0 && i == 0 {
            name = a.name
        }
        if a.tag == TagBeginCollection {
            if level >= maxCollectionLevel {
                // a begin-collection record here would put the value one
                // level past what the decoder accepts; drop the value so
                // the output stays parseable
                elog.RecordAttrError(AttrError{Path: path.Push(a.name, i), ValueIndex: -1, Code: ValidatorCollectionTooDeep})
                continue
            }
            out = append(out, tnv{tag: TagBeginCollection, name: name})
            child, _ := v.(*Collection)
            out = flattenCollection(out, child, path.Push(a.name, i), level+1, elog)
            out = append(out, tnv{tag: TagEndCollection})
            continue
        }
        wireTag, data := encodeScalar(a, i, v, path, elog)
        out = append(out, tnv{tag: wireTag, name: name, value: data})
    }
    return out
}

func flattenCollection(out []tnv, c *Collection, path AttrPath, level int, elog ErrorsLog) []tnv {
    if c == nil {
        return out
    }
    for _, a := range c.attrs {
        n := len(out)
        out = append(out, tnv{tag: TagMemberName, value: []byte(a.name)})
        out = flattenAttr(out, a, path, level, elog)
        if len(out) == n+1 {
            // every value of the member was dropped; retract its name record
            out = out[:n]
        }
    }
    return out
}

// encodeScalar encodes one non-collection value. On failure it logs the
// fault and falls back to the canonical default for the tag.
func encodeScalar(a *Attribute, idx int, v Value, path AttrPath, elog ErrorsLog) (ValueTag, []byte) {
    tag := a.tag
    if v == nil || v.Kind() != tag.Kind() {
        elog.RecordAttrError(AttrError{Path: path.Push(a.name, -1), ValueIndex: idx, Code: ValidatorValueSubstituted})
        v = defaultValue(tag.Kind())
    }
    switch tv := v.(type) {
    case Integer:
        if tag == TagBoolean {
            if tv != 0 && tv != 1 {
                elog.RecordAttrError(AttrError{Path: path.Push(a.name, -1), ValueIndex: idx, Code: ValidatorValueSubstituted})
                tv = 0
            }
            return tag, []byte{byte(tv)}
        }
        b := make([]byte, 4)
        binary.BigEndian.PutUint32(b, uint32(tv))
        return tag, b
    case String:
        return tag, []byte(tv)
    case StringWithLanguage:
        // a value with an empty language goes out as the corresponding
        // without-language tag carrying raw bytes only
        if tv.Language == "" {
            if tag == TagTextWithLanguage {
                return TagTextWithoutLanguage, []byte(tv.Value)
            }
            return TagNameWithoutLanguage, []byte(tv.Value)
        }
        b := make([]byte, 0, 4+len(tv.Language)+len(tv.Value))
        b = appendLengthPrefixed(b, tv.Language)
        b = appendLengthPrefixed(b, tv.Value)
        return tag, b
    case DateTime:
        b := make([]byte, 11)
        binary.BigEndian.PutUint16(b[0:2], tv.Year)
        b[2] = tv.Month
        b[3] = tv.Day
        b[4] = tv.Hour
        b[5] = tv.Minute
        b[6] = tv.Second
        b[7] = tv.Decisecond
        b[8] = tv.UTCSign
        b[9] = tv.UTCHours
        b[10] = tv.UTCMinutes
        return tag, b
    case Resolution:
        b := make([]byte, 9)
        binary.BigEndian.PutUint32(b[0:4], uint32(tv.Xres))
        binary.BigEndian.PutUint32(b[4:8], uint32(tv.Yres))
        b[8] = byte(tv.Units)
        return tag, b
    case RangeOfInteger:
        b := make([]byte, 8)
        binary.BigEndian.PutUint32(b[0:4], uint32(tv.Min))
        binary.BigEndian.PutUint32(b[4:8], uint32(tv.Max))
        return tag, b
    }
    return tag, nil
}

func appendLengthPrefixed(b []byte, s string) []byte {
    b = append(b, byte(len(s)>>8), byte(len(s)))
    return append(b, s...)
}
