package ipp

// Frame is one IPP request or response: an 8-byte header, an ordered list
// of attribute groups and an opaque trailing payload (document data). The
// frame owns every group collection and, transitively, every nested
// collection below them.
type Frame struct {
    VersionMajor uint8
    VersionMinor uint8

    // OperationIDOrStatusCode is the dual-purpose 16-bit header field:
    // operation id in requests, status code in responses.
    OperationIDOrStatusCode uint16

    RequestID uint32

    groups []frameGroup

    // Payload is copied to the wire verbatim after the end-of-attributes
    // tag. No internal structure.
    Payload []byte
}

type frameGroup struct {
    tag  GroupTag
    coll *Collection
}

// Group is one (group tag, collection) pair of a frame. Group tags may
// repeat; each occurrence has its own collection.
type Group struct {
    Tag  GroupTag
    Coll *Collection
}

// NewFrame returns an empty frame with no groups.
func NewFrame() *Frame { return &Frame{} }

// NewRequest returns a frame with the boilerplate operation-attributes
// group: "attributes-charset" = utf-8 and "attributes-natural-language" =
// en-us, as every well-formed request starts.
func NewRequest(major, minor uint8, operationID uint16, requestID uint32) *Frame {
    f := &Frame{
        VersionMajor:            major,
        VersionMinor:            minor,
        OperationIDOrStatusCode: operationID,
        RequestID:               requestID,
    }
    op, _ := f.AddGroup(GroupOperationAttrs)
    op.AddAttr("attributes-charset", TagCharset, String("utf-8"))
    op.AddAttr("attributes-natural-language", TagNaturalLanguage, String("en-us"))
    return f
}

// NewResponse returns a frame carrying a status code instead of an
// operation id, with the same boilerplate group.
func NewResponse(major, minor uint8, statusCode uint16, requestID uint32) *Frame {
    return NewRequest(major, minor, statusCode, requestID)
}

// AddGroup appends a group with the given tag and returns its collection.
// Fails when the tag is not a legal begin-group byte or the group ceiling
// is reached.
func (f *Frame) AddGroup(tag GroupTag) (*Collection, error) {
    if !tag.IsValid() {
        return nil, ErrInvalidValueTag
    }
    if len(f.groups) >= maxGroupCount {
        return nil, ErrTooManyGroups
    }
    g := frameGroup{tag: tag, coll: newCollection()}
    f.groups = append(f.groups, g)
    return g.coll, nil
}

// GetGroup returns the first group with the given tag.
func (f *Frame) GetGroup(tag GroupTag) (*Collection, bool) {
    for _, g := range f.groups {
        if g.tag == tag {
            return g.coll, true
        }
    }
    return nil, false
}

// Groups returns all groups in frame order.
func (f *Frame) Groups() []Group {
    out := make([]Group, len(f.groups))
    for i, g := range f.groups {
        out[i] = Group{Tag: g.tag, Coll: g.coll}
    }
    return out
}

// EqualContent reports whether two frames carry the same header, groups,
// attributes and payload. Used by round-trip tests and the dump tool.
func (f *Frame) EqualContent(o *Frame) bool {
    if f.VersionMajor != o.VersionMajor || f.VersionMinor != o.VersionMinor ||
        f.OperationIDOrStatusCode != o.OperationIDOrStatusCode ||
        f.RequestID != o.RequestID ||
        len(f.groups) != len(o.groups) ||
        string(f.Payload) != string(o.Payload) {
        return false
    }
    for i := range f.groups {
        if f.groups[i].tag != o.groups[i].tag {
            return false
        }
        if !f.groups[i].coll.equalContent(o.groups[i].coll) {
            return false
        }
    }
    return true
}

// totalAttrCount walks the whole frame. Used by the parser to enforce the
// per-frame attribute ceiling while building partial results.
func (f *Frame) totalAttrCount() int {
    n := 0
    for _, g := range f.groups {
        n += collAttrCount(g.coll)
    }
    return n
}

func collAttrCount(c *Collection) int {
    n := len(c.attrs)
    for _, a := range c.attrs {
        if a.tag == TagBeginCollection {
            for _, v := range a.values {
                if child, ok := v.(*Collection); ok {
                    n += collAttrCount(child)
                }
            }
        }
    }
    return n
}
