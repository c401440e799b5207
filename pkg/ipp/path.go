package ipp

import (
    "fmt"
    "strings"
)

// PathSegment is one step into a nested structure: the attribute name and,
// when descending into a collection value, the index of that collection
// among the attribute's values.
type PathSegment struct {
    AttrName        string
    CollectionIndex int
}

// AttrPath locates an attribute (or a value of it) inside a frame: the
// owning group tag plus a chain of segments, outermost first.
type AttrPath struct {
    Group GroupTag
    Segs  []PathSegment
}

// NewAttrPath starts a path at the given group.
func NewAttrPath(g GroupTag) AttrPath { return AttrPath{Group: g} }

// Push returns a copy of the path extended by one segment. The receiver is
// left untouched so sibling branches can reuse it.
func (p AttrPath) Push(name string, collectionIndex int) AttrPath {
    segs := make([]PathSegment, len(p.Segs), len(p.Segs)+1)
    copy(segs, p.Segs)
    return AttrPath{Group: p.Group, Segs: append(segs, PathSegment{name, collectionIndex})}
}

func (p AttrPath) String() string {
    var b strings.Builder
    b.WriteString(p.Group.String())
    for _, s := range p.Segs {
        b.WriteByte('>')
        b.WriteString(s.AttrName)
        // index is -1 when the segment addresses the attribute itself rather
        // than one of its collection values
        if s.CollectionIndex >= 0 {
            fmt.Fprintf(&b, "[%d]", s.CollectionIndex)
        }
    }
    return b.String()
}
