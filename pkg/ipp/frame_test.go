package ipp

import (
    "errors"
    "testing"
)

func TestNewRequestBoilerplate(t *testing.T) {
    f := NewRequest(2, 0, OpCreateJob, 5)
    op, ok := f.GetGroup(GroupOperationAttrs)
    if !ok {
        t.Fatalf("operation group missing")
    }
    cs, _ := op.GetAttribute("attributes-charset")
    if cs.Tag() != TagCharset || cs.Value(0) != String("utf-8") {
        t.Fatalf("charset: %v", cs)
    }
    nl, _ := op.GetAttribute("attributes-natural-language")
    if nl.Tag() != TagNaturalLanguage || nl.Value(0) != String("en-us") {
        t.Fatalf("natural language: %v", nl)
    }
}

func TestAddGroupRules(t *testing.T) {
    f := NewFrame()
    if _, err := f.AddGroup(GroupTag(0x03)); !errors.Is(err, ErrInvalidValueTag) {
        t.Fatalf("delimiter as group tag: %v", err)
    }
    if _, err := f.AddGroup(GroupTag(0x21)); !errors.Is(err, ErrInvalidValueTag) {
        t.Fatalf("value tag as group tag: %v", err)
    }
    for i := 0; i < maxGroupCount; i++ {
        if _, err := f.AddGroup(GroupJobAttrs); err != nil {
            t.Fatalf("group %d: %v", i, err)
        }
    }
    if _, err := f.AddGroup(GroupJobAttrs); !errors.Is(err, ErrTooManyGroups) {
        t.Fatalf("over ceiling: %v", err)
    }
}

func TestEqualContent(t *testing.T) {
    build := func() *Frame {
        f := NewRequest(2, 0, OpPrintJob, 1)
        g, _ := f.AddGroup(GroupJobAttrs)
        g.AddAttr("copies", TagInteger, Integer(2))
        _, cols, _ := g.AddCollectionAttr("media-col", 1)
        cols[0].AddAttr("media-source", TagKeyword, String("tray-1"))
        f.Payload = []byte("doc")
        return f
    }

    a, b := build(), build()
    if !a.EqualContent(b) {
        t.Fatalf("identical frames compare unequal")
    }

    b.RequestID = 2
    if a.EqualContent(b) {
        t.Fatalf("request id ignored")
    }

    b = build()
    b.Payload = []byte("DOC")
    if a.EqualContent(b) {
        t.Fatalf("payload ignored")
    }

    b = build()
    g, _ := b.GetGroup(GroupJobAttrs)
    ca, _ := g.GetAttribute("copies")
    ca.SetValue(0, Integer(3))
    if a.EqualContent(b) {
        t.Fatalf("value change ignored")
    }

    b = build()
    g, _ = b.GetGroup(GroupJobAttrs)
    ma, _ := g.GetAttribute("media-col")
    sub, _ := ma.GetCollection(0)
    src, _ := sub.GetAttribute("media-source")
    src.SetValue(0, String("manual"))
    if a.EqualContent(b) {
        t.Fatalf("nested value change ignored")
    }
}
