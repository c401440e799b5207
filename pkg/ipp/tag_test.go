package ipp

import "testing"

func TestTagRanges(t *testing.T) {
    cases := []struct {
        tag   ValueTag
        valid bool
        kind  ValueKind
    }{
        {TagUnsupported, true, KindVoid},
        {TagNoValue, true, KindVoid},
        {ValueTag(0x1f), true, KindVoid},
        {TagInteger, true, KindInteger},
        {TagBoolean, true, KindInteger},
        {TagEnum, true, KindInteger},
        {TagOctetString, true, KindString},
        {TagDateTime, true, KindDateTime},
        {TagResolution, true, KindResolution},
        {TagRangeOfInteger, true, KindRangeOfInteger},
        {TagBeginCollection, true, KindCollection},
        {TagTextWithLanguage, true, KindStringWithLanguage},
        {TagNameWithLanguage, true, KindStringWithLanguage},
        {TagKeyword, true, KindString},
        {TagCharset, true, KindString},
        {TagMimeMediaType, true, KindString},
        {TagEndCollection, false, KindInvalid},
        {TagMemberName, false, KindInvalid},
        {ValueTag(0x00), false, KindInvalid},
        {ValueTag(0x03), false, KindInvalid},
        {ValueTag(0x20), false, KindInvalid},
        {ValueTag(0x24), false, KindInvalid},
        {ValueTag(0x38), false, KindInvalid},
        {ValueTag(0x4b), false, KindInvalid},
        {ValueTag(0xff), false, KindInvalid},
    }
    for _, c := range cases {
        if got := c.tag.IsValid(); got != c.valid {
            t.Errorf("tag %s: IsValid = %v, want %v", c.tag, got, c.valid)
        }
        if c.valid {
            if got := c.tag.Kind(); got != c.kind {
                t.Errorf("tag %s: Kind = %v, want %v", c.tag, got, c.kind)
            }
        }
    }
}

func TestGroupTagValidity(t *testing.T) {
    for b := 0; b < 256; b++ {
        g := GroupTag(b)
        want := b == 0x01 || b == 0x02 || (b >= 0x04 && b <= 0x0f)
        if g.IsValid() != want {
            t.Fatalf("group tag 0x%02x: IsValid = %v, want %v", b, g.IsValid(), want)
        }
    }
}

func TestTagNames(t *testing.T) {
    if TagInteger.String() != "integer" {
        t.Fatalf("integer name: %q", TagInteger.String())
    }
    if GroupOperationAttrs.String() != "operation-attributes" {
        t.Fatalf("operation group name: %q", GroupOperationAttrs.String())
    }
    if got := ValueTag(0x7d).String(); got != "tag-0x7d" {
        t.Fatalf("unknown tag name: %q", got)
    }
}
