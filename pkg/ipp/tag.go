package ipp

// Wire tag space (RFC 8010). A single byte partitioned into disjoint ranges:
//
//  0x01..0x0f  begin-group delimiters (0x03 ends the attribute section)
//  0x10..0x1f  out-of-band value tags (no value bytes carried)
//  0x21..0x23  integer-like value tags
//  0x30..0x36  octet-string-like value tags (incl. begin-collection 0x34)
//  0x37        end-collection (structural, never an attribute type)
//  0x40..0x49  character-string-like value tags
//  0x4a        member-attribute-name (structural, names collection members)
//
// Anything else is illegal on the wire.

// GroupTag identifies an attribute group delimiter.
type GroupTag uint8

// Group tags.
const (
    GroupOperationAttrs    GroupTag = 0x01
    GroupJobAttrs          GroupTag = 0x02
    GroupPrinterAttrs      GroupTag = 0x04
    GroupUnsupportedAttrs  GroupTag = 0x05
    GroupSubscriptionAttrs GroupTag = 0x06
    GroupEventNotification GroupTag = 0x07
    GroupResourceAttrs     GroupTag = 0x08
    GroupDocumentAttrs     GroupTag = 0x09
    GroupSystemAttrs       GroupTag = 0x0a
)

// endOfAttributes terminates the attribute section of a frame.
const endOfAttributes = 0x03

// IsValid reports whether g is a legal begin-group byte (0x01, 0x02, 0x04..0x0f).
func (g GroupTag) IsValid() bool {
    return g == 0x01 || g == 0x02 || (g >= 0x04 && g <= 0x0f)
}

func (g GroupTag) String() string {
    switch g {
    case GroupOperationAttrs:
        return "operation-attributes"
    case GroupJobAttrs:
        return "job-attributes"
    case GroupPrinterAttrs:
        return "printer-attributes"
    case GroupUnsupportedAttrs:
        return "unsupported-attributes"
    case GroupSubscriptionAttrs:
        return "subscription-attributes"
    case GroupEventNotification:
        return "event-notification-attributes"
    case GroupResourceAttrs:
        return "resource-attributes"
    case GroupDocumentAttrs:
        return "document-attributes"
    case GroupSystemAttrs:
        return "system-attributes"
    }
    if g.IsValid() {
        return "group-" + hexByte(uint8(g))
    }
    return "invalid-group-" + hexByte(uint8(g))
}

// ValueTag identifies the type of an attribute value.
type ValueTag uint8

// Out-of-band tags (0x10..0x1f). The whole range is legal on the wire;
// only the registered ones get names.
const (
    TagUnsupported ValueTag = 0x10
    TagDefault     ValueTag = 0x11
    TagUnknown     ValueTag = 0x12
    TagNoValue     ValueTag = 0x13
    TagNotSettable ValueTag = 0x15
    TagDeleteAttr  ValueTag = 0x16
    TagAdminDefine ValueTag = 0x17
)

// Integer-like tags.
const (
    TagInteger ValueTag = 0x21
    TagBoolean ValueTag = 0x22
    TagEnum    ValueTag = 0x23
)

// Octet-string-like tags.
const (
    TagOctetString      ValueTag = 0x30
    TagDateTime         ValueTag = 0x31
    TagResolution       ValueTag = 0x32
    TagRangeOfInteger   ValueTag = 0x33
    TagBeginCollection  ValueTag = 0x34
    TagTextWithLanguage ValueTag = 0x35
    TagNameWithLanguage ValueTag = 0x36
)

// Structural tags. Legal on the wire, never legal as an attribute type.
const (
    TagEndCollection ValueTag = 0x37
    TagMemberName    ValueTag = 0x4a
)

// Character-string-like tags.
const (
    TagTextWithoutLanguage ValueTag = 0x41
    TagNameWithoutLanguage ValueTag = 0x42
    TagKeyword             ValueTag = 0x44
    TagURI                 ValueTag = 0x45
    TagURIScheme           ValueTag = 0x46
    TagCharset             ValueTag = 0x47
    TagNaturalLanguage     ValueTag = 0x48
    TagMimeMediaType       ValueTag = 0x49
)

// IsOutOfBand reports whether the tag carries no value bytes.
func (t ValueTag) IsOutOfBand() bool { return t >= 0x10 && t <= 0x1f }

// IsInteger reports whether the tag stores a 32-bit signed integer.
func (t ValueTag) IsInteger() bool { return t >= 0x21 && t <= 0x23 }

// IsOctetString reports whether the tag belongs to the octet-string range.
func (t ValueTag) IsOctetString() bool { return t >= 0x30 && t <= 0x36 }

// IsString reports whether the tag belongs to the character-string range.
// TagMemberName (0x4a) is excluded: it is structural, not a value type.
func (t ValueTag) IsString() bool { return t >= 0x40 && t <= 0x49 }

// IsValid reports whether the tag is a legal attribute type tag.
func (t ValueTag) IsValid() bool {
    return t.IsOutOfBand() || t.IsInteger() || t.IsOctetString() || t.IsString()
}

// Kind returns the internal value representation for the tag.
func (t ValueTag) Kind() ValueKind {
    switch {
    case t.IsOutOfBand():
        return KindVoid
    case t.IsInteger():
        return KindInteger
    case t == TagDateTime:
        return KindDateTime
    case t == TagResolution:
        return KindResolution
    case t == TagRangeOfInteger:
        return KindRangeOfInteger
    case t == TagBeginCollection:
        return KindCollection
    case t == TagTextWithLanguage || t == TagNameWithLanguage:
        return KindStringWithLanguage
    case t.IsOctetString() || t.IsString():
        return KindString
    }
    return KindInvalid
}

func (t ValueTag) String() string {
    switch t {
    case TagUnsupported:
        return "unsupported"
    case TagDefault:
        return "default"
    case TagUnknown:
        return "unknown"
    case TagNoValue:
        return "no-value"
    case TagNotSettable:
        return "not-settable"
    case TagDeleteAttr:
        return "delete-attribute"
    case TagAdminDefine:
        return "admin-define"
    case TagInteger:
        return "integer"
    case TagBoolean:
        return "boolean"
    case TagEnum:
        return "enum"
    case TagOctetString:
        return "octetString"
    case TagDateTime:
        return "dateTime"
    case TagResolution:
        return "resolution"
    case TagRangeOfInteger:
        return "rangeOfInteger"
    case TagBeginCollection:
        return "collection"
    case TagTextWithLanguage:
        return "textWithLanguage"
    case TagNameWithLanguage:
        return "nameWithLanguage"
    case TagEndCollection:
        return "endCollection"
    case TagMemberName:
        return "memberAttrName"
    case TagTextWithoutLanguage:
        return "textWithoutLanguage"
    case TagNameWithoutLanguage:
        return "nameWithoutLanguage"
    case TagKeyword:
        return "keyword"
    case TagURI:
        return "uri"
    case TagURIScheme:
        return "uriScheme"
    case TagCharset:
        return "charset"
    case TagNaturalLanguage:
        return "naturalLanguage"
    case TagMimeMediaType:
        return "mimeMediaType"
    }
    return "tag-" + hexByte(uint8(t))
}

const hexDigits = "0123456789abcdef"

func hexByte(b uint8) string {
    return "0x" + string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}
