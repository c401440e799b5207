package ipp

// ValueKind enumerates the internal representations a value tag can map to.
type ValueKind uint8

const (
    KindInvalid ValueKind = iota
    KindVoid
    KindInteger
    KindString
    KindStringWithLanguage
    KindDateTime
    KindResolution
    KindRangeOfInteger
    KindCollection
)

func (k ValueKind) String() string {
    switch k {
    case KindVoid:
        return "void"
    case KindInteger:
        return "integer"
    case KindString:
        return "string"
    case KindStringWithLanguage:
        return "stringWithLanguage"
    case KindDateTime:
        return "dateTime"
    case KindResolution:
        return "resolution"
    case KindRangeOfInteger:
        return "rangeOfInteger"
    case KindCollection:
        return "collection"
    }
    return "invalid"
}

// Value is one attribute value. Exactly one concrete type exists per
// ValueKind; an Attribute holds a homogeneous list of them.
type Value interface {
    Kind() ValueKind
}

// Void is the value of an out-of-band attribute. It carries nothing.
type Void struct{}

// Integer stores integer, boolean (0/1) and enum values.
type Integer int32

// String stores octetString and all character-string values as raw bytes.
type String string

// StringWithLanguage stores textWithLanguage / nameWithLanguage values.
type StringWithLanguage struct {
    Language string
    Value    string
}

// DateTime is the 11-byte RFC 2579 date-and-time record.
type DateTime struct {
    Year       uint16
    Month      uint8 // 1..12
    Day        uint8 // 1..31
    Hour       uint8 // 0..23
    Minute     uint8 // 0..59
    Second     uint8 // 0..60 (leap second)
    Decisecond uint8 // 0..9
    UTCSign    byte  // '+' or '-'
    UTCHours   uint8 // 0..13
    UTCMinutes uint8 // 0..59
}

// Resolution units.
const (
    UnitsDotsPerInch       = 3
    UnitsDotsPerCentimeter = 4
)

// Resolution is a print resolution value.
type Resolution struct {
    Xres  int32
    Yres  int32
    Units int8
}

// RangeOfInteger is a closed integer interval.
type RangeOfInteger struct {
    Min int32
    Max int32
}

func (Void) Kind() ValueKind               { return KindVoid }
func (Integer) Kind() ValueKind            { return KindInteger }
func (String) Kind() ValueKind             { return KindString }
func (StringWithLanguage) Kind() ValueKind { return KindStringWithLanguage }
func (DateTime) Kind() ValueKind           { return KindDateTime }
func (Resolution) Kind() ValueKind         { return KindResolution }
func (RangeOfInteger) Kind() ValueKind     { return KindRangeOfInteger }
func (*Collection) Kind() ValueKind        { return KindCollection }

// defaultValue returns the canonical zero value written by the builder when
// a stored value cannot be encoded for its tag (best-effort policy).
func defaultValue(k ValueKind) Value {
    switch k {
    case KindVoid:
        return Void{}
    case KindInteger:
        return Integer(0)
    case KindString:
        return String("")
    case KindStringWithLanguage:
        return StringWithLanguage{}
    case KindDateTime:
        return DateTime{UTCSign: '+'}
    case KindResolution:
        return Resolution{Xres: 256, Yres: 256, Units: UnitsDotsPerInch}
    case KindRangeOfInteger:
        return RangeOfInteger{}
    }
    return Void{}
}

// valueEqual compares two values of the same kind. Collections are compared
// structurally.
func valueEqual(a, b Value) bool {
    if a.Kind() != b.Kind() {
        return false
    }
    switch av := a.(type) {
    case Void:
        return true
    case Integer:
        return av == b.(Integer)
    case String:
        return av == b.(String)
    case StringWithLanguage:
        return av == b.(StringWithLanguage)
    case DateTime:
        return av == b.(DateTime)
    case Resolution:
        return av == b.(Resolution)
    case RangeOfInteger:
        return av == b.(RangeOfInteger)
    case *Collection:
        return av.equalContent(b.(*Collection))
    }
    return false
}
