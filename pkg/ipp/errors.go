package ipp

import (
    "errors"
    "fmt"
)

// Build-time API errors, returned synchronously from mutating calls.
var (
    // ErrInvalidName is returned when an attribute name is empty or too long.
    ErrInvalidName = errors.New("ipp: invalid attribute name")

    // ErrNameConflict is returned when the name already exists in the collection.
    ErrNameConflict = errors.New("ipp: attribute name already present")

    // ErrInvalidValueTag is returned when the tag is outside all legal ranges.
    ErrInvalidValueTag = errors.New("ipp: invalid value tag")

    // ErrIncompatibleType is returned when a supplied value does not match
    // the tag's internal representation.
    ErrIncompatibleType = errors.New("ipp: value incompatible with tag")

    // ErrValueOutOfRange is returned for empty value lists and for scalar
    // constraint violations at creation time.
    ErrValueOutOfRange = errors.New("ipp: value out of range")

    // ErrTooManyGroups is returned when the per-frame group ceiling is hit.
    ErrTooManyGroups = errors.New("ipp: too many attribute groups")

    // ErrTooManyAttributes is returned when the per-frame attribute ceiling is hit.
    ErrTooManyAttributes = errors.New("ipp: too many attributes")

    // ErrDataTooLong is returned when a name or value exceeds the 2-byte
    // wire length field.
    ErrDataTooLong = errors.New("ipp: data too long for wire format")

    // ErrBufferTooShort is returned by SaveToBuffer when the destination is
    // smaller than GetLength. Nothing is written in that case.
    ErrBufferTooShort = errors.New("ipp: buffer too short")
)

// ParserCode classifies one decoder decision. Most codes are recoverable:
// the parser drops or rewrites the offending piece and carries on. The
// critical subset stops tokenizing of the current buffer.
type ParserCode uint8

const (
    // Recoverable anomalies.
    ParserAttributeNameConflict ParserCode = iota + 1 // duplicate name, second occurrence dropped
    ParserValueMismatchedType                         // single value dropped
    ParserOutOfBandValueWithContent                   // value bytes ignored
    ParserOutOfBandExtraValues                        // additional values ignored
    ParserBooleanValueOutOfRange                      // coerced to 1
    ParserValueInvalidSize                            // single value dropped
    ParserAttributeNoUsableValues                     // whole attribute dropped
    ParserAttributeNameEmpty                          // value without preceding attribute, dropped

    // Critical failures. Tokenizing stops, the frame stays partial.
    ParserUnexpectedEndOfFrame
    ParserInvalidHeader
    ParserInvalidTag
    ParserNegativeLengthField
    ParserUnexpectedEndCollection
    ParserUnexpectedMemberName
    ParserMissingEndCollection
    ParserLimitCollectionDepth
    ParserLimitGroupCount
    ParserLimitAttributeCount
)

// IsCritical reports whether the code halts tokenizing of the buffer.
func (c ParserCode) IsCritical() bool { return c >= ParserUnexpectedEndOfFrame }

// RecoveryAction describes what the parser did about a recoverable anomaly.
type RecoveryAction uint8

const (
    RecoveryNone RecoveryAction = iota // critical, nothing salvaged past this point
    RecoveryValueConverted
    RecoveryValueOmitted
    RecoveryAttributeOmitted
    RecoveryExtraValuesIgnored
)

// Recovery returns the action implied by the code.
func (c ParserCode) Recovery() RecoveryAction {
    switch c {
    case ParserBooleanValueOutOfRange:
        return RecoveryValueConverted
    case ParserValueMismatchedType, ParserValueInvalidSize, ParserOutOfBandValueWithContent:
        return RecoveryValueOmitted
    case ParserAttributeNameConflict, ParserAttributeNoUsableValues, ParserAttributeNameEmpty:
        return RecoveryAttributeOmitted
    case ParserOutOfBandExtraValues:
        return RecoveryExtraValuesIgnored
    }
    return RecoveryNone
}

func (c ParserCode) String() string {
    switch c {
    case ParserAttributeNameConflict:
        return "attribute name conflict"
    case ParserValueMismatchedType:
        return "value type mismatch"
    case ParserOutOfBandValueWithContent:
        return "out-of-band value with content"
    case ParserOutOfBandExtraValues:
        return "out-of-band attribute with extra values"
    case ParserBooleanValueOutOfRange:
        return "boolean value out of range"
    case ParserValueInvalidSize:
        return "value size invalid for tag"
    case ParserAttributeNoUsableValues:
        return "attribute has no usable values"
    case ParserAttributeNameEmpty:
        return "value without preceding attribute"
    case ParserUnexpectedEndOfFrame:
        return "unexpected end of frame"
    case ParserInvalidHeader:
        return "invalid frame header"
    case ParserInvalidTag:
        return "invalid tag at structural position"
    case ParserNegativeLengthField:
        return "negative length field"
    case ParserUnexpectedEndCollection:
        return "unexpected end-collection"
    case ParserUnexpectedMemberName:
        return "member name outside collection"
    case ParserMissingEndCollection:
        return "missing end-collection"
    case ParserLimitCollectionDepth:
        return "collection nesting limit exceeded"
    case ParserLimitGroupCount:
        return "group count limit exceeded"
    case ParserLimitAttributeCount:
        return "attribute count limit exceeded"
    }
    return "parser code " + fmt.Sprint(uint8(c))
}

// ValidatorCode is one value-shape violation found by Validate. Purely
// descriptive: validation never mutates or aborts the frame.
type ValidatorCode uint8

const (
    ValidatorStringEmpty ValidatorCode = iota + 1
    ValidatorStringTooLong
    ValidatorStringMustStartLowercase
    ValidatorStringInvalidCharacter
    ValidatorInvalidLanguage
    ValidatorDateTimeInvalid
    ValidatorResolutionUnitsInvalid
    ValidatorResolutionDimensionInvalid
    ValidatorRangeMaxLessThanMin
    ValidatorIntegerOutOfRange
    ValidatorNameInvalid

    // Builder faults, reported through the same sink.
    ValidatorValueSubstituted  // unencodable value replaced with its canonical default
    ValidatorCollectionTooDeep // nested collection beyond the depth cap, emitted empty
)

func (c ValidatorCode) String() string {
    switch c {
    case ValidatorStringEmpty:
        return "string is empty"
    case ValidatorStringTooLong:
        return "string too long"
    case ValidatorStringMustStartLowercase:
        return "string must start with a lowercase letter"
    case ValidatorStringInvalidCharacter:
        return "string contains an invalid character"
    case ValidatorInvalidLanguage:
        return "invalid natural language tag"
    case ValidatorDateTimeInvalid:
        return "dateTime field out of range"
    case ValidatorResolutionUnitsInvalid:
        return "resolution units invalid"
    case ValidatorResolutionDimensionInvalid:
        return "resolution dimension not positive"
    case ValidatorRangeMaxLessThanMin:
        return "rangeOfInteger max less than min"
    case ValidatorIntegerOutOfRange:
        return "integer outside declared bounds"
    case ValidatorNameInvalid:
        return "attribute name invalid"
    case ValidatorValueSubstituted:
        return "value substituted with default"
    case ValidatorCollectionTooDeep:
        return "collection nesting too deep"
    }
    return "validator code " + fmt.Sprint(uint8(c))
}

// ParserError locates one decoder decision inside the frame being parsed.
type ParserError struct {
    Path AttrPath
    Code ParserCode
}

func (e ParserError) Error() string {
    return fmt.Sprintf("ipp: parse %s: %s", e.Path, e.Code)
}

// AttrError locates one validator (or builder) fault. ValueIndex is -1 when
// the violation concerns the attribute itself rather than a single value.
type AttrError struct {
    Path       AttrPath
    ValueIndex int
    Code       ValidatorCode
}

func (e AttrError) Error() string {
    if e.ValueIndex < 0 {
        return fmt.Sprintf("ipp: %s: %s", e.Path, e.Code)
    }
    return fmt.Sprintf("ipp: %s[%d]: %s", e.Path, e.ValueIndex, e.Code)
}
