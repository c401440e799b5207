package ipp

import "testing"

func TestParserErrorsCap(t *testing.T) {
    l := ParserErrors{Max: 2}
    e := ParserError{Code: ParserValueMismatchedType}
    if !l.RecordParserError(e) {
        t.Fatalf("first record reported full")
    }
    if l.RecordParserError(e) {
        t.Fatalf("second record did not report full")
    }
    if l.RecordParserError(e) {
        t.Fatalf("record past the cap accepted")
    }
    if len(l.Entries) != 2 {
        t.Fatalf("entries = %d", len(l.Entries))
    }
}

func TestAttrErrorsDefaultCap(t *testing.T) {
    var l AttrErrors
    for i := 0; i < DefaultLogMaxEntries+10; i++ {
        l.RecordAttrError(AttrError{Code: ValidatorStringEmpty})
    }
    if len(l.Entries) != DefaultLogMaxEntries {
        t.Fatalf("entries = %d", len(l.Entries))
    }
}

func TestCriticalError(t *testing.T) {
    var l ParserErrors
    if _, ok := l.CriticalError(); ok {
        t.Fatalf("critical reported on empty log")
    }
    l.RecordParserError(ParserError{Code: ParserValueMismatchedType})
    if _, ok := l.CriticalError(); ok {
        t.Fatalf("recoverable entry reported critical")
    }
    l.RecordParserError(ParserError{Code: ParserUnexpectedEndOfFrame})
    e, ok := l.CriticalError()
    if !ok || e.Code != ParserUnexpectedEndOfFrame {
        t.Fatalf("critical lookup: %v %v", e, ok)
    }
}

func TestParserCodeClassification(t *testing.T) {
    recoverable := []ParserCode{
        ParserAttributeNameConflict, ParserValueMismatchedType,
        ParserOutOfBandValueWithContent, ParserOutOfBandExtraValues,
        ParserBooleanValueOutOfRange, ParserValueInvalidSize,
        ParserAttributeNoUsableValues, ParserAttributeNameEmpty,
    }
    for _, c := range recoverable {
        if c.IsCritical() {
            t.Errorf("%v classified critical", c)
        }
    }
    critical := []ParserCode{
        ParserUnexpectedEndOfFrame, ParserInvalidHeader, ParserInvalidTag,
        ParserNegativeLengthField, ParserUnexpectedEndCollection,
        ParserUnexpectedMemberName, ParserMissingEndCollection,
        ParserLimitCollectionDepth, ParserLimitGroupCount,
        ParserLimitAttributeCount,
    }
    for _, c := range critical {
        if !c.IsCritical() {
            t.Errorf("%v classified recoverable", c)
        }
    }
}
