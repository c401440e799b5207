package observability

import (
    "testing"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
    "go.uber.org/zap/zaptest/observer"

    "ippwire/pkg/ipp"
)

func TestZapParserLogLevels(t *testing.T) {
    core, logs := observer.New(zapcore.WarnLevel)
    sink := &ZapParserLog{L: zap.New(core)}

    sink.RecordParserError(ipp.ParserError{
        Path: ipp.NewAttrPath(ipp.GroupJobAttrs).Push("copies", -1),
        Code: ipp.ParserValueMismatchedType,
    })
    sink.RecordParserError(ipp.ParserError{
        Path: ipp.NewAttrPath(ipp.GroupJobAttrs),
        Code: ipp.ParserUnexpectedEndOfFrame,
    })

    entries := logs.All()
    if len(entries) != 2 {
        t.Fatalf("entries = %d", len(entries))
    }
    if entries[0].Level != zapcore.WarnLevel {
        t.Fatalf("recoverable logged at %v", entries[0].Level)
    }
    if entries[1].Level != zapcore.ErrorLevel {
        t.Fatalf("critical logged at %v", entries[1].Level)
    }
    if entries[0].ContextMap()["path"] != "job-attributes>copies" {
        t.Fatalf("path field: %v", entries[0].ContextMap())
    }
}

func TestZapSinkCaps(t *testing.T) {
    core, logs := observer.New(zapcore.WarnLevel)

    p := &ZapParserLog{L: zap.New(core), Max: 3}
    for i := 0; i < 10; i++ {
        p.RecordParserError(ipp.ParserError{Code: ipp.ParserValueMismatchedType})
    }
    if logs.Len() != 3 {
        t.Fatalf("parser sink entries = %d", logs.Len())
    }

    core, logs = observer.New(zapcore.WarnLevel)
    e := &ZapErrorsLog{L: zap.New(core), Max: 2}
    for i := 0; i < 10; i++ {
        e.RecordAttrError(ipp.AttrError{ValueIndex: i, Code: ipp.ValidatorStringEmpty})
    }
    if logs.Len() != 2 {
        t.Fatalf("errors sink entries = %d", logs.Len())
    }
}
