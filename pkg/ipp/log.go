package ipp

// ParserLog receives decoder decisions. Record returns false to tell the
// parser the sink is full; the parser keeps decoding either way, it just
// stops reporting.
type ParserLog interface {
    RecordParserError(e ParserError) bool
}

// ErrorsLog receives validator and builder faults. Same contract as
// ParserLog: the return value only gates further reporting.
type ErrorsLog interface {
    RecordAttrError(e AttrError) bool
}

// DefaultLogMaxEntries caps the bundled sinks unless overridden.
const DefaultLogMaxEntries = 100

// ParserErrors is the bundled capped ParserLog.
type ParserErrors struct {
    Entries []ParserError
    Max     int // 0 means DefaultLogMaxEntries
}

// RecordParserError appends e unless the cap is reached.
func (l *ParserErrors) RecordParserError(e ParserError) bool {
    max := l.Max
    if max <= 0 {
        max = DefaultLogMaxEntries
    }
    if len(l.Entries) >= max {
        return false
    }
    l.Entries = append(l.Entries, e)
    return len(l.Entries) < max
}

// CriticalError returns the critical entry, if any. At most one can exist
// since criticals stop the parse.
func (l *ParserErrors) CriticalError() (ParserError, bool) {
    for _, e := range l.Entries {
        if e.Code.IsCritical() {
            return e, true
        }
    }
    return ParserError{}, false
}

// AttrErrors is the bundled capped ErrorsLog.
type AttrErrors struct {
    Entries []AttrError
    Max     int // 0 means DefaultLogMaxEntries
}

// RecordAttrError appends e unless the cap is reached.
func (l *AttrErrors) RecordAttrError(e AttrError) bool {
    max := l.Max
    if max <= 0 {
        max = DefaultLogMaxEntries
    }
    if len(l.Entries) >= max {
        return false
    }
    l.Entries = append(l.Entries, e)
    return len(l.Entries) < max
}

// nopParserLog / nopErrorsLog stand in when the caller passes nil.
type nopParserLog struct{}

func (nopParserLog) RecordParserError(ParserError) bool { return false }

type nopErrorsLog struct{}

func (nopErrorsLog) RecordAttrError(AttrError) bool { return false }
