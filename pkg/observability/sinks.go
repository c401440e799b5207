package observability

import (
    "go.uber.org/zap"

    "ippwire/pkg/ipp"
)

// ZapParserLog forwards decoder decisions to a zap logger: recoverable
// anomalies at Warn, critical failures at Error. Max caps the number of
// forwarded entries so a hostile buffer cannot flood the log (0 means
// ipp.DefaultLogMaxEntries).
type ZapParserLog struct {
    L   *zap.Logger
    Max int

    seen int
}

// RecordParserError implements ipp.ParserLog.
func (s *ZapParserLog) RecordParserError(e ipp.ParserError) bool {
    max := s.Max
    if max <= 0 {
        max = ipp.DefaultLogMaxEntries
    }
    if s.seen >= max {
        return false
    }
    s.seen++
    fields := []zap.Field{
        zap.String("path", e.Path.String()),
        zap.String("code", e.Code.String()),
    }
    if e.Code.IsCritical() {
        s.L.Error("frame parse stopped", fields...)
    } else {
        s.L.Warn("frame anomaly", fields...)
    }
    return s.seen < max
}

// ZapErrorsLog forwards validator and builder faults to a zap logger at
// Warn level, capped like ZapParserLog.
type ZapErrorsLog struct {
    L   *zap.Logger
    Max int

    seen int
}

// RecordAttrError implements ipp.ErrorsLog.
func (s *ZapErrorsLog) RecordAttrError(e ipp.AttrError) bool {
    max := s.Max
    if max <= 0 {
        max = ipp.DefaultLogMaxEntries
    }
    if s.seen >= max {
        return false
    }
    s.seen++
    s.L.Warn("attribute violation",
        zap.String("path", e.Path.String()),
        zap.Int("value_index", e.ValueIndex),
        zap.String("code", e.Code.String()),
    )
    return s.seen < max
}
