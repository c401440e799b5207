package ipp

// Semantic validator. A stateless read-only pass over a decoded frame that
// checks the RFC value constraints the parser deliberately does not
// enforce. Violations are collected through elog; the frame is never
// touched.

// Per-tag byte-length ceilings for string-like values.
const (
    maxLenText            = 1023
    maxLenName            = 255
    maxLenKeyword         = 255
    maxLenURI             = 1023
    maxLenURIScheme       = 63
    maxLenCharset         = 63
    maxLenNaturalLanguage = 63
    maxLenMimeMediaType   = 255
    maxLenOctetString     = 1023
)

// Validate checks every attribute value in the frame and reports each
// violation to elog (which may be nil). Returns true iff no violation was
// found anywhere in the frame.
func Validate(f *Frame, elog ErrorsLog) bool {
    if elog == nil {
        elog = nopErrorsLog{}
    }
    v := &validator{elog: elog}
    for _, g := range f.groups {
        v.checkCollection(g.coll, NewAttrPath(g.tag))
    }
    return v.count == 0
}

type validator struct {
    elog  ErrorsLog
    count int
}

func (v *validator) report(path AttrPath, idx int, code ValidatorCode) {
    v.count++
    v.elog.RecordAttrError(AttrError{Path: path, ValueIndex: idx, Code: code})
}

func (v *validator) checkCollection(c *Collection, path AttrPath) {
    for _, a := range c.attrs {
        apath := path.Push(a.name, -1)
        if !isValidAttrName(a.name) {
            v.report(apath, -1, ValidatorNameInvalid)
        }
        if a.tag == TagBeginCollection {
            for i, val := range a.values {
                if child, ok := val.(*Collection); ok {
                    v.checkCollection(child, path.Push(a.name, i))
                }
            }
            continue
        }
        for i, val := range a.values {
            v.checkValue(a.tag, val, apath, i)
        }
    }
}

func (v *validator) checkValue(tag ValueTag, val Value, path AttrPath, idx int) {
    switch tv := val.(type) {
    case Integer:
        switch tag {
        case TagBoolean:
            if tv != 0 && tv != 1 {
                v.report(path, idx, ValidatorIntegerOutOfRange)
            }
        case TagEnum:
            if tv < 1 || tv > 32767 {
                v.report(path, idx, ValidatorIntegerOutOfRange)
            }
        }

    case String:
        v.checkString(tag, string(tv), path, idx)

    case StringWithLanguage:
        if tv.Language != "" && !isValidLanguageTag(tv.Language) {
            v.report(path, idx, ValidatorInvalidLanguage)
        }
        limit := maxLenText
        if tag == TagNameWithLanguage {
            limit = maxLenName
        }
        if len(tv.Value) > limit {
            v.report(path, idx, ValidatorStringTooLong)
        }

    case DateTime:
        if !isValidDateTime(tv) {
            v.report(path, idx, ValidatorDateTimeInvalid)
        }

    case Resolution:
        if tv.Units != UnitsDotsPerInch && tv.Units != UnitsDotsPerCentimeter {
            v.report(path, idx, ValidatorResolutionUnitsInvalid)
        }
        if tv.Xres <= 0 || tv.Yres <= 0 {
            v.report(path, idx, ValidatorResolutionDimensionInvalid)
        }

    case RangeOfInteger:
        if tv.Max < tv.Min {
            v.report(path, idx, ValidatorRangeMaxLessThanMin)
        }
    }
}

func (v *validator) checkString(tag ValueTag, s string, path AttrPath, idx int) {
    var limit int
    mustFill := false
    keywordFamily := false

    switch tag {
    case TagTextWithoutLanguage:
        limit = maxLenText
    case TagNameWithoutLanguage:
        limit = maxLenName
    case TagKeyword:
        limit, mustFill, keywordFamily = maxLenKeyword, true, true
    case TagURI:
        limit, mustFill = maxLenURI, true
    case TagURIScheme:
        limit, mustFill, keywordFamily = maxLenURIScheme, true, true
    case TagCharset:
        limit, mustFill, keywordFamily = maxLenCharset, true, true
    case TagNaturalLanguage:
        limit, mustFill = maxLenNaturalLanguage, true
        if !isValidLanguageTag(s) && s != "" {
            v.report(path, idx, ValidatorInvalidLanguage)
        }
    case TagMimeMediaType:
        limit, mustFill = maxLenMimeMediaType, true
    case TagOctetString:
        limit = maxLenOctetString
    default:
        // unregistered string tags get the octetString ceiling
        limit = maxLenOctetString
    }

    if mustFill && s == "" {
        v.report(path, idx, ValidatorStringEmpty)
        return
    }
    if len(s) > limit {
        v.report(path, idx, ValidatorStringTooLong)
    }
    if keywordFamily && s != "" {
        if !isLowercaseLetter(s[0]) {
            v.report(path, idx, ValidatorStringMustStartLowercase)
        }
        for i := 0; i < len(s); i++ {
            if !isKeywordChar(s[i]) {
                v.report(path, idx, ValidatorStringInvalidCharacter)
                break
            }
        }
    }
}

func isLowercaseLetter(c byte) bool { return c >= 'a' && c <= 'z' }

func isKeywordChar(c byte) bool {
    return isLowercaseLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.'
}

// isValidAttrName accepts the keyword-shaped names the protocol registers:
// a lowercase letter followed by lowercase letters, digits, '-', '_', '.'.
func isValidAttrName(name string) bool {
    if name == "" || len(name) > maxNameLength {
        return false
    }
    if !isLowercaseLetter(name[0]) {
        return false
    }
    for i := 0; i < len(name); i++ {
        if !isKeywordChar(name[i]) {
            return false
        }
    }
    return true
}

// isValidLanguageTag checks RFC 5646 shape: 1..8 letter segments separated
// by '-', follow-up segments alphanumeric.
func isValidLanguageTag(s string) bool {
    if s == "" || len(s) > maxLenNaturalLanguage {
        return false
    }
    seg, first := 0, true
    for i := 0; i <= len(s); i++ {
        if i == len(s) || s[i] == '-' {
            if seg == 0 || seg > 8 {
                return false
            }
            seg, first = 0, false
            continue
        }
        c := s[i]
        alpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
        digit := c >= '0' && c <= '9'
        if first && !alpha {
            return false
        }
        if !alpha && !digit {
            return false
        }
        seg++
    }
    return true
}

func isValidDateTime(d DateTime) bool {
    switch {
    case d.Month < 1 || d.Month > 12:
        return false
    case d.Day < 1 || d.Day > 31:
        return false
    case d.Hour > 23:
        return false
    case d.Minute > 59:
        return false
    case d.Second > 60:
        return false
    case d.Decisecond > 9:
        return false
    case d.UTCSign != '+' && d.UTCSign != '-':
        return false
    case d.UTCHours > 13:
        return false
    case d.UTCMinutes > 59:
        return false
    }
    return true
}
