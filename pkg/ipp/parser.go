package ipp

import (
    "encoding/binary"
)

// Frame parser. Stage 1 tokenizes the buffer into raw tag-name-value runs
// per group; stage 2 semantically decodes each run into collections,
// dropping and logging whatever does not fit. Only structural damage
// (truncation, illegal tags at structural positions, exceeded ceilings) is
// critical and stops the parse; the caller still gets every group decoded
// up to that point.
//
// Parse never panics on any input. That is a contract, fuzzed in tests.

// Parse decodes data into a frame. The returned bool reports whether the
// whole buffer was parsed; on false the frame holds the partial result and
// plog holds at least one critical entry. plog may be nil.
func Parse(data []byte, plog ParserLog) (*Frame, bool) {
    if plog == nil {
        plog = nopParserLog{}
    }
    p := &parser{data: data, plog: plog, frame: NewFrame()}
    p.run()
    return p.frame, !p.failed
}

type parser struct {
    data  []byte
    off   int
    plog  ParserLog
    frame *Frame

    failed    bool
    attrTotal int
}

// fail records a critical code and marks the parse as partial.
func (p *parser) fail(path AttrPath, code ParserCode) {
    if !p.failed {
        p.plog.RecordParserError(ParserError{Path: path, Code: code})
    }
    p.failed = true
}

func (p *parser) warn(path AttrPath, code ParserCode) {
    p.plog.RecordParserError(ParserError{Path: path, Code: code})
}

// rawTNV is one tokenized wire record.
type rawTNV struct {
    tag   ValueTag
    name  string
    value []byte
}

type rawGroup struct {
    tag  GroupTag
    recs []rawTNV
}

func (p *parser) run() {
    if len(p.data) < 8 {
        p.fail(AttrPath{}, ParserInvalidHeader)
        return
    }
    p.frame.VersionMajor = p.data[0]
    p.frame.VersionMinor = p.data[1]
    p.frame.OperationIDOrStatusCode = binary.BigEndian.Uint16(p.data[2:4])
    p.frame.RequestID = binary.BigEndian.Uint32(p.data[4:8])
    p.off = 8

    groups := p.tokenize()

    // Stage 2 runs over whatever stage 1 managed to produce, even after a
    // critical tokenizing failure.
    for _, g := range groups {
        coll, err := p.frame.AddGroup(g.tag)
        if err != nil {
            p.fail(NewAttrPath(g.tag), ParserLimitGroupCount)
            return
        }
        if !p.decodeGroup(g, coll) {
            return
        }
    }
}

// tokenize splits the attribute section into per-group record runs and
// captures the trailing payload. Returns the groups read so far even when
// it fails mid-way.
func (p *parser) tokenize() []rawGroup {
    var groups []rawGroup

    if p.off >= len(p.data) {
        p.fail(AttrPath{}, ParserUnexpectedEndOfFrame)
        return groups
    }

    // a frame with zero groups goes straight to the terminator
    if p.data[p.off] == endOfAttributes {
        p.off++
        p.capturePayload()
        return groups
    }

    if !GroupTag(p.data[p.off]).IsValid() {
        p.fail(AttrPath{}, ParserInvalidTag)
        return groups
    }

    for p.off < len(p.data) {
        b := p.data[p.off]
        if b == endOfAttributes {
            p.off++
            p.capturePayload()
            return groups
        }
        if GroupTag(b).IsValid() {
            if len(groups) >= maxGroupCount {
                p.fail(AttrPath{}, ParserLimitGroupCount)
                return groups
            }
            groups = append(groups, rawGroup{tag: GroupTag(b)})
            p.off++
            continue
        }
        // value record inside the current group
        g := &groups[len(groups)-1]
        rec, ok := p.readTNV(NewAttrPath(g.tag))
        if !ok {
            return groups
        }
        g.recs = append(g.recs, rec)
    }

    // ran off the end without the end-of-attributes tag
    path := AttrPath{}
    if len(groups) > 0 {
        path = NewAttrPath(groups[len(groups)-1].tag)
    }
    p.fail(path, ParserUnexpectedEndOfFrame)
    return groups
}

func (p *parser) capturePayload() {
    if p.off < len(p.data) {
        p.frame.Payload = append([]byte(nil), p.data[p.off:]...)
    }
}

// readTNV reads one record at the cursor. The tag byte has already been
// checked not to be a delimiter.
func (p *parser) readTNV(path AttrPath) (rawTNV, bool) {
    tag := ValueTag(p.data[p.off])
    if !tag.IsValid() && tag != TagEndCollection && tag != TagMemberName {
        p.fail(path, ParserInvalidTag)
        return rawTNV{}, false
    }
    p.off++

    name, ok := p.readLengthPrefixed(path)
    if !ok {
        return rawTNV{}, false
    }
    value, ok := p.readLengthPrefixed(path)
    if !ok {
        return rawTNV{}, false
    }
    return rawTNV{tag: tag, name: string(name), value: value}, true
}

// readLengthPrefixed reads a 2-byte big-endian length and that many bytes.
// Lengths with the high bit set count as negative and are rejected.
func (p *parser) readLengthPrefixed(path AttrPath) ([]byte, bool) {
    if p.off+2 > len(p.data) {
        p.fail(path, ParserUnexpectedEndOfFrame)
        return nil, false
    }
    n := binary.BigEndian.Uint16(p.data[p.off : p.off+2])
    p.off += 2
    if n&0x8000 != 0 {
        p.fail(path, ParserNegativeLengthField)
        return nil, false
    }
    if p.off+int(n) > len(p.data) {
        p.fail(path, ParserUnexpectedEndOfFrame)
        return nil, false
    }
    b := p.data[p.off : p.off+int(n)]
    p.off += int(n)
    return b, true
}

// rawValue is one observed value before semantic decoding. members is only
// set for begin-collection values.
type rawValue struct {
    tag     ValueTag
    data    []byte
    members []rawAttr
}

type rawAttr struct {
    name   string
    values []rawValue
}

// decodeGroup converts one tokenized group into attributes of coll.
// Returns false when a critical condition stopped the parse.
func (p *parser) decodeGroup(g rawGroup, coll *Collection) bool {
    path := NewAttrPath(g.tag)
    raws, ok := p.collectRawAttrs(g.recs, path)
    if !ok {
        return false
    }
    return p.convertAttrs(raws, coll, path)
}

// collectRawAttrs groups a flat record run into named raw attributes. The
// first value of an attribute carries the name; follow-up values of the
// same attribute carry an empty one.
func (p *parser) collectRawAttrs(recs []rawTNV, path AttrPath) ([]rawAttr, bool) {
    var attrs []rawAttr
    i := 0
    for i < len(recs) {
        rec := recs[i]
        switch rec.tag {
        case TagMemberName:
            p.fail(path, ParserUnexpectedMemberName)
            return attrs, false
        case TagEndCollection:
            p.fail(path, ParserUnexpectedEndCollection)
            return attrs, false
        }

        if rec.name == "" && len(attrs) == 0 {
            // value with nothing to attach to
            p.warn(path, ParserAttributeNameEmpty)
            if rec.tag == TagBeginCollection {
                if _, next, ok := p.collectMembers(recs, i+1, path, 1); ok {
                    i = next
                    continue
                }
                return attrs, false
            }
            i++
            continue
        }

        if rec.name != "" {
            attrs = append(attrs, rawAttr{name: rec.name})
        }
        cur := &attrs[len(attrs)-1]

        val := rawValue{tag: rec.tag, data: rec.value}
        if rec.tag == TagBeginCollection {
            members, next, ok := p.collectMembers(recs, i+1, path.Push(cur.name, len(cur.values)), 1)
            if !ok {
                return attrs, false
            }
            val.members = members
            i = next
        } else {
            i++
        }
        cur.values = append(cur.values, val)
    }
    return attrs, true
}

// collectMembers reads a collection body: member-attribute-name records
// naming each member, value records attached to the last named member,
// nested collections recursed with a bounded level counter.
func (p *parser) collectMembers(recs []rawTNV, start int, path AttrPath, level int) ([]rawAttr, int, bool) {
    if level > maxCollectionLevel {
        p.fail(path, ParserLimitCollectionDepth)
        return nil, start, false
    }
    var members []rawAttr
    i := start
    for i < len(recs) {
        rec := recs[i]
        switch rec.tag {
        case TagEndCollection:
            return members, i + 1, true

        case TagMemberName:
            // an empty member name still collects its values; the convert
            // step drops and logs the whole member
            members = append(members, rawAttr{name: string(rec.value)})
            i++

        case TagBeginCollection:
            if len(members) == 0 {
                p.warn(path, ParserAttributeNameEmpty)
                members = append(members, rawAttr{})
            }
            cur := &members[len(members)-1]
            sub, next, ok := p.collectMembers(recs, i+1, path.Push(cur.name, len(cur.values)), level+1)
            if !ok {
                return members, next, false
            }
            cur.values = append(cur.values, rawValue{tag: rec.tag, members: sub})
            i = next

        default:
            if len(members) == 0 {
                p.warn(path, ParserAttributeNameEmpty)
                i++
                continue
            }
            cur := &members[len(members)-1]
            cur.values = append(cur.values, rawValue{tag: rec.tag, data: rec.value})
            i++
        }
    }
    p.fail(path, ParserMissingEndCollection)
    return members, i, false
}

// convertAttrs semantically decodes raw attributes into coll. Recoverable
// anomalies drop the offending piece and keep going; only the attribute
// ceiling is critical here.
func (p *parser) convertAttrs(raws []rawAttr, coll *Collection, path AttrPath) bool {
    for _, ra := range raws {
        apath := path.Push(ra.name, -1)

        if ra.name == "" || len(ra.name) > maxNameLength {
            p.warn(apath, ParserAttributeNameEmpty)
            continue
        }
        if _, exists := coll.GetAttribute(ra.name); exists {
            p.warn(apath, ParserAttributeNameConflict)
            continue
        }
        if p.attrTotal >= maxAttributeCount {
            p.fail(apath, ParserLimitAttributeCount)
            return false
        }

        attr, ok := p.convertAttr(ra, apath)
        if !ok {
            return false // critical below, already logged
        }
        if attr == nil {
            continue // dropped, already logged
        }
        coll.insert(attr)
        p.attrTotal++
    }
    return true
}

// convertAttr builds one attribute from its raw values. Returns (nil, true)
// when the attribute is dropped, (nil, false) on a critical condition.
func (p *parser) convertAttr(ra rawAttr, apath AttrPath) (*Attribute, bool) {
    if len(ra.values) == 0 {
        p.warn(apath, ParserAttributeNoUsableValues)
        return nil, true
    }

    tag := inferTag(ra.values)

    if tag.IsOutOfBand() {
        if len(ra.values) > 1 {
            p.warn(apath, ParserOutOfBandExtraValues)
        }
        if len(ra.values[0].data) > 0 {
            p.warn(apath, ParserOutOfBandValueWithContent)
        }
        return &Attribute{name: ra.name, tag: tag}, true
    }

    attr := &Attribute{name: ra.name, tag: tag}
    for i, rv := range ra.values {
        v, code := decodeValue(tag, rv)
        if code != 0 && code != ParserBooleanValueOutOfRange {
            p.warn(apath, code)
            continue
        }
        if code == ParserBooleanValueOutOfRange {
            p.warn(apath, code)
        }
        if tag == TagBeginCollection {
            child := newCollection()
            if !p.convertAttrs(rv.members, child, apath.Push(ra.name, i)) {
                return nil, false
            }
            v = child
        }
        attr.values = append(attr.values, v)
    }
    if len(attr.values) == 0 {
        p.warn(apath, ParserAttributeNoUsableValues)
        return nil, true
    }
    return attr, true
}

// inferTag picks the attribute's final type: the most convertible-to tag
// among the observed value tags. integer widens to rangeOfInteger, the
// without-language string forms widen to their with-language forms.
func inferTag(values []rawValue) ValueTag {
    tag := values[0].tag
    for _, v := range values[1:] {
        tag = promoteTag(tag, v.tag)
    }
    return tag
}

func promoteTag(a, b ValueTag) ValueTag {
    if a == b {
        return a
    }
    switch {
    case (a == TagInteger && b == TagRangeOfInteger) || (a == TagRangeOfInteger && b == TagInteger):
        return TagRangeOfInteger
    case (a == TagNameWithoutLanguage && b == TagNameWithLanguage) || (a == TagNameWithLanguage && b == TagNameWithoutLanguage):
        return TagNameWithLanguage
    case (a == TagTextWithoutLanguage && b == TagTextWithLanguage) || (a == TagTextWithLanguage && b == TagTextWithoutLanguage):
        return TagTextWithLanguage
    }
    return a
}

// decodeValue decodes one raw value against the attribute's inferred tag.
// A zero code means success; ParserBooleanValueOutOfRange means the value
// was coerced and should be kept.
func decodeValue(tag ValueTag, rv rawValue) (Value, ParserCode) {
    if !convertibleTo(rv.tag, tag) {
        return nil, ParserValueMismatchedType
    }
    switch tag {
    case TagInteger, TagEnum:
        if len(rv.data) != 4 {
            return nil, ParserValueInvalidSize
        }
        return Integer(int32(binary.BigEndian.Uint32(rv.data))), 0

    case TagBoolean:
        if len(rv.data) != 1 {
            return nil, ParserValueInvalidSize
        }
        if rv.data[0] > 1 {
            return Integer(1), ParserBooleanValueOutOfRange
        }
        return Integer(rv.data[0]), 0

    case TagDateTime:
        if len(rv.data) != 11 {
            return nil, ParserValueInvalidSize
        }
        return DateTime{
            Year:       binary.BigEndian.Uint16(rv.data[0:2]),
            Month:      rv.data[2],
            Day:        rv.data[3],
            Hour:       rv.data[4],
            Minute:     rv.data[5],
            Second:     rv.data[6],
            Decisecond: rv.data[7],
            UTCSign:    rv.data[8],
            UTCHours:   rv.data[9],
            UTCMinutes: rv.data[10],
        }, 0

    case TagResolution:
        if len(rv.data) != 9 {
            return nil, ParserValueInvalidSize
        }
        return Resolution{
            Xres:  int32(binary.BigEndian.Uint32(rv.data[0:4])),
            Yres:  int32(binary.BigEndian.Uint32(rv.data[4:8])),
            Units: int8(rv.data[8]),
        }, 0

    case TagRangeOfInteger:
        if rv.tag == TagInteger {
            if len(rv.data) != 4 {
                return nil, ParserValueInvalidSize
            }
            v := int32(binary.BigEndian.Uint32(rv.data))
            return RangeOfInteger{Min: v, Max: v}, 0
        }
        if len(rv.data) != 8 {
            return nil, ParserValueInvalidSize
        }
        return RangeOfInteger{
            Min: int32(binary.BigEndian.Uint32(rv.data[0:4])),
            Max: int32(binary.BigEndian.Uint32(rv.data[4:8])),
        }, 0

    case TagTextWithLanguage, TagNameWithLanguage:
        if rv.tag == TagTextWithoutLanguage || rv.tag == TagNameWithoutLanguage {
            return StringWithLanguage{Value: string(rv.data)}, 0
        }
        lang, val, ok := splitLanguagePair(rv.data)
        if !ok {
            return nil, ParserValueInvalidSize
        }
        return StringWithLanguage{Language: lang, Value: val}, 0

    case TagBeginCollection:
        // built by the caller, which owns the recursion budget
        return nil, 0
    }

    // remaining octet-string and character-string tags keep raw bytes
    return String(rv.data), 0
}

// convertibleTo reports whether a value observed with tag from can live in
// an attribute of tag to.
func convertibleTo(from, to ValueTag) bool {
    if from == to {
        return true
    }
    switch to {
    case TagRangeOfInteger:
        return from == TagInteger
    case TagNameWithLanguage:
        return from == TagNameWithoutLanguage
    case TagTextWithLanguage:
        return from == TagTextWithoutLanguage
    }
    return false
}

// splitLanguagePair unpacks 2-byte language length + language + 2-byte
// value length + value.
func splitLanguagePair(data []byte) (lang, val string, ok bool) {
    if len(data) < 2 {
        return "", "", false
    }
    ll := int(binary.BigEndian.Uint16(data[0:2]))
    if 2+ll+2 > len(data) {
        return "", "", false
    }
    lang = string(data[2 : 2+ll])
    vl := int(binary.BigEndian.Uint16(data[2+ll : 2+ll+2]))
    if 2+ll+2+vl != len(data) {
        return "", "", false
    }
    val = string(data[2+ll+2 : 2+ll+2+vl])
    return lang, val, true
}
