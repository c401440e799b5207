package ipp

// Attribute is one named, typed, multi-valued field of a Collection. The
// type tag is fixed at creation; the value list can be resized but never
// drops below one entry for non-out-of-band tags. Attributes are created
// through Collection.AddAttr / AddCollectionAttr only.
type Attribute struct {
    name   string
    tag    ValueTag
    values []Value
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Tag returns the value tag. Immutable after creation.
func (a *Attribute) Tag() ValueTag { return a.tag }

// Size returns the number of stored values. Zero for out-of-band.
func (a *Attribute) Size() int {
    if a.tag.IsOutOfBand() {
        return 0
    }
    return len(a.values)
}

// Values returns the stored values. The slice is shared with the attribute;
// callers must not mutate it directly.
func (a *Attribute) Values() []Value {
    if a.tag.IsOutOfBand() {
        return nil
    }
    return a.values
}

// Value returns the i-th value, or nil when out of range.
func (a *Attribute) Value(i int) Value {
    if i < 0 || i >= a.Size() {
        return nil
    }
    return a.values[i]
}

// GetCollection returns the i-th child collection of a collection-typed
// attribute.
func (a *Attribute) GetCollection(i int) (*Collection, bool) {
    if a.tag != TagBeginCollection || i < 0 || i >= len(a.values) {
        return nil, false
    }
    c, ok := a.values[i].(*Collection)
    return c, ok
}

// SetValue replaces the i-th value. The new value must match the tag's kind
// and pass the same scalar checks as AddAttr. Collection values cannot be
// replaced this way.
func (a *Attribute) SetValue(i int, v Value) error {
    if a.tag.IsOutOfBand() || a.tag == TagBeginCollection {
        return ErrIncompatibleType
    }
    if i < 0 || i >= len(a.values) {
        return ErrValueOutOfRange
    }
    if err := checkValue(a.tag, v); err != nil {
        return err
    }
    a.values[i] = v
    return nil
}

// Resize grows or truncates the value list to n entries. Growth appends the
// tag's default value (empty child collections for collection attributes).
// No-op for out-of-band tags and for n == 0: the list never drops below one
// value.
func (a *Attribute) Resize(n int) {
    if a.tag.IsOutOfBand() || n <= 0 {
        return
    }
    if n <= len(a.values) {
        a.values = a.values[:n]
        return
    }
    for len(a.values) < n {
        if a.tag == TagBeginCollection {
            a.values = append(a.values, newCollection())
        } else {
            a.values = append(a.values, defaultValue(a.tag.Kind()))
        }
    }
}

func (a *Attribute) equalContent(b *Attribute) bool {
    if a.name != b.name || a.tag != b.tag || len(a.values) != len(b.values) {
        return false
    }
    for i := range a.values {
        if !valueEqual(a.values[i], b.values[i]) {
            return false
        }
    }
    return true
}

// checkValue verifies a single value against the tag's kind and the scalar
// creation-time constraints.
func checkValue(tag ValueTag, v Value) error {
    if v == nil {
        return ErrIncompatibleType
    }
    if v.Kind() != tag.Kind() {
        return ErrIncompatibleType
    }
    switch tag {
    case TagBoolean:
        if iv := v.(Integer); iv != 0 && iv != 1 {
            return ErrValueOutOfRange
        }
    case TagEnum:
        if iv := v.(Integer); iv < 1 || iv > 32767 {
            return ErrValueOutOfRange
        }
    }
    switch sv := v.(type) {
    case String:
        if len(sv) > maxValueLength {
            return ErrDataTooLong
        }
    case StringWithLanguage:
        if len(sv.Language)+len(sv.Value)+4 > maxValueLength {
            return ErrDataTooLong
        }
    }
    return nil
}
