package ipp

// Hard ceilings. Resource-safety controls against attacker-supplied input,
// shared by the build API and the parser.
const (
    maxNameLength       = 32767 // 2-byte wire length field, high bit clear
    maxValueLength      = 32767
    maxCollectionLevel  = 16
    maxGroupCount       = 20
    maxAttributeCount   = 16384 // total per frame (parser) / per collection (builder)
)

// Collection is an insertion-ordered set of uniquely named attributes.
// Nested collections form a strict ownership tree: a child collection
// belongs to exactly one attribute and is never shared.
type Collection struct {
    attrs []*Attribute
    index map[string]int
}

func newCollection() *Collection {
    return &Collection{index: make(map[string]int)}
}

// Size returns the number of attributes.
func (c *Collection) Size() int { return len(c.attrs) }

// Attrs returns the attributes in insertion order. The slice is shared with
// the collection; callers must not mutate it.
func (c *Collection) Attrs() []*Attribute { return c.attrs }

// GetAttribute looks up an attribute by name.
func (c *Collection) GetAttribute(name string) (*Attribute, bool) {
    i, ok := c.index[name]
    if !ok {
        return nil, false
    }
    return c.attrs[i], true
}

// AddAttr creates a new attribute. Out-of-band tags take no values; every
// other tag takes one or more values of its internal kind. Collection-typed
// attributes must be created with AddCollectionAttr so the ownership tree
// stays intact.
func (c *Collection) AddAttr(name string, tag ValueTag, values ...Value) (*Attribute, error) {
    if err := c.checkNewAttr(name, tag); err != nil {
        return nil, err
    }
    if tag == TagBeginCollection {
        return nil, ErrIncompatibleType
    }
    if tag.IsOutOfBand() {
        if len(values) != 0 {
            return nil, ErrIncompatibleType
        }
        return c.insert(&Attribute{name: name, tag: tag}), nil
    }
    if len(values) == 0 {
        return nil, ErrValueOutOfRange
    }
    for _, v := range values {
        if err := checkValue(tag, v); err != nil {
            return nil, err
        }
    }
    vals := make([]Value, len(values))
    copy(vals, values)
    return c.insert(&Attribute{name: name, tag: tag, values: vals}), nil
}

// AddCollectionAttr creates a collection-typed attribute holding n freshly
// allocated child collections, which are returned for the caller to fill.
func (c *Collection) AddCollectionAttr(name string, n int) (*Attribute, []*Collection, error) {
    if err := c.checkNewAttr(name, TagBeginCollection); err != nil {
        return nil, nil, err
    }
    if n < 1 {
        return nil, nil, ErrValueOutOfRange
    }
    children := make([]*Collection, n)
    vals := make([]Value, n)
    for i := range children {
        children[i] = newCollection()
        vals[i] = children[i]
    }
    attr := c.insert(&Attribute{name: name, tag: TagBeginCollection, values: vals})
    return attr, children, nil
}

func (c *Collection) checkNewAttr(name string, tag ValueTag) error {
    if name == "" || len(name) > maxNameLength {
        return ErrInvalidName
    }
    if _, exists := c.index[name]; exists {
        return ErrNameConflict
    }
    if !tag.IsValid() {
        return ErrInvalidValueTag
    }
    if len(c.attrs) >= maxAttributeCount {
        return ErrTooManyAttributes
    }
    return nil
}

func (c *Collection) insert(a *Attribute) *Attribute {
    if c.index == nil {
        c.index = make(map[string]int)
    }
    c.index[a.name] = len(c.attrs)
    c.attrs = append(c.attrs, a)
    return a
}

func (c *Collection) equalContent(o *Collection) bool {
    if len(c.attrs) != len(o.attrs) {
        return false
    }
    for i := range c.attrs {
        if !c.attrs[i].equalContent(o.attrs[i]) {
            return false
        }
    }
    return true
}
