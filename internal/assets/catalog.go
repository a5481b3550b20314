package assets

// FallbackFrame is the frame used for items without a configured default.
const FallbackFrame = 1

// Catalog is the ordered set of selectable items of one viewer.
type Catalog struct {
	keys     []string
	index    map[string]int
	defaults map[string]int
	fallback int
}

// NewCatalog builds a catalog from ordered keys. Duplicate keys keep their
// first position. defaults may name keys that are not in the list.
func NewCatalog(keys []string, defaults map[string]int, fallback int) *Catalog {
	c := &Catalog{
		keys:     make([]string, 0, len(keys)),
		index:    make(map[string]int, len(keys)),
		defaults: make(map[string]int, len(defaults)),
		fallback: fallback,
	}
	for _, k := range keys {
		if _, dup := c.index[k]; dup {
			continue
		}
		c.index[k] = len(c.keys)
		c.keys = append(c.keys, k)
	}
	for k, v := range defaults {
		c.defaults[k] = v
	}
	return c
}

// Keys returns the item keys in order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// At returns the key at position i, or "" when out of range.
func (c *Catalog) At(i int) string {
	if i < 0 || i >= len(c.keys) {
		return ""
	}
	return c.keys[i]
}

// Index returns the ordinal of key.
func (c *Catalog) Index(key string) (int, bool) {
	i, ok := c.index[key]
	return i, ok
}

// Contains reports whether key is a listed item.
func (c *Catalog) Contains(key string) bool {
	_, ok := c.index[key]
	return ok
}

// First returns the first key, or "".
func (c *Catalog) First() string {
	return c.At(0)
}

// DefaultFrame returns the configured frame for key, or the fallback.
func (c *Catalog) DefaultFrame(key string) int {
	if v, ok := c.defaults[key]; ok {
		return v
	}
	return c.fallback
}
