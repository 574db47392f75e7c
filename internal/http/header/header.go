package header

// Field is a single header line.
type Field struct {
	Key   string
	Value string
}

// Header keeps fields in insertion order. Setting an existing key replaces
// its value in place, so the last write wins without reordering.
// Keys are compared exactly as written.
type Header struct {
	fields []Field
	index  map[string]int
}

func New() *Header {
	return &Header{
		fields: make([]Field, 0, 8),
		index:  make(map[string]int, 8),
	}
}

func (h *Header) Value(key string) string {
	v, _ := h.Lookup(key)
	return v
}

func (h *Header) Lookup(key string) (string, bool) {
	i, ok := h.index[key]
	if !ok {
		return "", false
	}
	return h.fields[i].Value, true
}

func (h *Header) Set(key string, value string) {
	if i, ok := h.index[key]; ok {
		h.fields[i].Value = value
		return
	}
	h.index[key] = len(h.fields)
	h.fields = append(h.fields, Field{Key: key, Value: value})
}

func (h *Header) Remove(key string) {
	i, ok := h.index[key]
	if !ok {
		return
	}
	h.fields = append(h.fields[:i], h.fields[i+1:]...)
	delete(h.index, key)
	for j := i; j < len(h.fields); j++ {
		h.index[h.fields[j].Key] = j
	}
}

func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of the fields in order.
func (h *Header) Fields() []Field {
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}

func (h *Header) Clone() *Header {
	c := &Header{
		fields: h.Fields(),
		index:  make(map[string]int, len(h.index)),
	}
	for k, v := range h.index {
		c.index[k] = v
	}
	return c
}
