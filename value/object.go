package value

// Object is an insertion-ordered mapping from string keys to Values, the
// concrete representation backing Kind Object (spec.md §3.1: "mapping
// from string key to Value, insertion order preserved").
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object ready for Set calls.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or updates the value for key, preserving first-insertion
// order: re-setting an existing key does not move it.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether key is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present in the object.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of keys in the object.
func (o *Object) Len() int { return len(o.keys) }

// Range calls fn for every key/value pair in insertion order, stopping
// early if fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}
