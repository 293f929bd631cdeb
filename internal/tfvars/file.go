package tfvars

// File is an ordered set of named values parsed from one variables file.
// Iteration and serialization follow first-seen order so that a saved file
// diffs minimally against its source.
type File struct {
	names  []string
	values map[string]Value
}

// NewFile returns an empty File.
func NewFile() *File {
	return &File{values: make(map[string]Value)}
}

// Set stores a value under name, appending the name to the order on first
// insertion and replacing the value in place afterwards.
func (f *File) Set(name string, v Value) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = v
}

// Get returns the value stored under name.
func (f *File) Get(name string) (Value, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Names returns the variable names in insertion order. The returned slice
// is a copy.
func (f *File) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of variables in the set.
func (f *File) Len() int { return len(f.names) }

// Equal reports whether two files hold the same names in the same order
// with semantically equal values.
func (f *File) Equal(o *File) bool {
	if f.Len() != o.Len() {
		return false
	}
	for i, name := range f.names {
		if o.names[i] != name {
			return false
		}
		if !f.values[name].Equal(o.values[name]) {
			return false
		}
	}
	return true
}
