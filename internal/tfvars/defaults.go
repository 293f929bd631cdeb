package tfvars

import "strings"

// DefaultsFor builds a blank configuration that preserves the structure of
// an existing one: every variable keeps its name, kind, and (for maps) its
// key set, while values are reset to placeholders a new operator can fill
// in. Identifier-, key-, and secret-like fields are always blanked.
func DefaultsFor(f *File) *File {
	out := NewFile()
	for _, name := range f.Names() {
		v, _ := f.Get(name)
		switch v.Kind {
		case KindBool:
			out.Set(name, Bool(false))
		case KindList:
			out.Set(name, List())
		case KindMap:
			pairs := make([]Pair, len(v.Map))
			for i, p := range v.Map {
				pairs[i] = Pair{Key: p.Key}
			}
			out.Set(name, Map(pairs...))
		default:
			out.Set(name, String(defaultString(name)))
		}
	}
	return out
}

// defaultString picks a placeholder for a string variable based on its
// name, mirroring the hints the hosted template catalog ships with.
func defaultString(name string) string {
	lower := strings.ToLower(name)
	switch {
	// cidr before the id check: "id" is a substring of "cidr".
	case strings.Contains(lower, "cidr"):
		return "10.0.0.0/16"
	case strings.Contains(lower, "id"), strings.Contains(lower, "key"), strings.Contains(lower, "secret"):
		return ""
	case strings.Contains(lower, "location"), strings.Contains(lower, "region"):
		return "us-east-1"
	case strings.Contains(lower, "name"):
		return "your-" + strings.ReplaceAll(name, "_", "-")
	default:
		return ""
	}
}
