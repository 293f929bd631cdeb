package tfvars

import "slices"

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindList
	KindMap
)

// String returns the lowercase name of the kind, used in JSON payloads.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Pair is one entry of a map-typed value. Pairs are kept as a slice rather
// than a Go map so that serialization order matches the source file.
type Pair struct {
	Key   string
	Value string
}

// Value is a tagged union over the four variable shapes the tfvars grammar
// supports. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Flag bool
	List []string
	Map  []Pair
}

// String returns a string-kinded Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool returns a bool-kinded Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Flag: b} }

// List returns a list-kinded Value.
func List(items ...string) Value { return Value{Kind: KindList, List: items} }

// Map returns a map-kinded Value.
func Map(pairs ...Pair) Value { return Value{Kind: KindMap, Map: pairs} }

// Equal reports semantic equality of two values, including element order
// for lists and maps.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == o.Str
	case KindBool:
		return v.Flag == o.Flag
	case KindList:
		return slices.Equal(v.List, o.List)
	case KindMap:
		return slices.Equal(v.Map, o.Map)
	}
	return false
}

// Interface returns the natural Go representation of the value, used when
// rendering a config as JSON.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Flag
	case KindList:
		if v.List == nil {
			return []string{}
		}
		return v.List
	case KindMap:
		m := make([]map[string]string, 0, len(v.Map))
		for _, p := range v.Map {
			m = append(m, map[string]string{p.Key: p.Value})
		}
		return m
	default:
		return v.Str
	}
}
