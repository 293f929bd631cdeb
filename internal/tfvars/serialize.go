package tfvars

import (
	"fmt"
	"strings"
)

// Serialize renders the file back to tfvars text in insertion order.
// Comments and incidental whitespace from the source are not reproduced;
// only semantic values round-trip. Map entries are emitted in the
// `"key" = "value"` form, which current terraform releases accept without
// deprecation warnings, and lists are emitted on a single line. Quoting is
// verbatim with no escape sequences, matching the parser's no-escape rule
// so that parse and serialize stay inverse operations.
func (f *File) Serialize() []byte {
	var b strings.Builder
	for _, name := range f.names {
		v := f.values[name]
		switch v.Kind {
		case KindBool:
			fmt.Fprintf(&b, "%s = %t\n", name, v.Flag)
		case KindList:
			quoted := make([]string, len(v.List))
			for i, item := range v.List {
				quoted[i] = `"` + item + `"`
			}
			fmt.Fprintf(&b, "%s = [%s]\n", name, strings.Join(quoted, ", "))
		case KindMap:
			fmt.Fprintf(&b, "%s = {\n", name)
			for _, p := range v.Map {
				fmt.Fprintf(&b, "  %s = %s\n", `"`+p.Key+`"`, `"`+p.Value+`"`)
			}
			b.WriteString("}\n")
		default:
			fmt.Fprintf(&b, "%s = %s\n", name, `"`+v.Str+`"`)
		}
	}
	return []byte(b.String())
}
