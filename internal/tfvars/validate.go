package tfvars

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Validate is the strict counterpart of Parse: it runs content through the
// real HCL parser and reports everything the best-effort path silently
// recovers from. Each returned string is one human-readable diagnostic.
// An empty slice means the content is well-formed and every variable has a
// shape this codec can represent.
func Validate(filename string, content []byte) []string {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, filename)

	if file != nil && file.Body != nil {
		attrs, attrDiags := file.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		for _, attr := range attrs {
			val, valDiags := attr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			if !representable(val.Type()) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagWarning,
					Summary:  "Unsupported variable shape",
					Detail: fmt.Sprintf(
						"Variable %q has type %s; only strings, bools, lists of strings, and flat string maps can be edited here.",
						attr.Name, val.Type().FriendlyName()),
					Subject: attr.Expr.Range().Ptr(),
				})
			}
		}
	}

	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Error())
	}
	return out
}

// representable reports whether an HCL value type maps onto one of the
// four Value kinds.
func representable(t cty.Type) bool {
	switch {
	case t == cty.String || t == cty.Bool || t == cty.Number:
		return true
	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		return elementsRepresentable(t)
	case t.IsMapType():
		return t.ElementType() == cty.String || t.ElementType() == cty.Bool || t.ElementType() == cty.Number
	case t.IsObjectType():
		for _, at := range t.AttributeTypes() {
			if at != cty.String && at != cty.Bool && at != cty.Number {
				return false
			}
		}
		return true
	}
	return false
}

// elementsRepresentable checks that every element of a collection type is
// a primitive.
func elementsRepresentable(t cty.Type) bool {
	if t.IsTupleType() {
		for _, et := range t.TupleElementTypes() {
			if et != cty.String && et != cty.Bool && et != cty.Number {
				return false
			}
		}
		return true
	}
	et := t.ElementType()
	return et == cty.String || et == cty.Bool || et == cty.Number
}
