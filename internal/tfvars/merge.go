package tfvars

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/vk/tfconsole/internal/ctxlog"
)

// MergeForm folds submitted form fields into the file in place. The file's
// original key set is the schema: fields with no matching variable are
// ignored. Update rules per kind:
//
//   - bool: presence of the field (any value) means true, absence means
//     false. An unchecked checkbox submits nothing, which must read as
//     false rather than "no change".
//   - map: the field carries encoded text, either a JSON object or
//     `k = v` / `k: v` lines. Text that parses as neither keeps the
//     previous value; the failure is logged, not surfaced.
//   - list: a JSON array or comma-separated text, replacing the value.
//   - string: replaced directly.
//
// Applying the same form twice yields the same result as applying it once.
func MergeForm(ctx context.Context, f *File, form url.Values) {
	logger := ctxlog.FromContext(ctx)
	for _, name := range f.Names() {
		v, _ := f.Get(name)
		switch v.Kind {
		case KindBool:
			f.Set(name, Bool(form.Has(name)))
		case KindMap:
			if !form.Has(name) {
				continue
			}
			pairs, err := parseMapText(form.Get(name))
			if err != nil {
				logger.Warn("Keeping previous map value, submitted text did not parse.",
					"field", name, "error", err)
				continue
			}
			f.Set(name, Map(pairs...))
		case KindList:
			if !form.Has(name) {
				continue
			}
			f.Set(name, List(parseListText(form.Get(name))...))
		default:
			if !form.Has(name) {
				continue
			}
			f.Set(name, String(form.Get(name)))
		}
	}
}

// parseMapText decodes user-supplied map text. A JSON object is decoded
// through the token stream so key order in the text is preserved; anything
// else is treated as pair-per-line text.
func parseMapText(text string) ([]Pair, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "{") {
		return parseJSONObject(trimmed)
	}
	var pairs []Pair
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p, ok := splitPair(line)
		if !ok {
			return nil, fmt.Errorf("line %q is not a key/value pair", strings.TrimSpace(line))
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// parseJSONObject decodes a flat JSON object into ordered pairs. Nested
// values are rejected: tfvars maps in this model are string to string.
func parseJSONObject(text string) ([]Pair, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var pairs []Pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch val := valTok.(type) {
		case string:
			pairs = append(pairs, Pair{Key: key, Value: val})
		case bool:
			pairs = append(pairs, Pair{Key: key, Value: fmt.Sprintf("%t", val)})
		case json.Number:
			pairs = append(pairs, Pair{Key: key, Value: val.String()})
		case float64:
			pairs = append(pairs, Pair{Key: key, Value: fmt.Sprintf("%v", val)})
		default:
			return nil, fmt.Errorf("value for %q is not a flat string", key)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// parseListText decodes user-supplied list text: a JSON array of strings,
// or comma-separated plain text.
func parseListText(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return items
		}
		trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
	}
	var items []string
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}
