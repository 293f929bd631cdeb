package tfvars

import (
	"bufio"
	"strings"
)

// Parse reads tfvars content into an ordered File. The grammar is
// line-oriented: blank lines and lines starting with '#' are skipped, and
// every other line is classified by the shape of the text after the first
// '='. Multi-line list and map blocks consume following lines until their
// closing bracket; a block that never closes is truncated at end of input
// and parsed from whatever was collected.
func Parse(content string) *File {
	f := NewFile()
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		eq := strings.Index(trimmed, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:eq])
		raw := strings.TrimSpace(trimmed[eq+1:])
		if key == "" {
			continue
		}
		f.Set(key, classifyValue(raw, next))
	}
	return f
}

// classifyValue turns the raw text after '=' into a tagged Value, pulling
// additional lines through next for multi-line blocks.
func classifyValue(raw string, next func() (string, bool)) Value {
	switch {
	case len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`):
		return String(raw[1 : len(raw)-1])
	case raw == "true":
		return Bool(true)
	case raw == "false":
		return Bool(false)
	case strings.HasPrefix(raw, "["):
		return List(parseListBlock(collectBlock(raw, "]", next))...)
	case strings.HasPrefix(raw, "{"):
		return Map(parseMapBlock(collectBlock(raw, "}", next))...)
	default:
		return String(strings.Trim(raw, `"`))
	}
}

// collectBlock gathers block lines starting at first until a line whose
// trimmed text ends with the closing bracket. Input exhaustion ends the
// block early; the lines collected so far are returned as the complete
// block.
func collectBlock(first, closing string, next func() (string, bool)) []string {
	lines := []string{first}
	// Single-line block such as `{ "env": "prod" }` or `["a", "b"]`.
	if strings.HasSuffix(strings.TrimSpace(first), closing) {
		return lines
	}
	for {
		line, ok := next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
		if strings.HasSuffix(strings.TrimSpace(line), closing) {
			return lines
		}
	}
}

// parseListBlock flattens a bracketed block into its comma-separated
// elements, stripping whitespace and surrounding quotes.
func parseListBlock(lines []string) []string {
	joined := strings.Join(lines, ",")
	joined = strings.TrimSpace(joined)
	joined = strings.TrimPrefix(joined, "[")
	joined = strings.TrimSuffix(joined, "]")

	var items []string
	for _, part := range strings.Split(joined, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `"`)
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}

// parseMapBlock extracts flat string pairs from a braced block. Both
// `"k": "v"` and `k = v` entry forms are accepted; nested structures are
// not supported and lines matching neither form are skipped.
func parseMapBlock(lines []string) []Pair {
	var pairs []Pair
	for _, line := range lines {
		inner := strings.TrimSpace(line)
		inner = strings.TrimPrefix(inner, "{")
		inner = strings.TrimSuffix(inner, "}")
		for _, entry := range strings.Split(inner, ",") {
			if p, ok := splitPair(entry); ok {
				pairs = append(pairs, p)
			}
		}
	}
	return pairs
}

// splitPair parses one map entry of the form `"k": "v"` or `k = v`.
func splitPair(entry string) (Pair, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" || strings.HasPrefix(entry, "#") {
		return Pair{}, false
	}
	sep := strings.IndexAny(entry, ":=")
	if sep < 0 {
		return Pair{}, false
	}
	key := strings.Trim(strings.TrimSpace(entry[:sep]), `"`)
	val := strings.Trim(strings.TrimSpace(entry[sep+1:]), `"`)
	if key == "" {
		return Pair{}, false
	}
	return Pair{Key: key, Value: val}, true
}
