// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex builds and serializes BibTeX entries. An Entry is an
// ordered key/value container; rendering iterates fields in sorted key
// order so output is deterministic regardless of assignment order.
package bibtex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one BibTeX entry. The entry type and ID are fixed at
// construction; fields may be mutated freely until rendering.
type Entry struct {
	entryType string
	id        string
	fields    map[string]any
}

// NewEntry creates an entry of the given type (e.g. "article") with the
// given citation key.
func NewEntry(entryType, id string) *Entry {
	return &Entry{
		entryType: entryType,
		id:        id,
		fields:    make(map[string]any),
	}
}

// Type returns the entry type.
func (e *Entry) Type() string { return e.entryType }

// ID returns the citation key.
func (e *Entry) ID() string { return e.id }

// Set assigns a field value. Values may be strings or ints; anything
// else is rendered with its default formatting inside braces.
func (e *Entry) Set(key string, value any) {
	e.fields[key] = value
}

// Get returns the value for key and whether it is present.
func (e *Entry) Get(key string) (any, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Delete removes a field. Deleting a missing key is a no-op.
func (e *Entry) Delete(key string) {
	delete(e.fields, key)
}

// Len returns the number of fields.
func (e *Entry) Len() int { return len(e.fields) }

// String renders the entry as BibTeX text. Fields appear in
// lexicographic key order; the final field line carries no trailing
// comma. An entry with no fields renders with an empty body.
func (e *Entry) String() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("  %s = %s,", k, formatValue(k, e.fields[k]))
	}
	body := strings.TrimSuffix(strings.Join(lines, "\n"), ",")

	return fmt.Sprintf("@%s{%s,\n%s\n}", e.entryType, e.id, body)
}

// formatValue renders one field value. Integers render bare. A string
// renders bare when it parses as an integer and does not start with '0':
// zero-padded values like "0120" stay literal because some journals use
// fixed-width page numbers. Everything else is wrapped in braces, with
// title fields getting case protection first.
func formatValue(key string, value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		if v != "" && v[0] != '0' {
			if n, err := strconv.Atoi(v); err == nil {
				return strconv.Itoa(n)
			}
		}
		if strings.EqualFold(key, "title") {
			v = protectCase(v)
		}
		return "{" + v + "}"
	default:
		return fmt.Sprintf("{%v}", v)
	}
}

// protectCase wraps each run of uppercase ASCII letters in braces so
// BibTeX styles cannot down-case forced capitalization. A run starting
// at the very first character keeps that character outside the braces:
// "SCPS: a fast implementation" becomes "S{CPS}: a fast implementation".
func protectCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	i := 0
	for i < len(s) {
		if !isUpper(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isUpper(s[j]) {
			j++
		}
		start := i
		if start == 0 {
			b.WriteByte(s[0])
			start = 1
		}
		if j > start {
			b.WriteByte('{')
			b.WriteString(s[start:j])
			b.WriteByte('}')
		}
		i = j
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
