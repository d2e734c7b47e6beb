// Package narrative encodes structured entry details into MT940 narrative lines
// and reads them back.
//
// A tagged line has the form "<Tag>: <value>". Lines are written in a fixed
// order: the proprietary transaction code as an untagged line (omitted when the
// code is empty), then EndToEndId, Creditor and Acceptance when present, and
// Status last.
//
// Decoding is symmetric for every tag except EndToEndId: a value is read only
// from a line that starts with "<Tag>:". EndToEndId is found by scanning for the
// token anywhere in a line. When several lines carry the same tag the last one
// wins.
package narrative

import "strings"

// Tag names one structured value carried in the narrative.
type Tag string

const (
	TagEndToEndID Tag = "EndToEndId"
	TagCreditor   Tag = "Creditor"
	TagAcceptance Tag = "Acceptance"
	TagStatus     Tag = "Status"
)

func (t Tag) token() string {
	return string(t) + ":"
}

// Line renders one tagged line.
func Line(tag Tag, value string) string {
	return tag.token() + " " + value
}

// Builder accumulates narrative lines in insertion order.
type Builder struct {
	lines []string
}

// Text appends an untagged line.
func (b *Builder) Text(text string) *Builder {
	b.lines = append(b.lines, text)
	return b
}

// Tagged appends a tagged line.
func (b *Builder) Tagged(tag Tag, value string) *Builder {
	b.lines = append(b.lines, Line(tag, value))
	return b
}

// TaggedIf appends a tagged line only when value is non-empty.
func (b *Builder) TaggedIf(tag Tag, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Tagged(tag, value)
}

// Lines returns the accumulated lines, or nil when nothing was added.
func (b *Builder) Lines() []string {
	if len(b.lines) == 0 {
		return nil
	}
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Lookup returns the value of the last line containing the tag token.
func Lookup(lines []string, tag Tag) (string, bool) {
	token := tag.token()
	value, found := "", false
	for _, line := range lines {
		idx := strings.Index(line, token)
		if idx < 0 {
			continue
		}
		value = strings.TrimSpace(line[idx+len(token):])
		found = true
	}
	return value, found
}

// LookupPrefixed returns the value of the last line that starts with the tag
// token. Leading whitespace is ignored.
func LookupPrefixed(lines []string, tag Tag) (string, bool) {
	token := tag.token()
	value, found := "", false
	for _, line := range lines {
		rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), token)
		if !ok {
			continue
		}
		value = strings.TrimSpace(rest)
		found = true
	}
	return value, found
}

// Decode returns the last value seen for every known tag present in lines.
// EndToEndId is matched anywhere in a line, the other tags only as a prefix.
func Decode(lines []string) map[Tag]string {
	values := make(map[Tag]string)
	if v, ok := Lookup(lines, TagEndToEndID); ok {
		values[TagEndToEndID] = v
	}
	for _, tag := range []Tag{TagCreditor, TagAcceptance, TagStatus} {
		if v, ok := LookupPrefixed(lines, tag); ok {
			values[tag] = v
		}
	}
	return values
}
