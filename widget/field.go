package widget

import (
	"strconv"
	"strings"

	"github.com/bendazz/vector-practice/geometry"
)

// maxFieldDigits matches geometry.MaxComponent.
const maxFieldDigits = 6

// Field is an editable integer text field. While typing, the text may be
// incomplete (empty or a lone "-"); Value reads such text as 0.
type Field struct {
	Label string
	text  string
}

func NewField(label string, value int) *Field {
	return &Field{Label: label, text: strconv.Itoa(value)}
}

func (f *Field) Text() string {
	return f.text
}

func (f *Field) Value() int {
	return SanitizeInt(f.text)
}

// Complete reports whether the text holds at least one digit. Empty text and
// a lone minus are still being typed.
func (f *Field) Complete() bool {
	return strings.ContainsAny(f.text, "0123456789")
}

func (f *Field) SetValue(v int) {
	f.text = strconv.Itoa(v)
}

// Insert appends a typed rune. Only digits and a leading minus are accepted.
// It reports whether the text changed.
func (f *Field) Insert(r rune) bool {
	switch {
	case r == '-':
		if f.text != "" && f.text != "0" {
			return false
		}
		f.text = "-"
	case r >= '0' && r <= '9':
		if len(strings.TrimPrefix(f.text, "-")) >= maxFieldDigits {
			return false
		}
		if f.text == "0" {
			f.text = ""
		} else if f.text == "-0" {
			f.text = "-"
		}
		f.text += string(r)
	default:
		return false
	}
	return true
}

// Backspace removes the last rune and reports whether the text changed.
func (f *Field) Backspace() bool {
	if f.text == "" {
		return false
	}
	f.text = f.text[:len(f.text)-1]
	return true
}

// Step adds delta to the current value, like the arrow keys of a number input.
func (f *Field) Step(delta int) {
	f.SetValue(geometry.Clamp(f.Value()+delta, -geometry.MaxComponent, geometry.MaxComponent))
}

// Normalize rewrites the text in canonical form, e.g. "" and "-" become "0".
func (f *Field) Normalize() {
	f.SetValue(f.Value())
}

// SanitizeInt reads a leading optionally signed integer from s, ignoring
// surrounding spaces and any trailing garbage. Text without digits, or with a
// value that does not fit in an int, reads as 0.
func SanitizeInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
