package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// CallNumber is the shelf address of a book: classification code, author
// code and volume/copy designator. All three fields are free text and may be
// empty. CallNumber is a value type; methods never modify the receiver.
type CallNumber struct {
	// Class is the KDC classification code, e.g. "813.6".
	Class string `json:"class" mapstructure:"class"`

	// Author is the author code: a Hangul abbreviation, a cutter number and an
	// optional work mark, e.g. "김294ㄱ".
	Author string `json:"author" mapstructure:"author"`

	// Vol is the volume ("v.N") or copy ("c.N") designator.
	Vol string `json:"vol" mapstructure:"vol"`
}

var (
	classToken = regexp.MustCompile(`^\d[\d.]*$`)
	volToken   = regexp.MustCompile(`(?i)^[vc]\.`)
)

// ParseCallNumber builds a CallNumber from a one-line label. Two layouts are
// accepted:
//
//	813.6|김294ㄱ|v.1   pipe separated, fields may contain spaces
//	813.6 김294ㄱ v.1   whitespace separated
//
// In the whitespace layout a leading numeric token is the classification and
// the first token starting with "v." or "c." begins the designator. Every
// token in between belongs to the author code, so "김294 ㄱ" keeps its work
// mark. Parsing never fails; unrecognised text lands in a field as-is.
func ParseCallNumber(label string) CallNumber {
	label = strings.TrimSpace(label)
	if strings.Contains(label, "|") {
		parts := strings.SplitN(label, "|", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		return CallNumber{
			Class:  strings.TrimSpace(parts[0]),
			Author: strings.TrimSpace(parts[1]),
			Vol:    strings.TrimSpace(parts[2]),
		}
	}

	var cn CallNumber
	fields := strings.Fields(label)
	i := 0
	if i < len(fields) && classToken.MatchString(fields[i]) {
		cn.Class = fields[i]
		i++
	}
	start := i
	for i < len(fields) && !volToken.MatchString(fields[i]) {
		i++
	}
	cn.Author = strings.Join(fields[start:i], " ")
	if i < len(fields) {
		cn.Vol = strings.Join(fields[i:], " ")
	}
	return cn
}

// IsBlank reports whether every field is empty after trimming whitespace.
func (c CallNumber) IsBlank() bool {
	return strings.TrimSpace(c.Class) == "" &&
		strings.TrimSpace(c.Author) == "" &&
		strings.TrimSpace(c.Vol) == ""
}

// WithClass returns a copy of c with the classification replaced.
func (c CallNumber) WithClass(class string) CallNumber {
	c.Class = class
	return c
}

// WithAuthor returns a copy of c with the author code replaced.
func (c CallNumber) WithAuthor(author string) CallNumber {
	c.Author = author
	return c
}

// WithVol returns a copy of c with the volume/copy designator replaced.
func (c CallNumber) WithVol(vol string) CallNumber {
	c.Vol = vol
	return c
}

// String renders the label in whitespace layout, skipping empty fields.
// When that layout would not parse back to the same fields (a field holds
// whitespace, the classification is not numeric, or the designator does not
// start with "v." or "c.") the pipe layout is used instead.
func (c CallNumber) String() string {
	class := strings.TrimSpace(c.Class)
	author := strings.TrimSpace(c.Author)
	vol := strings.TrimSpace(c.Vol)
	if !c.spaceSeparable(class, author, vol) {
		return class + "|" + author + "|" + vol
	}

	parts := make([]string, 0, 3)
	for _, f := range []string{class, author, vol} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// spaceSeparable reports whether the trimmed fields survive a round trip
// through the whitespace layout of ParseCallNumber.
func (CallNumber) spaceSeparable(class, author, vol string) bool {
	for _, f := range []string{class, author, vol} {
		if strings.IndexFunc(f, unicode.IsSpace) >= 0 {
			return false
		}
	}
	switch {
	case class != "" && !classToken.MatchString(class):
		return false
	case class == "" && classToken.MatchString(author):
		return false
	case author != "" && volToken.MatchString(author):
		return false
	case vol != "" && !volToken.MatchString(vol):
		return false
	}
	return true
}
