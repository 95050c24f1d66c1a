// Package registry mints the human-readable identifiers handed out for
// classes and students.
//
// Class registries are "CL" followed by 8 uppercase hex characters. Student
// registries are a 3-character name prefix, the creation year and 4 uppercase
// hex characters, for example "JOA-2023-9F1C".
package registry

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	classPrefix      = "CL"
	fallbackPrefix   = "ABC"
	namePrefixLength = 3
)

// Generator mints registries from a UUID source.
type Generator struct {
	newUUID func() uuid.UUID
}

// New returns a Generator backed by random (v4) UUIDs.
func New() *Generator {
	return &Generator{newUUID: uuid.New}
}

// NewWithSource returns a Generator drawing UUIDs from fn.
func NewWithSource(fn func() uuid.UUID) *Generator {
	return &Generator{newUUID: fn}
}

// ClassRegistry returns "CL" + the first 8 hex characters of a fresh UUID.
func (g *Generator) ClassRegistry() string {
	return classPrefix + strings.ToUpper(uuidGroup(g.newUUID(), 0))
}

// StudentRegistry returns PREFIX-YYYY-XXXX where PREFIX is the first three
// characters of the name without diacritics, uppercased, or "ABC" for names
// shorter than three characters.
func (g *Generator) StudentRegistry(fullName string, year int) string {
	return fmt.Sprintf("%s-%04d-%s", namePrefix(fullName), year, strings.ToUpper(uuidGroup(g.newUUID(), 1)))
}

func namePrefix(fullName string) string {
	name := StripDiacritics(strings.TrimSpace(fullName))
	if utf8.RuneCountInString(name) < namePrefixLength {
		return fallbackPrefix
	}
	r := []rune(name)
	return strings.ToUpper(string(r[:namePrefixLength]))
}

// uuidGroup returns the i-th dash-separated group of the canonical UUID form.
func uuidGroup(u uuid.UUID, i int) string {
	return strings.Split(u.String(), "-")[i]
}

// StripDiacritics decomposes s and drops combining marks ("João" -> "Joao").
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
