// Package identifier produces the row names used by journal entries, their lines and
// their ledger postings.
//
// Two schemes are supported and exactly one is active per deployment:
//
//   - SchemeNameDerived keeps the caller's entry name and derives child names from it
//     ("{parent}_Account_{seq}", "{parent}_Ledger_{seq}"). The store's primary key on the
//     entry name rejects a reused name.
//   - SchemeTimestampSuffixed appends a microsecond UTC timestamp to the entry name
//     ("{base}_{YYYYMMDDhhmmssffffff}") and derives child names from the suffixed name.
package identifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scheme selects how entry names are produced.
type Scheme string

const (
	SchemeNameDerived       Scheme = "strict"
	SchemeTimestampSuffixed Scheme = "timestamp"
)

// Kind is the table an identifier is generated for.
type Kind string

const (
	KindEntry  Kind = "Entry"
	KindLine   Kind = "Account"
	KindLedger Kind = "Ledger"
)

const (
	timestampLayout     = "20060102150405.000000"
	defaultNumberSeries = "JE-"
)

// ParseScheme maps a configuration value onto a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeNameDerived, "":
		return SchemeNameDerived, nil
	case SchemeTimestampSuffixed:
		return SchemeTimestampSuffixed, nil
	default:
		return "", fmt.Errorf("unknown identifier scheme %q (expected %q or %q)", s, SchemeNameDerived, SchemeTimestampSuffixed)
	}
}

// Generator produces identifiers for one scheme.
type Generator struct {
	scheme Scheme
}

// NewGenerator creates a Generator for the given scheme.
func NewGenerator(scheme Scheme) *Generator {
	return &Generator{scheme: scheme}
}

// Scheme returns the active scheme.
func (g *Generator) Scheme() Scheme {
	return g.scheme
}

// RejectsReusedNames reports whether a key collision on the entry header means the caller
// reused a name, as opposed to a generated name colliding.
func (g *Generator) RejectsReusedNames() bool {
	return g.scheme == SchemeNameDerived
}

// Next returns the identifier for a row of the given kind.
// For KindEntry, parent is the base name and seq is ignored. For child kinds, parent is the
// already generated entry name and seq is the 1-based line position.
func (g *Generator) Next(kind Kind, parent string, seq int, at time.Time) string {
	if kind != KindEntry {
		return parent + "_" + string(kind) + "_" + strconv.Itoa(seq)
	}
	if g.scheme == SchemeTimestampSuffixed {
		return parent + "_" + Timestamp(at)
	}
	return parent
}

// Timestamp renders t as YYYYMMDDhhmmssffffff in UTC.
func Timestamp(t time.Time) string {
	return strings.Replace(t.UTC().Format(timestampLayout), ".", "", 1)
}

// BaseName returns the caller supplied name, or a fresh time ordered name built from the
// number series when none was supplied.
func BaseName(name, numberSeries string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate entry name: %w", err)
	}
	series := strings.TrimSpace(numberSeries)
	if series == "" {
		series = defaultNumberSeries
	}
	return series + id.String(), nil
}
