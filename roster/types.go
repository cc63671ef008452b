// SPDX-License-Identifier: MIT

package roster

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for roster validation.
var (
	// ErrEmptyName indicates a RawEntry without a contact name.
	ErrEmptyName = errors.New("roster: contact name is empty")

	// ErrUnknownDomain indicates a domain label outside the fixed set.
	ErrUnknownDomain = errors.New("roster: unknown domain")

	// ErrTieStrengthRange indicates a tie strength outside [MinTieStrength, MaxTieStrength].
	ErrTieStrengthRange = errors.New("roster: tie strength out of range")

	// ErrUnknownValence indicates a valence label outside Positive/Neutral/Negative.
	ErrUnknownValence = errors.New("roster: unknown valence")
)

// Tie strength bounds, inclusive.
const (
	MinTieStrength = 1
	MaxTieStrength = 5
)

// Domain is one of the five fixed life domains a contact can belong to.
type Domain string

// The fixed domain labels, in canonical order.
const (
	FamilyFriends         Domain = "Family/Friends"
	WorkProfessional      Domain = "Work/Professional"
	EducationAlumni       Domain = "Education/Alumni"
	CommunityVolunteering Domain = "Community/Volunteering"
	HobbiesRecreational   Domain = "Hobbies/Recreational Groups"
)

var canonicalDomains = [...]Domain{
	FamilyFriends,
	WorkProfessional,
	EducationAlumni,
	CommunityVolunteering,
	HobbiesRecreational,
}

// Domains returns the five domain labels in canonical order.
// The returned slice is a fresh copy.
func Domains() []Domain {
	out := make([]Domain, len(canonicalDomains))
	copy(out, canonicalDomains[:])

	return out
}

// index returns the canonical position of d, or -1 when d is not a known domain.
func (d Domain) index() int {
	for i, c := range canonicalDomains {
		if c == d {
			return i
		}
	}

	return -1
}

// Valid reports whether d is one of the five fixed labels.
func (d Domain) Valid() bool { return d.index() >= 0 }

// ParseDomain maps a label to its Domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}

	return d, nil
}

// Valence is the tone of a relationship.
type Valence string

// Valence labels.
const (
	Positive Valence = "Positive"
	Neutral  Valence = "Neutral"
	Negative Valence = "Negative"
)

// Valences returns the valence labels in reporting order.
func Valences() []Valence {
	return []Valence{Positive, Neutral, Negative}
}

// Valid reports whether v is a known valence label.
func (v Valence) Valid() bool {
	switch v {
	case Positive, Neutral, Negative:
		return true
	default:
		return false
	}
}

// Score maps a valence onto {+1, 0, -1}.
func (v Valence) Score() int {
	switch v {
	case Positive:
		return 1
	case Negative:
		return -1
	default:
		return 0
	}
}

// ParseValence maps a label to its Valence.
func ParseValence(s string) (Valence, error) {
	v := Valence(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownValence, s)
	}

	return v, nil
}

// RawEntry is a single roster row: one contact seen in one domain.
type RawEntry struct {
	Name        string  `json:"name" yaml:"name"`
	Domain      Domain  `json:"domain" yaml:"domain"`
	TieStrength int     `json:"tie_strength" yaml:"tie_strength"`
	Valence     Valence `json:"valence" yaml:"valence"`
}

// Validate checks every field of the entry against the fixed vocabularies.
func (e RawEntry) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if !e.Domain.Valid() {
		return fmt.Errorf("%w: %q for %q", ErrUnknownDomain, e.Domain, e.Name)
	}
	if e.TieStrength < MinTieStrength || e.TieStrength > MaxTieStrength {
		return fmt.Errorf("%w: %d for %q (want %d..%d)",
			ErrTieStrengthRange, e.TieStrength, e.Name, MinTieStrength, MaxTieStrength)
	}
	if !e.Valence.Valid() {
		return fmt.Errorf("%w: %q for %q", ErrUnknownValence, e.Valence, e.Name)
	}

	return nil
}

// Contact is the aggregated record for one unique name.
type Contact struct {
	// Name is the unique grouping key.
	Name string `json:"name" yaml:"name"`

	// Domains lists every domain the name appeared in, canonical order, non-empty.
	Domains []Domain `json:"domains" yaml:"domains"`

	// AvgTieStrength is the full-precision mean of all recorded strengths.
	AvgTieStrength float64 `json:"avg_tie_strength" yaml:"avg_tie_strength"`

	// Valence is the modal valence (first-seen wins ties).
	Valence Valence `json:"valence" yaml:"valence"`

	// Entries counts the raw rows merged into this contact.
	Entries int `json:"entries" yaml:"entries"`
}

// DisplayStrength returns AvgTieStrength rounded to two decimals.
// Thresholds must use AvgTieStrength, not this value.
func (c *Contact) DisplayStrength() float64 {
	return math.Round(c.AvgTieStrength*100) / 100
}

// InDomain reports whether the contact belongs to d.
func (c *Contact) InDomain(d Domain) bool {
	for _, x := range c.Domains {
		if x == d {
			return true
		}
	}

	return false
}

// Edge is an unordered acquaintance pair. Use NewEdge to build a canonical one.
type Edge struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// NewEdge returns the canonical (sorted) edge between a and b.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// Canonical returns e with its endpoints sorted.
func (e Edge) Canonical() Edge { return NewEdge(e.A, e.B) }

// IsLoop reports whether both endpoints are the same contact.
func (e Edge) IsLoop() bool { return e.A == e.B }

// Has reports whether name is one of the endpoints.
func (e Edge) Has(name string) bool { return e.A == name || e.B == name }

// String renders the edge as "A <--> B".
func (e Edge) String() string { return e.A + " <--> " + e.B }
