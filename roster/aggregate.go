// SPDX-License-Identifier: MIT

package roster

// Roster maps unique contact names to their aggregated Contact, remembering
// the order in which names were first seen.
type Roster struct {
	order    []string
	contacts map[string]*Contact
}

// Len returns the number of unique contacts.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}

	return len(r.order)
}

// Empty reports whether the roster has no contacts.
func (r *Roster) Empty() bool { return r.Len() == 0 }

// Names returns contact names in first-seen order.
func (r *Roster) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Get returns the contact stored under name.
func (r *Roster) Get(name string) (*Contact, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.contacts[name]

	return c, ok
}

// Has reports whether name is a known contact.
func (r *Roster) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Contacts returns the aggregated contacts in first-seen order.
func (r *Roster) Contacts() []*Contact {
	if r == nil {
		return nil
	}
	out := make([]*Contact, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.contacts[name])
	}

	return out
}

// group accumulates the raw values recorded for one name.
type group struct {
	domains   [len(canonicalDomains)]bool
	strengths []int
	valences  []Valence
}

// Aggregate merges raw entries into one Contact per exact name.
//
// The function is pure: the same input always yields an equal Roster, and an
// empty input yields an empty (non-nil) Roster. Entries are not validated here;
// an unknown domain label is ignored for the domain set but still counted for
// strength and valence.
//
// Complexity: O(N) time and memory.
func Aggregate(entries []RawEntry) *Roster {
	r := &Roster{
		order:    make([]string, 0, len(entries)),
		contacts: make(map[string]*Contact, len(entries)),
	}
	groups := make(map[string]*group, len(entries))

	for _, e := range entries {
		gr, ok := groups[e.Name]
		if !ok {
			gr = &group{}
			groups[e.Name] = gr
			r.order = append(r.order, e.Name)
		}
		if i := e.Domain.index(); i >= 0 {
			gr.domains[i] = true
		}
		gr.strengths = append(gr.strengths, e.TieStrength)
		gr.valences = append(gr.valences, e.Valence)
	}

	for _, name := range r.order {
		gr := groups[name]
		c := &Contact{
			Name:           name,
			AvgTieStrength: mean(gr.strengths),
			Valence:        modeValence(gr.valences),
			Entries:        len(gr.strengths),
		}
		for i, present := range gr.domains {
			if present {
				c.Domains = append(c.Domains, canonicalDomains[i])
			}
		}
		r.contacts[name] = c
	}

	return r
}

// mean returns the arithmetic mean of xs, or 0 for an empty slice.
func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}

	return float64(sum) / float64(len(xs))
}

// modeValence returns the most frequent valence. Among equally frequent values
// the one seen first in vs wins. An empty slice yields Neutral.
func modeValence(vs []Valence) Valence {
	if len(vs) == 0 {
		return Neutral
	}
	counts := make(map[Valence]int, 3)
	firstSeen := make([]Valence, 0, 3)
	for _, v := range vs {
		if counts[v] == 0 {
			firstSeen = append(firstSeen, v)
		}
		counts[v]++
	}
	best := firstSeen[0]
	for _, v := range firstSeen[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}

	return best
}
