// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/sociograph/roster"
)

const (
	methodEntry = "Entry"
	methodLink  = "Link"
)

// Entry appends a literal row. Repeating an existing name in another domain
// models a multi-domain contact.
func Entry(e roster.RawEntry) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("%s: %w", methodEntry, err)
		}
		f.names[e.Name] = true
		f.Entries = append(f.Entries, e)

		return nil
	}
}

// Link adds an edge between two contacts that already exist in the fixture.
func Link(a, b string) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		for _, name := range []string{a, b} {
			if !f.names[name] {
				return fmt.Errorf("%s: unknown contact %q: %w", methodLink, name, ErrConstructFailed)
			}
		}
		f.link(a, b)

		return nil
	}
}
