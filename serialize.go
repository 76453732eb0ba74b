package awscred

import (
	"fmt"
	"strings"
)

// String renders the store in the credentials file format: a "[name]" header
// per profile in store order, one "key = value" line per key in insertion
// order, and a blank line after each profile. An empty store renders as "".
// Comments discarded by Parse are not re-emitted.
func (s *Store) String() string {
	var b strings.Builder
	for _, p := range s.profiles {
		fmt.Fprintf(&b, "[%s]\n", p.name)
		for _, k := range p.keys {
			fmt.Fprintf(&b, "%s = %s\n", k, p.values[k])
		}
		b.WriteString("\n")
	}
	return b.String()
}
