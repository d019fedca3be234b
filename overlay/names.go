package overlay

import (
	"fmt"
	"strconv"
)

// NotAvailable is displayed for empty identifiers.
const NotAvailable = "N/A"

const (
	guidLength      = 36
	shortGUIDLength = 12
)

// NameResolver maps an identifier to a display name.
type NameResolver interface {
	Lookup(id string) (name string, ok bool)
}

// NameMap is a NameResolver over a plain map.
type NameMap map[string]string

func (m NameMap) Lookup(id string) (string, bool) {
	name, ok := m[id]
	return name, ok
}

// ShortID returns the trailing segment of a canonical GUID, or id unchanged.
func ShortID(id string) string {
	if len(id) == guidLength {
		return id[len(id)-shortGUIDLength:]
	}
	return id
}

// DisplayName resolves id through r. Empty ids yield NotAvailable, unresolved
// ids "Unknown [id]", optionally with the GUID shortened.
func DisplayName(r NameResolver, id string, shorten bool) string {
	if id == "" {
		return NotAvailable
	}
	if r != nil {
		if name, ok := r.Lookup(id); ok {
			return name
		}
	}
	if shorten {
		id = ShortID(id)
	}
	return fmt.Sprintf("Unknown [%s]", id)
}

// TimeDifference formats how long ago t happened relative to now, both in
// seconds, capped at "10.00+".
func TimeDifference(now, t float64) string {
	diff := now - t
	if diff > 10 {
		return "10.00+"
	}
	return strconv.FormatFloat(diff, 'f', 2, 64)
}
