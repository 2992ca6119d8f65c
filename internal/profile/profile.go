// Package profile defines the conformance profiles of the ZUGFeRD / Factur-X
// family. A profile selects the subset of the cross industry invoice schema a
// document may use.
package profile

import (
	"fmt"
	"strings"
)

// Profile is a named conformance level. The zero value is not a valid profile.
type Profile int

const (
	Minimum Profile = iota + 1
	BasicWL
	Basic
	EN16931
	Extended
	XRechnung
)

type definition struct {
	name    string
	aliases []string
	urn     string
	rank    int
}

// rank orders the nested capability sets. XRechnung is a CIUS of EN16931 and
// shares its rank.
var definitions = map[Profile]definition{
	Minimum: {
		name:    "MINIMUM",
		aliases: []string{"min"},
		urn:     "urn:factur-x.eu:1p0:minimum",
		rank:    1,
	},
	BasicWL: {
		name:    "BASIC WL",
		aliases: []string{"basicwl", "basic-wl", "basic_wl"},
		urn:     "urn:factur-x.eu:1p0:basicwl",
		rank:    2,
	},
	Basic: {
		name: "BASIC",
		urn:  "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic",
		rank: 3,
	},
	EN16931: {
		name:    "EN16931",
		aliases: []string{"comfort"},
		urn:     "urn:cen.eu:en16931:2017",
		rank:    4,
	},
	Extended: {
		name: "EXTENDED",
		urn:  "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended",
		rank: 5,
	},
	XRechnung: {
		name: "XRECHNUNG",
		urn:  "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.3",
		rank: 4,
	},
}

// All returns every profile in declaration order.
func All() []Profile {
	return []Profile{Minimum, BasicWL, Basic, EN16931, Extended, XRechnung}
}

// Parse resolves a profile by name, alias or URN. Matching is case-insensitive.
func Parse(s string) (Profile, error) {
	needle := strings.TrimSpace(s)
	for _, p := range All() {
		def := definitions[p]
		if strings.EqualFold(needle, def.name) || needle == def.urn {
			return p, nil
		}
		for _, alias := range def.aliases {
			if strings.EqualFold(needle, alias) {
				return p, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown profile: %s", s)
}

// String returns the canonical profile name
func (p Profile) String() string {
	if def, ok := definitions[p]; ok {
		return def.name
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// URN returns the guideline identifier written into the document context.
func (p Profile) URN() string {
	return definitions[p].urn
}

// Rank returns the position of the profile in the nesting order.
func (p Profile) Rank() int {
	return definitions[p].rank
}

// Valid reports whether p is one of the known profiles
func (p Profile) Valid() bool {
	_, ok := definitions[p]
	return ok
}

// Includes reports whether everything allowed by other is allowed by p.
func (p Profile) Includes(other Profile) bool {
	if !p.Valid() || !other.Valid() {
		return false
	}
	return p.Rank() >= other.Rank()
}

// MarshalText implements encoding.TextMarshaler
func (p Profile) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid profile: %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Profile) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
