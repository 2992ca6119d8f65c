package capability

import (
	"github.com/rezonia/zugferd/internal/profile"
)

// Supports reports whether profile p defines field f.
func Supports(p profile.Profile, f Field) bool {
	return p.Includes(f.Since)
}

// Fields lists every declared field profile p defines
func Fields(p profile.Profile) []Field {
	return MaskFor(p).Fields()
}

// Mask is the capability set of one profile
type Mask struct {
	profile profile.Profile
	fields  map[string]struct{}
}

// MaskFor builds the capability set of p from the declared fields.
func MaskFor(p profile.Profile) Mask {
	m := Mask{profile: p, fields: make(map[string]struct{})}
	for _, f := range Registered() {
		if Supports(p, f) {
			m.fields[f.String()] = struct{}{}
		}
	}
	return m
}

// Profile returns the profile the mask was built for
func (m Mask) Profile() profile.Profile {
	return m.profile
}

// Has reports whether the field is part of the mask.
// Fields declared after the mask was built are checked by rank.
func (m Mask) Has(f Field) bool {
	if _, ok := m.fields[f.String()]; ok {
		return true
	}
	return Supports(m.profile, f)
}

// Len returns the number of fields in the mask
func (m Mask) Len() int {
	return len(m.fields)
}

// Fields lists the fields of the mask in Node.Name order
func (m Mask) Fields() []Field {
	fields := make([]Field, 0, len(m.fields))
	for key := range m.fields {
		if f, ok := Lookup(key); ok {
			fields = append(fields, f)
		}
	}
	sortFields(fields)
	return fields
}
