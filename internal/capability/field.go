// Package capability maps field assignments on document nodes onto the
// conformance profiles that define them.
//
// Every settable field of a node type is declared once as a Capability that
// carries the lowest profile defining it. Profiles are strictly nested, so the
// capability set of a profile is every declaration whose minimum rank it
// reaches. The Dispatcher consults that static mask before assigning a value,
// which lets one call sequence serve every profile.
package capability

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rezonia/zugferd/internal/profile"
)

// Mode tells whether a field holds one value or an ordered list
type Mode int

const (
	// Set replaces the current value; last write wins.
	Set Mode = iota
	// Append adds to the end of a list.
	Append
)

func (m Mode) String() string {
	if m == Append {
		return "append"
	}
	return "set"
}

// Field identifies one capability of a node type.
type Field struct {
	Node  string
	Name  string
	Mode  Mode
	Since profile.Profile
}

// String returns Node.Name
func (f Field) String() string {
	return f.Node + "." + f.Name
}

// Capability binds a Field to the assignment it performs on a node of type E
// with a value of type V.
type Capability[E, V any] struct {
	field  Field
	assign func(*E, *V)
}

// Field returns the declaration of the capability
func (c Capability[E, V]) Field() Field {
	return c.field
}

// Scalar declares a single-valued field available from profile since onwards.
func Scalar[E, V any](node, name string, since profile.Profile, set func(*E, *V)) Capability[E, V] {
	return declare[E, V](Field{Node: node, Name: name, Mode: Set, Since: since}, set)
}

// List declares an append-only list field available from profile since onwards.
func List[E, V any](node, name string, since profile.Profile, add func(*E, *V)) Capability[E, V] {
	return declare[E, V](Field{Node: node, Name: name, Mode: Append, Since: since}, add)
}

func declare[E, V any](f Field, assign func(*E, *V)) Capability[E, V] {
	if !f.Since.Valid() {
		panic(fmt.Sprintf("capability %s declared with invalid profile %d", f, int(f.Since)))
	}
	if assign == nil {
		panic(fmt.Sprintf("capability %s declared without assignment", f))
	}
	register(f)
	return Capability[E, V]{field: f, assign: assign}
}

var registry = struct {
	sync.RWMutex
	fields map[string]Field
}{fields: make(map[string]Field)}

func register(f Field) {
	registry.Lock()
	defer registry.Unlock()

	key := f.String()
	if _, exists := registry.fields[key]; exists {
		panic("capability declared twice: " + key)
	}
	registry.fields[key] = f
}

// Registered returns every declared field ordered by node and name.
func Registered() []Field {
	registry.RLock()
	defer registry.RUnlock()

	fields := make([]Field, 0, len(registry.fields))
	for _, f := range registry.fields {
		fields = append(fields, f)
	}
	sortFields(fields)
	return fields
}

// Lookup finds a declared field by its Node.Name key
func Lookup(key string) (Field, bool) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.fields[key]
	return f, ok
}

func sortFields(fields []Field) {
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Node != fields[j].Node {
			return fields[i].Node < fields[j].Node
		}
		return fields[i].Name < fields[j].Name
	})
}
