package models

// OptionalID is a reference that may be not yet known, known to be absent,
// or set. The zero value is unknown.
type OptionalID struct {
	id    string
	known bool
}

func UnknownID() OptionalID { return OptionalID{} }

func NoID() OptionalID { return OptionalID{known: true} }

// SomeID returns a set reference; an empty id is treated as NoID.
func SomeID(id string) OptionalID { return OptionalID{id: id, known: true} }

// Known reports whether the reference has been resolved, to an id or to none.
func (o OptionalID) Known() bool { return o.known }

// Get returns the id and whether one is set.
func (o OptionalID) Get() (string, bool) { return o.id, o.id != "" }

func (o OptionalID) String() string {
	switch {
	case !o.known:
		return "<unknown>"
	case o.id == "":
		return "<none>"
	default:
		return o.id
	}
}
