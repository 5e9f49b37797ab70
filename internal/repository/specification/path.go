package specification

import "strings"

// Path is a navigation path made of ordered field identifiers, e.g. {"OrderItems", "Product"}.
type Path []string

func PathOf(members ...string) Path {
	return append(Path(nil), members...)
}

// Then returns a new path extended by member.
func (p Path) Then(member string) Path {
	next := make(Path, 0, len(p)+1)
	next = append(next, p...)
	return append(next, member)
}

func (p Path) String() string {
	return strings.Join(p, ".")
}
