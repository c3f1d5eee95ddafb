package core

import "strings"

// Len returns the number of edges in p (nodes minus one); an empty path has length 0.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first node of p, or "" if p is empty.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// End returns the last node of p, or "" if p is empty.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Extend returns a fresh copy of p with id appended. p itself is never
// modified, so frontier entries can share prefixes safely.
func (p Path) Extend(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, id)
}

// String renders p as "A → B → C".
func (p Path) String() string {
	return strings.Join(p, " → ")
}
