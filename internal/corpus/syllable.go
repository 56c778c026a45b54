package corpus

import "fmt"

// Role is the position a syllable held inside its source name
type Role int

const (
	RoleStart Role = iota
	RoleMiddle
	RoleEnd
	RoleSingle // the whole name is one syllable

	roleStartMarker
	roleEndMarker
)

// Roles lists the positional roles a real syllable can take
var Roles = []Role{RoleStart, RoleMiddle, RoleEnd, RoleSingle}

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleMiddle:
		return "middle"
	case RoleEnd:
		return "end"
	case RoleSingle:
		return "single"
	case roleStartMarker:
		return "START"
	case roleEndMarker:
		return "END"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Syllable is a unit of text tagged with its positional role.
// Two syllables with the same text but different roles are distinct.
type Syllable struct {
	Text string
	Role Role
}

// StartMarker and EndMarker bracket every name in the transition table
var (
	StartMarker = Syllable{Role: roleStartMarker}
	EndMarker   = Syllable{Role: roleEndMarker}
)

// IsMarker reports whether s is StartMarker or EndMarker
func (s Syllable) IsMarker() bool {
	return s.Role == roleStartMarker || s.Role == roleEndMarker
}

func (s Syllable) String() string {
	if s.IsMarker() {
		return s.Role.String()
	}
	return fmt.Sprintf("%s(%s)", s.Text, s.Role)
}

// Label assigns positional roles to a syllable sequence: the first is a
// start, the last an end, the rest middles, and a lone syllable is single.
func Label(texts []string) []Syllable {
	out := make([]Syllable, len(texts))
	for i, t := range texts {
		out[i] = Syllable{Text: t, Role: roleAt(i, len(texts))}
	}
	return out
}

func roleAt(i, n int) Role {
	switch {
	case n == 1:
		return RoleSingle
	case i == 0:
		return RoleStart
	case i == n-1:
		return RoleEnd
	}
	return RoleMiddle
}
