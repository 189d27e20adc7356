package shading

import (
	"fmt"
	"strings"
)

// Kind selects the procedural material evaluated per pixel. The set is
// closed; Shade switches over every value.
type Kind uint8

const (
	Default Kind = iota
	Sun
	Earth
	SuperEarth
	Volcanic
	Ice
	Gas
)

var kindNames = [...]string{
	Default:    "default",
	Sun:        "sun",
	Earth:      "earth",
	SuperEarth: "super-earth",
	Volcanic:   "volcanic",
	Ice:        "ice",
	Gas:        "gas",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts the names produced by String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return Default, fmt.Errorf("shading: unknown kind %q", s)
}
