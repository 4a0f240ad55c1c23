package component

import (
	"cavecrawl/internal/ecs"
	"strings"
	"unicode"
	"unicode/utf8"
)

const CName ecs.ComponentType = 3

// Name is the lower-case display name used in narration ("orc").
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }

// Capitalized returns the name with its first letter upper-cased ("Orc").
func (n Name) Capitalized() string {
	r, size := utf8.DecodeRuneInString(n.Value)
	if r == utf8.RuneError {
		return n.Value
	}
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(n.Value[size:])
	return b.String()
}
