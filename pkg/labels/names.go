package labels

import (
	"fmt"
	"strings"

	"github.com/philipparndt/golabel/pkg/polygon"
)

// MinVertices is the smallest vertex count a committed polygon may have
const MinVertices = 3

// NamePolicy selects how strictly label names are checked
type NamePolicy int

const (
	// PolicyLenient accepts any non-blank name
	PolicyLenient NamePolicy = iota
	// PolicyStrict additionally restricts names to ASCII letters and digits
	PolicyStrict
)

func (p NamePolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lenient"
}

// CheckName trims raw and validates it against policy. inUse may be nil.
// The trimmed name is returned on success.
func CheckName(raw string, policy NamePolicy, inUse func(string) bool) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrBlankName
	}

	if policy == PolicyStrict {
		for _, r := range name {
			if !isAlphanumeric(r) {
				return "", fmt.Errorf("%w: %q", ErrInvalidCharacter, name)
			}
		}
	}

	if inUse != nil && inUse(name) {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	return name, nil
}

// CheckCommittable reports whether p has enough vertices to be stored
func CheckCommittable(p *polygon.Polygon) error {
	if p.Len() < MinVertices {
		return fmt.Errorf("%w (has %d)", ErrInsufficientVertices, p.Len())
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
