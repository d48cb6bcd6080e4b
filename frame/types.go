package frame

import "fmt"

// HeaderMode selects how the leading header of a source file is skipped.
type HeaderMode uint8

const (
	HeaderFixed HeaderMode = iota
	HeaderDeclared
)

func (m HeaderMode) String() string {
	switch m {
	case HeaderFixed:
		return "HeaderMode(fixed)"
	case HeaderDeclared:
		return "HeaderMode(declared)"
	}
	return "HeaderMode(UNKNOWN)"
}

// ParseHeaderMode maps the configuration names "fixed" and "declared" onto
// a HeaderMode.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch s {
	case "", "fixed":
		return HeaderFixed, nil
	case "declared":
		return HeaderDeclared, nil
	}
	return HeaderFixed, fmt.Errorf("unknown header mode: %q", s)
}
