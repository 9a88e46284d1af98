package geometry

import "fmt"

// Side identifies one face of a rectangle.
type Side int

const (
	// SideNone is the zero value and marks an unset side.
	SideNone Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
)

// AllSides lists the four faces in the order the router evaluates them
// when no directional hint applies.
var AllSides = []Side{SideTop, SideBottom, SideLeft, SideRight}

var sideNames = map[Side]string{
	SideTop:    "top",
	SideRight:  "right",
	SideBottom: "bottom",
	SideLeft:   "left",
}

var sideFromName = map[string]Side{
	"top":    SideTop,
	"right":  SideRight,
	"bottom": SideBottom,
	"left":   SideLeft,
}

// String returns the JSON Canvas name of the side, or "" for SideNone.
func (s Side) String() string { return sideNames[s] }

// Opposite returns the facing side. SideNone is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// ParseSide converts a JSON Canvas side name. The empty string parses to
// SideNone.
func ParseSide(s string) (Side, error) {
	if s == "" {
		return SideNone, nil
	}
	side, ok := sideFromName[s]
	if !ok {
		return SideNone, fmt.Errorf("unknown side %q", s)
	}
	return side, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	side, err := ParseSide(string(b))
	if err != nil {
		return err
	}
	*s = side
	return nil
}
