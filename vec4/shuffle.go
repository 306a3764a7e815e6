package vec4

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShuffle is returned by ParseShuffleSel for unknown selectors.
var ErrInvalidShuffle = errors.New("vec4: invalid shuffle selector")

// ShuffleSel selects, for each destination lane, the source lane to copy.
// Destination lane d uses bits 2d and 2d+1: X in bits 0-1, W in bits 6-7.
//
// Every uint8 value is a valid selector, so Shuffle is total. Selectors are
// built by OR-ing one constant per destination lane; the "from X" constants
// are all zero, which makes several names share a value (XFromX == YFromX ==
// ExpandX == 0). That aliasing is intended.
type ShuffleSel uint8

const (
	XFromX ShuffleSel = 0x00
	XFromY ShuffleSel = 0x01
	XFromZ ShuffleSel = 0x02
	XFromW ShuffleSel = 0x03

	YFromX ShuffleSel = 0x00
	YFromY ShuffleSel = 0x04
	YFromZ ShuffleSel = 0x08
	YFromW ShuffleSel = 0x0C

	ZFromX ShuffleSel = 0x00
	ZFromY ShuffleSel = 0x10
	ZFromZ ShuffleSel = 0x20
	ZFromW ShuffleSel = 0x30

	WFromX ShuffleSel = 0x00
	WFromY ShuffleSel = 0x40
	WFromZ ShuffleSel = 0x80
	WFromW ShuffleSel = 0xC0

	// Identity keeps every lane in place.
	Identity = XFromX | YFromY | ZFromZ | WFromW

	// Expand a single lane into all lanes.
	ExpandX = XFromX | YFromX | ZFromX | WFromX
	ExpandY = XFromY | YFromY | ZFromY | WFromY
	ExpandZ = XFromZ | YFromZ | ZFromZ | WFromZ
	ExpandW = XFromW | YFromW | ZFromW | WFromW

	// Expand a pair of lanes: (x,y,z,w) -> (x,x,y,y).
	ExpandXY = XFromX | YFromX | ZFromY | WFromY
	ExpandZW = XFromZ | YFromZ | ZFromW | WFromW

	// Expand interleaving lanes: (x,y,z,w) -> (x,y,x,y).
	ExpandInterleavedXY = XFromX | YFromY | ZFromX | WFromY
	ExpandInterleavedZW = XFromZ | YFromW | ZFromZ | WFromW

	// Rotate lanes: RotateRight gives (y,z,w,x), RotateLeft gives (w,x,y,z).
	RotateRight = XFromY | YFromZ | ZFromW | WFromX
	RotateLeft  = XFromW | YFromX | ZFromY | WFromZ

	// Swap reverses lane order.
	Swap = XFromW | YFromZ | ZFromY | WFromX
)

var namedShuffles = []struct {
	name string
	sel  ShuffleSel
}{
	{"Identity", Identity},
	{"ExpandX", ExpandX},
	{"ExpandY", ExpandY},
	{"ExpandZ", ExpandZ},
	{"ExpandW", ExpandW},
	{"ExpandXY", ExpandXY},
	{"ExpandZW", ExpandZW},
	{"ExpandInterleavedXY", ExpandInterleavedXY},
	{"ExpandInterleavedZW", ExpandInterleavedZW},
	{"RotateRight", RotateRight},
	{"RotateLeft", RotateLeft},
	{"Swap", Swap},
}

const laneLetters = "xyzw"

// MakeShuffle builds a selector from the source lane of each destination
// lane. Only the low two bits of each index are used.
func MakeShuffle(x, y, z, w uint8) ShuffleSel {
	return ShuffleSel(x&3 | (y&3)<<2 | (z&3)<<4 | (w&3)<<6)
}

// Source returns the source lane index copied into destination lane d&3.
func (s ShuffleSel) Source(d int) int {
	return int(s>>(2*(d&3))) & 3
}

// Pattern returns the four source lanes as letters, e.g. "wzyx" for Swap.
func (s ShuffleSel) Pattern() string {
	var b [4]byte
	for d := range b {
		b[d] = laneLetters[s.Source(d)]
	}
	return string(b[:])
}

// String returns the name of a composite selector constant, or Pattern.
func (s ShuffleSel) String() string {
	for _, n := range namedShuffles {
		if n.sel == s {
			return n.name
		}
	}
	return s.Pattern()
}

// ParseShuffleSel accepts a composite constant name ("Swap", "expandx") or a
// four-letter pattern of source lanes ("wzyx").
func ParseShuffleSel(s string) (ShuffleSel, error) {
	for _, n := range namedShuffles {
		if strings.EqualFold(n.name, s) {
			return n.sel, nil
		}
	}

	if len(s) == 4 {
		var idx [4]uint8
		ok := true
		for d := range idx {
			i := strings.IndexByte(laneLetters, lower(s[d]))
			if i < 0 {
				ok = false
				break
			}
			idx[d] = uint8(i)
		}
		if ok {
			return MakeShuffle(idx[0], idx[1], idx[2], idx[3]), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidShuffle, s)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
