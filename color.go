package fractal

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for malformed colour strings.
var ErrInvalidHex = errors.New("fractal: invalid hex color")

// GrayStep returns the intensity drop per iteration for a budget of
// maxIter: floor(255 / (maxIter+1)).
func GrayStep(maxIter int) uint8 {
	return uint8(255 / (maxIter + 1))
}

// Intensity maps an iteration count to a gray level. Points that escape
// immediately are white; points that never escape are the darkest level.
// For it in [0, maxIter] the result never underflows.
func Intensity(it, maxIter int) uint8 {
	return 255 - uint8(it)*GrayStep(maxIter)
}

// Gray maps an iteration count to an opaque grayscale pixel.
func Gray(it, maxIter int) color.RGBA {
	v := Intensity(it, maxIter)
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}

// Pack returns c as a 32-bit RGBA8888 value with red in the most
// significant byte and alpha in the least significant byte.
func Pack(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// ParseHex parses a colour string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. The result is not premultiplied.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	digits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		digits[i] = d
	}

	c := color.NRGBA{A: 0xFF}
	switch len(digits) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return c, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
