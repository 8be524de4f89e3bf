package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	AboveFill      = color.NRGBA{R: 34, G: 197, B: 94, A: 51}
	BelowFill      = color.NRGBA{R: 239, G: 68, B: 68, A: 51}
	GridColor      = mustHex("#e0e0e0")
	LabelColor     = mustHex("#666666")
	ZeroLineColor  = mustHex("#666666")
	MarkerStroke   = mustHex("#ffffff")
	MarkerWaiting  = mustHex("#4444ff")
	MarkerActive   = mustHex("#ff4444")
	MarkerResolved = mustHex("#44ff44")
	IndicatorUp    = mustHex("#22c55e")
	IndicatorDown  = mustHex("#ef4444")
	ConnectorColor = mustHex("#888888")
)

// ParseHex parses #rgb or #rrggbb.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
