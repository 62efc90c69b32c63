// Package graphics provides the geometry and color primitives shared by the
// range input core and its renderers.
package graphics

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a non-premultiplied 0xAARRGGBB value.
type Color uint32

// RGBA builds a Color from channel bytes and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 builds a Color from four channel bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255
}

// WithAlpha replaces the opacity, keeping the channels.
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts c for use with image/draw.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// Hex returns the color as "#RRGGBB", dropping alpha. Terminal styles accept
// this form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", uint8(c>>16), uint8(c>>8), uint8(c))
}

func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

const (
	ColorBlack = Color(0xFF000000)
	ColorWhite = Color(0xFFFFFFFF)
)
