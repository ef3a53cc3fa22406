package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Fixed fallbacks used whenever a color string cannot be parsed. Malformed
// style input degrades to these instead of failing a render.
const (
	DefaultAccent     = "#ec4899"
	DefaultBackground = "#0a0a0f"
	DefaultText       = "#ffffff"
	fallbackColor     = "#1a1a2e"
)

var hexColorRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ParseHex decodes a 3- or 6-digit hex color. Three-digit input is expanded
// to its six-digit equivalent before channel extraction.
func ParseHex(color string) (r, g, b int, ok bool) {
	color = strings.TrimSpace(color)
	if !strings.HasPrefix(color, "#") {
		return 0, 0, 0, false
	}
	hex := color[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(n >> 16), int((n >> 8) & 0xff), int(n & 0xff), true
}

// AdjustColor shifts every RGB channel of a hex color by amount, clamping
// each channel to [0,255]. Non-hex input is returned untouched; an empty
// string yields the fixed fallback. It never errors.
func AdjustColor(color string, amount int) string {
	r, g, b, ok := ParseHex(color)
	if !ok {
		if color == "" {
			return fallbackColor
		}
		return color
	}
	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(r+amount), clampChannel(g+amount), clampChannel(b+amount))
}

// RGB returns the channels of a hex color, substituting fallback when the
// input is malformed so the rasterizer never sees an invalid color.
func RGB(color, fallback string) (r, g, b int) {
	if r, g, b, ok := ParseHex(color); ok {
		return r, g, b
	}
	r, g, b, _ = ParseHex(fallback)
	return r, g, b
}

// ExtractHexColors pulls every hex color literal out of a freeform style
// string such as a CSS gradient. Used to defuse unsupported color syntax
// before a frame is rasterized: anything that is not plain hex is ignored.
func ExtractHexColors(style string) []string {
	return hexColorRe.FindAllString(style, -1)
}
