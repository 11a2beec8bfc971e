package colors

import (
	"fmt"
	"regexp"
)

// Neutral is shown wherever no usable color is available.
const Neutral = "#888"

var hexColorPattern = regexp.MustCompile(`(?i)^#([0-9A-F]{3}|[0-9A-F]{6})$`)

// IsHex reports whether s is a #RGB or #RRGGBB color.
func IsHex(s string) bool {
	return hexColorPattern.MatchString(s)
}

// OrDefault returns color when it is a valid hex color and fallback otherwise.
func OrDefault(color, fallback string) string {
	if IsHex(color) {
		return color
	}
	return fallback
}

// ValidLineColors keeps the valid hex colors of a line, in order.
func ValidLineColors(candidates ...string) []string {
	valid := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if IsHex(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

// Segment is one evenly sized stripe of a line's color bar.
type Segment struct {
	Color        string  `json:"color"`
	WidthPercent float64 `json:"widthPercent"`
	Divider      bool    `json:"divider"`
}

// Bar distributes colors evenly across a bar. An empty set yields a single
// neutral segment.
func Bar(colors []string) []Segment {
	if len(colors) == 0 {
		return []Segment{{Color: Neutral, WidthPercent: 100}}
	}

	width := 100 / float64(len(colors))
	segments := make([]Segment, len(colors))
	for i, c := range colors {
		segments[i] = Segment{Color: c, WidthPercent: width, Divider: i > 0}
	}
	return segments
}

// Gradient renders colors as hard-stop CSS linear gradient stops, each color
// covering an equal share.
func Gradient(colors []string) string {
	switch len(colors) {
	case 0:
		return Neutral
	case 1:
		return colors[0]
	}

	stops := ""
	width := 100 / float64(len(colors))
	for i, c := range colors {
		if i > 0 {
			stops += ", "
		}
		stops += fmt.Sprintf("%s %.4g%%, %s %.4g%%", c, width*float64(i), c, width*float64(i+1))
	}
	return "linear-gradient(to right, " + stops + ")"
}
