// Package stations computes the marker and connector colors drawn down the
// station list of a line.
package stations

import (
	"fmt"

	"github.com/LHMTR/haruto-information/internal/colors"
)

// Station carries the fields of a station record that affect its drawing.
type Station struct {
	Color1  string
	Color2  string
	Through bool
}

// Connector is the segment drawn from a station down to the next one.
type Connector struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// Visual describes how one station and its outgoing connector are drawn.
type Visual struct {
	Through      bool       `json:"through"`
	MarkerTop    string     `json:"markerTop"`
	MarkerBottom string     `json:"markerBottom"`
	Connector    *Connector `json:"connector,omitempty"`
}

// ComputeStationVisuals returns one Visual per station. Termini are never
// drawn as through stations. A through station's connector leaves in its
// second color, while every connector arrives in the next station's first
// color.
func ComputeStationVisuals(stations []Station) []Visual {
	visuals := make([]Visual, len(stations))
	last := len(stations) - 1

	for i, s := range stations {
		color1, color2 := s.colors()
		through := i != 0 && i != last && s.Through

		v := Visual{Through: through, MarkerTop: color1, MarkerBottom: color1}
		if through {
			v.MarkerBottom = color2
		}

		if i < last {
			next, _ := stations[i+1].colors()
			v.Connector = &Connector{Top: v.MarkerBottom, Bottom: next}
		}

		visuals[i] = v
	}

	return visuals
}

func (s Station) colors() (string, string) {
	color1 := s.Color1
	if color1 == "" {
		color1 = colors.Neutral
	}
	color2 := s.Color2
	if color2 == "" {
		color2 = color1
	}
	return color1, color2
}

// MarkerBackground is the CSS background of a station marker: solid for a
// regular station, split top/bottom with a thin white divider for a through
// station.
func MarkerBackground(v Visual) string {
	if !v.Through {
		return v.MarkerTop
	}
	return fmt.Sprintf("linear-gradient(to bottom, %[1]s 0%%, %[1]s 49%%, white 49%%, white 51%%, %[2]s 51%%, %[2]s 100%%)",
		v.MarkerTop, v.MarkerBottom)
}

// ConnectorBackground is the CSS background of a connector split at half height.
func ConnectorBackground(c Connector) string {
	return fmt.Sprintf("linear-gradient(to bottom, %[1]s 0%%, %[1]s 50%%, %[2]s 50%%, %[2]s 100%%)",
		c.Top, c.Bottom)
}
