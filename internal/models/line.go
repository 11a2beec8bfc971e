package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/LHMTR/haruto-information/internal/colors"
	"github.com/LHMTR/haruto-information/internal/stations"
)

// LineSummary is one entry of the line list (index.json). Text fields hold
// pipe-delimited multilingual values.
type LineSummary struct {
	LineCode     string `json:"line_code"`
	LineName     string `json:"line_name,omitempty"`
	Destination  string `json:"destination,omitempty"`
	CompanyCode  string `json:"company_code,omitempty"`
	Company      string `json:"company,omitempty"`
	ServiceType  string `json:"service_type,omitempty"`
	Service      string `json:"service,omitempty"`
	ServiceColor string `json:"service_color,omitempty"`
	Builder      string `json:"builder,omitempty"`
	Depot        string `json:"depot,omitempty"`
	LineColor1   string `json:"line_color_1,omitempty"`
	LineColor2   string `json:"line_color_2,omitempty"`
	LineColor3   string `json:"line_color_3,omitempty"`
	// Train is nil when the source omits it; only an explicit false means
	// no trains are running.
	Train *bool `json:"train,omitempty"`
}

// LineColors returns the valid hex colors among line_color_1..3.
func (l LineSummary) LineColors() []string {
	return colors.ValidLineColors(l.LineColor1, l.LineColor2, l.LineColor3)
}

// NoTrainsRunning reports whether the source explicitly marks the line as
// having no trains in service.
func (l LineSummary) NoTrainsRunning() bool {
	return l.Train != nil && !*l.Train
}

// Station is a stop on a line.
type Station struct {
	StationName   string `json:"station_name"`
	Color1        string `json:"color1,omitempty"`
	Color2        string `json:"color2,omitempty"`
	Directly      bool   `json:"directly,omitempty"`
	LineNumber    string `json:"line_number,omitempty"`
	StationNumber string `json:"station_number,omitempty"`
	Platform      string `json:"platform,omitempty"`
	StopTime      string `json:"stop_time,omitempty"`
	Note          string `json:"note,omitempty"`
}

// StationEntry pairs a station with its id.
type StationEntry struct {
	ID string
	Station
}

// LineDetail is the full per-line document. Stations keep the key order of
// the source object, which is the order along the line.
type LineDetail struct {
	LineSummary
	Stations *orderedmap.OrderedMap[string, Station] `json:"stations,omitempty"`
}

// NewLineDetail returns a detail with an empty, ready to use station map.
func NewLineDetail(summary LineSummary) *LineDetail {
	return &LineDetail{
		LineSummary: summary,
		Stations:    orderedmap.New[string, Station](),
	}
}

// AddStation appends a station to the end of the line.
func (d *LineDetail) AddStation(id string, s Station) {
	if d.Stations == nil {
		d.Stations = orderedmap.New[string, Station]()
	}
	d.Stations.Set(id, s)
}

// StationList returns the stations in line order.
func (d *LineDetail) StationList() []StationEntry {
	if d == nil || d.Stations == nil {
		return []StationEntry{}
	}

	entries := make([]StationEntry, 0, d.Stations.Len())
	for pair := d.Stations.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, StationEntry{ID: pair.Key, Station: pair.Value})
	}
	return entries
}

// StationVisuals computes the marker and connector colors of every station.
func (d *LineDetail) StationVisuals() []stations.Visual {
	entries := d.StationList()
	inputs := make([]stations.Station, len(entries))
	for i, e := range entries {
		inputs[i] = stations.Station{Color1: e.Color1, Color2: e.Color2, Through: e.Directly}
	}
	return stations.ComputeStationVisuals(inputs)
}
