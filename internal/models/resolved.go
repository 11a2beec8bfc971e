package models

import (
	"github.com/LHMTR/haruto-information/internal/colors"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/stations"
)

// ResolvedLine is a line summary with every multilingual field resolved for
// one reader.
type ResolvedLine struct {
	LineCode        string                    `json:"lineCode"`
	LineName        multilingual.ResolvedText `json:"lineName"`
	Destination     multilingual.ResolvedText `json:"destination"`
	CompanyCode     string                    `json:"companyCode"`
	Company         multilingual.ResolvedText `json:"company"`
	ServiceType     multilingual.ResolvedText `json:"serviceType"`
	Service         multilingual.ResolvedText `json:"service"`
	ServiceColor    string                    `json:"serviceColor"`
	Builder         multilingual.ResolvedText `json:"builder"`
	Depot           multilingual.ResolvedText `json:"depot"`
	Color           string                    `json:"color"`
	LineColors      []string                  `json:"lineColors"`
	ColorBar        []colors.Segment          `json:"colorBar"`
	NoTrainsRunning bool                      `json:"noTrainsRunning"`
}

// ResolvedStation is a station with its name resolved and its drawing colors.
type ResolvedStation struct {
	ID            string                    `json:"id"`
	Name          multilingual.ResolvedText `json:"name"`
	LineNumber    string                    `json:"lineNumber"`
	StationNumber string                    `json:"stationNumber"`
	Platform      string                    `json:"platform"`
	StopTime      string                    `json:"stopTime"`
	Note          string                    `json:"note"`
	Visual        stations.Visual           `json:"visual"`
}

// ResolvedLineDetail is a fully resolved line page.
type ResolvedLineDetail struct {
	ResolvedLine
	Stations []ResolvedStation `json:"stations"`
}

// ResolveLine resolves a summary for lang. Service colors that are not hex
// fall back to white and the card color to the neutral grey.
func ResolveLine(l LineSummary, lang multilingual.Language) ResolvedLine {
	lineColors := l.LineColors()
	color := colors.Neutral
	if len(lineColors) > 0 {
		color = lineColors[0]
	}

	return ResolvedLine{
		LineCode:        l.LineCode,
		LineName:        multilingual.ResolveBilingual(l.LineName, lang),
		Destination:     multilingual.ResolveBilingual(l.Destination, lang),
		CompanyCode:     l.CompanyCode,
		Company:         multilingual.ResolveBilingual(l.Company, lang),
		ServiceType:     multilingual.ResolveBilingual(l.ServiceType, lang),
		Service:         multilingual.ResolveBilingual(l.Service, lang),
		ServiceColor:    colors.OrDefault(l.ServiceColor, "#FFFFFF"),
		Builder:         multilingual.ResolveBilingual(l.Builder, lang),
		Depot:           multilingual.ResolveBilingual(l.Depot, lang),
		Color:           color,
		LineColors:      lineColors,
		ColorBar:        colors.Bar(lineColors),
		NoTrainsRunning: l.NoTrainsRunning(),
	}
}

// ResolveLineDetail resolves a full line document for lang.
func ResolveLineDetail(d *LineDetail, lang multilingual.Language) ResolvedLineDetail {
	entries := d.StationList()
	visuals := d.StationVisuals()

	resolved := make([]ResolvedStation, len(entries))
	for i, e := range entries {
		resolved[i] = ResolvedStation{
			ID:            e.ID,
			Name:          multilingual.ResolveBilingual(e.StationName, lang),
			LineNumber:    e.LineNumber,
			StationNumber: e.StationNumber,
			Platform:      e.Platform,
			StopTime:      e.StopTime,
			Note:          e.Note,
			Visual:        visuals[i],
		}
	}

	return ResolvedLineDetail{
		ResolvedLine: ResolveLine(d.LineSummary, lang),
		Stations:     resolved,
	}
}
