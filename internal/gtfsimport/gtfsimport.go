// Package gtfsimport turns a GTFS static feed into per-line documents.
package gtfsimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"

	"github.com/LHMTR/haruto-information/internal/catalog"
	"github.com/LHMTR/haruto-information/internal/colors"
	"github.com/LHMTR/haruto-information/internal/logging"
	"github.com/LHMTR/haruto-information/internal/models"
	"github.com/LHMTR/haruto-information/internal/multilingual"
	"github.com/LHMTR/haruto-information/internal/utils"
)

// Options controls how feed text is placed into multilingual fields.
type Options struct {
	// Language is used for agencies that do not declare agency_lang.
	Language multilingual.Language
}

// Result is the outcome of Convert.
type Result struct {
	Lines []*models.LineDetail
	// Skipped lists route ids that cannot be used as line codes.
	Skipped []string
}

var serviceTypes = map[gtfs.RouteType]string{
	0:  "tram",
	1:  "subway",
	2:  "rail",
	3:  "bus",
	4:  "ferry",
	5:  "cable_tram",
	6:  "aerial_lift",
	7:  "funicular",
	11: "trolleybus",
	12: "monorail",
}

// Convert builds one line per route. Stations come from the route's longest
// trip; routes without trips are kept and marked as having no trains.
func Convert(static *gtfs.Static, opts Options) Result {
	result := Result{Lines: []*models.LineDetail{}}
	if static == nil {
		return result
	}

	tripsByRoute := make(map[string][]*gtfs.ScheduledTrip)
	for i := range static.Trips {
		trip := &static.Trips[i]
		if trip.Route == nil {
			continue
		}
		tripsByRoute[trip.Route.Id] = append(tripsByRoute[trip.Route.Id], trip)
	}

	for i := range static.Routes {
		route := &static.Routes[i]
		if err := utils.ValidateID(route.Id); err != nil || route.Id+".json" == catalog.IndexFile {
			result.Skipped = append(result.Skipped, route.Id)
			continue
		}
		result.Lines = append(result.Lines, convertRoute(route, tripsByRoute[route.Id], opts))
	}

	sort.Slice(result.Lines, func(i, j int) bool {
		return result.Lines[i].LineCode < result.Lines[j].LineCode
	})
	return result
}

func convertRoute(route *gtfs.Route, trips []*gtfs.ScheduledTrip, opts Options) *models.LineDetail {
	lang := routeLanguage(route, opts)
	text := func(s string) string {
		return multilingual.NewField(map[multilingual.Language]string{lang: s}).Format()
	}

	name := route.LongName
	if name == "" {
		name = route.ShortName
	}

	running := len(trips) > 0
	summary := models.LineSummary{
		LineCode:    route.Id,
		LineName:    text(name),
		ServiceType: serviceTypes[route.Type],
		Train:       &running,
	}
	if color := "#" + strings.TrimPrefix(route.Color, "#"); colors.IsHex(color) {
		summary.LineColor1 = color
	}
	if route.Agency != nil {
		summary.CompanyCode = route.Agency.Id
		summary.Company = text(route.Agency.Name)
	}

	trip := representativeTrip(trips)
	if trip == nil {
		return models.NewLineDetail(summary)
	}

	if trip.Headsign != "" {
		summary.Destination = text(trip.Headsign)
	}

	stopTimes := sortedStopTimes(trip.StopTimes)
	if summary.Destination == "" && len(stopTimes) > 0 {
		summary.Destination = text(stopName(stopTimes[len(stopTimes)-1].Stop))
	}

	detail := models.NewLineDetail(summary)
	seen := make(map[string]int)
	for _, st := range stopTimes {
		if st.Stop == nil {
			continue
		}
		id := st.Stop.Id
		seen[id]++
		if seen[id] > 1 {
			id = fmt.Sprintf("%s-%d", id, seen[id])
		}
		detail.AddStation(id, models.Station{
			StationName: text(stopName(st.Stop)),
			Color1:      summary.LineColor1,
			Platform:    st.Stop.PlatformCode,
			StopTime:    formatStopTime(st.ArrivalTime),
		})
	}
	return detail
}

func routeLanguage(route *gtfs.Route, opts Options) multilingual.Language {
	if route.Agency != nil {
		if lang, ok := multilingual.ParseLanguage(route.Agency.Language); ok {
			return lang
		}
	}
	if opts.Language.Valid() {
		return opts.Language
	}
	return multilingual.English
}

// representativeTrip picks the trip with the most stop times, breaking ties
// by trip id.
func representativeTrip(trips []*gtfs.ScheduledTrip) *gtfs.ScheduledTrip {
	var best *gtfs.ScheduledTrip
	for _, trip := range trips {
		if best == nil ||
			len(trip.StopTimes) > len(best.StopTimes) ||
			(len(trip.StopTimes) == len(best.StopTimes) && trip.ID < best.ID) {
			best = trip
		}
	}
	return best
}

func sortedStopTimes(stopTimes []gtfs.ScheduledStopTime) []gtfs.ScheduledStopTime {
	sorted := make([]gtfs.ScheduledStopTime, len(stopTimes))
	copy(sorted, stopTimes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StopSequence < sorted[j].StopSequence
	})
	return sorted
}

func stopName(stop *gtfs.Stop) string {
	if stop == nil {
		return ""
	}
	if stop.Name == "" && stop.Parent != nil {
		return stop.Parent.Name
	}
	return stop.Name
}

// formatStopTime renders a time since service-day midnight as HH:MM. Hours
// past 24 are kept, as GTFS does for trips running after midnight. A
// negative duration marks a missing time.
func formatStopTime(d time.Duration) string {
	if d < 0 {
		return ""
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func rawGtfsData(ctx context.Context, source string, logger *slog.Logger) ([]byte, error) {
	if !isRemote(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GTFS request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "close_gtfs_response")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

// Load reads and parses a GTFS zip from a local path or an http(s) URL.
func Load(ctx context.Context, source string, logger *slog.Logger) (*gtfs.Static, error) {
	b, err := rawGtfsData(ctx, source, logger)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return staticData, nil
}

// Write stores every converted line in dataDir and rebuilds the index.
func Write(dataDir string, result Result, logger *slog.Logger) (catalog.IndexResult, error) {
	for _, line := range result.Lines {
		if err := catalog.WriteLine(dataDir, line, logger); err != nil {
			return catalog.IndexResult{}, fmt.Errorf("writing line %s: %w", line.LineCode, err)
		}
	}
	return catalog.RebuildIndex(dataDir, catalog.IndexOptions{}, logger)
}

// Import loads the feed at source and writes its lines into dataDir.
func Import(ctx context.Context, source, dataDir string, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	static, err := Load(ctx, source, logger)
	if err != nil {
		return Result{}, err
	}

	result := Convert(static, opts)
	for _, id := range result.Skipped {
		logger.Warn("skipping route with unusable id", slog.String("route_id", id))
	}

	index, err := Write(dataDir, result, logger)
	if err != nil {
		return result, err
	}

	logging.LogOperation(logger, "gtfs_imported",
		slog.String("source", source),
		slog.Int("lines", len(result.Lines)),
		slog.Int("indexed", len(index.Lines)),
		slog.Duration("duration", time.Since(start)))
	return result, nil
}
