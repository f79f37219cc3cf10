package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
)

// FetchConfig controls a grid download.
type FetchConfig struct {
	Grid      Grid
	StartYear int
	EndYear   int
}

// FetchStats summarises a download run.
type FetchStats struct {
	Points  int
	Skipped int
	Rows    int
}

// Fetcher walks the grid and writes one CSV row per point per day.
type Fetcher struct {
	cfg    FetchConfig
	source PointSource
	logger *slog.Logger
}

// NewFetcher wires the downloader.
func NewFetcher(cfg FetchConfig, source PointSource, logger *slog.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, source: source, logger: logger.With("component", "dataset.fetcher")}
}

// Run downloads every grid point into w as date,lat,lon,<params...>. A failed
// point is logged and skipped; a write failure aborts the run.
func (f *Fetcher) Run(ctx context.Context, w io.Writer) (FetchStats, error) {
	var stats FetchStats
	out := csv.NewWriter(w)
	header := append([]string{"date", "lat", "lon"}, ExpectedParameters...)
	if err := out.Write(header); err != nil {
		return stats, err
	}

	for _, pt := range f.cfg.Grid.Points() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Points++
		f.logger.Info("downloading point", "lat", pt.Lat, "lng", pt.Lng)
		series, err := f.source.FetchPoint(ctx, PointQuery{
			Lat:        pt.Lat,
			Lng:        pt.Lng,
			StartYear:  f.cfg.StartYear,
			EndYear:    f.cfg.EndYear,
			Parameters: ExpectedParameters,
		})
		if err != nil {
			f.logger.Warn("point skipped", "lat", pt.Lat, "lng", pt.Lng, "error", err)
			stats.Skipped++
			continue
		}
		if len(series) == 0 {
			stats.Skipped++
			continue
		}
		rows := seriesRows(series, strconv.FormatFloat(pt.Lat, 'f', -1, 64), strconv.FormatFloat(pt.Lng, 'f', -1, 64))
		if err := out.WriteAll(rows); err != nil {
			return stats, fmt.Errorf("write rows: %w", err)
		}
		stats.Rows += len(rows)
	}
	out.Flush()
	return stats, out.Error()
}

func seriesRows(series Series, lat, lng string) [][]string {
	present := make([]string, 0, len(series))
	for name := range series {
		present = append(present, name)
	}
	sort.Strings(present)

	columns := make([]map[string]float64, len(ExpectedParameters))
	for i, name := range ExpectedParameters {
		if actual, ok := ResolveParameter(name, present); ok {
			columns[i] = series[actual]
		}
	}

	dates := make([]string, 0, len(series[present[0]]))
	for date := range series[present[0]] {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		row := []string{date, lat, lng}
		for _, col := range columns {
			v, ok := col[date]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		rows = append(rows, row)
	}
	return rows
}
