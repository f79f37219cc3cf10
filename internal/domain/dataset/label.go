package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yucatanweather/app/internal/domain/catalog"
)

// ClimateCode is the numeric training label.
type ClimateCode int

const (
	CodeSunny  ClimateCode = 0
	CodeCloudy ClimateCode = 1
	CodeWindy  ClimateCode = 2
	CodeRainy  ClimateCode = 3
)

// LabelColumn is appended to every labelled row.
const LabelColumn = "CLIMA_TIPO"

// Tag maps the code back to a climate tag.
func (c ClimateCode) Tag() catalog.ClimateTag {
	switch c {
	case CodeSunny:
		return catalog.Sunny
	case CodeWindy:
		return catalog.Windy
	case CodeRainy:
		return catalog.Rainy
	default:
		return catalog.Cloudy
	}
}

// Reading holds the four inputs of the rule set. Missing values are NaN and
// never satisfy a threshold.
type Reading struct {
	Precipitation float64
	Wind          float64
	Irradiance    float64
	Humidity      float64
}

// Classify applies the rules in order: rain, wind, clear sky, else cloudy.
func Classify(r Reading) ClimateCode {
	switch {
	case r.Precipitation > 5:
		return CodeRainy
	case r.Wind > 3:
		return CodeWindy
	case r.Irradiance > 20 && r.Humidity < 60:
		return CodeSunny
	default:
		return CodeCloudy
	}
}

// LabelStats counts rows per code.
type LabelStats struct {
	Rows   int
	ByCode map[ClimateCode]int
}

var droppedColumns = map[string]struct{}{"date": {}, "lat": {}, "lon": {}}

// Label reads a downloaded CSV, drops date/lat/lon and appends the label.
func Label(r io.Reader, w io.Writer) (LabelStats, error) {
	stats := LabelStats{ByCode: make(map[ClimateCode]int)}
	in := csv.NewReader(r)
	header, err := in.Read()
	if err != nil {
		return stats, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	keep := make([]int, 0, len(header))
	outHeader := make([]string, 0, len(header)+1)
	for i, name := range header {
		index[name] = i
		if _, drop := droppedColumns[name]; drop {
			continue
		}
		keep = append(keep, i)
		outHeader = append(outHeader, name)
	}
	for _, required := range []string{ParamPrecipitation, ParamWind, ParamIrradiance, ParamHumidity} {
		if _, ok := index[required]; !ok {
			return stats, fmt.Errorf("missing column %s", required)
		}
	}
	dateCol, hasDate := index["date"]

	out := csv.NewWriter(w)
	if err := out.Write(append(outHeader, LabelColumn)); err != nil {
		return stats, err
	}
	for line := 2; ; line++ {
		rec, err := in.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		if hasDate {
			if _, err := time.Parse("20060102", strings.TrimSpace(rec[dateCol])); err != nil {
				return stats, fmt.Errorf("line %d: bad date %q", line, rec[dateCol])
			}
		}
		code := Classify(Reading{
			Precipitation: cell(rec, index[ParamPrecipitation]),
			Wind:          cell(rec, index[ParamWind]),
			Irradiance:    cell(rec, index[ParamIrradiance]),
			Humidity:      cell(rec, index[ParamHumidity]),
		})
		row := make([]string, 0, len(keep)+1)
		for _, i := range keep {
			row = append(row, rec[i])
		}
		row = append(row, strconv.Itoa(int(code)))
		if err := out.Write(row); err != nil {
			return stats, err
		}
		stats.Rows++
		stats.ByCode[code]++
	}
	out.Flush()
	return stats, out.Error()
}

func cell(rec []string, i int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
