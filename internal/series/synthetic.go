/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package series

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// seriesProfile declares how a synthetic series is modeled: per-key baselines,
// random volatility, step changes in known shock years, and a plausibility
// clamp. One generic generator consumes the table.
type seriesProfile struct {
	name            string
	unit            string
	baselines       map[string]float64
	defaultBaseline float64
	volatility      float64
	shocks          map[int]float64
	min             float64
	max             float64
	monthly         bool
}

// unemploymentProfile models an unemployment rate series with approximate
// historical baselines per country and the 2020/2021 pandemic shock.
var unemploymentProfile = seriesProfile{
	name:            "Unemployment rate",
	unit:            "percent",
	baselines:       map[string]float64{
		"country/USA": 5.0,
		"country/DEU": 4.5,
		"country/CHN": 4.0,
		"country/JPN": 3.0,
		"country/GBR": 5.5,
		"country/FRA": 8.5,
		"country/ITA": 10.0,
		"country/CAN": 6.5,
		"country/AUS": 5.5,
	},
	defaultBaseline: 5.5,
	volatility:      1.0,
	shocks:          map[int]float64{2020: 4.0, 2021: 2.0},
	min:             1.5,
	max:             15,
	monthly:         true,
}

// fredSeriesProfiles models a few well-known series identifiers for the
// observation fallback. Anything unknown uses genericRateProfile.
var fredSeriesProfiles = map[string]seriesProfile{
	"DFF": {
		name: "Federal Funds Effective Rate", unit: "percent",
		defaultBaseline: 2.5, volatility: 0.5,
		shocks: map[int]float64{2020: -2.0, 2022: 2.0},
		min:    0, max: 8, monthly: true,
	},
	"UNRATE": {
		name: "Unemployment Rate", unit: "percent",
		defaultBaseline: 5.0, volatility: 0.5,
		shocks: map[int]float64{2020: 4.0, 2021: 2.0},
		min:    1.5, max: 15, monthly: true,
	},
	"CPIAUCSL": {
		name: "Consumer Price Index", unit: "index",
		defaultBaseline: 260, volatility: 3,
		shocks: map[int]float64{2021: 10, 2022: 25},
		min:    200, max: 340, monthly: true,
	},
}

// genericRateProfile is the fallback profile for series with no dedicated model.
var genericRateProfile = seriesProfile{
	name:            "Series",
	unit:            "percent",
	defaultBaseline: 3.0,
	volatility:      0.8,
	shocks:          map[int]float64{2020: 1.5},
	min:             0,
	max:             20,
	monthly:         true,
}

// generate produces a deterministic synthetic series for the given key and
// year range. The output is clamped to [min, max] and sorted ascending by
// date; monthly profiles emit 12 points per year.
func (p seriesProfile) generate(key string, startYear, endYear int) []ChartPoint {
	if endYear < startYear {
		startYear, endYear = endYear, startYear
	}

	baseline := p.defaultBaseline
	if b, ok := p.baselines[key]; ok {
		baseline = b
	}

	rng := rand.New(rand.NewSource(seedFor(p.name, key, startYear, endYear)))

	var points []ChartPoint
	for year := startYear; year <= endYear; year++ {
		shock := p.shocks[year]
		if p.monthly {
			for month := 1; month <= 12; month++ {
				value := p.clamp(baseline + shock + (rng.Float64()*2-1)*p.volatility)
				points = append(points, ChartPoint{
					Date:  fmt.Sprintf("%d-%02d", year, month),
					Value: roundToOneDecimal(value),
				})
			}
		} else {
			value := p.clamp(baseline + shock + (rng.Float64()*2-1)*p.volatility)
			points = append(points, ChartPoint{
				Date:  strconv.Itoa(year),
				Value: roundToOneDecimal(value),
			})
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func (p seriesProfile) clamp(value float64) float64 {
	return math.Max(p.min, math.Min(p.max, value))
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// seedFor derives a deterministic seed from the request shape so repeated
// identical requests produce the same synthetic curve.
func seedFor(parts ...any) int64 {
	h := fnv.New64a()
	for _, part := range parts {
		_, _ = fmt.Fprintf(h, "%v|", part)
	}
	return int64(h.Sum64())
}

// yearFromDate extracts the leading year of an ISO-ish date string, falling
// back to the given default when absent or unparsable.
func yearFromDate(date string, fallback int) int {
	if date == "" {
		return fallback
	}
	yearPart, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return fallback
	}
	return year
}
