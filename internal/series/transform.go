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
	"sort"
	"strconv"
)

// missingValueSentinel is the placeholder some upstreams emit for absent
// observations. Sentinel entries are dropped, never coerced to zero.
const missingValueSentinel = "."

// transformObservations converts raw string-valued observations into chart
// points, filtering sentinel and non-numeric values.
func transformObservations(observations []fredObservation) []ChartPoint {
	points := make([]ChartPoint, 0, len(observations))
	for _, obs := range observations {
		if obs.Value == missingValueSentinel {
			continue
		}
		value, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			continue
		}
		points = append(points, ChartPoint{Date: obs.Date, Value: value})
	}
	return points
}

// mergeSeries merges several single series into one multi-series sequence
// keyed by the union of all dates, sorted ascending. A series with no
// observation at a date is simply absent at that date.
func mergeSeries(seriesByName map[string][]ChartPoint) []MultiSeriesPoint {
	valuesByDate := make(map[string]map[string]float64)
	for name, points := range seriesByName {
		for _, point := range points {
			if _, ok := valuesByDate[point.Date]; !ok {
				valuesByDate[point.Date] = make(map[string]float64)
			}
			valuesByDate[point.Date][name] = point.Value
		}
	}

	merged := make([]MultiSeriesPoint, 0, len(valuesByDate))
	for date, values := range valuesByDate {
		merged = append(merged, MultiSeriesPoint{Date: date, Values: values})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	return merged
}
