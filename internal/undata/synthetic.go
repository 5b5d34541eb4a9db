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

package undata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"

	"github.com/worlddata/insights/internal/catalog"
)

// syntheticCountries is the set of countries a generated CSV body covers.
var syntheticCountries = []string{
	"United States of America",
	"China",
	"Japan",
	"Germany",
	"India",
	"United Kingdom",
	"France",
	"Italy",
	"Canada",
	"Brazil",
	"Australia",
	"Republic of Korea",
	"Spain",
	"Mexico",
	"Indonesia",
	"Netherlands",
}

// datasetProfile declares the value model of a generated dataset body.
type datasetProfile struct {
	unit       string
	baseline   float64
	volatility float64
	min        float64
	max        float64
}

// datasetProfiles maps catalog dataset ids to dedicated value models. Datasets
// without an entry use genericDatasetProfile.
var datasetProfiles = map[string]datasetProfile{
	"population-total":  {unit: "thousands", baseline: 65000, volatility: 25000, min: 500, max: 1450000},
	"population-growth": {unit: "percent", baseline: 1.0, volatility: 0.8, min: -1, max: 3.5},
	"gdp-total":         {unit: "millions of US dollars", baseline: 1800000, volatility: 900000, min: 20000, max: 28000000},
	"gdp-per-capita":    {unit: "US dollars", baseline: 28000, volatility: 16000, min: 1200, max: 95000},
	"unemployment":      {unit: "percent", baseline: 5.5, volatility: 2.0, min: 1.5, max: 15},
	"cpi":               {unit: "index", baseline: 110, volatility: 12, min: 90, max: 180},
	"life-expectancy":   {unit: "years", baseline: 78, volatility: 4, min: 62, max: 86},
	"internet-usage":    {unit: "per 100 inhabitants", baseline: 78, volatility: 12, min: 30, max: 99},
	"co2-emissions":     {unit: "thousand metric tons", baseline: 450000, volatility: 250000, min: 8000, max: 11000000},
}

// genericDatasetProfile is the fallback model for datasets with no dedicated entry.
var genericDatasetProfile = datasetProfile{
	unit:       "value",
	baseline:   100,
	volatility: 30,
	min:        0,
	max:        1000,
}

// generateCSV produces a deterministic synthetic CSV body for a catalog
// dataset, shaped like the upstream yearbook files: one row per country and
// year with the dataset name as the series label.
func generateCSV(dataset *catalog.Dataset) ([]byte, error) {
	profile, ok := datasetProfiles[dataset.ID]
	if !ok {
		profile = genericDatasetProfile
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Region/Country/Area", "Year", "Series", "Value", "Unit"}); err != nil {
		return nil, err
	}

	for _, country := range syntheticCountries {
		rng := rand.New(rand.NewSource(seedFor(dataset.ID, country)))
		// Each country gets its own level so the table does not look flat.
		level := profile.baseline + (rng.Float64()*2-1)*profile.volatility

		for year := syntheticStartYear; year <= syntheticEndYear; year++ {
			value := level + (rng.Float64()*2-1)*profile.volatility*0.1
			value = math.Max(profile.min, math.Min(profile.max, value))

			record := []string{
				country,
				strconv.Itoa(year),
				dataset.Name,
				strconv.FormatFloat(math.Round(value*10)/10, 'f', -1, 64),
				profile.unit,
			}
			if err := writer.Write(record); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// seedFor derives a deterministic seed from the request shape so repeated
// requests for the same dataset produce the same body.
func seedFor(parts ...string) int64 {
	h := fnv.New64a()
	for _, part := range parts {
		_, _ = fmt.Fprintf(h, "%s|", part)
	}
	return int64(h.Sum64())
}
