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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SyntheticTestSuite struct {
	suite.Suite
}

func TestSyntheticSuite(t *testing.T) {
	suite.Run(t, new(SyntheticTestSuite))
}

func (suite *SyntheticTestSuite) TestGenerateMonthlyPointCount() {
	points := unemploymentProfile.generate("country/USA", 2018, 2020)
	assert.Len(suite.T(), points, 3*12)

	assert.Equal(suite.T(), "2018-01", points[0].Date)
	assert.Equal(suite.T(), "2020-12", points[len(points)-1].Date)
}

func (suite *SyntheticTestSuite) TestGenerateIsDeterministic() {
	first := unemploymentProfile.generate("country/DEU", 2015, 2024)
	second := unemploymentProfile.generate("country/DEU", 2015, 2024)
	assert.Equal(suite.T(), first, second)
}

func (suite *SyntheticTestSuite) TestGenerateVariesByKey() {
	usa := unemploymentProfile.generate("country/USA", 2015, 2024)
	ita := unemploymentProfile.generate("country/ITA", 2015, 2024)
	assert.NotEqual(suite.T(), usa, ita)
}

func (suite *SyntheticTestSuite) TestGenerateClampsToProfileRange() {
	for _, profile := range fredSeriesProfiles {
		points := profile.generate("any", 2015, 2024)
		for _, point := range points {
			assert.GreaterOrEqual(suite.T(), point.Value, profile.min)
			assert.LessOrEqual(suite.T(), point.Value, profile.max)
		}
	}
}

func (suite *SyntheticTestSuite) TestGenerateShockYearRaisesValues() {
	points := unemploymentProfile.generate("country/USA", 2019, 2020)

	sumByYear := map[string]float64{}
	countByYear := map[string]float64{}
	for _, point := range points {
		year := point.Date[:4]
		sumByYear[year] += point.Value
		countByYear[year]++
	}

	// The 2020 shock shifts the mean by +4 with volatility 1, so the yearly
	// averages must be clearly separated.
	mean2019 := sumByYear["2019"] / countByYear["2019"]
	mean2020 := sumByYear["2020"] / countByYear["2020"]
	assert.Greater(suite.T(), mean2020, mean2019+1.5)
}

func (suite *SyntheticTestSuite) TestGenerateSwapsReversedRange() {
	points := unemploymentProfile.generate("country/USA", 2022, 2020)
	assert.Len(suite.T(), points, 3*12)
	assert.Equal(suite.T(), "2020-01", points[0].Date)
}

func (suite *SyntheticTestSuite) TestGenerateRoundsToOneDecimal() {
	points := genericRateProfile.generate("XYZ", 2020, 2021)
	for _, point := range points {
		scaled := point.Value * 10
		assert.InDelta(suite.T(), math.Round(scaled), scaled, 1e-9)
	}
}

func (suite *SyntheticTestSuite) TestYearFromDate() {
	testCases := []struct {
		name     string
		date     string
		fallback int
		expected int
	}{
		{name: "FullDate", date: "2019-06-01", fallback: 2015, expected: 2019},
		{name: "YearOnly", date: "2021", fallback: 2015, expected: 2021},
		{name: "Empty", date: "", fallback: 2015, expected: 2015},
		{name: "Malformed", date: "latest", fallback: 2015, expected: 2015},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, yearFromDate(tc.date, tc.fallback))
		})
	}
}

func (suite *SyntheticTestSuite) TestSeedForIsOrderSensitive() {
	assert.Equal(suite.T(), seedFor("a", "b", 1), seedFor("a", "b", 1))
	assert.NotEqual(suite.T(), seedFor("a", "b", 1), seedFor("b", "a", 1))
}
