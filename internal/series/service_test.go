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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
)

const testFredAPIKeyEnv = "FRED_API_KEY_TEST"

type SeriesServiceTestSuite struct {
	suite.Suite
}

func TestSeriesServiceSuite(t *testing.T) {
	suite.Run(t, new(SeriesServiceTestSuite))
}

func (suite *SeriesServiceTestSuite) SetupTest() {
	config.ResetInsightsRuntime()
	err := config.InitializeInsightsRuntime("/tmp", &config.Config{
		Sources: config.SourcesConfig{
			Fred:        config.SourceConfig{BaseURL: "https://fred.example/fred", Timeout: 1, APIKeyEnv: testFredAPIKeyEnv},
			WorldBank:   config.SourceConfig{BaseURL: "https://wb.example/v2", Timeout: 1},
			DataCommons: config.SourceConfig{BaseURL: "https://dc.example/v2", Timeout: 1},
			Census:      config.SourceConfig{BaseURL: "https://census.example/data", Timeout: 1},
		},
	})
	suite.Require().NoError(err)
	suite.T().Setenv(testFredAPIKeyEnv, "test-key")
}

func (suite *SeriesServiceTestSuite) TearDownTest() {
	config.ResetInsightsRuntime()
}

func newTestService(client *fakeHTTPClient) (*seriesService, *cache.ResponseCache) {
	responseCache := cache.NewResponseCache("test", true)
	return &seriesService{engine: newFetchEngine(responseCache, client)}, responseCache
}

func (suite *SeriesServiceTestSuite) TestGetFredObservationsLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body:   `{"observations":[{"date":"2024-01-01","value":"5.33"},{"date":"2024-01-02","value":"."},{"date":"2024-01-03","value":"5.34"}]}`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetFredObservations(context.Background(),
		FredObservationsRequest{SeriesID: "DFF"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	// The "." sentinel entry is filtered out, not zero-coerced.
	assert.Equal(suite.T(), []ChartPoint{
		{Date: "2024-01-01", Value: 5.33},
		{Date: "2024-01-03", Value: 5.34},
	}, result.Observations)
}

func (suite *SeriesServiceTestSuite) TestGetFredObservationsCacheHitAvoidsNetwork() {
	client := &fakeHTTPClient{responses: []fakeResponse{
		{status: 200, body: `{"observations":[{"date":"2024-01-01","value":"5.33"}]}`},
		{err: errors.New("network must not be hit twice")},
	}}
	service, _ := newTestService(client)

	first, svcErr := service.GetFredObservations(context.Background(), FredObservationsRequest{SeriesID: "DFF"})
	assert.Nil(suite.T(), svcErr)

	second, svcErr := service.GetFredObservations(context.Background(), FredObservationsRequest{SeriesID: "DFF"})
	assert.Nil(suite.T(), svcErr)

	assert.Equal(suite.T(), first.Provenance, second.Provenance)
	assert.Equal(suite.T(), first.Observations, second.Observations)
	assert.Equal(suite.T(), int32(1), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetFredObservationsMissingSeriesID() {
	client := &fakeHTTPClient{}
	service, _ := newTestService(client)

	result, svcErr := service.GetFredObservations(context.Background(), FredObservationsRequest{SeriesID: " "})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorMissingSeriesID, svcErr)
	assert.Equal(suite.T(), int32(0), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetFredObservationsMissingAPIKey() {
	suite.T().Setenv(testFredAPIKeyEnv, "")
	client := &fakeHTTPClient{}
	service, _ := newTestService(client)

	result, svcErr := service.GetFredObservations(context.Background(), FredObservationsRequest{SeriesID: "DFF"})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorSourceNotConfigured, svcErr)
	assert.Equal(suite.T(), int32(0), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetFredObservationsSyntheticFallback() {
	client := &fakeHTTPClient{responses: []fakeResponse{{err: errors.New("connection refused")}}}
	service, responseCache := newTestService(client)

	result, svcErr := service.GetFredObservations(context.Background(), FredObservationsRequest{
		SeriesID:         "UNRATE",
		ObservationStart: "2019-01-01",
		ObservationEnd:   "2021-12-31",
	})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceSynthetic, result.Provenance)
	// Monthly granularity across the requested window.
	assert.Len(suite.T(), result.Observations, 3*12)
	for _, point := range result.Observations {
		assert.GreaterOrEqual(suite.T(), point.Value, 1.5)
		assert.LessOrEqual(suite.T(), point.Value, 15.0)
	}
	assert.True(suite.T(), sortedByDate(result.Observations))
	assert.Equal(suite.T(), 1, responseCache.Size())
}

func (suite *SeriesServiceTestSuite) TestGetFredSeriesInfoLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body:   `{"seriess":[{"id":"DFF","title":"Federal Funds Effective Rate","frequency":"Daily"}]}`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetFredSeriesInfo(context.Background(), "DFF")

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	assert.Equal(suite.T(), "Federal Funds Effective Rate", result.Series.Title)
}

func (suite *SeriesServiceTestSuite) TestGetFredSeriesInfoMockFallback() {
	client := &fakeHTTPClient{responses: []fakeResponse{{err: errors.New("connection refused")}}}
	service, responseCache := newTestService(client)

	result, svcErr := service.GetFredSeriesInfo(context.Background(), "UNRATE")

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceMock, result.Provenance)
	assert.Equal(suite.T(), "Unemployment Rate", result.Series.Title)
	// Static reference data is never cached.
	assert.Equal(suite.T(), 0, responseCache.Size())
}

func (suite *SeriesServiceTestSuite) TestSearchFredSeriesMissingSearchText() {
	client := &fakeHTTPClient{}
	service, _ := newTestService(client)

	result, svcErr := service.SearchFredSeries(context.Background(), FredSearchRequest{})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorMissingSearchText, svcErr)
	assert.Equal(suite.T(), int32(0), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestSearchFredSeriesLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body:   `{"count":1,"seriess":[{"id":"UNRATE","title":"Unemployment Rate"}]}`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.SearchFredSeries(context.Background(),
		FredSearchRequest{SearchText: "unemployment"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, result.Count)
	assert.Equal(suite.T(), "UNRATE", result.Series[0].ID)
}

func (suite *SeriesServiceTestSuite) TestGetWorldBankIndicatorLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body: `[{"page":1,"pages":1,"per_page":1000,"total":3},` +
			`[{"indicator":{"id":"SP.POP.TOTL","value":"Population, total"},"country":{"id":"WLD","value":"World"},"countryiso3code":"WLD","date":"2022","value":8047923006},` +
			`{"indicator":{"id":"SP.POP.TOTL","value":"Population, total"},"country":{"id":"WLD","value":"World"},"countryiso3code":"WLD","date":"2021","value":null},` +
			`{"indicator":{"id":"SP.POP.TOTL","value":"Population, total"},"country":{"id":"WLD","value":"World"},"countryiso3code":"WLD","date":"2020","value":7868377934}]]`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetWorldBankIndicator(context.Background(),
		WorldBankRequest{Indicator: "SP.POP.TOTL"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	// The null 2021 observation is filtered, not zero-coerced.
	assert.Len(suite.T(), result.Data, 2)
	for _, record := range result.Data {
		assert.NotNil(suite.T(), record.Value)
	}
}

func (suite *SeriesServiceTestSuite) TestGetWorldBankIndicatorStructuralMismatch() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "NonArray", body: `{"message":"rate limited"}`},
		{name: "SingleElement", body: `[{"page":1}]`},
		{name: "DataNotArray", body: `[{"page":1},{"unexpected":"object"}]`},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			client := &fakeHTTPClient{responses: []fakeResponse{{status: 200, body: tc.body}}}
			service, _ := newTestService(client)

			result, svcErr := service.GetWorldBankIndicator(context.Background(),
				WorldBankRequest{Indicator: "SP.POP.TOTL"})

			assert.Nil(suite.T(), svcErr)
			// A violated envelope degrades to an empty valid result.
			assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
			assert.Empty(suite.T(), result.Data)
		})
	}
}

func (suite *SeriesServiceTestSuite) TestGetWorldBankIndicatorMockFallback() {
	client := &fakeHTTPClient{responses: []fakeResponse{{err: errors.New("connection refused")}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetWorldBankIndicator(context.Background(),
		WorldBankRequest{Indicator: "SP.POP.TOTL"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceMock, result.Provenance)
	assert.NotEmpty(suite.T(), result.Data)
	assert.Equal(suite.T(), "2010", result.Data[0].Date)
	assert.Equal(suite.T(), "WLD", result.Data[0].CountryISO3Code)
}

func (suite *SeriesServiceTestSuite) TestGetWorldBankIndicatorMissingIndicator() {
	client := &fakeHTTPClient{}
	service, _ := newTestService(client)

	result, svcErr := service.GetWorldBankIndicator(context.Background(), WorldBankRequest{})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorMissingIndicator, svcErr)
	assert.Equal(suite.T(), int32(0), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetDataCommonsObservationsLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body: `{"byVariable":{"UnemploymentRate_Person":{"byEntity":{"country/USA":{"orderedFacets":[{"facetId":"f1"}]}}}},` +
			`"facets":{"f1":{"observations":[{"date":"2024-02","value":3.9},{"date":"2024-01","value":3.7}]}}}`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetDataCommonsObservations(context.Background(),
		DataCommonsRequest{Variable: "UnemploymentRate_Person", Entity: "country/USA"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	assert.Equal(suite.T(), 2, result.Metadata.Count)
	assert.True(suite.T(), sortedByDate(result.Observations))
}

func (suite *SeriesServiceTestSuite) TestGetDataCommonsObservationsSyntheticFallback() {
	client := &fakeHTTPClient{responses: []fakeResponse{{err: errors.New("connection refused")}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetDataCommonsObservations(context.Background(),
		DataCommonsRequest{Variable: "UnemploymentRate_Person", Entity: "country/ITA",
			StartDate: "2020", EndDate: "2020"})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceSynthetic, result.Provenance)
	assert.Len(suite.T(), result.Observations, 12)
	for _, point := range result.Observations {
		assert.GreaterOrEqual(suite.T(), point.Value, 1.5)
		assert.LessOrEqual(suite.T(), point.Value, 15.0)
	}
}

func (suite *SeriesServiceTestSuite) TestGetDataCommonsObservationsMissingParams() {
	client := &fakeHTTPClient{}
	service, _ := newTestService(client)

	result, svcErr := service.GetDataCommonsObservations(context.Background(),
		DataCommonsRequest{Variable: "UnemploymentRate_Person"})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), &ErrorMissingVariableOrEntity, svcErr)
	assert.Equal(suite.T(), int32(0), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetCensusPopulationLive() {
	client := &fakeHTTPClient{responses: []fakeResponse{{
		status: 200,
		body:   `[["NAME","POP","us"],["United States","331449281","1"]]`,
	}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetCensusPopulation(context.Background(), CensusRequest{Year: 2021})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	assert.Len(suite.T(), result.Data, 1)
	assert.Equal(suite.T(), "United States", result.Data[0].Name)
	assert.Equal(suite.T(), float64(331449281), result.Data[0].Value)
}

func (suite *SeriesServiceTestSuite) TestGetCensusPopulationTriesMultipleEndpoints() {
	client := &fakeHTTPClient{responses: []fakeResponse{
		{status: 404, body: "not found"},
		{status: 404, body: "not found"},
		{status: 200, body: `[["NAME","B01003_001E","us"],["United States","331449281","1"]]`},
	}}
	service, _ := newTestService(client)

	result, svcErr := service.GetCensusPopulation(context.Background(), CensusRequest{Year: 2021})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceLive, result.Provenance)
	assert.Len(suite.T(), result.Data, 1)
	assert.Equal(suite.T(), int32(3), client.calls.Load())
}

func (suite *SeriesServiceTestSuite) TestGetCensusPopulationDegradesToEmpty() {
	client := &fakeHTTPClient{responses: []fakeResponse{{err: errors.New("connection refused")}}}
	service, _ := newTestService(client)

	result, svcErr := service.GetCensusPopulation(context.Background(), CensusRequest{})

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), ProvenanceMock, result.Provenance)
	assert.Empty(suite.T(), result.Data)
	assert.Equal(suite.T(), defaultCensusYear, result.Year)
	assert.Equal(suite.T(), defaultGeography, result.Geography)
}

// sortedByDate reports whether points are in ascending date order.
func sortedByDate(points []ChartPoint) bool {
	for i := 1; i < len(points); i++ {
		if points[i-1].Date > points[i].Date {
			return false
		}
	}
	return true
}
