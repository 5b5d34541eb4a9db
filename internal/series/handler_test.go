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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/error/apierror"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
)

type mockSeriesService struct {
	GetFredObservationsFunc func(ctx context.Context, request FredObservationsRequest) (
		*ObservationsResult, *serviceerror.ServiceError)
	GetFredSeriesInfoFunc func(ctx context.Context, seriesID string) (
		*SeriesInfoResult, *serviceerror.ServiceError)
	SearchFredSeriesFunc func(ctx context.Context, request FredSearchRequest) (
		*SeriesSearchResult, *serviceerror.ServiceError)
	GetWorldBankIndicatorFunc func(ctx context.Context, request WorldBankRequest) (
		*IndicatorResult, *serviceerror.ServiceError)
	GetDataCommonsObservationsFunc func(ctx context.Context, request DataCommonsRequest) (
		*DataCommonsResult, *serviceerror.ServiceError)
	GetCensusPopulationFunc func(ctx context.Context, request CensusRequest) (
		*CensusResult, *serviceerror.ServiceError)
}

func (m *mockSeriesService) GetFredObservations(ctx context.Context,
	request FredObservationsRequest) (*ObservationsResult, *serviceerror.ServiceError) {
	return m.GetFredObservationsFunc(ctx, request)
}

func (m *mockSeriesService) GetFredSeriesInfo(ctx context.Context,
	seriesID string) (*SeriesInfoResult, *serviceerror.ServiceError) {
	return m.GetFredSeriesInfoFunc(ctx, seriesID)
}

func (m *mockSeriesService) SearchFredSeries(ctx context.Context,
	request FredSearchRequest) (*SeriesSearchResult, *serviceerror.ServiceError) {
	return m.SearchFredSeriesFunc(ctx, request)
}

func (m *mockSeriesService) GetWorldBankIndicator(ctx context.Context,
	request WorldBankRequest) (*IndicatorResult, *serviceerror.ServiceError) {
	return m.GetWorldBankIndicatorFunc(ctx, request)
}

func (m *mockSeriesService) GetDataCommonsObservations(ctx context.Context,
	request DataCommonsRequest) (*DataCommonsResult, *serviceerror.ServiceError) {
	return m.GetDataCommonsObservationsFunc(ctx, request)
}

func (m *mockSeriesService) GetCensusPopulation(ctx context.Context,
	request CensusRequest) (*CensusResult, *serviceerror.ServiceError) {
	return m.GetCensusPopulationFunc(ctx, request)
}

type SeriesHandlerTestSuite struct {
	suite.Suite
}

func TestSeriesHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeriesHandlerTestSuite))
}

func (suite *SeriesHandlerTestSuite) TestHandleFredObservationsRequestSuccess() {
	var captured FredObservationsRequest
	handler := newSeriesHandler(&mockSeriesService{
		GetFredObservationsFunc: func(ctx context.Context, request FredObservationsRequest) (
			*ObservationsResult, *serviceerror.ServiceError) {
			captured = request
			return &ObservationsResult{
				SeriesID:     request.SeriesID,
				Observations: []ChartPoint{{Date: "2024-01-01", Value: 5.33}},
				Provenance:   ProvenanceLive,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/fred/series/observations?series_id=DFF&observation_start=2024-01-01&units=lin", nil)
	rec := httptest.NewRecorder()
	handler.HandleFredObservationsRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), serverconst.ContentTypeJSON, rec.Header().Get(serverconst.ContentTypeHeaderName))
	assert.Equal(suite.T(), "live", rec.Header().Get(serverconst.DataProvenanceHeaderName))
	assert.Equal(suite.T(), "DFF", captured.SeriesID)
	assert.Equal(suite.T(), "2024-01-01", captured.ObservationStart)
	assert.Equal(suite.T(), "lin", captured.Units)

	var result ObservationsResult
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(suite.T(), "DFF", result.SeriesID)
	assert.Len(suite.T(), result.Observations, 1)
}

func (suite *SeriesHandlerTestSuite) TestHandleFredObservationsRequestErrors() {
	testCases := []struct {
		name           string
		svcErr         *serviceerror.ServiceError
		expectedStatus int
	}{
		{name: "MissingSeriesID", svcErr: &ErrorMissingSeriesID, expectedStatus: http.StatusBadRequest},
		{name: "SourceNotConfigured", svcErr: &ErrorSourceNotConfigured, expectedStatus: http.StatusInternalServerError},
		{name: "InternalServerError", svcErr: &ErrorInternalServerError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			handler := newSeriesHandler(&mockSeriesService{
				GetFredObservationsFunc: func(ctx context.Context, request FredObservationsRequest) (
					*ObservationsResult, *serviceerror.ServiceError) {
					return nil, tc.svcErr
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/api/fred/series/observations", nil)
			rec := httptest.NewRecorder()
			handler.HandleFredObservationsRequest(rec, req)

			assert.Equal(suite.T(), tc.expectedStatus, rec.Code)

			var errResp apierror.ErrorResponse
			assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(suite.T(), tc.svcErr.Code, errResp.Code)
		})
	}
}

func (suite *SeriesHandlerTestSuite) TestHandleFredSearchRequestParsesParams() {
	var captured FredSearchRequest
	handler := newSeriesHandler(&mockSeriesService{
		SearchFredSeriesFunc: func(ctx context.Context, request FredSearchRequest) (
			*SeriesSearchResult, *serviceerror.ServiceError) {
			captured = request
			return &SeriesSearchResult{Provenance: ProvenanceLive}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/fred/series/search?search_text=unemployment&limit=25&offset=50&order_by=popularity", nil)
	rec := httptest.NewRecorder()
	handler.HandleFredSearchRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "unemployment", captured.SearchText)
	assert.Equal(suite.T(), 25, captured.Limit)
	assert.Equal(suite.T(), 50, captured.Offset)
	assert.Equal(suite.T(), "popularity", captured.OrderBy)
}

func (suite *SeriesHandlerTestSuite) TestHandleFredSearchRequestMalformedLimit() {
	var captured FredSearchRequest
	handler := newSeriesHandler(&mockSeriesService{
		SearchFredSeriesFunc: func(ctx context.Context, request FredSearchRequest) (
			*SeriesSearchResult, *serviceerror.ServiceError) {
			captured = request
			return &SeriesSearchResult{Provenance: ProvenanceLive}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/fred/series/search?search_text=gdp&limit=abc", nil)
	rec := httptest.NewRecorder()
	handler.HandleFredSearchRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	// Malformed numerics fall back to zero so the service applies defaults.
	assert.Equal(suite.T(), 0, captured.Limit)
}

func (suite *SeriesHandlerTestSuite) TestHandleWorldBankIndicatorRequestSuccess() {
	value := 8047923006.0
	handler := newSeriesHandler(&mockSeriesService{
		GetWorldBankIndicatorFunc: func(ctx context.Context, request WorldBankRequest) (
			*IndicatorResult, *serviceerror.ServiceError) {
			return &IndicatorResult{
				Pagination: WorldBankPagination{Page: 1, Pages: 1, Total: 1},
				Data: []WorldBankRecord{{
					CountryISO3Code: "WLD", Date: "2022", Value: &value,
				}},
				Provenance: ProvenanceMock,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/worldbank/indicator?indicator=SP.POP.TOTL", nil)
	rec := httptest.NewRecorder()
	handler.HandleWorldBankIndicatorRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "mock", rec.Header().Get(serverconst.DataProvenanceHeaderName))

	var result IndicatorResult
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(suite.T(), result.Data, 1)
}

func (suite *SeriesHandlerTestSuite) TestHandleDataCommonsObservationRequestParsesParams() {
	var captured DataCommonsRequest
	handler := newSeriesHandler(&mockSeriesService{
		GetDataCommonsObservationsFunc: func(ctx context.Context, request DataCommonsRequest) (
			*DataCommonsResult, *serviceerror.ServiceError) {
			captured = request
			return &DataCommonsResult{Provenance: ProvenanceSynthetic}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/datacommons/observation?key=UnemploymentRate_Person&entity=country%2FUSA&startDate=2015", nil)
	rec := httptest.NewRecorder()
	handler.HandleDataCommonsObservationRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "synthetic", rec.Header().Get(serverconst.DataProvenanceHeaderName))
	assert.Equal(suite.T(), "UnemploymentRate_Person", captured.Variable)
	assert.Equal(suite.T(), "country/USA", captured.Entity)
	assert.Equal(suite.T(), "2015", captured.StartDate)
}

func (suite *SeriesHandlerTestSuite) TestHandleCensusPopulationRequestParsesParams() {
	var captured CensusRequest
	handler := newSeriesHandler(&mockSeriesService{
		GetCensusPopulationFunc: func(ctx context.Context, request CensusRequest) (
			*CensusResult, *serviceerror.ServiceError) {
			captured = request
			return &CensusResult{Year: request.Year, Provenance: ProvenanceLive}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/census/population?year=2021&geography=state%3A%2A", nil)
	rec := httptest.NewRecorder()
	handler.HandleCensusPopulationRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), 2021, captured.Year)
	assert.Equal(suite.T(), "state:*", captured.Geography)
}

func (suite *SeriesHandlerTestSuite) TestHandleFredSeriesInfoRequestError() {
	handler := newSeriesHandler(&mockSeriesService{
		GetFredSeriesInfoFunc: func(ctx context.Context, seriesID string) (
			*SeriesInfoResult, *serviceerror.ServiceError) {
			return nil, &ErrorMissingSeriesID
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/fred/series/info", nil)
	rec := httptest.NewRecorder()
	handler.HandleFredSeriesInfoRequest(rec, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}
