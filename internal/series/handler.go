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
	"encoding/json"
	"net/http"
	"strconv"

	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/error/apierror"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
	sysutils "github.com/worlddata/insights/internal/system/utils"
)

// seriesHandler is the handler for time series fetch operations.
type seriesHandler struct {
	seriesService SeriesServiceInterface
}

// newSeriesHandler creates a new instance of the series handler.
func newSeriesHandler(seriesService SeriesServiceInterface) *seriesHandler {
	return &seriesHandler{
		seriesService: seriesService,
	}
}

// HandleFredObservationsRequest handles the series observations request.
func (sh *seriesHandler) HandleFredObservationsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	query := r.URL.Query()
	request := FredObservationsRequest{
		SeriesID:          sysutils.SanitizeString(query.Get("series_id")),
		ObservationStart:  sysutils.SanitizeString(query.Get("observation_start")),
		ObservationEnd:    sysutils.SanitizeString(query.Get("observation_end")),
		Units:             sysutils.SanitizeString(query.Get("units")),
		Frequency:         sysutils.SanitizeString(query.Get("frequency")),
		AggregationMethod: sysutils.SanitizeString(query.Get("aggregation_method")),
	}

	result, svcErr := sh.seriesService.GetFredObservations(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// HandleFredSeriesInfoRequest handles the series metadata request.
func (sh *seriesHandler) HandleFredSeriesInfoRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	seriesID := sysutils.SanitizeString(r.URL.Query().Get("series_id"))

	result, svcErr := sh.seriesService.GetFredSeriesInfo(r.Context(), seriesID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// HandleFredSearchRequest handles the series search request.
func (sh *seriesHandler) HandleFredSearchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	query := r.URL.Query()
	request := FredSearchRequest{
		SearchText:     sysutils.SanitizeString(query.Get("search_text")),
		Limit:          parseIntParam(query.Get("limit")),
		Offset:         parseIntParam(query.Get("offset")),
		OrderBy:        sysutils.SanitizeString(query.Get("order_by")),
		SortOrder:      sysutils.SanitizeString(query.Get("sort_order")),
		FilterVariable: sysutils.SanitizeString(query.Get("filter_variable")),
		FilterValue:    sysutils.SanitizeString(query.Get("filter_value")),
	}

	result, svcErr := sh.seriesService.SearchFredSeries(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// HandleWorldBankIndicatorRequest handles the indicator-by-country request.
func (sh *seriesHandler) HandleWorldBankIndicatorRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	query := r.URL.Query()
	request := WorldBankRequest{
		Indicator: sysutils.SanitizeString(query.Get("indicator")),
		Country:   sysutils.SanitizeString(query.Get("country")),
		Date:      sysutils.SanitizeString(query.Get("date")),
		PerPage:   parseIntParam(query.Get("per_page")),
	}

	result, svcErr := sh.seriesService.GetWorldBankIndicator(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// HandleDataCommonsObservationRequest handles the statistical observation request.
func (sh *seriesHandler) HandleDataCommonsObservationRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	query := r.URL.Query()
	request := DataCommonsRequest{
		Variable:  sysutils.SanitizeString(query.Get("key")),
		Entity:    sysutils.SanitizeString(query.Get("entity")),
		StartDate: sysutils.SanitizeString(query.Get("startDate")),
		EndDate:   sysutils.SanitizeString(query.Get("endDate")),
	}

	result, svcErr := sh.seriesService.GetDataCommonsObservations(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// HandleCensusPopulationRequest handles the census population request.
func (sh *seriesHandler) HandleCensusPopulationRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SeriesHandler"))

	query := r.URL.Query()
	request := CensusRequest{
		Year:      parseIntParam(query.Get("year")),
		Geography: sysutils.SanitizeString(query.Get("geography")),
	}

	result, svcErr := sh.seriesService.GetCensusPopulation(r.Context(), request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	writeResultResponse(w, result, result.Provenance, logger)
}

// parseIntParam parses an integer query parameter, returning zero for absent
// or malformed values so the service applies its defaults.
func parseIntParam(value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

// writeResultResponse writes a successful fetch result, tagging the response
// with the data provenance header.
func writeResultResponse(w http.ResponseWriter, result any, provenance Provenance, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.Header().Set(serverconst.DataProvenanceHeaderName, string(provenance))
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(result); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = http.StatusBadRequest
	} else {
		statusCode = http.StatusInternalServerError
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
