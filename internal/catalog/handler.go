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

package catalog

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/error/apierror"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
	sysutils "github.com/worlddata/insights/internal/system/utils"
)

// catalogHandler is the handler for dataset catalog operations.
type catalogHandler struct {
	catalogService CatalogServiceInterface
}

// newCatalogHandler creates a new instance of the catalog handler.
func newCatalogHandler(catalogService CatalogServiceInterface) *catalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
	}
}

// HandleDatasetListRequest handles the dataset catalog listing request.
func (ch *catalogHandler) HandleDatasetListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogHandler"))

	category := sysutils.SanitizeString(r.URL.Query().Get("category"))

	datasets, svcErr := ch.catalogService.GetDatasetList(category)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	listResponse := datasetListResponse{
		TotalResults: len(datasets),
		Datasets:     make([]datasetResponse, 0, len(datasets)),
	}
	for _, dataset := range datasets {
		listResponse.Datasets = append(listResponse.Datasets, getDatasetResponse(dataset))
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(listResponse); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleDatasetGetRequest handles the get dataset request.
func (ch *catalogHandler) HandleDatasetGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogHandler"))

	id := sysutils.SanitizeString(r.PathValue("id"))

	dataset, svcErr := ch.catalogService.GetDataset(id)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(getDatasetResponse(*dataset)); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// getDatasetResponse converts a Dataset to its API response representation.
func getDatasetResponse(dataset Dataset) datasetResponse {
	return datasetResponse{
		ID:               dataset.ID,
		Name:             dataset.Name,
		Category:         dataset.Category,
		Description:      dataset.Description,
		Source:           string(dataset.Source),
		SourceIdentifier: dataset.SourceIdentifier,
		LastUpdated:      dataset.LastUpdated,
	}
}

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
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

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorDatasetNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
