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
	"encoding/json"
	"net/http"

	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/error/apierror"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
	sysutils "github.com/worlddata/insights/internal/system/utils"
)

// unDataHandler is the handler for bulk CSV download requests.
type unDataHandler struct {
	unDataService UNDataServiceInterface
}

// newUNDataHandler creates a new instance of the bulk CSV download handler.
func newUNDataHandler(unDataService UNDataServiceInterface) *unDataHandler {
	return &unDataHandler{
		unDataService: unDataService,
	}
}

// HandleDatasetCSVRequest handles the dataset CSV download request. The body
// is served as text/csv with the provenance carried in a response header.
func (uh *unDataHandler) HandleDatasetCSVRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UNDataHandler"))

	query := r.URL.Query()
	rawURL := query.Get("url")
	datasetID := sysutils.SanitizeString(query.Get("datasetId"))

	result, svcErr := uh.unDataService.GetDatasetCSV(r.Context(), rawURL, datasetID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeCSV)
	w.Header().Set(serverconst.DataProvenanceHeaderName, string(result.Provenance))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		logger.Error("Error writing CSV response", log.Error(err))
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

// getClientErrorStatusCode maps client error codes to HTTP status codes.
func getClientErrorStatusCode(code string) int {
	switch code {
	case ErrorForbiddenURL.Code:
		return http.StatusForbidden
	case ErrorDatasetNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
