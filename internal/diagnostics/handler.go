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

// Package diagnostics provides cache introspection and administration endpoints.
package diagnostics

import (
	"encoding/json"
	"net/http"

	"github.com/worlddata/insights/internal/system/cache"
	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/log"
)

// clearResponse reports the outcome of a cache clear operation.
type clearResponse struct {
	Cleared int `json:"cleared"`
}

// diagnosticsHandler is the handler for cache introspection requests.
type diagnosticsHandler struct {
	responseCache *cache.ResponseCache
}

// newDiagnosticsHandler creates a new instance of the diagnostics handler.
func newDiagnosticsHandler(responseCache *cache.ResponseCache) *diagnosticsHandler {
	return &diagnosticsHandler{
		responseCache: responseCache,
	}
}

// HandleCacheStatsRequest handles the cache statistics request.
func (dh *diagnosticsHandler) HandleCacheStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DiagnosticsHandler"))

	stats := dh.responseCache.Stats()

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// HandleCacheClearRequest handles the full cache clear request.
func (dh *diagnosticsHandler) HandleCacheClearRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DiagnosticsHandler"))

	cleared := dh.responseCache.ClearAll()
	logger.Info("Cleared response cache", log.Int("cleared", cleared))

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(clearResponse{Cleared: cleared}); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
