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

package diagnostics

import (
	"net/http"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/middleware"
)

// Initialize registers the cache introspection routes.
func Initialize(mux *http.ServeMux, responseCache *cache.ResponseCache) {
	diagnosticsHandler := newDiagnosticsHandler(responseCache)
	registerRoutes(mux, diagnosticsHandler)
}

// registerRoutes registers the routes for cache introspection operations.
func registerRoutes(mux *http.ServeMux, diagnosticsHandler *diagnosticsHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods: "GET, DELETE",
		AllowedHeaders: "Content-Type",
	}

	mux.HandleFunc(middleware.WithCORS("GET /cache/stats",
		diagnosticsHandler.HandleCacheStatsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /cache",
		diagnosticsHandler.HandleCacheClearRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /cache",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
