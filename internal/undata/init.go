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
	"net/http"

	"github.com/worlddata/insights/internal/catalog"
	"github.com/worlddata/insights/internal/system/cache"
	httpclient "github.com/worlddata/insights/internal/system/http"
	"github.com/worlddata/insights/internal/system/middleware"
)

// Initialize initializes the bulk CSV download service and registers its routes.
func Initialize(mux *http.ServeMux, responseCache *cache.ResponseCache,
	client httpclient.HTTPClientInterface, catalogService catalog.CatalogServiceInterface) UNDataServiceInterface {
	unDataService := newUNDataService(responseCache, client, catalogService)
	unDataHandler := newUNDataHandler(unDataService)
	registerRoutes(mux, unDataHandler)
	return unDataService
}

// registerRoutes registers the routes for bulk CSV download operations.
func registerRoutes(mux *http.ServeMux, unDataHandler *unDataHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}

	mux.HandleFunc(middleware.WithCORS("GET /api/un-data/csv",
		unDataHandler.HandleDatasetCSVRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/un-data/csv",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
