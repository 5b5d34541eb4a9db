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
	"net/http"

	"github.com/worlddata/insights/internal/system/middleware"
)

// Initialize initializes the catalog service and registers its routes.
func Initialize(mux *http.ServeMux) CatalogServiceInterface {
	catalogService := newCatalogService()
	catalogHandler := newCatalogHandler(catalogService)
	registerRoutes(mux, catalogHandler)
	return catalogService
}

// registerRoutes registers the routes for dataset catalog operations.
func registerRoutes(mux *http.ServeMux, catalogHandler *catalogHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}
	mux.HandleFunc(middleware.WithCORS("GET /datasets", catalogHandler.HandleDatasetListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /datasets",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))

	mux.HandleFunc(middleware.WithCORS("GET /datasets/{id}", catalogHandler.HandleDatasetGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /datasets/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
