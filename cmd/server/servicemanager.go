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

package main

import (
	"net/http"

	"github.com/worlddata/insights/internal/catalog"
	"github.com/worlddata/insights/internal/diagnostics"
	"github.com/worlddata/insights/internal/series"
	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/database/provider"
	"github.com/worlddata/insights/internal/system/database/seeder"
	"github.com/worlddata/insights/internal/system/healthcheck"
	httpclient "github.com/worlddata/insights/internal/system/http"
	"github.com/worlddata/insights/internal/system/log"
	"github.com/worlddata/insights/internal/undata"
)

// registerServices seeds the catalog database and registers all the services
// with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, responseCache *cache.ResponseCache) {
	logger := log.GetLogger()

	seedCatalogDatabase(logger)

	client := httpclient.NewHTTPClient()
	// Bulk CSV downloads set per-request deadlines from the source
	// configuration, which exceed the default client timeout.
	bulkClient := httpclient.NewHTTPClientWithTimeout(0)

	healthcheck.Initialize(mux)
	diagnostics.Initialize(mux, responseCache)

	catalogService := catalog.Initialize(mux)
	_ = series.Initialize(mux, responseCache, client)
	_ = undata.Initialize(mux, responseCache, bulkClient, catalogService)
}

// seedCatalogDatabase creates the catalog schema and inserts the built-in
// datasets when they are not present yet.
func seedCatalogDatabase(logger *log.Logger) {
	seederProvider := seeder.NewSeederProvider(provider.GetDBProvider())
	dbSeeder, err := seederProvider.GetSeeder(provider.CatalogDBName)
	if err != nil {
		logger.Fatal("Failed to get catalog database seeder", log.Error(err))
	}

	if err := dbSeeder.SeedInitialData(); err != nil {
		logger.Fatal("Failed to seed catalog database", log.Error(err))
	}
}
