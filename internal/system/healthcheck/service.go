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

// Package healthcheck provides liveness and readiness checks for the server.
package healthcheck

import (
	dbmodel "github.com/worlddata/insights/internal/system/database/model"
	"github.com/worlddata/insights/internal/system/database/provider"
	"github.com/worlddata/insights/internal/system/log"
)

// queryCatalogDBTable probes the dataset catalog table for readiness.
var queryCatalogDBTable = dbmodel.DBQuery{
	ID:    "HLC-00001",
	Query: "SELECT DATASET_ID FROM DATASET LIMIT 1",
}

// healthCheckServiceInterface defines the interface for the health check service.
type healthCheckServiceInterface interface {
	CheckReadiness() ServerStatus
}

// healthCheckService is the default implementation of the healthCheckServiceInterface.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// newHealthCheckService creates a new instance of the health check service.
func newHealthCheckService() healthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: provider.GetDBProvider(),
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *healthCheckService) CheckReadiness() ServerStatus {
	catalogDBStatus := ServiceStatus{
		ServiceName: "CatalogDB",
		Status:      hcs.checkDatabaseStatus(provider.CatalogDBName, queryCatalogDBTable),
	}

	status := StatusUp
	if catalogDBStatus.Status == StatusDown {
		status = StatusDown
	}
	return ServerStatus{
		Status: status,
		ServiceStatus: []ServiceStatus{
			catalogDBStatus,
		},
	}
}

// checkDatabaseStatus checks the status of the specified database with the specified query.
func (hcs *healthCheckService) checkDatabaseStatus(dbname string, query dbmodel.DBQuery) Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	dbClient, err := hcs.dbProvider.GetDBClient(dbname)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return StatusDown
	}

	_, err = dbClient.Query(query)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return StatusDown
	}
	return StatusUp
}
