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

package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/log"
)

// healthCheckHandler handles health check API requests.
type healthCheckHandler struct {
	service healthCheckServiceInterface
}

// newHealthCheckHandler creates a new instance of the health check handler.
func newHealthCheckHandler(service healthCheckServiceInterface) *healthCheckHandler {
	return &healthCheckHandler{
		service: service,
	}
}

// handleLivenessRequest handles the health check liveness request.
func (hch *healthCheckHandler) handleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// handleReadinessRequest handles the health check readiness request.
func (hch *healthCheckHandler) handleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := hch.service.CheckReadiness()

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	if serverStatus.Status != StatusUp {
		logger.Error("Readiness check failed", log.String("serverstatus", string(serverStatus.Status)))
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		logger.Debug("Readiness check passed", log.String("serverstatus", string(serverStatus.Status)))
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(serverStatus); err != nil {
		logger.Error("Error while encoding readiness response", log.Error(err))
		return
	}

	logger.Debug("Health Check Readiness response sent")
}
