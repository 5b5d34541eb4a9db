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

package config

import "sync"

// InsightsRuntime holds the runtime configuration for the Insights server.
type InsightsRuntime struct {
	InsightsHome string `yaml:"insights_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *InsightsRuntime
	once          sync.Once
)

// InitializeInsightsRuntime initializes the InsightsRuntime configuration.
func InitializeInsightsRuntime(insightsHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &InsightsRuntime{
			InsightsHome: insightsHome,
			Config:       *config,
		}
	})

	return nil
}

// GetInsightsRuntime returns the InsightsRuntime configuration.
func GetInsightsRuntime() *InsightsRuntime {
	if runtimeConfig == nil {
		panic("InsightsRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetInsightsRuntime resets the InsightsRuntime.
// This should only be used in tests to reset the singleton state.
func ResetInsightsRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
