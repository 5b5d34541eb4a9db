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

package seeder

// seedData holds all the initial data to be seeded into the database.
type seedData struct {
	Datasets []DatasetData `json:"datasets"`
}

// DatasetData represents a dataset catalog entry to be seeded.
type DatasetData struct {
	ID          string `json:"dataset_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	// Source identifies the upstream provider, either "undata" or "worldbank".
	Source string `json:"source"`
	// SourceIdentifier is the CSV URL for undata entries and the indicator code
	// for worldbank entries.
	SourceIdentifier string `json:"source_identifier"`
	LastUpdated      string `json:"last_updated"`
}
