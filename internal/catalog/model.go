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

// DatasetSource identifies the upstream system a dataset is served from.
type DatasetSource string

const (
	// DatasetSourceUNData identifies datasets served as UN statistical CSV files.
	DatasetSourceUNData DatasetSource = "undata"
	// DatasetSourceWorldBank identifies datasets backed by a World Bank indicator.
	DatasetSourceWorldBank DatasetSource = "worldbank"
)

// Dataset represents a downloadable dataset in the catalog.
type Dataset struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Category         string        `json:"category"`
	Description      string        `json:"description"`
	Source           DatasetSource `json:"source"`
	SourceIdentifier string        `json:"sourceIdentifier"`
	LastUpdated      string        `json:"lastUpdated"`
}

// datasetResponse represents a dataset in API responses.
type datasetResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Source           string `json:"source"`
	SourceIdentifier string `json:"sourceIdentifier"`
	LastUpdated      string `json:"lastUpdated"`
}

// datasetListResponse represents the catalog listing in API responses.
type datasetListResponse struct {
	TotalResults int               `json:"totalResults"`
	Datasets     []datasetResponse `json:"datasets"`
}
