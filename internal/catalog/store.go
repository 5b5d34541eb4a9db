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
	"fmt"

	"github.com/worlddata/insights/internal/system/database/provider"
)

// catalogStoreInterface defines the interface for dataset catalog store operations.
type catalogStoreInterface interface {
	GetDatasetList() ([]Dataset, error)
	GetDatasetListByCategory(category string) ([]Dataset, error)
	GetDataset(datasetID string) (*Dataset, error)
}

// catalogStore is the default implementation of the catalogStoreInterface.
type catalogStore struct {
	dbProvider provider.DBProviderInterface
}

// newCatalogStore creates a new instance of the catalog store.
func newCatalogStore() catalogStoreInterface {
	return &catalogStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetDatasetList retrieves the full dataset catalog from the database.
func (s *catalogStore) GetDatasetList() ([]Dataset, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.CatalogDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetDatasetList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	datasets := make([]Dataset, 0, len(results))
	for _, row := range results {
		dataset, err := buildDatasetFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build dataset from result row: %w", err)
		}
		datasets = append(datasets, *dataset)
	}
	return datasets, nil
}

// GetDatasetListByCategory retrieves datasets for the specified category from the database.
func (s *catalogStore) GetDatasetListByCategory(category string) ([]Dataset, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.CatalogDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetDatasetListByCategory, category)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	datasets := make([]Dataset, 0, len(results))
	for _, row := range results {
		dataset, err := buildDatasetFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build dataset from result row: %w", err)
		}
		datasets = append(datasets, *dataset)
	}
	return datasets, nil
}

// GetDataset retrieves a dataset by its ID from the database.
func (s *catalogStore) GetDataset(datasetID string) (*Dataset, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.CatalogDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetDatasetByID, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrDatasetNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildDatasetFromResultRow(results[0])
}

// buildDatasetFromResultRow constructs a Dataset from a database result row.
func buildDatasetFromResultRow(row map[string]interface{}) (*Dataset, error) {
	datasetID, ok := row["dataset_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse dataset_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}
	category, ok := row["category"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse category as string")
	}
	source, ok := row["source"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse source as string")
	}
	sourceIdentifier, ok := row["source_identifier"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse source_identifier as string")
	}

	// Description and last updated are nullable.
	description, _ := row["description"].(string)
	lastUpdated, _ := row["last_updated"].(string)

	return &Dataset{
		ID:               datasetID,
		Name:             name,
		Category:         category,
		Description:      description,
		Source:           DatasetSource(source),
		SourceIdentifier: sourceIdentifier,
		LastUpdated:      lastUpdated,
	}, nil
}
