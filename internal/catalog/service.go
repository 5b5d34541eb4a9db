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

// Package catalog provides the dataset catalog management operations.
package catalog

import (
	"errors"
	"strings"

	"github.com/worlddata/insights/internal/system/error/serviceerror"
	"github.com/worlddata/insights/internal/system/log"
)

// CatalogServiceInterface defines the interface for the dataset catalog service.
type CatalogServiceInterface interface {
	GetDatasetList(category string) ([]Dataset, *serviceerror.ServiceError)
	GetDataset(datasetID string) (*Dataset, *serviceerror.ServiceError)
}

// catalogService is the default implementation of the CatalogServiceInterface.
type catalogService struct {
	catalogStore catalogStoreInterface
}

// newCatalogService creates a new instance of the catalog service.
func newCatalogService() CatalogServiceInterface {
	return &catalogService{
		catalogStore: newCatalogStore(),
	}
}

// GetDatasetList retrieves the dataset catalog, optionally filtered by category.
func (cs *catalogService) GetDatasetList(category string) ([]Dataset, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogService"))

	var datasets []Dataset
	var err error
	if strings.TrimSpace(category) == "" {
		datasets, err = cs.catalogStore.GetDatasetList()
	} else {
		datasets, err = cs.catalogStore.GetDatasetListByCategory(category)
	}
	if err != nil {
		logger.Error("Failed to get dataset list", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return datasets, nil
}

// GetDataset retrieves a dataset by its ID.
func (cs *catalogService) GetDataset(datasetID string) (*Dataset, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CatalogService"))

	if strings.TrimSpace(datasetID) == "" {
		return nil, &ErrorInvalidDatasetID
	}

	dataset, err := cs.catalogStore.GetDataset(datasetID)
	if err != nil {
		if errors.Is(err, ErrDatasetNotFound) {
			return nil, &ErrorDatasetNotFound
		}
		logger.Error("Failed to get dataset", log.String(log.LoggerKeyDatasetID, datasetID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return dataset, nil
}
