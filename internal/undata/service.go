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

// Package undata provides the bulk CSV download operations for UN statistical datasets.
package undata

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/worlddata/insights/internal/catalog"
	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
	serverconst "github.com/worlddata/insights/internal/system/constants"
	"github.com/worlddata/insights/internal/system/error/serviceerror"
	httpclient "github.com/worlddata/insights/internal/system/http"
	"github.com/worlddata/insights/internal/system/log"
)

// UNDataServiceInterface defines the interface for the bulk CSV download service.
type UNDataServiceInterface interface {
	GetDatasetCSV(ctx context.Context, rawURL, datasetID string) (*CSVResult, *serviceerror.ServiceError)
}

// unDataService is the default implementation of the UNDataServiceInterface.
type unDataService struct {
	cache          *cache.ResponseCache
	client         httpclient.HTTPClientInterface
	catalogService catalog.CatalogServiceInterface
	group          singleflight.Group
}

// newUNDataService creates a new instance of the bulk CSV download service.
func newUNDataService(responseCache *cache.ResponseCache, client httpclient.HTTPClientInterface,
	catalogService catalog.CatalogServiceInterface) UNDataServiceInterface {
	return &unDataService{
		cache:          responseCache,
		client:         client,
		catalogService: catalogService,
	}
}

// GetDatasetCSV downloads a dataset CSV file through the cache. The URL must
// be inside the configured download domain; anything else is rejected before
// any network I/O. A failed download is answered with a generated body for the
// requested dataset, cached only briefly so the upstream is retried soon.
func (us *unDataService) GetDatasetCSV(ctx context.Context,
	rawURL, datasetID string) (*CSVResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UNDataService"))

	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &ErrorMissingURL
	}
	datasetID = strings.TrimSpace(datasetID)
	if datasetID == "" {
		return nil, &ErrorMissingDatasetID
	}

	dataset, svcErr := us.catalogService.GetDataset(datasetID)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorDatasetNotFound
		}
		return nil, &ErrorInternalServerError
	}

	srcCfg := config.GetInsightsRuntime().Config.Sources.UNData
	if srcCfg.AllowedBaseURL == "" || !strings.HasPrefix(rawURL, srcCfg.AllowedBaseURL) {
		logger.Warn("Rejected CSV download outside the allowed domain",
			log.String(log.LoggerKeyDatasetID, datasetID))
		return nil, &ErrorForbiddenURL
	}

	key, err := cache.GenerateKey(cacheKeyPrefixUNCSV, map[string]any{"url": rawURL})
	if err != nil {
		logger.Error("Failed to generate cache key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if value, found := us.cache.Get(key); found {
		if cached, ok := value.(cachedCSV); ok {
			logger.Debug("Cache hit", log.String(log.LoggerKeyCacheKey, key))
			return &CSVResult{Body: cached.Body, Provenance: cached.Provenance, FetchedAt: cached.FetchedAt}, nil
		}
		us.cache.Delete(key)
	}

	value, fetchErr, _ := us.group.Do(key, func() (any, error) {
		now := time.Now()

		body, liveErr := us.downloadCSV(ctx, rawURL, srcCfg)
		if liveErr == nil {
			cached := cachedCSV{Body: body, Provenance: ProvenanceLive, FetchedAt: now}
			us.cache.Set(key, cached, cache.BulkTTL)
			return cached, nil
		}
		logger.Warn("CSV download failed, generating fallback body",
			log.String(log.LoggerKeyDatasetID, datasetID), log.Error(liveErr))

		syntheticBody, genErr := generateCSV(dataset)
		if genErr != nil {
			return nil, fmt.Errorf("failed to generate fallback body: %w", genErr)
		}
		cached := cachedCSV{Body: syntheticBody, Provenance: ProvenanceSynthetic, FetchedAt: now}
		us.cache.Set(key, cached, cache.DegradedTTL)
		return cached, nil
	})
	if fetchErr != nil {
		logger.Error("Failed to resolve dataset CSV", log.String(log.LoggerKeyDatasetID, datasetID),
			log.Error(fetchErr))
		return nil, &ErrorInternalServerError
	}

	cached := value.(cachedCSV)
	return &CSVResult{Body: cached.Body, Provenance: cached.Provenance, FetchedAt: cached.FetchedAt}, nil
}

// downloadCSV performs a bounded GET of the CSV file. Non-2xx statuses and
// bodies that are not recognizably CSV are failures.
func (us *unDataService) downloadCSV(ctx context.Context, rawURL string,
	srcCfg config.BulkSourceConfig) ([]byte, error) {
	timeout := time.Duration(srcCfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultBulkTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeCSV)

	resp, err := us.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := validateCSV(body); err != nil {
		return nil, err
	}
	return body, nil
}

// validateCSV checks that a downloaded body parses as a CSV table with a
// header and at least one data row. Upstreams answer some outages with HTML
// error pages behind a 200, which this rejects.
func validateCSV(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fmt.Errorf("response body is empty")
	}
	if trimmed[0] == '<' {
		return fmt.Errorf("upstream returned an error page instead of CSV")
	}

	reader := csv.NewReader(bytes.NewReader(trimmed))
	// Yearbook files carry ragged preamble rows, so no fixed field count.
	reader.FieldsPerRecord = -1

	rows := 0
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse CSV body: %w", err)
		}
		rows++
	}
	if rows < 2 {
		return fmt.Errorf("CSV body has no data rows")
	}
	return nil
}
