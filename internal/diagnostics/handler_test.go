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

package diagnostics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/worlddata/insights/internal/system/cache"
)

type DiagnosticsHandlerTestSuite struct {
	suite.Suite
}

func TestDiagnosticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiagnosticsHandlerTestSuite))
}

func (suite *DiagnosticsHandlerTestSuite) TestHandleCacheStatsRequest() {
	responseCache := cache.NewResponseCache("test", true)
	responseCache.Set("fred-observations:series_id=DFF", "payload", time.Hour)
	responseCache.Set("worldbank:indicator=SP.POP.TOTL", "payload", time.Hour)
	handler := newDiagnosticsHandler(responseCache)

	req := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	rec := httptest.NewRecorder()
	handler.HandleCacheStatsRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var stats cache.Stats
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(suite.T(), 2, stats.Size)
	assert.Len(suite.T(), stats.Entries, 2)
	assert.Equal(suite.T(), "fred-observations:series_id=DFF", stats.Entries[0].Key)
	assert.NotEmpty(suite.T(), stats.Entries[0].ExpiresIn)
}

func (suite *DiagnosticsHandlerTestSuite) TestHandleCacheStatsRequestEmpty() {
	handler := newDiagnosticsHandler(cache.NewResponseCache("test", true))

	req := httptest.NewRequest(http.MethodGet, "/cache/stats", nil)
	rec := httptest.NewRecorder()
	handler.HandleCacheStatsRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var stats cache.Stats
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(suite.T(), 0, stats.Size)
	assert.Empty(suite.T(), stats.Entries)
}

func (suite *DiagnosticsHandlerTestSuite) TestHandleCacheClearRequest() {
	responseCache := cache.NewResponseCache("test", true)
	responseCache.Set("a", 1, time.Hour)
	responseCache.Set("b", 2, time.Hour)
	handler := newDiagnosticsHandler(responseCache)

	req := httptest.NewRequest(http.MethodDelete, "/cache", nil)
	rec := httptest.NewRecorder()
	handler.HandleCacheClearRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var resp clearResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), 2, resp.Cleared)
	assert.Equal(suite.T(), 0, responseCache.Size())
}
