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

package series

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/worlddata/insights/internal/system/cache"
	serverconst "github.com/worlddata/insights/internal/system/constants"
	httpclient "github.com/worlddata/insights/internal/system/http"
	"github.com/worlddata/insights/internal/system/log"
)

// cachedPayload is the unit stored in the response cache. Provenance travels
// with the value so a hit is surfaced with the provenance it was stored with.
type cachedPayload struct {
	Value      any
	Provenance Provenance
	FetchedAt  time.Time
}

// fetchOutcome is the result of a three-tier fetch.
type fetchOutcome struct {
	Value      any
	Provenance Provenance
	FetchedAt  time.Time
	CacheHit   bool
}

// fetchEngine implements the cache-then-live-then-fallback resolution protocol
// shared by all point query sources. Concurrent misses for the same key are
// coalesced into one upstream call.
type fetchEngine struct {
	cache  *cache.ResponseCache
	client httpclient.HTTPClientInterface
	group  singleflight.Group
}

func newFetchEngine(responseCache *cache.ResponseCache, client httpclient.HTTPClientInterface) *fetchEngine {
	return &fetchEngine{
		cache:  responseCache,
		client: client,
	}
}

// fetch resolves a request through the three tiers:
//  1. cache hit returns immediately with the stored provenance,
//  2. live call, cached under liveTTL on success,
//  3. synthesize on live failure, cached under the degraded TTL,
//  4. static mock when synthesis is impossible, never cached.
//
// The returned error is non-nil only when every tier is exhausted.
func (e *fetchEngine) fetch(
	ctx context.Context,
	source string,
	key string,
	liveTTL time.Duration,
	live func(ctx context.Context) (any, error),
	synthesize func() (any, bool),
	mock func() (any, bool),
) (fetchOutcome, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FetchEngine"),
		log.String(log.LoggerKeySourceName, source))

	if value, found := e.cache.Get(key); found {
		if payload, ok := value.(cachedPayload); ok {
			logger.Debug("Cache hit", log.String(log.LoggerKeyCacheKey, key))
			return fetchOutcome{
				Value:      payload.Value,
				Provenance: payload.Provenance,
				FetchedAt:  payload.FetchedAt,
				CacheHit:   true,
			}, nil
		}
		// A foreign value under our key means the entry is unusable. Drop it
		// and fall through to a fresh fetch.
		e.cache.Delete(key)
	}

	value, err, _ := e.group.Do(key, func() (any, error) {
		now := time.Now()

		liveValue, liveErr := live(ctx)
		if liveErr == nil {
			payload := cachedPayload{Value: liveValue, Provenance: ProvenanceLive, FetchedAt: now}
			e.cache.Set(key, payload, liveTTL)
			return payload, nil
		}
		logger.Warn("Live call failed, falling back", log.String(log.LoggerKeyCacheKey, key),
			log.Error(liveErr))

		if synthesize != nil {
			if syntheticValue, ok := synthesize(); ok {
				payload := cachedPayload{Value: syntheticValue, Provenance: ProvenanceSynthetic, FetchedAt: now}
				e.cache.Set(key, payload, cache.DegradedTTL)
				return payload, nil
			}
		}

		if mock != nil {
			if mockValue, ok := mock(); ok {
				// Static reference data is already free, so it is not cached.
				return cachedPayload{Value: mockValue, Provenance: ProvenanceMock, FetchedAt: now}, nil
			}
		}

		return nil, fmt.Errorf("%w: %w", errUpstreamUnavailable, liveErr)
	})
	if err != nil {
		return fetchOutcome{}, err
	}

	payload := value.(cachedPayload)
	return fetchOutcome{
		Value:      payload.Value,
		Provenance: payload.Provenance,
		FetchedAt:  payload.FetchedAt,
	}, nil
}

// getJSON performs a bounded GET and returns the body. Non-2xx statuses and
// HTML bodies are failures even when the transport succeeded.
func (e *fetchEngine) getJSON(ctx context.Context, rawURL string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	resp, err := e.client.Do(req)
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

	if looksLikeHTML(body) {
		return nil, fmt.Errorf("upstream returned an error page instead of JSON")
	}
	return body, nil
}

// looksLikeHTML reports whether a response body is recognizably an HTML error
// page where JSON was expected.
func looksLikeHTML(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '<'
}
