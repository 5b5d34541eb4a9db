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
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/worlddata/insights/internal/system/cache"
)

// fakeHTTPClient is a counting fake for the outbound HTTP client. Responses
// are served in order; the last one repeats.
type fakeHTTPClient struct {
	responses []fakeResponse
	calls     atomic.Int32
}

type fakeResponse struct {
	status int
	body   string
	err    error
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	call := int(f.calls.Add(1)) - 1
	if call >= len(f.responses) {
		call = len(f.responses) - 1
	}
	resp := f.responses[call]
	if resp.err != nil {
		return nil, resp.err
	}
	return &http.Response{
		StatusCode: resp.status,
		Body:       io.NopCloser(bytes.NewBufferString(resp.body)),
		Header:     http.Header{},
	}, nil
}

func (f *fakeHTTPClient) Get(url string) (*http.Response, error) {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	return f.Do(req)
}

type FetchEngineTestSuite struct {
	suite.Suite
}

func TestFetchEngineSuite(t *testing.T) {
	suite.Run(t, new(FetchEngineTestSuite))
}

func (suite *FetchEngineTestSuite) TestLiveFetchIsCached() {
	client := &fakeHTTPClient{responses: []fakeResponse{{status: 200, body: `{"ok":true}`}}}
	engine := newFetchEngine(cache.NewResponseCache("test", true), client)

	live := func(ctx context.Context) (any, error) {
		if _, err := engine.getJSON(ctx, "https://example.test/data", time.Second); err != nil {
			return nil, err
		}
		return "payload", nil
	}

	first, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL, live, nil, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ProvenanceLive, first.Provenance)
	assert.False(suite.T(), first.CacheHit)

	second, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL, live, nil, nil)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ProvenanceLive, second.Provenance)
	assert.True(suite.T(), second.CacheHit)
	assert.Equal(suite.T(), "payload", second.Value)

	// The second resolution must not touch the network.
	assert.Equal(suite.T(), int32(1), client.calls.Load())
}

func (suite *FetchEngineTestSuite) TestSyntheticFallbackUsesDegradedTTL() {
	responseCache := cache.NewResponseCache("test", true)
	engine := newFetchEngine(responseCache, &fakeHTTPClient{})

	outcome, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL,
		func(ctx context.Context) (any, error) { return nil, errors.New("connection refused") },
		func() (any, bool) { return "synthetic payload", true },
		nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ProvenanceSynthetic, outcome.Provenance)
	assert.Equal(suite.T(), "synthetic payload", outcome.Value)

	stats := responseCache.Stats()
	assert.Equal(suite.T(), 1, stats.Size)
	assert.Equal(suite.T(), "30m", stats.Entries[0].ExpiresIn)
}

func (suite *FetchEngineTestSuite) TestSyntheticResultServedFromCache() {
	engine := newFetchEngine(cache.NewResponseCache("test", true), &fakeHTTPClient{})

	liveCalls := 0
	live := func(ctx context.Context) (any, error) {
		liveCalls++
		return nil, errors.New("connection refused")
	}
	synthesize := func() (any, bool) { return "synthetic payload", true }

	_, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL, live, synthesize, nil)
	assert.NoError(suite.T(), err)

	outcome, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL, live, synthesize, nil)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), outcome.CacheHit)
	assert.Equal(suite.T(), ProvenanceSynthetic, outcome.Provenance)

	// The cached failure must not retry the upstream within the TTL window.
	assert.Equal(suite.T(), 1, liveCalls)
}

func (suite *FetchEngineTestSuite) TestMockFallbackIsNotCached() {
	responseCache := cache.NewResponseCache("test", true)
	engine := newFetchEngine(responseCache, &fakeHTTPClient{})

	outcome, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL,
		func(ctx context.Context) (any, error) { return nil, errors.New("connection refused") },
		nil,
		func() (any, bool) { return "mock payload", true })

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), ProvenanceMock, outcome.Provenance)
	assert.Equal(suite.T(), 0, responseCache.Size())
}

func (suite *FetchEngineTestSuite) TestAllTiersExhausted() {
	engine := newFetchEngine(cache.NewResponseCache("test", true), &fakeHTTPClient{})

	_, err := engine.fetch(context.Background(), "test", "test:a=1", cache.DefaultTTL,
		func(ctx context.Context) (any, error) { return nil, errors.New("connection refused") },
		nil, nil)

	assert.ErrorIs(suite.T(), err, errUpstreamUnavailable)
}

func (suite *FetchEngineTestSuite) TestGetJSONFailures() {
	testCases := []struct {
		name     string
		response fakeResponse
	}{
		{
			name:     "TransportError",
			response: fakeResponse{err: errors.New("connection refused")},
		},
		{
			name:     "ServerError",
			response: fakeResponse{status: 503, body: "unavailable"},
		},
		{
			name:     "HTMLBody",
			response: fakeResponse{status: 200, body: "<HTML><body>maintenance</body></HTML>"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			engine := newFetchEngine(cache.NewResponseCache("test", true),
				&fakeHTTPClient{responses: []fakeResponse{tc.response}})

			_, err := engine.getJSON(context.Background(), "https://example.test/data", time.Second)
			assert.Error(suite.T(), err)
		})
	}
}

func (suite *FetchEngineTestSuite) TestGetJSONSuccess() {
	engine := newFetchEngine(cache.NewResponseCache("test", true),
		&fakeHTTPClient{responses: []fakeResponse{{status: 200, body: `  {"observations":[]}`}}})

	body, err := engine.getJSON(context.Background(), "https://example.test/data", time.Second)

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), string(body), "observations")
}
