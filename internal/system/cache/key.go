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

package cache

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedParamValue is returned when a cache key parameter cannot be
// rendered as a string. Callers must treat this as a programming error.
var ErrUnsupportedParamValue = errors.New("cache key parameter value cannot be stringified")

// GenerateKey derives a deterministic cache key from a prefix and a set of request
// parameters. Parameter names are sorted lexicographically so that the same logical
// request always maps to the same key, regardless of argument order.
func GenerateKey(prefix string, params map[string]any) (string, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		value, err := stringifyParam(params[name])
		if err != nil {
			return "", fmt.Errorf("parameter %q: %w", name, err)
		}
		pairs = append(pairs, name+"="+value)
	}

	return prefix + ":" + strings.Join(pairs, "&"), nil
}

// stringifyParam renders a scalar parameter value as a string.
func stringifyParam(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", ErrUnsupportedParamValue
	}
}
