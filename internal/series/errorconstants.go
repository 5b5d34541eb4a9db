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
	"errors"

	"github.com/worlddata/insights/internal/system/error/serviceerror"
)

// errUpstreamUnavailable is the internal sentinel for live call failures. It is
// absorbed by the fallback chain and never surfaced to callers.
var errUpstreamUnavailable = errors.New("upstream unavailable")

// Client errors for series operations.
var (
	// ErrorMissingSeriesID is the error returned when the series_id parameter is absent.
	ErrorMissingSeriesID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SER-1001",
		Error:            "Missing required parameter",
		ErrorDescription: "The series_id parameter is required",
	}
	// ErrorMissingSearchText is the error returned when the search_text parameter is absent.
	ErrorMissingSearchText = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SER-1002",
		Error:            "Missing required parameter",
		ErrorDescription: "The search_text parameter is required",
	}
	// ErrorMissingIndicator is the error returned when the indicator parameter is absent.
	ErrorMissingIndicator = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SER-1003",
		Error:            "Missing required parameter",
		ErrorDescription: "The indicator parameter is required",
	}
	// ErrorMissingVariableOrEntity is the error returned when the key or entity parameter is absent.
	ErrorMissingVariableOrEntity = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SER-1004",
		Error:            "Missing required parameter",
		ErrorDescription: "The key and entity parameters are required",
	}
)

// Server errors for series operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SER-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorSourceNotConfigured is the error returned when a required API key is not configured.
	ErrorSourceNotConfigured = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SER-5001",
		Error:            "Source not configured",
		ErrorDescription: "The API key required by this data source is not configured",
	}
)
