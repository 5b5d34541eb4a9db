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

package undata

import "github.com/worlddata/insights/internal/system/error/serviceerror"

// Client errors for bulk CSV download operations.
var (
	// ErrorMissingURL is the error returned when the url parameter is missing.
	ErrorMissingURL = serviceerror.ServiceError{
		Code:             "UND-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The url parameter is required",
	}
	// ErrorMissingDatasetID is the error returned when the datasetId parameter is missing.
	ErrorMissingDatasetID = serviceerror.ServiceError{
		Code:             "UND-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The datasetId parameter is required",
	}
	// ErrorForbiddenURL is the error returned when the requested URL is outside
	// the allowed download domain.
	ErrorForbiddenURL = serviceerror.ServiceError{
		Code:             "UND-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Forbidden URL",
		ErrorDescription: "The requested URL is outside the allowed download domain",
	}
	// ErrorDatasetNotFound is the error returned when the dataset id is not in the catalog.
	ErrorDatasetNotFound = serviceerror.ServiceError{
		Code:             "UND-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Dataset not found",
		ErrorDescription: "A dataset with the given id does not exist in the catalog",
	}
)

// Server errors for bulk CSV download operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "UND-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
