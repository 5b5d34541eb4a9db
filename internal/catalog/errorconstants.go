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
	"errors"

	"github.com/worlddata/insights/internal/system/error/serviceerror"
)

// ErrDatasetNotFound is returned when the dataset is not found in the catalog.
var ErrDatasetNotFound = errors.New("dataset not found")

// Client errors for catalog operations.
var (
	// ErrorDatasetNotFound is the error returned when a dataset is not found.
	ErrorDatasetNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DST-1001",
		Error:            "Dataset not found",
		ErrorDescription: "The requested dataset could not be found in the catalog",
	}
	// ErrorInvalidDatasetID is the error returned when an invalid dataset ID is provided.
	ErrorInvalidDatasetID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "DST-1002",
		Error:            "Invalid dataset ID",
		ErrorDescription: "The provided dataset ID is invalid or empty",
	}
)

// Server errors for catalog operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "DST-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
