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

import "github.com/worlddata/insights/internal/system/database/model"

var (
	// queryGetDatasetList is the query to get the full dataset catalog.
	queryGetDatasetList = model.DBQuery{
		ID: "DSQ-DST_MGT-01",
		Query: "SELECT DATASET_ID, NAME, CATEGORY, DESCRIPTION, SOURCE, SOURCE_IDENTIFIER, LAST_UPDATED " +
			"FROM DATASET ORDER BY CATEGORY, NAME",
	}
	// queryGetDatasetListByCategory is the query to get datasets filtered by category.
	queryGetDatasetListByCategory = model.DBQuery{
		ID: "DSQ-DST_MGT-02",
		Query: "SELECT DATASET_ID, NAME, CATEGORY, DESCRIPTION, SOURCE, SOURCE_IDENTIFIER, LAST_UPDATED " +
			"FROM DATASET WHERE CATEGORY = $1 ORDER BY NAME",
	}
	// queryGetDatasetByID is the query to get a dataset by dataset ID.
	queryGetDatasetByID = model.DBQuery{
		ID: "DSQ-DST_MGT-03",
		Query: "SELECT DATASET_ID, NAME, CATEGORY, DESCRIPTION, SOURCE, SOURCE_IDENTIFIER, LAST_UPDATED " +
			"FROM DATASET WHERE DATASET_ID = $1",
	}
)
