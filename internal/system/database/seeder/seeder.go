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

// Package seeder provides initial data seeding for the dataset catalog database.
package seeder

import (
	"github.com/worlddata/insights/internal/system/database/client"
	"github.com/worlddata/insights/internal/system/database/model"
	"github.com/worlddata/insights/internal/system/log"
)

// SeederInterface defines the interface for database data seeding.
type SeederInterface interface {
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// SeedInitialData creates the catalog schema if needed and seeds the built-in datasets.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	if err := s.ensureSchema(); err != nil {
		logger.Error("Failed to create catalog schema", log.Error(err))
		return err
	}

	if err := s.seedDatasets(getSeedData().Datasets); err != nil {
		logger.Error("Failed to seed datasets", log.Error(err))
		return err
	}

	logger.Info("Database seeding process completed successfully")
	return nil
}

// ensureSchema creates the DATASET table when it does not exist yet.
func (s *DBSeeder) ensureSchema() error {
	query := model.DBQuery{
		ID: "SEED_CREATE_DATASET_TABLE",
		Query: "CREATE TABLE IF NOT EXISTS DATASET (" +
			"DATASET_ID VARCHAR(64) PRIMARY KEY, " +
			"NAME VARCHAR(255) NOT NULL, " +
			"CATEGORY VARCHAR(64) NOT NULL, " +
			"DESCRIPTION VARCHAR(512), " +
			"SOURCE VARCHAR(32) NOT NULL, " +
			"SOURCE_IDENTIFIER VARCHAR(512) NOT NULL, " +
			"LAST_UPDATED VARCHAR(16))",
	}

	_, err := s.dbClient.Execute(query)
	return err
}

// seedDatasets inserts the built-in dataset catalog entries.
func (s *DBSeeder) seedDatasets(datasets []DatasetData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, ds := range datasets {
		query := model.DBQuery{
			ID: "SEED_INSERT_DATASET",
			SQLiteQuery: "INSERT OR IGNORE INTO DATASET " +
				"(DATASET_ID, NAME, CATEGORY, DESCRIPTION, SOURCE, SOURCE_IDENTIFIER, LAST_UPDATED) " +
				"VALUES (?, ?, ?, ?, ?, ?, ?)",
			PostgresQuery: "INSERT INTO DATASET " +
				"(DATASET_ID, NAME, CATEGORY, DESCRIPTION, SOURCE, SOURCE_IDENTIFIER, LAST_UPDATED) " +
				"VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (DATASET_ID) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, ds.ID, ds.Name, ds.Category, ds.Description,
			ds.Source, ds.SourceIdentifier, ds.LastUpdated)
		if err != nil {
			logger.Error("Failed to insert dataset", log.String("dataset_id", ds.ID), log.Error(err))
			return err
		}
		logger.Debug("Seeded dataset", log.String("dataset_id", ds.ID), log.String("name", ds.Name))
	}

	return nil
}
