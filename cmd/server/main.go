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

// Package main is the entry point for starting the Insights server.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/worlddata/insights/internal/system/cache"
	"github.com/worlddata/insights/internal/system/config"
	"github.com/worlddata/insights/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	insightsHome := getInsightsHome(logger)

	cfg := initInsightsConfigurations(logger, insightsHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	responseCache := initResponseCache(cfg)

	mux := http.NewServeMux()
	registerServices(mux, responseCache)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, insightsHome)
	}
}

// getInsightsHome retrieves and returns the Insights home directory.
func getInsightsHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("insightsHome", "", "Path to Insights home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using insightsHome from command line argument",
			log.String("insightsHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initInsightsConfigurations initializes the Insights configurations.
func initInsightsConfigurations(logger *log.Logger, insightsHome string) *config.Config {
	configFilePath := path.Join(insightsHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeInsightsRuntime(insightsHome, cfg); err != nil {
		logger.Fatal("Failed to initialize insights runtime", log.Error(err))
	}

	return cfg
}

// initResponseCache creates the shared response cache and starts its sweeper.
func initResponseCache(cfg *config.Config) *cache.ResponseCache {
	responseCache := cache.NewResponseCache("responses", !cfg.Cache.Disabled)
	responseCache.StartSweeper(time.Duration(cfg.Cache.SweepInterval) * time.Second)
	return responseCache
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, insightsHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	certFile := path.Join(insightsHome, cfg.Security.CertFile)
	keyFile := path.Join(insightsHome, cfg.Security.KeyFile)
	certificate, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		logger.Fatal("Failed to load TLS key pair", log.Error(err))
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("Insights server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("Insights server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
