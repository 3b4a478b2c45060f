/*
Copyright 2025 the Stratocloud Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads test-suite configuration from environment variables,
// with an optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Image service.
	ImagesBaseURL       string
	ImagesAuthToken     string
	ImageResultsLimit   int
	ImageStatusInterval time.Duration
	ImageBuildTimeout   time.Duration

	// Event-tracking service.
	EventsBaseURL   string
	EventsAuthToken string

	// Block-storage CLI.
	CLIBinary           string
	CLIUsername         string
	CLIPassword         string
	CLITenantName       string
	CLIAuthURL          string
	CLIRegionName       string
	VolumeServiceName   string
	VolumeAPIVersion    string
	CLIRetries          int
	CLITimeout          time.Duration

	RequestTimeout time.Duration
	LogRequests    bool
	LogResponses   bool
}

// Load reads configuration from the environment and any discovered .env
// file. It returns an error naming every missing required value at once so
// a misconfigured run fails with a single actionable message.
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		ImagesBaseURL:       strings.TrimSuffix(os.Getenv("IMAGES_BASE_URL"), "/"),
		ImagesAuthToken:     os.Getenv("IMAGES_AUTH_TOKEN"),
		ImageResultsLimit:   getIntWithDefault("IMAGE_RESULTS_LIMIT", 100),
		ImageStatusInterval: getDurationWithDefault("IMAGE_STATUS_INTERVAL", 15*time.Second),
		ImageBuildTimeout:   getDurationWithDefault("IMAGE_BUILD_TIMEOUT", 10*time.Minute),
		EventsBaseURL:       strings.TrimSuffix(os.Getenv("EVENTS_BASE_URL"), "/"),
		EventsAuthToken:     os.Getenv("EVENTS_AUTH_TOKEN"),
		CLIBinary:           getStringWithDefault("VOLUMES_CLI_BINARY", "cinder"),
		CLIUsername:         os.Getenv("OS_USERNAME"),
		CLIPassword:         os.Getenv("OS_PASSWORD"),
		CLITenantName:       os.Getenv("OS_TENANT_NAME"),
		CLIAuthURL:          os.Getenv("OS_AUTH_URL"),
		CLIRegionName:       os.Getenv("OS_REGION_NAME"),
		VolumeServiceName:   os.Getenv("VOLUME_SERVICE_NAME"),
		VolumeAPIVersion:    os.Getenv("OS_VOLUME_API_VERSION"),
		CLIRetries:          getIntWithDefault("VOLUMES_CLI_RETRIES", 1),
		CLITimeout:          getDurationWithDefault("VOLUMES_CLI_TIMEOUT", 2*time.Minute),
		RequestTimeout:      getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		LogRequests:         getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:        getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from an environment variable or returns
// the default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from an environment variable or
// returns the default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getIntWithDefault gets an integer from an environment variable or returns
// the default.
func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getBoolWithDefault gets a boolean from an environment variable or returns
// the default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"../../.env",
		"../../../test/.env", // from test/api/suites
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// No .env file - fine in CI where variables are set directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *Config) error {
	var missing []string

	required := map[string]string{
		"IMAGES_BASE_URL": config.ImagesBaseURL,
		"EVENTS_BASE_URL": config.EventsBaseURL,
		"OS_USERNAME":     config.CLIUsername,
		"OS_PASSWORD":     config.CLIPassword,
		"OS_AUTH_URL":     config.CLIAuthURL,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
