// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//     http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package logger

import (
	"os"
	"strings"
)

const (
	defaultLogLocation   = "stderr"
	defaultLogLevel      = "Info"
	envLogLevel          = "RFDK_LOG_LEVEL"
	envLogFilePath       = "RFDK_LOG_FILE"
	envAdditionalLogFile = "RFDK_ADDITIONAL_LOG_FILES"
)

// Configuration stores the config for the logger
type Configuration struct {
	LogLevel               string
	LogLocation            string
	AdditionalLogLocations []string
}

// LoadLogConfig returns the log configuration
func LoadLogConfig() *Configuration {
	return &Configuration{
		LogLevel:               GetLogLevel(),
		LogLocation:            GetLogLocation(),
		AdditionalLogLocations: GetAdditionalLogLocations(),
	}
}

// GetLogLocation returns the log file path
func GetLogLocation() string {
	logFilePath := os.Getenv(envLogFilePath)
	if logFilePath == "" {
		logFilePath = defaultLogLocation
	}
	return logFilePath
}

// GetLogLevel returns the log level
func GetLogLevel() string {
	logLevel := os.Getenv(envLogLevel)
	if logLevel == "" {
		return defaultLogLevel
	}
	return logLevel
}

// GetAdditionalLogLocations returns the extra sinks configured in the environment
func GetAdditionalLogLocations() []string {
	return ParseAdditionalLogLocations(os.Getenv(envAdditionalLogFile))
}

// ParseAdditionalLogLocations splits a comma-separated list of log sinks,
// dropping empty entries.
func ParseAdditionalLogLocations(value string) []string {
	var locations []string
	for _, location := range strings.Split(value, ",") {
		location = strings.TrimSpace(location)
		if location == "" {
			continue
		}
		locations = append(locations, location)
	}
	return locations
}
