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
	"sync"
)

var (
	mu  sync.Mutex
	log Logger
)

// Fields Type to pass when we want to call WithFields for structured logging
type Fields map[string]interface{}

// Logger is our contract for the logger
type Logger interface {
	Debugf(format string, args ...interface{})

	Debug(format string)

	Infof(format string, args ...interface{})

	Info(format string)

	Warnf(format string, args ...interface{})

	Warn(format string)

	Errorf(format string, args ...interface{})

	Error(format string)

	Fatalf(format string, args ...interface{})

	WithFields(keyValues Fields) Logger

	Sync() error
}

// Get returns the process-wide logger, building one from the environment
// the first time it is called.
func Get() Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = LoadLogConfig().newZapLogger()
	}
	return log
}

// New builds a logger from inputLogConfig and installs it as the instance
// returned by Get.
func New(inputLogConfig *Configuration) Logger {
	mu.Lock()
	defer mu.Unlock()
	log = inputLogConfig.newZapLogger()
	return log
}
