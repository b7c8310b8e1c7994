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

// Package deadline runs deadlinecommand, the Deadline client command line tool
package deadline

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

const (
	commandName = "deadlinecommand"

	deadlinePathEnv = "DEADLINE_PATH"
	// Written by the Deadline Client installer on Linux. cloud-init does not
	// source it, so the DEADLINEBIN value is read directly.
	envScriptPathLinux = "/etc/profile.d/deadlineclient.sh"
	pathFileMacOS      = "/Users/Shared/Thinkbox/DEADLINE_PATH"
)

var envScriptRegex = regexp.MustCompile(`(?m)DEADLINEBIN="(.*)"$`)

// ErrDeadlineNotFound is returned when the Deadline installation directory cannot be determined
var ErrDeadlineNotFound = errors.New("could not determine deadline path")

type locator struct {
	getenv     func(string) string
	envScript  string
	macPathDir string
}

var defaultLocator = locator{
	getenv:     os.Getenv,
	envScript:  envScriptPathLinux,
	macPathDir: pathFileMacOS,
}

// Locate returns the path of the deadlinecommand executable
func Locate() (string, error) {
	return defaultLocator.locate()
}

func (l locator) locate() (string, error) {
	log := logger.Get()
	deadlineBin := l.getenv(deadlinePathEnv)

	if deadlineBin == "" {
		if data, err := os.ReadFile(l.envScript); err == nil {
			log.Infof("Using environment script at %q", l.envScript)
			if m := envScriptRegex.FindSubmatch(data); m != nil {
				deadlineBin = string(m[1])
			}
		}
	}

	if deadlineBin == "" {
		if data, err := os.ReadFile(l.macPathDir); err == nil {
			log.Infof("Using MacOS Deadline path file at %q", l.macPathDir)
			deadlineBin = strings.TrimSpace(string(data))
		}
	}

	if deadlineBin == "" {
		return "", ErrDeadlineNotFound
	}
	return filepath.Join(deadlineBin, commandName), nil
}
