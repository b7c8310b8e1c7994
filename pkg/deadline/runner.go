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

package deadline

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// ErrCommandFailed is returned when deadlinecommand exits with a non-zero status
var ErrCommandFailed = errors.New("deadlinecommand failed")

// Runner executes deadlinecommand. env holds extra KEY=VALUE pairs for the
// child process only.
type Runner interface {
	Run(ctx context.Context, env []string, args ...string) (string, error)
}

type execRunner struct {
	path string
}

// NewRunner returns a Runner that executes the deadlinecommand binary at path
func NewRunner(path string) Runner {
	return &execRunner{path: path}
}

func (r *execRunner) Run(ctx context.Context, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), errors.Wrapf(ErrCommandFailed, "exit status %d\nstdout: %s\nstderr: %s",
				exitErr.ExitCode(), stdout.String(), stderr.String())
		}
		return "", errors.Wrapf(err, "failed to call %s", r.path)
	}
	return stdout.String(), nil
}
