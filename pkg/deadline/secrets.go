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
	"context"
	"encoding/json"

	"github.com/alessio/shellescape"
	"github.com/pkg/errors"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

// PasswordEnvVar carries the Secrets Management password to the child
// process so that it never appears in argv.
const PasswordEnvVar = "DL_SM_PW"

// SecretsClient runs "deadlinecommand secrets" subcommands as a Secrets
// Management administrator.
type SecretsClient struct {
	runner   Runner
	username string
	password string
	log      logger.Logger
}

// NewSecretsClient returns a SecretsClient authenticating as username
func NewSecretsClient(runner Runner, username, password string) *SecretsClient {
	return &SecretsClient{
		runner:   runner,
		username: username,
		password: password,
		log:      logger.Get(),
	}
}

// transformArgs turns "<Sub> <args...>" into
// "secrets <Sub> <username> --password env:DL_SM_PW <args...>".
func (c *SecretsClient) transformArgs(args []string) []string {
	transformed := []string{"secrets"}
	if len(args) > 0 {
		transformed = append(transformed, args[0])
	}
	transformed = append(transformed, c.username, "--password", "env:"+PasswordEnvVar)
	if len(args) > 1 {
		transformed = append(transformed, args[1:]...)
	}
	return transformed
}

func (c *SecretsClient) run(ctx context.Context, command string, args []string) (string, error) {
	return run(ctx, c.runner, "secrets "+command, []string{PasswordEnvVar + "=" + c.password}, args...)
}

// RunString runs a secrets subcommand and returns its standard output
func (c *SecretsClient) RunString(ctx context.Context, args ...string) (string, error) {
	output, err := c.run(ctx, firstArg(args), c.transformArgs(args))
	if err != nil {
		return output, errors.Wrapf(err, "secrets %s", firstArg(args))
	}
	return output, nil
}

// RunJSON runs a secrets subcommand in JSON mode and decodes the result into
// out. A JSON object whose "ok" field is false is an error.
func (c *SecretsClient) RunJSON(ctx context.Context, out interface{}, args ...string) error {
	transformed := append([]string{"--json"}, c.transformArgs(args)...)
	output, err := c.run(ctx, firstArg(args), transformed)
	if err != nil {
		return errors.Wrapf(err, "secrets %s", firstArg(args))
	}

	var status struct {
		OK *bool `json:"ok"`
	}
	if err := json.Unmarshal([]byte(output), &status); err == nil && status.OK != nil && !*status.OK {
		return errors.Wrapf(ErrCommandFailed, "secrets %s: %s", firstArg(args), output)
	}
	if err := json.Unmarshal([]byte(output), out); err != nil {
		return errors.Wrapf(err, "unable to decode output of secrets %s", firstArg(args))
	}
	return nil
}

// DryRun renders the command line that RunString would execute. The
// password is passed through the environment so it is never rendered.
func (c *SecretsClient) DryRun(args ...string) string {
	return shellescape.QuoteCommand(append([]string{commandName}, c.transformArgs(args)...))
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
