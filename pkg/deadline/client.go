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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
	"github.com/aws/aws-rfdk/utils/prometheusmetrics"
)

const configurationErrorPrefix = "Deadline configuration error:"

func run(ctx context.Context, runner Runner, command string, env []string, args ...string) (string, error) {
	output, err := runner.Run(ctx, env, args...)
	prometheusmetrics.DeadlineCommandCnt.With(prometheus.Labels{
		"command": command,
		"error":   strconv.FormatBool(err != nil),
	}).Inc()
	return output, err
}

// Client runs plain deadlinecommand subcommands
type Client struct {
	runner Runner
	log    logger.Logger
}

// NewClient returns a Client backed by runner
func NewClient(runner Runner) *Client {
	return &Client{runner: runner, log: logger.Get()}
}

// SetIniFileSetting sets a key in the Deadline client configuration file
func (c *Client) SetIniFileSetting(ctx context.Context, key, value string) error {
	c.log.Debugf("SetIniFileSetting %s=%q", key, value)
	if _, err := run(ctx, c.runner, "SetIniFileSetting", nil, "SetIniFileSetting", key, value); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// ChangeRepository points the client at a repository. For the Proxy type,
// args are the render queue address and, for TLS, the certificate path and
// an optional passphrase.
func (c *Client) ChangeRepository(ctx context.Context, repoType string, args ...string) (string, error) {
	c.log.Debugf("ChangeRepository %s", repoType)
	output, err := run(ctx, c.runner, "ChangeRepository", nil, append([]string{"ChangeRepository", repoType}, args...)...)
	if err != nil {
		return output, errors.Wrap(err, "failed to change repository")
	}
	if strings.HasPrefix(output, configurationErrorPrefix) {
		return output, errors.New(strings.TrimSpace(output))
	}
	return output, nil
}
