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

package identityregistration

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// SettingsAPI is the remote Secrets Management API for identity registration settings
type SettingsAPI interface {
	List(ctx context.Context) ([]RegistrationSetting, error)
	Create(ctx context.Context, setting RegistrationSetting) error
	Update(ctx context.Context, setting RegistrationSetting) error
	Delete(ctx context.Context, settingsID string) error
}

// SecretsCommandRunner runs "deadlinecommand secrets" subcommands
type SecretsCommandRunner interface {
	RunString(ctx context.Context, args ...string) (string, error)
	RunJSON(ctx context.Context, out interface{}, args ...string) error
	DryRun(args ...string) string
}

type deadlineSettingsAPI struct {
	secrets SecretsCommandRunner
	out     io.Writer
	dryRun  bool
}

// NewDeadlineSettingsAPI returns a SettingsAPI that drives deadlinecommand.
// Command output is written to out. With dryRun set, mutating calls are
// rendered to out instead of executed.
func NewDeadlineSettingsAPI(secrets SecretsCommandRunner, out io.Writer, dryRun bool) SettingsAPI {
	return &deadlineSettingsAPI{secrets: secrets, out: out, dryRun: dryRun}
}

func (d *deadlineSettingsAPI) List(ctx context.Context) ([]RegistrationSetting, error) {
	var settings []RegistrationSetting
	if err := d.secrets.RunJSON(ctx, &settings, "GetLoadBalancerIdentityRegistrationSettings"); err != nil {
		return nil, errors.Wrap(err, "unable to list identity registration settings")
	}
	return settings, nil
}

func (d *deadlineSettingsAPI) Create(ctx context.Context, s RegistrationSetting) error {
	return d.mutate(ctx,
		"CreateLoadBalancerIdentityRegistrationSetting",
		s.SettingsName,
		s.ConnectionIPFilterType,
		s.ConnectionIPFilterValue,
		s.SourceIPFilterType,
		s.SourceIPFilterValue,
		string(s.DefaultRole),
		string(s.DefaultStatus),
		formatBool(s.IsEnabled),
	)
}

func (d *deadlineSettingsAPI) Update(ctx context.Context, s RegistrationSetting) error {
	return d.mutate(ctx,
		"UpdateLoadBalancerIdentityRegistrationSetting",
		s.SettingsID,
		s.SettingsName,
		s.ConnectionIPFilterType,
		s.ConnectionIPFilterValue,
		s.SourceIPFilterType,
		s.SourceIPFilterValue,
		string(s.DefaultRole),
		string(s.DefaultStatus),
		formatBool(s.IsEnabled),
	)
}

func (d *deadlineSettingsAPI) Delete(ctx context.Context, settingsID string) error {
	return d.mutate(ctx, "DeleteLoadBalancerIdentityRegistrationSetting", settingsID)
}

func (d *deadlineSettingsAPI) mutate(ctx context.Context, args ...string) error {
	if d.dryRun {
		_, err := fmt.Fprintln(d.out, d.secrets.DryRun(args...))
		return err
	}
	output, err := d.secrets.RunString(ctx, args...)
	if err != nil {
		return errors.Wrapf(err, "%s failed", args[0])
	}
	_, err = fmt.Fprint(d.out, output)
	return err
}

// formatBool renders booleans the way Deadline parses them
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
