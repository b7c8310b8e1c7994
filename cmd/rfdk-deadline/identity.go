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

package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aws/aws-rfdk/pkg/awsutils"
	"github.com/aws/aws-rfdk/pkg/deadline"
	"github.com/aws/aws-rfdk/pkg/identityregistration"
	"github.com/aws/aws-rfdk/pkg/publisher"
	"github.com/aws/aws-rfdk/pkg/utils/logger"
	"github.com/aws/aws-rfdk/pkg/version"
	"github.com/aws/aws-rfdk/utils/prometheusmetrics"
)

var validate = validator.New()

// published to CloudWatch at the end of a run
var cloudwatchCounters = []string{
	"rfdk_identity_registration_actions_total",
	"rfdk_deadline_command_count",
	"rfdk_aws_api_error_count",
}

type identityOptions struct {
	config              identityregistration.Config
	metricsFile         string
	cloudwatchNamespace string
}

// adminCredentials is the Secrets Management administrator secret
type adminCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func newIdentityRegistrationCommand(deps *dependencies) *cobra.Command {
	opts := &identityOptions{}
	cmd := &cobra.Command{
		Use:   "identity-registration",
		Short: "Configures Deadline Secrets Management identity registration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIdentityRegistration(cmd.Context(), deps, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Var(&secretRefValue{ref: &opts.config.Credentials, arnOnly: true}, "credentials",
		"Deadline Secrets Management admin credentials. This must be an AWS Secrets Manager secret ARN")
	flags.StringVar(&opts.config.Region, "region", "",
		"The region where the Repository, Render Queue, and Clients reside")
	flags.StringArrayVar(&opts.config.ConnectionSubnets, "connection-subnet", nil,
		"A subnet ID that the Render Queue's load balancer will connect from. May be repeated")
	flags.Var(&sourceSubnetsValue{subnets: &opts.config.SourceSubnets}, "source-subnet",
		"A source subnet that Deadline Clients will connect from, as <subnet id>,<Server|Client>,<Pending|Registered|Revoked>. May be repeated")
	flags.BoolVar(&opts.config.DryRun, "dry-run", false,
		"Print the deadlinecommand invocations that would change settings instead of running them")
	flags.StringVar(&opts.metricsFile, "metrics-file", "",
		`Write run metrics in the Prometheus text format to this file, or "-" for stdout`)
	flags.StringVar(&opts.cloudwatchNamespace, "cloudwatch-namespace", "",
		"Publish run metrics to this CloudWatch namespace")
	_ = cmd.MarkFlagRequired("credentials")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

func runIdentityRegistration(ctx context.Context, deps *dependencies, opts *identityOptions, out io.Writer) error {
	log := logger.Get()
	if err := opts.config.Validate(); err != nil {
		return err
	}
	prometheusmetrics.PrometheusRegister()
	version.RegisterMetric()

	awsCfg, err := deps.awsConfig(ctx, opts.config.Region)
	if err != nil {
		return err
	}

	fetcher := awsutils.NewSecretFetcher(deps.secretsClients(awsCfg))
	creds, err := fetchAdminCredentials(ctx, fetcher, opts.config.Credentials)
	if err != nil {
		return err
	}

	runner, err := deps.deadlineRunner()
	if err != nil {
		return err
	}
	api := identityregistration.NewDeadlineSettingsAPI(
		deadline.NewSecretsClient(runner, creds.Username, creds.Password), out, opts.config.DryRun)
	resolver := awsutils.NewSubnetResolver(deps.ec2(awsCfg))

	_, applyErr := identityregistration.Apply(ctx, &opts.config, resolver, api, log)
	metricsErr := emitMetrics(ctx, deps, awsCfg, opts, out)
	if applyErr != nil {
		if metricsErr != nil {
			log.Warnf("Unable to emit metrics: %v", metricsErr)
		}
		return applyErr
	}
	return metricsErr
}

func fetchAdminCredentials(ctx context.Context, fetcher *awsutils.SecretFetcher, ref awsutils.SecretRef) (*adminCredentials, error) {
	secret, err := fetcher.FetchSecretString(ctx, ref)
	if err != nil {
		return nil, err
	}
	creds := &adminCredentials{}
	if err := json.Unmarshal([]byte(secret), creds); err != nil {
		return nil, errors.Wrapf(err, "secret %s is not a JSON object", ref)
	}
	if err := validate.Struct(creds); err != nil {
		return nil, errors.Wrapf(err, "secret %s must contain a username and a password", ref)
	}
	return creds, nil
}

func emitMetrics(ctx context.Context, deps *dependencies, awsCfg aws.Config, opts *identityOptions, out io.Writer) error {
	switch opts.metricsFile {
	case "":
	case "-":
		if err := prometheusmetrics.WriteText(out); err != nil {
			return err
		}
	default:
		if err := prometheusmetrics.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
	}

	if opts.cloudwatchNamespace == "" {
		return nil
	}
	data, err := publisher.CounterData(prometheusmetrics.Registry, cloudwatchCounters...)
	if err != nil {
		return err
	}
	cw := publisher.New(ctx, deps.cloudwatch(awsCfg), deps.imds(awsCfg), opts.cloudwatchNamespace)
	cw.Publish(data...)
	return cw.Flush(ctx)
}
