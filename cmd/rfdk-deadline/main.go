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

// rfdk-deadline configures Deadline hosts deployed by RFDK
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/aws/aws-rfdk/pkg/awsutils"
	"github.com/aws/aws-rfdk/pkg/awsutils/awssession"
	"github.com/aws/aws-rfdk/pkg/deadline"
	"github.com/aws/aws-rfdk/pkg/ec2wrapper"
	"github.com/aws/aws-rfdk/pkg/publisher"
	"github.com/aws/aws-rfdk/pkg/utils/logger"
	"github.com/aws/aws-rfdk/pkg/version"
)

const appName = "rfdk-deadline"

// dependencies builds the clients used by the commands. Tests replace them with fakes.
type dependencies struct {
	awsConfig      func(ctx context.Context, region string) (aws.Config, error)
	ec2            func(cfg aws.Config) ec2wrapper.EC2
	secretsClients func(cfg aws.Config) awsutils.SecretsClientFactory
	cloudwatch     func(cfg aws.Config) publisher.CloudWatchAPI
	imds           func(cfg aws.Config) publisher.InstanceIDGetter
	deadlineRunner func() (deadline.Runner, error)
}

func defaultDependencies() *dependencies {
	return &dependencies{
		awsConfig:      awssession.New,
		ec2:            ec2wrapper.New,
		secretsClients: awsutils.NewSecretsClientFactory,
		cloudwatch: func(cfg aws.Config) publisher.CloudWatchAPI {
			return cloudwatch.NewFromConfig(cfg)
		},
		imds: func(cfg aws.Config) publisher.InstanceIDGetter {
			return awsutils.NewIMDS(cfg)
		},
		deadlineRunner: func() (deadline.Runner, error) {
			path, err := deadline.Locate()
			if err != nil {
				return nil, err
			}
			return deadline.NewRunner(path), nil
		},
	}
}

func newRootCommand(deps *dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Configures Deadline hosts deployed by the Render Farm Deployment Kit",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newIdentityRegistrationCommand(deps),
		newRenderQueueConnectionCommand(deps),
		newMongodConfigCommand(),
	)
	return root
}

func main() {
	// Do not add anything before initializing logger
	log := logger.New(logger.LoadLogConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	err := newRootCommand(defaultDependencies()).ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Errorf("%s failed: %v", appName, err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}
