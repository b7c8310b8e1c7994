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

package awssession

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

// Http client timeout env for sessions
const (
	httpTimeoutEnv = "HTTP_TIMEOUT"
	endpointEnv    = "AWS_EC2_ENDPOINT"
	maxRetries     = 10

	// HTTP timeout default value in seconds (10 seconds)
	defaultHTTPTimeout = 10 * time.Second
)

func getHTTPTimeout() time.Duration {
	log := logger.Get()
	httpTimeoutEnvInput := os.Getenv(httpTimeoutEnv)
	// if httpTimeout is not empty, we convert value to int and overwrite the default
	if httpTimeoutEnvInput != "" {
		input, err := strconv.Atoi(httpTimeoutEnvInput)
		if err == nil && input >= 10 {
			log.Debugf("Using HTTP_TIMEOUT %v", input)
			return time.Duration(input) * time.Second
		}
		log.Warnf("HTTP_TIMEOUT %q is invalid or less than 10 seconds, defaulting to %v", httpTimeoutEnvInput, defaultHTTPTimeout)
	}
	return defaultHTTPTimeout
}

// New will return aws.Config to be used by Service Clients. An empty region
// falls back to the default resolution chain (env, shared config).
func New(ctx context.Context, region string) (aws.Config, error) {
	httpClient := awshttp.NewBuildableClient().WithTimeout(getHTTPTimeout())
	optFns := []func(*config.LoadOptions) error{
		config.WithHTTPClient(httpClient),
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), maxRetries)
		}),
	}
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// EC2Options returns the client options for EC2, honouring the
// AWS_EC2_ENDPOINT override.
func EC2Options() []func(*ec2.Options) {
	endpoint := os.Getenv(endpointEnv)
	if endpoint == "" {
		return nil
	}
	return []func(*ec2.Options){
		func(o *ec2.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	}
}
