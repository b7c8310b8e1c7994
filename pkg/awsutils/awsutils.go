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

// Package awsutils is a utility package for calling EC2, Secrets Manager or IMDS
package awsutils

import (
	"context"
	"fmt"
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
	"github.com/aws/aws-rfdk/utils/prometheusmetrics"
)

var log = logger.Get()

func msSince(start time.Time) float64 {
	return float64(time.Since(start) / time.Millisecond)
}

// awsErrorCode returns the API error code carried by err, or "" when err
// did not come from an AWS API.
func awsErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func awsReqStatus(err error) string {
	if err == nil {
		return "200"
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Sprint(respErr.HTTPStatusCode())
	}
	return "" // Unknown HTTP status code
}

func awsAPIErrInc(api string, err error) {
	if code := awsErrorCode(err); code != "" {
		prometheusmetrics.AwsAPIErr.With(prometheus.Labels{"api": api, "error": code}).Inc()
	}
}

// instrument runs call and records its latency and error code under api
func instrument(ctx context.Context, api string, call func(ctx context.Context) error) error {
	start := time.Now()
	err := call(ctx)
	prometheusmetrics.AwsAPILatency.WithLabelValues(api, fmt.Sprint(err != nil), awsReqStatus(err)).Observe(msSince(start))
	if err != nil {
		awsAPIErrInc(api, err)
		if code := awsErrorCode(err); code != "" {
			log.Warnf("Failed to call %s: %s", api, code)
		}
	}
	return err
}
