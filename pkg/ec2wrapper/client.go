// Copyright 2017 Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

// Package ec2wrapper narrows the EC2 service client to the calls this
// module makes, so that they can be mocked.
package ec2wrapper

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/aws/aws-rfdk/pkg/awsutils/awssession"
)

//go:generate go run ../../scripts/mockgen.go github.com/aws/aws-rfdk/pkg/ec2wrapper EC2 mocks/ec2wrapper_mocks.go

type EC2 interface {
	DescribeSubnets(ctx context.Context, input *ec2svc.DescribeSubnetsInput, optFns ...func(*ec2svc.Options)) (*ec2svc.DescribeSubnetsOutput, error)
}

// New returns an EC2 client for cfg
func New(cfg aws.Config) EC2 {
	return ec2svc.NewFromConfig(cfg, awssession.EC2Options()...)
}
