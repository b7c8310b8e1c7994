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

package awsutils

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/pkg/errors"

	"github.com/aws/aws-rfdk/pkg/ec2wrapper"
)

// SubnetResolver looks up subnet CIDR blocks in EC2
type SubnetResolver struct {
	ec2SVC ec2wrapper.EC2
}

// NewSubnetResolver returns a SubnetResolver backed by ec2SVC
func NewSubnetResolver(ec2SVC ec2wrapper.EC2) *SubnetResolver {
	return &SubnetResolver{ec2SVC: ec2SVC}
}

// SubnetCIDRs returns the IPv4 CIDR block of each of the given subnets,
// keyed by subnet ID. Unknown subnet IDs are reported by EC2 as an error.
func (r *SubnetResolver) SubnetCIDRs(ctx context.Context, subnetIDs []string) (map[string]string, error) {
	subnetToCIDR := make(map[string]string, len(subnetIDs))
	if len(subnetIDs) == 0 {
		return subnetToCIDR, nil
	}

	input := &ec2.DescribeSubnetsInput{
		SubnetIds: subnetIDs,
	}
	for {
		var output *ec2.DescribeSubnetsOutput
		err := instrument(ctx, "DescribeSubnets", func(ctx context.Context) error {
			var err error
			output, err = r.ec2SVC.DescribeSubnets(ctx, input)
			return err
		})
		if err != nil {
			return nil, errors.Wrap(err, "unable to describe subnets")
		}
		for _, subnet := range output.Subnets {
			subnetToCIDR[aws.ToString(subnet.SubnetId)] = aws.ToString(subnet.CidrBlock)
		}
		if aws.ToString(output.NextToken) == "" {
			break
		}
		input.NextToken = output.NextToken
	}

	for _, subnetID := range subnetIDs {
		if _, ok := subnetToCIDR[subnetID]; !ok {
			return nil, errors.Errorf("subnet %s was not returned by ec2:DescribeSubnets", subnetID)
		}
	}
	log.Debugf("Resolved subnet CIDRs: %v", subnetToCIDR)
	return subnetToCIDR, nil
}
