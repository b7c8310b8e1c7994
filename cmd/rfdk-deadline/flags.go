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
	"strings"

	"github.com/samber/lo"

	"github.com/aws/aws-rfdk/pkg/awsutils"
	"github.com/aws/aws-rfdk/pkg/identityregistration"
)

// sourceSubnetsValue is a repeatable "<subnet id>,<Role>,<Status>" flag
type sourceSubnetsValue struct {
	subnets *[]identityregistration.SourceSubnet
}

func (v *sourceSubnetsValue) String() string {
	if v.subnets == nil {
		return ""
	}
	return strings.Join(lo.Map(*v.subnets, func(s identityregistration.SourceSubnet, _ int) string {
		return strings.Join([]string{s.SubnetID, string(s.Role), string(s.RegistrationStatus)}, ",")
	}), " ")
}

func (v *sourceSubnetsValue) Set(value string) error {
	subnet, err := identityregistration.ParseSourceSubnet(value)
	if err != nil {
		return err
	}
	*v.subnets = append(*v.subnets, subnet)
	return nil
}

func (v *sourceSubnetsValue) Type() string {
	return "subnet,Role,Status"
}

// secretRefValue is a flag holding a Secrets Manager ARN or, unless
// arnOnly is set, a file:/// URI.
type secretRefValue struct {
	ref     *awsutils.SecretRef
	arnOnly bool
}

func (v *secretRefValue) String() string {
	if v.ref == nil {
		return ""
	}
	return v.ref.String()
}

func (v *secretRefValue) Set(value string) error {
	parse := awsutils.ParseSecretRef
	if v.arnOnly {
		parse = awsutils.ParseSecretARN
	}
	ref, err := parse(value)
	if err != nil {
		return err
	}
	*v.ref = ref
	return nil
}

func (v *secretRefValue) Type() string {
	if v.arnOnly {
		return "secretArn"
	}
	return "secret"
}
