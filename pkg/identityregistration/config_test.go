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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/aws-rfdk/pkg/awsutils"
)

var testCredentials = awsutils.SecretRef{
	ARN:    "arn:aws:secretsmanager:us-west-2:123456789012:secret:DeadlineAdmin-AbCdEf",
	Region: "us-west-2",
}

func TestParseSourceSubnet(t *testing.T) {
	tests := []struct {
		value   string
		want    SourceSubnet
		wantErr bool
	}{
		{value: "subnet-3333333,Client,Registered", want: SourceSubnet{SubnetID: "subnet-3333333", Role: RoleClient, RegistrationStatus: StatusRegistered}},
		{value: "subnet-4444444,Server,Pending", want: SourceSubnet{SubnetID: "subnet-4444444", Role: RoleServer, RegistrationStatus: StatusPending}},
		{value: "subnet-5555555,Client,Revoked", want: SourceSubnet{SubnetID: "subnet-5555555", Role: RoleClient, RegistrationStatus: StatusRevoked}},
		{value: "subnet-3333333,client,Registered", wantErr: true},
		{value: "subnet-3333333,Client,Approved", wantErr: true},
		{value: "subnet-3333333,Client", wantErr: true},
		{value: ",Client,Registered", wantErr: true},
		{value: "subnet-3333333,Client,Registered,extra", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseSourceSubnet(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Credentials:       testCredentials,
			Region:            "us-west-2",
			ConnectionSubnets: []string{connA},
			SourceSubnets:     append([]SourceSubnet(nil), testSources...),
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "no connection subnet",
			mutate:  func(c *Config) { c.ConnectionSubnets = nil },
			wantErr: "no --connection-subnet specified",
		},
		{
			name: "duplicate source subnet",
			mutate: func(c *Config) {
				c.SourceSubnets = append(c.SourceSubnets, SourceSubnet{SubnetID: srcA, Role: RoleServer, RegistrationStatus: StatusPending})
			},
			wantErr: `Subnet "subnet-3333333" is not unique`,
		},
		{
			name: "duplicate checked before connection subnets",
			mutate: func(c *Config) {
				c.ConnectionSubnets = nil
				c.SourceSubnets = append(c.SourceSubnets, testSources[1])
			},
			wantErr: `Subnet "subnet-4444444" is not unique`,
		},
		{
			name:    "missing region",
			mutate:  func(c *Config) { c.Region = "" },
			wantErr: "Region",
		},
		{
			name:    "file credentials",
			mutate:  func(c *Config) { c.Credentials = awsutils.SecretRef{FilePath: "/tmp/creds"} },
			wantErr: "--credentials",
		},
		{
			name:    "separator in subnet id",
			mutate:  func(c *Config) { c.ConnectionSubnets = []string{"subnet|a"} },
			wantErr: "settingtoken",
		},
		{
			name:    "bad role",
			mutate:  func(c *Config) { c.SourceSubnets[0].Role = "Admin" },
			wantErr: "Role",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSubnetIDs(t *testing.T) {
	c := &Config{
		ConnectionSubnets: []string{connA, connB},
		SourceSubnets: []SourceSubnet{
			{SubnetID: srcA},
			{SubnetID: connA},
		},
	}
	assert.Equal(t, []string{connA, connB, srcA}, c.SubnetIDs())
}
