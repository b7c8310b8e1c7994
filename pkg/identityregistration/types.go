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

// Package identityregistration reconciles the Deadline Secrets Management
// load balancer identity registration settings that this tool owns with a
// desired set of connection and source subnets.
//
// Settings are owned when their name follows the convention
// "RfdkSubnet|<connection subnet>|<source subnet>". Any other setting is
// left untouched.
package identityregistration

// Role is the Deadline role granted to identities registered from a source subnet
type Role string

// Status is the registration status applied to new identities
type Status string

const (
	RoleServer Role = "Server"
	RoleClient Role = "Client"

	StatusPending    Status = "Pending"
	StatusRegistered Status = "Registered"
	StatusRevoked    Status = "Revoked"
)

// RegistrationSetting is a load balancer identity registration setting as
// returned by GetLoadBalancerIdentityRegistrationSettings.
type RegistrationSetting struct {
	ConnectionIPFilterType  string `json:"ConnectionIpFilterType"`
	ConnectionIPFilterValue string `json:"ConnectionIpFilterValue"`
	SourceIPFilterType      string `json:"SourceIpFilterType"`
	SourceIPFilterValue     string `json:"SourceIpFilterValue"`
	SettingsID              string `json:"SettingsId"`
	SettingsName            string `json:"SettingsName"`
	IsEnabled               bool   `json:"IsEnabled"`
	DefaultStatus           Status `json:"DefaultStatus"`
	DefaultRole             Role   `json:"DefaultRole"`
}

// SourceSubnet is a subnet that Deadline clients connect from, with the
// role and status their identities receive.
type SourceSubnet struct {
	SubnetID           string `validate:"required,settingtoken"`
	Role               Role   `validate:"oneof=Server Client"`
	RegistrationStatus Status `validate:"oneof=Pending Registered Revoked"`
}

// SubnetPair identifies a managed setting by the subnets encoded in its name
type SubnetPair struct {
	ConnectionSubnetID string
	SourceSubnetID     string
}

// ManagedSetting is a remote setting whose name follows the naming
// convention, together with the decoded subnet pair.
type ManagedSetting struct {
	Setting RegistrationSetting
	Pair    SubnetPair
}

// Result counts the actions taken by one reconciliation
type Result struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}
