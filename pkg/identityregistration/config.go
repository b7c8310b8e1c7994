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
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/aws/aws-rfdk/pkg/awsutils"
)

var validate = validator.New()

var sourceSubnetRegex = regexp.MustCompile(`^([^,]+?),(Server|Client),(Pending|Registered|Revoked)$`)

func init() {
	// Subnet IDs are embedded in setting names, so they cannot contain the separator
	validate.RegisterValidation("settingtoken", func(fl validator.FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), settingNameSeparator)
	})
}

// Config is the desired state and credentials for one reconciliation run
type Config struct {
	Credentials       awsutils.SecretRef
	Region            string         `validate:"required"`
	ConnectionSubnets []string       `validate:"dive,required,settingtoken"`
	SourceSubnets     []SourceSubnet `validate:"dive"`
	DryRun            bool
}

// ParseSourceSubnet parses "<subnet id>,<Role>,<Status>"
func ParseSourceSubnet(value string) (SourceSubnet, error) {
	m := sourceSubnetRegex.FindStringSubmatch(value)
	if m == nil {
		return SourceSubnet{}, errors.Errorf("given argument %q is not a valid source subnet", value)
	}
	return SourceSubnet{
		SubnetID:           m[1],
		Role:               Role(m[2]),
		RegistrationStatus: Status(m[3]),
	}, nil
}

// Validate checks the configuration before any remote call is made
func (c *Config) Validate() error {
	seen := map[string]struct{}{}
	for _, s := range c.SourceSubnets {
		if _, ok := seen[s.SubnetID]; ok {
			return errors.Errorf("Subnet %q is not unique", s.SubnetID)
		}
		seen[s.SubnetID] = struct{}{}
	}
	if len(c.ConnectionSubnets) == 0 {
		return errors.New("no --connection-subnet specified")
	}
	if !c.Credentials.IsARN() {
		return errors.New("--credentials must be a Secrets Manager secret ARN")
	}
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "validation error")
	}
	return nil
}

// SubnetIDs returns every connection and source subnet ID, without duplicates
func (c *Config) SubnetIDs() []string {
	return lo.Uniq(append(append([]string{}, c.ConnectionSubnets...), lo.Map(c.SourceSubnets, func(s SourceSubnet, _ int) string {
		return s.SubnetID
	})...))
}
