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
	"context"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

// SubnetCIDRResolver maps subnet IDs to their IPv4 CIDR blocks
type SubnetCIDRResolver interface {
	SubnetCIDRs(ctx context.Context, subnetIDs []string) (map[string]string, error)
}

// Apply resolves the subnets named in cfg, reads the managed settings and
// reconciles them with the desired state.
func Apply(ctx context.Context, cfg *Config, resolver SubnetCIDRResolver, api SettingsAPI, log logger.Logger) (Result, error) {
	subnetToCIDR, err := resolver.SubnetCIDRs(ctx, cfg.SubnetIDs())
	if err != nil {
		return Result{}, err
	}
	log.Infof("Subnet CIDRs: %v", subnetToCIDR)

	prior, err := ManagedSettings(ctx, api)
	if err != nil {
		return Result{}, err
	}

	result, err := NewReconciler(api, log).Reconcile(ctx, prior, cfg.ConnectionSubnets, cfg.SourceSubnets, subnetToCIDR)
	if err != nil {
		return result, err
	}
	log.Infof("Identity registration settings reconciled: %d created, %d updated, %d deleted, %d unchanged",
		result.Created, result.Updated, result.Deleted, result.Unchanged)
	return result, nil
}
