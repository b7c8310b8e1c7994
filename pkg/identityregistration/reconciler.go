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

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/aws/aws-rfdk/pkg/ipv4match"
	"github.com/aws/aws-rfdk/pkg/utils/logger"
	"github.com/aws/aws-rfdk/utils/prometheusmetrics"
)

// ErrUnmanagedSetting is returned when a setting handed to the reconciler as
// managed does not follow the naming convention or its name disagrees with
// its subnet pair.
var ErrUnmanagedSetting = errors.New("received non-managed identity registration setting")

// Reconciler applies the desired settings through a SettingsAPI
type Reconciler struct {
	api SettingsAPI
	log logger.Logger
}

// NewReconciler returns a Reconciler using api
func NewReconciler(api SettingsAPI, log logger.Logger) *Reconciler {
	return &Reconciler{api: api, log: log}
}

// Reconcile deletes the prior settings whose connection or source subnet is
// no longer desired, then creates or updates one setting per connection
// subnet and source subnet pair. prior is a single snapshot used by both
// passes. The first remote failure aborts the run.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	prior []ManagedSetting,
	connectionSubnetIDs []string,
	sourceSubnets []SourceSubnet,
	subnetToCIDR map[string]string,
) (Result, error) {
	var result Result

	// Repeated connection subnets name the same settings
	connectionSubnetIDs = lo.Uniq(connectionSubnetIDs)

	// Build every desired setting first so that a bad CIDR fails the run
	// before anything is changed.
	desired := make([]RegistrationSetting, 0, len(connectionSubnetIDs)*len(sourceSubnets))
	for _, connectionSubnetID := range connectionSubnetIDs {
		for _, sourceSubnet := range sourceSubnets {
			setting, err := desiredSetting(connectionSubnetID, sourceSubnet, subnetToCIDR)
			if err != nil {
				return result, err
			}
			desired = append(desired, setting)
		}
	}

	if err := r.deleteRemoved(ctx, prior, connectionSubnetIDs, sourceSubnets, &result); err != nil {
		return result, err
	}

	priorByName := lo.KeyBy(prior, func(m ManagedSetting) string {
		return m.Setting.SettingsName
	})
	for _, setting := range desired {
		existing, ok := priorByName[setting.SettingsName]
		if !ok {
			r.log.WithFields(logger.Fields{"action": "create", "setting": setting.SettingsName}).Info("Creating identity registration setting")
			if err := r.api.Create(ctx, setting); err != nil {
				return result, err
			}
			result.Created++
			countAction("create")
			continue
		}

		setting.SettingsID = existing.Setting.SettingsID
		if existing.Setting == setting {
			r.log.Infof("Setting %q exists and is up-to-date, skipping", setting.SettingsName)
			result.Unchanged++
			countAction("unchanged")
			continue
		}
		r.log.WithFields(logger.Fields{"action": "update", "setting": setting.SettingsName}).
			Infof("Updating identity registration setting (-prior +desired):\n%s", cmp.Diff(existing.Setting, setting))
		if err := r.api.Update(ctx, setting); err != nil {
			return result, err
		}
		result.Updated++
		countAction("update")
	}
	return result, nil
}

func (r *Reconciler) deleteRemoved(
	ctx context.Context,
	prior []ManagedSetting,
	connectionSubnetIDs []string,
	sourceSubnets []SourceSubnet,
	result *Result,
) error {
	desiredConnections := lo.SliceToMap(connectionSubnetIDs, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	desiredSources := lo.SliceToMap(sourceSubnets, func(s SourceSubnet) (string, struct{}) {
		return s.SubnetID, struct{}{}
	})

	for _, m := range prior {
		pair, ok := ParseSettingName(m.Setting.SettingsName)
		if !ok || pair != m.Pair {
			return errors.Wrapf(ErrUnmanagedSetting, "%q (id %s)", m.Setting.SettingsName, m.Setting.SettingsID)
		}
	}

	for _, m := range prior {
		pair := m.Pair
		_, connectionDesired := desiredConnections[pair.ConnectionSubnetID]
		_, sourceDesired := desiredSources[pair.SourceSubnetID]
		if connectionDesired && sourceDesired {
			continue
		}
		r.log.WithFields(logger.Fields{"action": "delete", "setting": m.Setting.SettingsName}).
			Info("Setting removed from the desired state, deleting")
		if err := r.api.Delete(ctx, m.Setting.SettingsID); err != nil {
			return err
		}
		result.Deleted++
		countAction("delete")
	}
	return nil
}

func desiredSetting(connectionSubnetID string, source SourceSubnet, subnetToCIDR map[string]string) (RegistrationSetting, error) {
	connectionMatch, err := subnetMatch(connectionSubnetID, subnetToCIDR)
	if err != nil {
		return RegistrationSetting{}, err
	}
	sourceMatch, err := subnetMatch(source.SubnetID, subnetToCIDR)
	if err != nil {
		return RegistrationSetting{}, err
	}
	return RegistrationSetting{
		SettingsName: SettingName(SubnetPair{
			ConnectionSubnetID: connectionSubnetID,
			SourceSubnetID:     source.SubnetID,
		}),
		ConnectionIPFilterType:  ipv4match.FilterType,
		ConnectionIPFilterValue: connectionMatch,
		SourceIPFilterType:      ipv4match.FilterType,
		SourceIPFilterValue:     sourceMatch,
		DefaultRole:             source.Role,
		DefaultStatus:           source.RegistrationStatus,
		IsEnabled:               true,
	}, nil
}

func subnetMatch(subnetID string, subnetToCIDR map[string]string) (string, error) {
	cidrBlock, ok := subnetToCIDR[subnetID]
	if !ok {
		return "", errors.Errorf("no CIDR block known for subnet %s", subnetID)
	}
	match, err := ipv4match.FromCIDR(cidrBlock)
	if err != nil {
		return "", errors.Wrapf(err, "subnet %s", subnetID)
	}
	return match, nil
}

func countAction(action string) {
	prometheusmetrics.IdentityRegistrationActions.WithLabelValues(action).Inc()
}
