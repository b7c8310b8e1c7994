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

	"github.com/samber/lo"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

// ManagedSettings lists the remote settings and returns those that follow
// the naming convention, in remote order.
func ManagedSettings(ctx context.Context, api SettingsAPI) ([]ManagedSetting, error) {
	log := logger.Get()
	all, err := api.List(ctx)
	if err != nil {
		return nil, err
	}
	log.Infof("All registration settings: %v", lo.Map(all, func(s RegistrationSetting, _ int) string {
		return s.SettingsName
	}))

	var managed []ManagedSetting
	for _, setting := range all {
		pair, ok := ParseSettingName(setting.SettingsName)
		if !ok {
			log.Debugf("Ignoring unmanaged setting %q", setting.SettingsName)
			continue
		}
		managed = append(managed, ManagedSetting{Setting: setting, Pair: pair})
	}
	log.Infof("Managed registration settings: %v", lo.Map(managed, func(m ManagedSetting, _ int) string {
		return m.Setting.SettingsName
	}))
	return managed, nil
}
