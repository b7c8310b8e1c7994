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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

func TestApplyResolverError(t *testing.T) {
	api := &fakeSettingsAPI{}
	cfg := &Config{ConnectionSubnets: []string{"subnet-missing"}, SourceSubnets: testSources}

	_, err := Apply(context.TODO(), cfg, fakeResolver(testSubnetToCIDR), api, logger.Get())
	assert.ErrorContains(t, err, "subnet-missing")
	assert.Empty(t, api.calls)
}

func TestApplyListError(t *testing.T) {
	api := &fakeSettingsAPI{listErr: errors.New("access denied")}
	cfg := &Config{ConnectionSubnets: testConnections, SourceSubnets: testSources}

	_, err := Apply(context.TODO(), cfg, fakeResolver(testSubnetToCIDR), api, logger.Get())
	assert.ErrorContains(t, err, "access denied")
	assert.Empty(t, api.calls)
}

func TestApplyConvergesMixedState(t *testing.T) {
	unmanaged := RegistrationSetting{SettingsID: "user", SettingsName: "Office VPN"}
	stale := setting("stale", connB, srcB, RoleClient, StatusRegistered)
	outdated := setting("outdated", connA, srcA, RoleServer, StatusPending)
	api := &fakeSettingsAPI{settings: []RegistrationSetting{unmanaged, stale, outdated}}
	cfg := &Config{ConnectionSubnets: []string{connA}, SourceSubnets: testSources}

	result, err := Apply(context.TODO(), cfg, fakeResolver(testSubnetToCIDR), api, logger.Get())
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 1, Updated: 1, Deleted: 1}, result)
	assert.Equal(t, []string{"delete", "update", "create"}, api.ops())
	assert.Equal(t, "stale", api.calls[0].id)
	assert.Equal(t, "outdated", api.calls[1].setting.SettingsID)
	assert.Contains(t, api.settings, unmanaged)
}
