// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//      http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package prometheusmetrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRegisterTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		PrometheusRegister()
		PrometheusRegister()
	})
}

func TestWriteTextfile(t *testing.T) {
	IdentityRegistrationActions.WithLabelValues("create").Add(2)

	path := filepath.Join(t.TempDir(), "rfdk.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `rfdk_identity_registration_actions_total{action="create"}`)
}

func TestCounterValues(t *testing.T) {
	before, err := CounterValues("rfdk_deadline_command_count", "command")
	require.NoError(t, err)

	DeadlineCommandCnt.WithLabelValues("DeleteLoadBalancerIdentityRegistrationSetting", "false").Inc()
	DeadlineCommandCnt.WithLabelValues("DeleteLoadBalancerIdentityRegistrationSetting", "true").Inc()

	after, err := CounterValues("rfdk_deadline_command_count", "command")
	require.NoError(t, err)
	assert.Equal(t, before["DeleteLoadBalancerIdentityRegistrationSetting"]+2, after["DeleteLoadBalancerIdentityRegistrationSetting"])
}

func TestWriteText(t *testing.T) {
	AwsAPIErr.WithLabelValues("DescribeSubnets", "InvalidSubnetID.NotFound").Inc()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf))
	assert.Contains(t, buf.String(), "# TYPE rfdk_aws_api_error_count counter")
	assert.Contains(t, buf.String(), `rfdk_aws_api_error_count{api="DescribeSubnets",error="InvalidSubnetID.NotFound"}`)
}
