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
)

const (
	settingNamePrefix    = "RfdkSubnet"
	settingNameSeparator = "|"
)

var settingNameRegex = regexp.MustCompile(
	"^" + regexp.QuoteMeta(settingNamePrefix) +
		regexp.QuoteMeta(settingNameSeparator) + "([^" + regexp.QuoteMeta(settingNameSeparator) + "]+?)" +
		regexp.QuoteMeta(settingNameSeparator) + "([^" + regexp.QuoteMeta(settingNameSeparator) + "]+?)$")

// SettingName returns the name of the managed setting for pair
func SettingName(pair SubnetPair) string {
	return strings.Join([]string{settingNamePrefix, pair.ConnectionSubnetID, pair.SourceSubnetID}, settingNameSeparator)
}

// ParseSettingName decodes a managed setting name. ok is false for names
// that do not follow the naming convention.
func ParseSettingName(name string) (pair SubnetPair, ok bool) {
	m := settingNameRegex.FindStringSubmatch(name)
	if m == nil {
		return SubnetPair{}, false
	}
	return SubnetPair{ConnectionSubnetID: m[1], SourceSubnetID: m[2]}, true
}
