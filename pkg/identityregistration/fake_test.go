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
	"fmt"
)

type apiCall struct {
	op      string
	setting RegistrationSetting
	id      string
}

// fakeSettingsAPI keeps the remote settings in memory and records every
// mutating call.
type fakeSettingsAPI struct {
	settings []RegistrationSetting
	calls    []apiCall
	nextID   int
	listErr  error
	failOp   string
}

func (f *fakeSettingsAPI) List(context.Context) ([]RegistrationSetting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]RegistrationSetting(nil), f.settings...), nil
}

func (f *fakeSettingsAPI) Create(_ context.Context, s RegistrationSetting) error {
	f.calls = append(f.calls, apiCall{op: "create", setting: s})
	if f.failOp == "create" {
		return fmt.Errorf("create failed")
	}
	f.nextID++
	s.SettingsID = fmt.Sprintf("id-%d", f.nextID)
	f.settings = append(f.settings, s)
	return nil
}

func (f *fakeSettingsAPI) Update(_ context.Context, s RegistrationSetting) error {
	f.calls = append(f.calls, apiCall{op: "update", setting: s})
	if f.failOp == "update" {
		return fmt.Errorf("update failed")
	}
	for i := range f.settings {
		if f.settings[i].SettingsID == s.SettingsID {
			f.settings[i] = s
			return nil
		}
	}
	return fmt.Errorf("no setting with id %s", s.SettingsID)
}

func (f *fakeSettingsAPI) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, apiCall{op: "delete", id: id})
	if f.failOp == "delete" {
		return fmt.Errorf("delete failed")
	}
	for i := range f.settings {
		if f.settings[i].SettingsID == id {
			f.settings = append(f.settings[:i], f.settings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no setting with id %s", id)
}

func (f *fakeSettingsAPI) ops() []string {
	ops := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		ops = append(ops, c.op)
	}
	return ops
}

type fakeResolver map[string]string

func (f fakeResolver) SubnetCIDRs(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		cidrBlock, ok := f[id]
		if !ok {
			return nil, fmt.Errorf("subnet %s not found", id)
		}
		out[id] = cidrBlock
	}
	return out, nil
}
