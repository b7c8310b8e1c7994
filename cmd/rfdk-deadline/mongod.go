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

package main

import (
	"github.com/spf13/cobra"

	"github.com/aws/aws-rfdk/pkg/mongodconf"
)

func newMongodConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mongod-config",
		Short: "Patches a mongod.conf read from stdin and writes it to stdout",
	}
	cmd.AddCommand(
		newMongodPatchCommand("live", "Enables authorization and requires TLS on all interfaces", mongodconf.Live),
		newMongodPatchCommand("noauth", "Disables authorization and TLS and listens on localhost only", mongodconf.NoAuth),
		&cobra.Command{
			Use:   "storage PATH",
			Short: "Sets the database storage path",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				patch, err := mongodconf.StoragePath(args[0])
				if err != nil {
					return err
				}
				return mongodconf.Transform(cmd.InOrStdin(), cmd.OutOrStdout(), patch)
			},
		},
	)
	return cmd
}

func newMongodPatchCommand(use, short string, patch mongodconf.Patch) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mongodconf.Transform(cmd.InOrStdin(), cmd.OutOrStdout(), patch)
		},
	}
}
