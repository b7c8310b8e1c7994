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

	"github.com/aws/aws-rfdk/pkg/awsutils"
	"github.com/aws/aws-rfdk/pkg/deadline"
	"github.com/aws/aws-rfdk/pkg/renderqueue"
)

func newRenderQueueConnectionCommand(deps *dependencies) *cobra.Command {
	opts := &renderqueue.Options{}
	var renderQueueURI string
	cmd := &cobra.Command{
		Use:   "render-queue-connection",
		Short: "Configures the Deadline Client to connect to the Render Queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			address, err := renderqueue.ParseAddress(renderQueueURI)
			if err != nil {
				return err
			}
			opts.RenderQueue = address
			if err := opts.Validate(); err != nil {
				return err
			}

			// Secrets carry their own region
			awsCfg, err := deps.awsConfig(ctx, "")
			if err != nil {
				return err
			}
			runner, err := deps.deadlineRunner()
			if err != nil {
				return err
			}
			return renderqueue.Configure(ctx, opts, deadline.NewClient(runner),
				awsutils.NewSecretFetcher(deps.secretsClients(awsCfg)))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&renderQueueURI, "render-queue", "",
		"How to connect to the Render Queue, as http[s]://<HOSTNAME>[:<PORT>]. "+
			"When the URI is https, exactly one of --tls-ca and --client-tls-cert must be given")
	flags.Var(&secretRefValue{ref: &opts.TLSCA}, "tls-ca",
		"A X509 CA certificate used to validate the TLS server certificate")
	flags.Var(&secretRefValue{ref: &opts.ClientTLSCert}, "client-tls-cert",
		"A PKCS #12 TLS client certificate presented to the Render Queue")
	flags.Var(&secretRefValue{ref: &opts.ClientTLSCertPassphrase}, "client-tls-cert-passphrase",
		"The passphrase of the TLS client certificate")
	flags.StringVar(&opts.CertDir, "cert-dir", renderqueue.DefaultCertDir,
		"Directory where fetched certificates are written")
	_ = cmd.MarkFlagRequired("render-queue")
	return cmd
}
