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

// Package renderqueue configures a Deadline client to connect to a Render Queue
package renderqueue

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/aws/aws-rfdk/pkg/awsutils"
	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

const (
	// DefaultCertDir is where fetched certificates are written
	DefaultCertDir = "/app/tls_cert"

	caCertFile     = "ca.crt"
	clientCertFile = "client.pfx"

	certBeginMarker = "-----BEGIN CERTIFICATE-----"
)

var renderQueueURIRegex = regexp.MustCompile(`^(https?)://(.*)$`)

// Address is a parsed Render Queue URI
type Address struct {
	URI    string
	Scheme string
	Host   string
}

// ParseAddress parses "http[s]://<host>[:<port>]"
func ParseAddress(uri string) (Address, error) {
	m := renderQueueURIRegex.FindStringSubmatch(uri)
	if m == nil {
		return Address{}, errors.Errorf("given render queue %q must be http[s]://<HOSTNAME>[:<PORT>]", uri)
	}
	return Address{URI: uri, Scheme: m[1], Host: m[2]}, nil
}

// Options describes how to reach the Render Queue
type Options struct {
	RenderQueue             Address
	TLSCA                   awsutils.SecretRef
	ClientTLSCert           awsutils.SecretRef
	ClientTLSCertPassphrase awsutils.SecretRef
	CertDir                 string
}

// Validate checks that exactly one trust mechanism is given for https
func (o *Options) Validate() error {
	if o.RenderQueue.Scheme != "https" {
		return nil
	}
	if o.TLSCA.IsZero() == o.ClientTLSCert.IsZero() {
		return errors.New("exactly one of --tls-ca or --client-tls-cert must be specified when using TLS")
	}
	return nil
}

// DeadlineClient is the subset of deadlinecommand used to change the repository
type DeadlineClient interface {
	SetIniFileSetting(ctx context.Context, key, value string) error
	ChangeRepository(ctx context.Context, repoType string, args ...string) (string, error)
}

// SecretFetcher reads secrets referenced on the command line
type SecretFetcher interface {
	FetchSecretString(ctx context.Context, ref awsutils.SecretRef) (string, error)
	FetchSecretBinary(ctx context.Context, ref awsutils.SecretRef) ([]byte, error)
}

// Configure points the Deadline client at the Render Queue described by opts
func Configure(ctx context.Context, opts *Options, client DeadlineClient, secrets SecretFetcher) error {
	log := logger.Get()
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := setIni(ctx, client, "ConnectionType", "Remote"); err != nil {
		return err
	}

	repoArgs := []string{opts.RenderQueue.Host}
	if opts.RenderQueue.Scheme == "http" {
		log.Infof("Configuring Deadline to connect to the Render Queue (%s) using HTTP traffic", opts.RenderQueue.Host)
		if err := setIni(ctx, client,
			"ProxyUseSSL", "False",
			"ProxySSLCA", "",
			"ClientSSLAuthentication", "NotRequired"); err != nil {
			return err
		}
	} else {
		log.Infof("Configuring Deadline to connect to the Render Queue (%s) using HTTPS traffic", opts.RenderQueue.Host)
		if err := setIni(ctx, client, "ProxyUseSSL", "True"); err != nil {
			return err
		}
		if err := os.MkdirAll(opts.CertDir, 0755); err != nil {
			return errors.Wrapf(err, "unable to create %s", opts.CertDir)
		}

		var certArgs []string
		var err error
		if !opts.TLSCA.IsZero() {
			certArgs, err = configureCA(ctx, opts, client, secrets)
		} else {
			certArgs, err = configureClientCert(ctx, opts, client, secrets)
		}
		if err != nil {
			return err
		}
		repoArgs = append(repoArgs, certArgs...)
	}

	_, err := client.ChangeRepository(ctx, "Proxy", repoArgs...)
	return err
}

func configureCA(ctx context.Context, opts *Options, client DeadlineClient, secrets SecretFetcher) ([]string, error) {
	cert, err := secrets.FetchSecretString(ctx, opts.TLSCA)
	if err != nil {
		return nil, err
	}
	if n := strings.Count(cert, certBeginMarker); n != 1 {
		return nil, errors.Errorf("the TLS CA cert must contain exactly 1 certificate, found %d", n)
	}
	certPath := filepath.Join(opts.CertDir, caCertFile)
	if err := os.WriteFile(certPath, []byte(cert), 0644); err != nil {
		return nil, errors.Wrapf(err, "unable to write %s", certPath)
	}
	if err := setIni(ctx, client,
		"ProxySSLCA", certPath,
		"ClientSSLAuthentication", "NotRequired"); err != nil {
		return nil, err
	}
	return []string{certPath}, nil
}

func configureClientCert(ctx context.Context, opts *Options, client DeadlineClient, secrets SecretFetcher) ([]string, error) {
	cert, err := secrets.FetchSecretBinary(ctx, opts.ClientTLSCert)
	if err != nil {
		return nil, err
	}
	certPath := filepath.Join(opts.CertDir, clientCertFile)
	if err := os.WriteFile(certPath, cert, 0600); err != nil {
		return nil, errors.Wrapf(err, "unable to write %s", certPath)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(certPath, 0600); err != nil {
		return nil, errors.Wrapf(err, "unable to restrict %s", certPath)
	}
	if err := setIni(ctx, client,
		"ProxySSLCA", certPath,
		"ClientSSLAuthentication", "Required"); err != nil {
		return nil, err
	}

	args := []string{certPath}
	if !opts.ClientTLSCertPassphrase.IsZero() {
		passphrase, err := secrets.FetchSecretString(ctx, opts.ClientTLSCertPassphrase)
		if err != nil {
			return nil, err
		}
		args = append(args, passphrase)
	}
	return args, nil
}

// setIni applies key/value pairs in order
func setIni(ctx context.Context, client DeadlineClient, keyValues ...string) error {
	for i := 0; i+1 < len(keyValues); i += 2 {
		if err := client.SetIniFileSetting(ctx, keyValues[i], keyValues[i+1]); err != nil {
			return err
		}
	}
	return nil
}
