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

package awsutils

import (
	"context"
	"os"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
)

//go:generate go run ../../scripts/mockgen.go github.com/aws/aws-rfdk/pkg/awsutils SecretsManagerAPI mocks/awsutils_mocks.go

var (
	secretARNRegex = regexp.MustCompile(`^arn:(aws[a-zA-Z-]*)?:secretsmanager:(?P<Region>[a-z]{2}((-gov)|(-iso(b?)))?-[a-z]+-\d{1}):\d{12}:secret:[a-zA-Z0-9-_/+=.@]+$`)
	fileURIRegex   = regexp.MustCompile(`^file:///(?P<FilePath>.*)$`)
)

// ErrInvalidSecretRef is returned when a value is neither a secret ARN nor a file URI
var ErrInvalidSecretRef = errors.New("not a valid secret")

// SecretsManagerAPI is the subset of the Secrets Manager API used to read secrets
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretRef points at a secret stored either in Secrets Manager or on the
// local filesystem. Exactly one of ARN or FilePath is set.
type SecretRef struct {
	ARN      string
	Region   string
	FilePath string
}

// ParseSecretRef parses a Secrets Manager ARN or a file:/// URI
func ParseSecretRef(value string) (SecretRef, error) {
	if m := secretARNRegex.FindStringSubmatch(value); m != nil {
		return SecretRef{ARN: value, Region: m[secretARNRegex.SubexpIndex("Region")]}, nil
	}
	if m := fileURIRegex.FindStringSubmatch(value); m != nil {
		return SecretRef{FilePath: "/" + m[fileURIRegex.SubexpIndex("FilePath")]}, nil
	}
	return SecretRef{}, errors.Wrapf(ErrInvalidSecretRef, "given argument %q", value)
}

// ParseSecretARN parses value and requires it to be a Secrets Manager ARN
func ParseSecretARN(value string) (SecretRef, error) {
	ref, err := ParseSecretRef(value)
	if err != nil {
		return SecretRef{}, err
	}
	if !ref.IsARN() {
		return SecretRef{}, errors.Wrapf(ErrInvalidSecretRef, "given argument %q must be a secret ARN", value)
	}
	return ref, nil
}

// IsARN reports whether the reference points at Secrets Manager
func (r SecretRef) IsARN() bool {
	return r.ARN != ""
}

// IsZero reports whether the reference is unset
func (r SecretRef) IsZero() bool {
	return r == SecretRef{}
}

func (r SecretRef) String() string {
	if r.IsARN() {
		return r.ARN
	}
	if r.FilePath != "" {
		return "file://" + r.FilePath
	}
	return ""
}

// SecretsClientFactory returns a Secrets Manager client for a region
type SecretsClientFactory func(region string) SecretsManagerAPI

// NewSecretsClientFactory returns a factory that builds Secrets Manager
// clients from cfg, overriding the region per secret.
func NewSecretsClientFactory(cfg aws.Config) SecretsClientFactory {
	return func(region string) SecretsManagerAPI {
		return secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
			if region != "" {
				o.Region = region
			}
		})
	}
}

// SecretFetcher reads secret contents referenced by a SecretRef
type SecretFetcher struct {
	clientFor SecretsClientFactory
}

// NewSecretFetcher returns a SecretFetcher using clientFor to reach Secrets Manager
func NewSecretFetcher(clientFor SecretsClientFactory) *SecretFetcher {
	return &SecretFetcher{clientFor: clientFor}
}

func (f *SecretFetcher) getSecretValue(ctx context.Context, ref SecretRef) (*secretsmanager.GetSecretValueOutput, error) {
	var output *secretsmanager.GetSecretValueOutput
	err := instrument(ctx, "GetSecretValue", func(ctx context.Context) error {
		var err error
		output, err = f.clientFor(ref.Region).GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(ref.ARN),
		})
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch secret %s", ref.ARN)
	}
	return output, nil
}

// FetchSecretString returns the string contents of the secret
func (f *SecretFetcher) FetchSecretString(ctx context.Context, ref SecretRef) (string, error) {
	if !ref.IsARN() {
		data, err := os.ReadFile(ref.FilePath)
		if err != nil {
			return "", errors.Wrapf(err, "unable to read secret file %s", ref.FilePath)
		}
		return string(data), nil
	}
	output, err := f.getSecretValue(ctx, ref)
	if err != nil {
		return "", err
	}
	if output.SecretString == nil {
		return "", errors.Errorf("secret %s has no SecretString", ref.ARN)
	}
	return aws.ToString(output.SecretString), nil
}

// FetchSecretBinary returns the binary contents of the secret. The SDK
// already base64-decodes SecretBinary.
func (f *SecretFetcher) FetchSecretBinary(ctx context.Context, ref SecretRef) ([]byte, error) {
	if !ref.IsARN() {
		data, err := os.ReadFile(ref.FilePath)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read secret file %s", ref.FilePath)
		}
		return data, nil
	}
	output, err := f.getSecretValue(ctx, ref)
	if err != nil {
		return nil, err
	}
	if output.SecretBinary == nil {
		return nil, errors.Errorf("secret %s has no SecretBinary", ref.ARN)
	}
	return output.SecretBinary, nil
}
