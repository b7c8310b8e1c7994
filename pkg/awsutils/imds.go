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
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/pkg/errors"
)

// EC2MetadataIface is a subset of the IMDS client API.
type EC2MetadataIface interface {
	GetMetadata(ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options)) (*imds.GetMetadataOutput, error)
}

// NewIMDS returns an IMDS client built from cfg
func NewIMDS(cfg aws.Config) TypedIMDS {
	return TypedIMDS{imds.NewFromConfig(cfg)}
}

// TypedIMDS is a typed wrapper around raw untyped IMDS SDK API.
type TypedIMDS struct {
	EC2MetadataIface
}

func (typed TypedIMDS) get(ctx context.Context, key string) (string, error) {
	output, err := typed.GetMetadata(ctx, &imds.GetMetadataInput{Path: key})
	if err != nil {
		return "", errors.Wrapf(err, "imds: failed to retrieve %s", key)
	}
	defer output.Content.Close()
	data, err := io.ReadAll(output.Content)
	if err != nil {
		return "", errors.Wrapf(err, "imds: failed to read %s", key)
	}
	return strings.TrimSpace(string(data)), nil
}

// GetInstanceID returns the ID of this instance.
func (typed TypedIMDS) GetInstanceID(ctx context.Context) (string, error) {
	return typed.get(ctx, "instance-id")
}

// FakeIMDS is a hardcoded EC2MetadataIface for testing.
type FakeIMDS map[string]interface{}

// GetMetadata implements the EC2MetadataIface interface.
func (f FakeIMDS) GetMetadata(ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options)) (*imds.GetMetadataOutput, error) {
	result, ok := f[params.Path]
	if !ok {
		return nil, fmt.Errorf("no test data for metadata path %s", params.Path)
	}
	switch v := result.(type) {
	case string:
		return &imds.GetMetadataOutput{Content: io.NopCloser(strings.NewReader(v))}, nil
	case error:
		return nil, v
	default:
		panic(fmt.Sprintf("unknown test metadata value type %T for %s", result, params.Path))
	}
}
