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

// Package ipv4match converts IPv4 CIDR blocks into the octet-wise match
// patterns accepted by Deadline's IPv4Match IP filters.
package ipv4match

import (
	"net"
	"strconv"
	"strings"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/pkg/errors"
)

const (
	// FilterType is the Deadline IP filter type that accepts these patterns
	FilterType = "IPv4Match"

	byteMask = 0xFF
	wildcard = "*"
)

// ErrNotIPv4 is returned when the CIDR describes an IPv6 network
var ErrNotIPv4 = errors.New("not an IPv4 network")

// FromCIDR returns the IPv4Match pattern covering exactly the addresses of
// the given CIDR block. Each octet is the literal network byte when the mask
// byte is fully set, "*" when it is clear, and "min-max" otherwise. Host
// bits are not rejected: 10.0.0.5/24 converts as 10.0.0.0/24.
//
//	10.10.0.0/16 -> 10.10.*.*
//	3.3.0.0/18   -> 3.3.0-63.*
func FromCIDR(cidrBlock string) (string, error) {
	_, network, err := net.ParseCIDR(cidrBlock)
	if err != nil {
		return "", errors.Wrapf(err, "ipv4match: invalid CIDR %q", cidrBlock)
	}
	if network.IP.To4() == nil || len(network.Mask) != net.IPv4len {
		return "", errors.Wrapf(ErrNotIPv4, "ipv4match: %q", cidrBlock)
	}

	first, last := cidr.AddressRange(network)
	first, last = first.To4(), last.To4()

	octets := make([]string, net.IPv4len)
	for i, maskByte := range network.Mask {
		switch maskByte {
		case byteMask:
			octets[i] = strconv.Itoa(int(first[i]))
		case 0:
			octets[i] = wildcard
		default:
			octets[i] = strconv.Itoa(int(first[i])) + "-" + strconv.Itoa(int(last[i]))
		}
	}
	return strings.Join(octets, "."), nil
}
