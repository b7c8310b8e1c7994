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

package ipv4match

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCIDRPrefixLengths(t *testing.T) {
	expected := map[string]string{
		"0.0.0.0/1":  "0-127.*.*.*",
		"0.0.0.0/2":  "0-63.*.*.*",
		"0.0.0.0/3":  "0-31.*.*.*",
		"0.0.0.0/4":  "0-15.*.*.*",
		"0.0.0.0/5":  "0-7.*.*.*",
		"0.0.0.0/6":  "0-3.*.*.*",
		"0.0.0.0/7":  "0-1.*.*.*",
		"0.0.0.0/8":  "0.*.*.*",
		"0.0.0.0/9":  "0.0-127.*.*",
		"0.0.0.0/10": "0.0-63.*.*",
		"0.0.0.0/11": "0.0-31.*.*",
		"0.0.0.0/12": "0.0-15.*.*",
		"0.0.0.0/13": "0.0-7.*.*",
		"0.0.0.0/14": "0.0-3.*.*",
		"0.0.0.0/15": "0.0-1.*.*",
		"0.0.0.0/16": "0.0.*.*",
		"0.0.0.0/17": "0.0.0-127.*",
		"0.0.0.0/18": "0.0.0-63.*",
		"0.0.0.0/19": "0.0.0-31.*",
		"0.0.0.0/20": "0.0.0-15.*",
		"0.0.0.0/21": "0.0.0-7.*",
		"0.0.0.0/22": "0.0.0-3.*",
		"0.0.0.0/23": "0.0.0-1.*",
		"0.0.0.0/24": "0.0.0.*",
	}
	for cidrBlock, pattern := range expected {
		t.Run(cidrBlock, func(t *testing.T) {
			got, err := FromCIDR(cidrBlock)
			require.NoError(t, err)
			assert.Equal(t, pattern, got)
		})
	}
}

func TestFromCIDRNonZeroNetworks(t *testing.T) {
	tests := []struct {
		cidr string
		want string
	}{
		{"10.10.0.0/16", "10.10.*.*"},
		{"111.111.0.0/16", "111.111.*.*"},
		{"123.123.123.0/24", "123.123.123.*"},
		{"3.3.0.0/18", "3.3.0-63.*"},
		{"96.0.0.0/5", "96-103.*.*.*"},
		{"104.0.0.0/22", "104.0.0-3.*"},
		{"255.0.0.0/8", "255.*.*.*"},
		{"10.0.1.17/32", "10.0.1.17"},
		{"0.0.0.0/0", "*.*.*.*"},
		// host bits are dropped before conversion
		{"10.0.64.12/18", "10.0.64-127.*"},
		{"10.0.0.5/24", "10.0.0.*"},
	}
	for _, tt := range tests {
		t.Run(tt.cidr, func(t *testing.T) {
			got, err := FromCIDR(tt.cidr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromCIDRRejectsIPv6(t *testing.T) {
	_, err := FromCIDR("2001:db8::/64")
	assert.True(t, errors.Is(err, ErrNotIPv4))
}

func TestFromCIDRRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "10.0.0.0", "10.0.0.0/33", "subnet-1234"} {
		_, err := FromCIDR(input)
		assert.Error(t, err, input)
		assert.False(t, errors.Is(err, ErrNotIPv4), input)
	}
}

// matches interprets an IPv4Match pattern against a single address.
func matches(t *testing.T, pattern string, ip net.IP) bool {
	octets := strings.Split(pattern, ".")
	require.Len(t, octets, 4)
	for i, octet := range octets {
		b := int(ip.To4()[i])
		switch {
		case octet == "*":
		case strings.Contains(octet, "-"):
			bounds := strings.SplitN(octet, "-", 2)
			lo, err := strconv.Atoi(bounds[0])
			require.NoError(t, err)
			hi, err := strconv.Atoi(bounds[1])
			require.NoError(t, err)
			if b < lo || b > hi {
				return false
			}
		default:
			v, err := strconv.Atoi(octet)
			require.NoError(t, err)
			if b != v {
				return false
			}
		}
	}
	return true
}

func TestFromCIDRMatchesExactlyTheBlock(t *testing.T) {
	base := binary.BigEndian.Uint32(net.ParseIP("172.16.200.0").To4())
	for prefix := 16; prefix <= 30; prefix++ {
		cidrBlock := fmt.Sprintf("172.16.200.0/%d", prefix)
		_, network, err := net.ParseCIDR(cidrBlock)
		require.NoError(t, err)
		pattern, err := FromCIDR(cidrBlock)
		require.NoError(t, err)

		// probe addresses around the block edges
		for _, offset := range []int64{-70000, -1025, -257, -1, 0, 1, 63, 255, 1023, 4095, 65535, 65536} {
			v := int64(base) + offset
			ip := make(net.IP, net.IPv4len)
			binary.BigEndian.PutUint32(ip, uint32(v))
			assert.Equal(t, network.Contains(ip), matches(t, pattern, ip), "%s vs %s", pattern, ip)
		}
	}
}
