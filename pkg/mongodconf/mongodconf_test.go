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

package mongodconf

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultConf = `
systemLog:
  destination: file
  logAppend: true
  path: /var/log/mongodb/mongod.log

storage:
  dbPath: /var/lib/mongo
  journal:
    enabled: true

processManagement:
  fork: true  # fork and run in background
  pidFilePath: /var/run/mongodb/mongod.pid  # location of pidfile
  timeZoneInfo: /usr/share/zoneinfo

net:
  port: 27017
  bindIp: 127.0.0.1  # Listen to local interface only
`

func transform(t *testing.T, input string, patches ...Patch) Config {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Transform(strings.NewReader(input), &out, patches...))
	conf, err := Read(&out)
	require.NoError(t, err)
	return conf
}

func mapping(t *testing.T, v interface{}) map[interface{}]interface{} {
	t.Helper()
	m, ok := asMapping(v)
	require.True(t, ok, "expected a mapping, got %T", v)
	return m
}

func TestLive(t *testing.T) {
	conf := transform(t, defaultConf, Live)

	assert.Equal(t, "enabled", mapping(t, conf["security"])["authorization"])
	net := mapping(t, conf["net"])
	assert.Equal(t, 27017, net["port"])
	assert.Equal(t, true, net["bindIpAll"])
	assert.NotContains(t, net, "bindIp")
	assert.Equal(t, map[interface{}]interface{}{
		"mode":                                "requireSSL",
		"disabledProtocols":                   "TLS1_0,TLS1_1",
		"allowConnectionsWithoutCertificates": true,
		"allowInvalidCertificates":            false,
		"CAFile":                              "/etc/mongod_certs/ca.crt",
		"PEMKeyFile":                          "/etc/mongod_certs/key.pem",
	}, mapping(t, net["ssl"]))
	assert.Equal(t, "/var/lib/mongo", mapping(t, conf["storage"])["dbPath"])
}

func TestLiveMergesExistingSSL(t *testing.T) {
	conf := transform(t, "net:\n  ssl:\n    mode: disabled\n    clusterFile: /etc/cluster.pem\n", Live)

	ssl := mapping(t, mapping(t, conf["net"])["ssl"])
	assert.Equal(t, "requireSSL", ssl["mode"])
	assert.Equal(t, "/etc/cluster.pem", ssl["clusterFile"])
}

func TestReadDecodesNestedSectionsAsPlainMappings(t *testing.T) {
	conf, err := Read(strings.NewReader(defaultConf))
	require.NoError(t, err)

	for _, key := range []string{"storage", "net", "systemLog"} {
		assert.IsType(t, map[interface{}]interface{}{}, conf[key], key)
	}
}

func TestLiveOnDecodedConfig(t *testing.T) {
	conf, err := Read(strings.NewReader(defaultConf))
	require.NoError(t, err)
	require.NoError(t, Live(conf))
	require.NoError(t, NoAuth(conf))

	dir := t.TempDir()
	patch, err := StoragePath(dir)
	require.NoError(t, err)
	require.NoError(t, patch(conf))
	assert.Equal(t, dir, mapping(t, conf["storage"])["dbPath"])
}

func TestLiveKeepsExistingSSLKeys(t *testing.T) {
	input := "net:\n  port: 27017\n  ssl:\n    mode: preferSSL\n    CRLFile: /etc/mongod_certs/crl.pem\n"
	conf := transform(t, input, Live)

	ssl := mapping(t, mapping(t, conf["net"])["ssl"])
	assert.Equal(t, "/etc/mongod_certs/crl.pem", ssl["CRLFile"])
	assert.Equal(t, "requireSSL", ssl["mode"])
	assert.Equal(t, "/etc/mongod_certs/key.pem", ssl["PEMKeyFile"])
}

func TestSectionAcceptsNestedConfig(t *testing.T) {
	conf := Config{"net": Config{"ssl": Config{"CRLFile": "/crl.pem"}}}
	require.NoError(t, Live(conf))

	ssl := mapping(t, mapping(t, conf["net"])["ssl"])
	assert.Equal(t, "/crl.pem", ssl["CRLFile"])
	assert.Equal(t, "requireSSL", ssl["mode"])
}

func TestLiveRejectsNonMappingSSL(t *testing.T) {
	err := Transform(strings.NewReader("net:\n  ssl: on\n"), &bytes.Buffer{}, Live)
	assert.ErrorContains(t, err, `"ssl" is not a mapping`)
}

func TestNoAuth(t *testing.T) {
	conf := transform(t, defaultConf, Live, NoAuth)

	assert.Equal(t, "disabled", mapping(t, conf["security"])["authorization"])
	net := mapping(t, conf["net"])
	assert.Equal(t, "127.0.0.1", net["bindIp"])
	assert.Equal(t, 27017, net["port"])
	assert.NotContains(t, net, "bindIpAll")
	assert.NotContains(t, net, "ssl")
}

func TestStoragePath(t *testing.T) {
	dir := t.TempDir()
	patch, err := StoragePath(dir)
	require.NoError(t, err)

	conf := transform(t, defaultConf, patch)
	storage := mapping(t, conf["storage"])
	assert.Equal(t, dir, storage["dbPath"])
	assert.Equal(t, true, mapping(t, storage["journal"])["enabled"])
}

func TestStoragePathCreatesSection(t *testing.T) {
	dir := t.TempDir()
	patch, err := StoragePath(dir)
	require.NoError(t, err)

	conf := transform(t, "net:\n  port: 27017\n", patch)
	assert.Equal(t, map[interface{}]interface{}{
		"dbPath":  dir,
		"journal": map[interface{}]interface{}{"enabled": "true"},
	}, mapping(t, conf["storage"]))
}

func TestStoragePathNotADirectory(t *testing.T) {
	_, err := StoragePath(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "is not a directory")
}

func TestWriteSortsKeys(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Transform(strings.NewReader("net:\n  port: 1\nsecurity: {}\n"), &out, NoAuth))
	assert.Equal(t, "net:\n  bindIp: 127.0.0.1\n  port: 27017\nsecurity:\n  authorization: disabled\n", out.String())
}

func TestEmptyInput(t *testing.T) {
	conf := transform(t, "", NoAuth)
	assert.Equal(t, "disabled", mapping(t, conf["security"])["authorization"])
}

func TestNonMappingSection(t *testing.T) {
	err := Transform(strings.NewReader("net: 5\n"), &bytes.Buffer{}, NoAuth)
	assert.ErrorContains(t, err, `"net" is not a mapping`)
}
