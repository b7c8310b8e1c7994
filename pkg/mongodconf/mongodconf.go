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

// Package mongodconf patches mongod.conf files for the MongoDB instances
// that back a Deadline repository.
package mongodconf

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	mongodPort = 27017

	caFile     = "/etc/mongod_certs/ca.crt"
	pemKeyFile = "/etc/mongod_certs/key.pem"
)

// Config is a decoded mongod.conf
type Config map[interface{}]interface{}

// Patch modifies a mongod.conf in place
type Patch func(conf Config) error

// Read decodes a mongod.conf. An empty document yields an empty Config.
func Read(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read mongod.conf")
	}
	// Decoding into Config would make every nested mapping a Config too
	raw := map[interface{}]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unable to parse mongod.conf")
	}
	return Config(raw), nil
}

// Write encodes conf in block style with sorted keys
func Write(w io.Writer, conf Config) error {
	data, err := yaml.Marshal(map[interface{}]interface{}(conf))
	if err != nil {
		return errors.Wrap(err, "unable to encode mongod.conf")
	}
	_, err = w.Write(data)
	return err
}

// Transform reads a mongod.conf from r, applies patches and writes the result to w
func Transform(r io.Reader, w io.Writer, patches ...Patch) error {
	conf, err := Read(r)
	if err != nil {
		return err
	}
	for _, patch := range patches {
		if err := patch(conf); err != nil {
			return err
		}
	}
	return Write(w, conf)
}

func asMapping(value interface{}) (map[interface{}]interface{}, bool) {
	switch m := value.(type) {
	case map[interface{}]interface{}:
		return m, true
	case Config:
		return m, true
	default:
		return nil, false
	}
}

// section returns the mapping stored under key in parent, creating it from
// def when absent.
func section(parent map[interface{}]interface{}, key string, def map[interface{}]interface{}) (map[interface{}]interface{}, error) {
	value, ok := parent[key]
	if !ok || value == nil {
		if def == nil {
			def = map[interface{}]interface{}{}
		}
		parent[key] = def
		return def, nil
	}
	m, ok := asMapping(value)
	if !ok {
		return nil, errors.Errorf("mongod.conf: %q is not a mapping", key)
	}
	return m, nil
}

func (c Config) section(key string, def map[interface{}]interface{}) (map[interface{}]interface{}, error) {
	return section(c, key, def)
}

// Live enables authorization and requires TLS on all interfaces
func Live(conf Config) error {
	security, err := conf.section("security", nil)
	if err != nil {
		return err
	}
	security["authorization"] = "enabled"

	net, err := conf.section("net", nil)
	if err != nil {
		return err
	}
	// Security groups only allow the default port
	net["port"] = mongodPort
	delete(net, "bindIp")
	net["bindIpAll"] = true

	ssl, err := section(net, "ssl", nil)
	if err != nil {
		return err
	}
	ssl["mode"] = "requireSSL"
	ssl["disabledProtocols"] = "TLS1_0,TLS1_1"
	// Clients do not need their own certificate
	ssl["allowConnectionsWithoutCertificates"] = true
	ssl["allowInvalidCertificates"] = false
	ssl["CAFile"] = caFile
	ssl["PEMKeyFile"] = pemKeyFile
	return nil
}

// NoAuth disables authorization and TLS and listens on localhost only
func NoAuth(conf Config) error {
	security, err := conf.section("security", nil)
	if err != nil {
		return err
	}
	security["authorization"] = "disabled"

	net, err := conf.section("net", nil)
	if err != nil {
		return err
	}
	net["port"] = mongodPort
	net["bindIp"] = "127.0.0.1"
	delete(net, "bindIpAll")
	delete(net, "ssl")
	return nil
}

// StoragePath returns a Patch that moves the database to path, which must
// be an existing directory.
func StoragePath(path string) (Patch, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", path)
	}
	return func(conf Config) error {
		storage, err := conf.section("storage", map[interface{}]interface{}{
			"journal": map[interface{}]interface{}{"enabled": "true"},
		})
		if err != nil {
			return err
		}
		storage["dbPath"] = path
		return nil
	}, nil
}
