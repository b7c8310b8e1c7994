// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//      http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package prometheusmetrics

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	IdentityRegistrationActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfdk_identity_registration_actions_total",
			Help: "The number of identity registration settings created, updated, deleted or left unchanged",
		},
		[]string{"action"},
	)
	AwsAPILatency = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "rfdk_aws_api_latency_ms",
			Help: "AWS API call latency in ms",
		},
		[]string{"api", "error", "status"},
	)
	AwsAPIErr = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfdk_aws_api_error_count",
			Help: "The number of times AWS API returns an error",
		},
		[]string{"api", "error"},
	)
	DeadlineCommandCnt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfdk_deadline_command_count",
			Help: "The number of deadlinecommand invocations",
		},
		[]string{"command", "error"},
	)
)

var (
	// Registry holds every collector of this package
	Registry = prometheus.NewRegistry()

	registerOnce sync.Once
)

// PrometheusRegister registers the collectors with Registry. It is safe to
// call more than once.
func PrometheusRegister() {
	registerOnce.Do(func() {
		Registry.MustRegister(IdentityRegistrationActions)
		Registry.MustRegister(AwsAPILatency)
		Registry.MustRegister(AwsAPIErr)
		Registry.MustRegister(DeadlineCommandCnt)
	})
}

// WriteTextfile writes the registry in the text exposition format, for
// consumption by the node exporter textfile collector.
func WriteTextfile(path string) error {
	PrometheusRegister()
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}

// WriteText writes the registry in the text exposition format to w
func WriteText(w io.Writer) error {
	PrometheusRegister()
	families, err := Registry.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return errors.Wrapf(err, "failed to encode %s", family.GetName())
		}
	}
	return nil
}

// CounterValues gathers the current value of every series of a counter
// family, keyed by the value of label.
func CounterValues(name, label string) (map[string]float64, error) {
	PrometheusRegister()
	families, err := Registry.Gather()
	if err != nil {
		return nil, err
	}
	values := map[string]float64{}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label {
					values[pair.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return values, nil
}
