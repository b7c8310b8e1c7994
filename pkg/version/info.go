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

package version

import (
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aws/aws-rfdk/utils/prometheusmetrics"
)

// Version and Revision are set at build time with -ldflags
var (
	Version   string
	Revision  string
	GoVersion = runtime.Version()

	registerOnce sync.Once
)

// RegisterMetric publishes a constant build-info gauge in the shared registry
func RegisterMetric() {
	registerOnce.Do(func() {
		buildInfo := prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rfdk_build_info",
				Help: "A metric with a constant '1' value labeled by version, revision, and goversion from which rfdk-deadline was built.",
			},
			[]string{"version", "revision", "goversion"},
		)
		buildInfo.WithLabelValues(Version, Revision, GoVersion).Set(1)
		prometheusmetrics.Registry.MustRegister(buildInfo)
	})
}
