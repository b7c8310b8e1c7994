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

// Package publisher is used to batch and send metric data to CloudWatch
package publisher

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"

	"github.com/aws/aws-rfdk/pkg/utils/logger"
)

//go:generate go run ../../scripts/mockgen.go github.com/aws/aws-rfdk/pkg/publisher CloudWatchAPI mocks/publisher_mocks.go

const (
	// Metric dimension constants
	instanceIDDimension = "InstanceId"

	// Used when the instance ID cannot be read from IMDS
	defaultInstanceID = "unknown"

	// localMetricData is the default size for the local queue(slice)
	localMetricDataSize = 100

	// maxDataPoints is the maximum number of data points per PutMetricData API request
	maxDataPoints = 20
)

// CloudWatchAPI is the subset of the CloudWatch API used to publish metrics
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// InstanceIDGetter returns the ID of the current EC2 instance
type InstanceIDGetter interface {
	GetInstanceID(ctx context.Context) (string, error)
}

// Publisher defines the interface to publish one or more data points
type Publisher interface {
	// Publish queues one or more metric data points
	Publish(metricDataPoints ...types.MetricDatum)

	// Flush sends every queued data point
	Flush(ctx context.Context) error
}

// cloudWatchPublisher implements the `Publisher` interface for batching and publishing
// metric data to the CloudWatch metrics backend
type cloudWatchPublisher struct {
	namespace        string
	instanceID       string
	cloudwatchClient CloudWatchAPI
	localMetricData  []types.MetricDatum
	lock             sync.Mutex
	log              logger.Logger
}

// New returns a new instance of `Publisher`. Every data point gets an
// InstanceId dimension resolved through imds.
func New(ctx context.Context, client CloudWatchAPI, imds InstanceIDGetter, namespace string) Publisher {
	log := logger.Get()
	instanceID, err := imds.GetInstanceID(ctx)
	if err != nil || instanceID == "" {
		log.Warnf("Unable to determine the instance ID, using %q: %v", defaultInstanceID, err)
		instanceID = defaultInstanceID
	}
	return &cloudWatchPublisher{
		namespace:        namespace,
		instanceID:       instanceID,
		cloudwatchClient: client,
		localMetricData:  make([]types.MetricDatum, 0, localMetricDataSize),
		log:              log,
	}
}

// Publish is a variadic function to queue one or more metric data points
func (p *cloudWatchPublisher) Publish(metricDataPoints ...types.MetricDatum) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, metricDatum := range metricDataPoints {
		metricDatum.Dimensions = append(append([]types.Dimension{}, metricDatum.Dimensions...), types.Dimension{
			Name:  aws.String(instanceIDDimension),
			Value: aws.String(p.instanceID),
		})
		p.localMetricData = append(p.localMetricData, metricDatum)
	}
}

// Flush sends the queued data points in batches of at most maxDataPoints.
// Every batch is attempted; the first error is returned.
func (p *cloudWatchPublisher) Flush(ctx context.Context) error {
	p.lock.Lock()
	data := p.localMetricData
	p.localMetricData = make([]types.MetricDatum, 0, localMetricDataSize)
	p.lock.Unlock()

	if len(data) == 0 {
		p.log.Info("Missing data for publishing CloudWatch metrics")
		return nil
	}

	var firstErr error
	for _, batch := range lo.Chunk(data, maxDataPoints) {
		p.log.Debugf("Sending %d data points to CloudWatch namespace %s", len(batch), p.namespace)
		_, err := p.cloudwatchClient.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(p.namespace),
			MetricData: batch,
		})
		if err != nil {
			p.log.Warnf("Unable to publish CloudWatch metrics: %v", err)
			if firstErr == nil {
				firstErr = errors.Wrap(err, "publisher: PutMetricData failed")
			}
		}
	}
	return firstErr
}

// CounterData converts every series of the named counter families into data
// points. Labels become dimensions and zero-valued series are skipped.
func CounterData(gatherer prometheus.Gatherer, names ...string) ([]types.MetricDatum, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "publisher: unable to gather metrics")
	}
	wanted := lo.SliceToMap(names, func(name string) (string, struct{}) {
		return name, struct{}{}
	})

	var data []types.MetricDatum
	for _, family := range families {
		if _, ok := wanted[family.GetName()]; !ok || family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			data = append(data, types.MetricDatum{
				MetricName: aws.String(family.GetName()),
				Unit:       types.StandardUnitCount,
				Value:      aws.Float64(value),
				Dimensions: lo.Map(metric.GetLabel(), func(pair *dto.LabelPair, _ int) types.Dimension {
					return types.Dimension{Name: aws.String(pair.GetName()), Value: aws.String(pair.GetValue())}
				}),
			})
		}
	}
	return data, nil
}
