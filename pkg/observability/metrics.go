package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics records repository operation metrics in CloudWatch. Publishing is
// best effort; a failed put is logged and dropped.
type Metrics struct {
	client    CloudWatchAPI
	namespace string
	logger    *zap.Logger
}

// NewMetrics creates a CloudWatch metrics recorder.
func NewMetrics(client CloudWatchAPI, namespace string, logger *zap.Logger) *Metrics {
	return &Metrics{
		client:    client,
		namespace: namespace,
		logger:    logger,
	}
}

// RecordOperation publishes the duration and outcome of a repository
// operation.
func (m *Metrics) RecordOperation(ctx context.Context, entity, operation string, duration time.Duration, err error) {
	dimensions := []types.Dimension{
		{Name: aws.String("Entity"), Value: aws.String(entity)},
		{Name: aws.String("Operation"), Value: aws.String(operation)},
	}

	data := []types.MetricDatum{
		{
			MetricName: aws.String("OperationDuration"),
			Dimensions: dimensions,
			Unit:       types.StandardUnitMilliseconds,
			Value:      aws.Float64(float64(duration.Milliseconds())),
		},
	}

	if err != nil {
		data = append(data, types.MetricDatum{
			MetricName: aws.String("OperationErrors"),
			Dimensions: dimensions,
			Unit:       types.StandardUnitCount,
			Value:      aws.Float64(1),
		})
	}

	_, putErr := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	})
	if putErr != nil {
		m.logger.Debug("Failed to publish metrics",
			zap.String("entity", entity),
			zap.String("operation", operation),
			zap.Error(putErr),
		)
	}
}
