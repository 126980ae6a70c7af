// Package eventbridge publishes entity change events to an EventBridge bus
// so downstream consumers (notifications, analytics) can react to writes
// without coupling to the API.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"fitit-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// EventBridgeAPI is the subset of the EventBridge client the publisher uses.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Publisher sends entity change events to EventBridge. Publishing is best
// effort: a failed put is logged, never surfaced to the caller, since the
// write it describes has already committed.
type Publisher struct {
	client       EventBridgeAPI
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates an EventBridge publisher.
func NewPublisher(client EventBridgeAPI, eventBusName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Notify publishes a single entity change event.
func (p *Publisher) Notify(ctx context.Context, event events.EntityChanged) {
	detail, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal change event",
			zap.String("detailType", event.DetailType()),
			zap.Error(err),
		)
		return
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(events.Source),
				DetailType:   aws.String(event.DetailType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.At),
				Resources: []string{
					fmt.Sprintf("arn:aws:fitit::%s", event.ID),
				},
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		p.logger.Error("Failed to publish change event",
			zap.String("detailType", event.DetailType()),
			zap.String("eventBus", p.eventBusName),
			zap.Error(err),
		)
		return
	}

	if result.FailedEntryCount > 0 {
		for _, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Change event rejected by EventBridge",
					zap.String("detailType", event.DetailType()),
					zap.String("errorCode", *entry.ErrorCode),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return
	}

	p.logger.Debug("Change event published",
		zap.String("detailType", event.DetailType()),
		zap.String("eventBus", p.eventBusName),
	)
}
