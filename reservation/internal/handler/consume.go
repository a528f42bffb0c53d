package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/sarpras/reservation-service/reservation/internal/model"
)

type decisionHandler func(ctx context.Context, ev model.DecisionEvent) error

// Consumer turns decision events into stored notifications.
type Consumer struct {
	handleDecision decisionHandler
	log            *zap.Logger
}

func NewConsumer(handleDecision decisionHandler, log *zap.Logger) *Consumer {
	return &Consumer{
		handleDecision: handleDecision,
		log:            log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.consume(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// consume never fails the claim: a broken payload is skipped and a store
// failure is logged, the notification is best effort.
func (consumer *Consumer) consume(ctx context.Context, message *sarama.ConsumerMessage) {
	var ev model.DecisionEvent
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		consumer.log.Error("unmarshal decision", zap.Error(err), zap.ByteString("value", message.Value))
		return
	}
	if err := consumer.handleDecision(ctx, ev); err != nil {
		consumer.log.Error("handle decision", zap.Stringer("reservation", ev.ReservationID), zap.Error(err))
		return
	}
	consumer.log.Debug("message claimed",
		zap.String("topic", message.Topic),
		zap.Time("timestamp", message.Timestamp),
		zap.Stringer("reservation", ev.ReservationID))
}
