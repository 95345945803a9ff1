package application

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// OrderProjector keeps the order summary projection in step with the
// order stream
type OrderProjector struct {
	summaryRepository domain.OrderSummaryRepository
}

// NewOrderProjector creates a new OrderProjector
func NewOrderProjector(summaryRepository domain.OrderSummaryRepository) *OrderProjector {
	return &OrderProjector{summaryRepository: summaryRepository}
}

// HandlerID implements the subscriber handler contract
func (p *OrderProjector) HandlerID() string {
	return "order-projector"
}

// Handle implements events.EventHandler
func (p *OrderProjector) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.OrderCreatedEvent:
		return p.applyCreated(ctx, event)
	case events.OrderApprovedEvent:
		return p.applyApproved(ctx, event)
	case events.OrderRejectedEvent:
		return p.applyRejected(ctx, event)
	default:
		return nil
	}
}

func (p *OrderProjector) applyCreated(ctx context.Context, event *events.Event) error {
	var data domain.OrderCreatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode order created event")
	}

	summary := &domain.OrderSummary{
		ID:         data.OrderID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		AddressID:  data.AddressID,
		Status:     data.Status,
		Timestamps: models.NewTimestamps(),
	}

	return errors.Wrap(p.summaryRepository.Save(ctx, summary), "failed to project order creation")
}

func (p *OrderProjector) applyApproved(ctx context.Context, event *events.Event) error {
	summary, err := p.loadSummary(ctx, event.AggregateID)
	if err != nil || summary == nil {
		return err
	}

	summary.Status = domain.OrderStatusApproved
	summary.Timestamps = summary.Timestamps.Update()

	return errors.Wrap(p.summaryRepository.Save(ctx, summary), "failed to project order approval")
}

func (p *OrderProjector) applyRejected(ctx context.Context, event *events.Event) error {
	var data domain.OrderRejectedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode order rejected event")
	}

	summary, err := p.loadSummary(ctx, event.AggregateID)
	if err != nil || summary == nil {
		return err
	}

	summary.Status = domain.OrderStatusRejected
	summary.Reason = data.Reason
	summary.Timestamps = summary.Timestamps.Update()

	return errors.Wrap(p.summaryRepository.Save(ctx, summary), "failed to project order rejection")
}

func (p *OrderProjector) loadSummary(ctx context.Context, orderID models.ID) (*domain.OrderSummary, error) {
	summary, err := p.summaryRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order summary")
	}

	if summary == nil {
		// Projection lag: the creation row has not landed yet
		log.Warn().
			Str("order_id", orderID.String()).
			Msg("order summary missing for status update")
		return nil, nil
	}

	return summary, nil
}
