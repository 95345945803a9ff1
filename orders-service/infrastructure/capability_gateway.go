package infrastructure

import (
	"context"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/pkg/errors"
)

// CapabilityGateway proxies commands owned by the inventory, payment,
// shipping and notification services. A command goes out as an event
// on its own topic; confirming commands then park on the awaiter until
// the capability's success or failure event comes back, so the caller
// sees an ordinary synchronous error. Compensating commands are fire
// and forget, their outcome returns as an event the saga handles.
type CapabilityGateway struct {
	publisher events.Publisher
	awaiter   *bus.EventAwaiter
	waitBound time.Duration
}

// NewCapabilityGateway creates a new CapabilityGateway
func NewCapabilityGateway(publisher events.Publisher, awaiter *bus.EventAwaiter, waitBound time.Duration) *CapabilityGateway {
	return &CapabilityGateway{
		publisher: publisher,
		awaiter:   awaiter,
		waitBound: waitBound,
	}
}

// Register wires every capability command onto the bus
func (g *CapabilityGateway) Register(commandBus *bus.InMemoryBus) {
	commandBus.Register(application.ReserveProductCommandName, bus.CommandHandlerFunc(g.reserveProduct))
	commandBus.Register(application.CancelProductReservationCommandName, bus.CommandHandlerFunc(g.cancelProductReservation))
	commandBus.Register(application.ProcessPaymentCommandName, bus.CommandHandlerFunc(g.processPayment))
	commandBus.Register(application.CancelPaymentCommandName, bus.CommandHandlerFunc(g.cancelPayment))
	commandBus.Register(application.ShipOrderCommandName, bus.CommandHandlerFunc(g.shipOrder))
	commandBus.Register(application.SendNotificationCommandName, bus.CommandHandlerFunc(g.sendNotification))
}

func (g *CapabilityGateway) reserveProduct(ctx context.Context, cmd bus.Command) (string, error) {
	reserve, ok := cmd.(application.ReserveProductCommand)
	if !ok {
		return "", errors.Errorf("unexpected command type %T", cmd)
	}

	result, err := g.publishAndAwait(ctx, cmd,
		events.ProductReservedEvent, events.ProductReservationFailedEvent)
	if err != nil {
		return "", err
	}

	if result.EventType == events.ProductReservationFailedEvent {
		var data domain.ProductReservationFailedData
		if err := result.UnmarshalPayload(&data); err != nil {
			return "", errors.Wrap(err, "failed to decode reservation failure")
		}
		// The refusal reason travels as-is into the order rejection
		return "", errors.New(data.Reason)
	}

	return reserve.ProductID.String(), nil
}

func (g *CapabilityGateway) processPayment(ctx context.Context, cmd bus.Command) (string, error) {
	result, err := g.publishAndAwait(ctx, cmd,
		events.PaymentProcessedEvent, events.PaymentFailedEvent)
	if err != nil {
		return "", err
	}

	if result.EventType == events.PaymentFailedEvent {
		var data domain.PaymentFailedData
		if err := result.UnmarshalPayload(&data); err != nil {
			return "", errors.Wrap(err, "failed to decode payment failure")
		}
		return "", errors.New(data.Reason)
	}

	var data domain.PaymentProcessedData
	if err := result.UnmarshalPayload(&data); err != nil {
		return "", errors.Wrap(err, "failed to decode payment result")
	}

	return data.PaymentID.String(), nil
}

func (g *CapabilityGateway) shipOrder(ctx context.Context, cmd bus.Command) (string, error) {
	result, err := g.publishAndAwait(ctx, cmd,
		events.OrderShippedEvent, events.ShipmentFailedEvent)
	if err != nil {
		return "", err
	}

	if result.EventType == events.ShipmentFailedEvent {
		var data domain.ShipmentFailedData
		if err := result.UnmarshalPayload(&data); err != nil {
			return "", errors.Wrap(err, "failed to decode shipment failure")
		}
		return "", errors.New(data.Reason)
	}

	var data domain.OrderShippedData
	if err := result.UnmarshalPayload(&data); err != nil {
		return "", errors.Wrap(err, "failed to decode shipment result")
	}

	return data.ShipmentID.String(), nil
}

func (g *CapabilityGateway) sendNotification(ctx context.Context, cmd bus.Command) (string, error) {
	result, err := g.publishAndAwait(ctx, cmd,
		events.NotificationSentEvent, events.NotificationFailedEvent)
	if err != nil {
		return "", err
	}

	if result.EventType == events.NotificationFailedEvent {
		var data domain.NotificationFailedData
		if err := result.UnmarshalPayload(&data); err != nil {
			return "", errors.Wrap(err, "failed to decode notification failure")
		}
		return "", errors.New(data.Reason)
	}

	var data domain.NotificationSentData
	if err := result.UnmarshalPayload(&data); err != nil {
		return "", errors.Wrap(err, "failed to decode notification result")
	}

	return data.NoticeID.String(), nil
}

func (g *CapabilityGateway) cancelProductReservation(ctx context.Context, cmd bus.Command) (string, error) {
	return "", g.publish(ctx, cmd)
}

func (g *CapabilityGateway) cancelPayment(ctx context.Context, cmd bus.Command) (string, error) {
	return "", g.publish(ctx, cmd)
}

func (g *CapabilityGateway) publish(ctx context.Context, cmd bus.Command) error {
	event := events.NewEvent(cmd.AggregateID(), cmd.CommandName(), cmd).
		WithCorrelationID(cmd.AggregateID())

	return errors.Wrapf(g.publisher.Publish(ctx, event), "failed to publish %s", cmd.CommandName())
}

func (g *CapabilityGateway) publishAndAwait(ctx context.Context, cmd bus.Command, successTopic, failureTopic string) (*events.Event, error) {
	// The watch goes up before the command leaves so the reply cannot
	// slip past between publish and wait
	watch := g.awaiter.Watch(cmd.AggregateID(), successTopic, failureTopic)
	defer watch.Close()

	if err := g.publish(ctx, cmd); err != nil {
		return nil, err
	}

	result, err := watch.Wait(ctx, g.waitBound)
	if err != nil {
		return nil, errors.Wrapf(err, "no reply for %s", cmd.CommandName())
	}

	return result, nil
}
