package handlers

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/pkg/errors"
)

// OrderEventHandlers is the single subscription root for the service.
// Every inbound event goes to the awaiter first, so parked command
// proxies unblock even when the saga or the projection is behind, then
// to the projection and the saga.
type OrderEventHandlers struct {
	awaiter     *bus.EventAwaiter
	projector   *application.OrderProjector
	sagaManager *application.SagaManager
}

// NewOrderEventHandlers creates new order event handlers
func NewOrderEventHandlers(
	awaiter *bus.EventAwaiter,
	projector *application.OrderProjector,
	sagaManager *application.SagaManager,
) *OrderEventHandlers {
	return &OrderEventHandlers{
		awaiter:     awaiter,
		projector:   projector,
		sagaManager: sagaManager,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *OrderEventHandlers) HandlerID() string {
	return "orders-service-event-handler"
}

// Handle implements the events.EventHandler interface
func (h *OrderEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	if err := h.awaiter.Handle(ctx, event); err != nil {
		return errors.Wrap(err, "awaiter failed")
	}

	if err := h.projector.Handle(ctx, event); err != nil {
		return errors.Wrap(err, "projection failed")
	}

	if err := h.sagaManager.Handle(ctx, event); err != nil {
		return errors.Wrap(err, "saga failed")
	}

	return nil
}
