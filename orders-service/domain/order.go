package domain

import (
	"context"
	"fmt"

	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusCreated      OrderStatus = "CREATED"
	OrderStatusOnValidation OrderStatus = "ON_VALIDATION"
	OrderStatusApproved     OrderStatus = "APPROVED"
	OrderStatusRejected     OrderStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is accepted
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// InvalidStateError reports a command that is illegal in the order's
// current status. It never triggers compensation.
type InvalidStateError struct {
	OrderID models.ID
	Status  OrderStatus
	Action  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("order %s cannot be %s in status %s", e.OrderID, e.Action, e.Status)
}

// Order aggregate root. State is event-sourced: mutations record events
// and current state is always the replay of the emitted history.
type Order struct {
	ID         models.ID
	UserID     models.ID
	ProductID  models.ID
	Quantity   int
	AddressID  models.ID
	Status     OrderStatus
	Reason     string
	Timestamps models.Timestamps

	events           []*events.Event
	committedVersion int
}

// CreateOrder factory method. The order enters ON_VALIDATION immediately;
// the saga drives it to a terminal status from there.
func CreateOrder(orderID, userID, productID models.ID, quantity int, addressID models.ID) (*Order, error) {
	if orderID.IsEmpty() {
		return nil, errors.New("order ID is required")
	}
	if userID.IsEmpty() {
		return nil, errors.New("user ID is required")
	}
	if productID.IsEmpty() {
		return nil, errors.New("product ID is required")
	}
	if addressID.IsEmpty() {
		return nil, errors.New("address ID is required")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	order := &Order{Timestamps: models.NewTimestamps()}

	event := events.NewEvent(orderID, events.OrderCreatedEvent, OrderCreatedData{
		OrderID:   orderID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddressID: addressID,
		Status:    OrderStatusOnValidation,
	})

	order.applyCreated(event.Data.(OrderCreatedData))
	order.recordEvent(event)

	return order, nil
}

// Approve moves the order to APPROVED, legal only from ON_VALIDATION
func (o *Order) Approve() error {
	if o.Status != OrderStatusOnValidation {
		return &InvalidStateError{OrderID: o.ID, Status: o.Status, Action: "approved"}
	}

	data := OrderApprovedData{OrderID: o.ID, Status: OrderStatusApproved}
	o.applyApproved(data)
	o.recordEvent(events.NewEvent(o.ID, events.OrderApprovedEvent, data))

	return nil
}

// Reject moves the order to REJECTED, legal only from ON_VALIDATION.
// The reason is kept verbatim so the read model exposes the root cause.
func (o *Order) Reject(reason string) error {
	if o.Status != OrderStatusOnValidation {
		return &InvalidStateError{OrderID: o.ID, Status: o.Status, Action: "rejected"}
	}

	data := OrderRejectedData{OrderID: o.ID, Status: OrderStatusRejected, Reason: reason}
	o.applyRejected(data)
	o.recordEvent(events.NewEvent(o.ID, events.OrderRejectedEvent, data))

	return nil
}

// ReplayOrder rebuilds an order from its event history
func ReplayOrder(history []*events.Event) (*Order, error) {
	if len(history) == 0 {
		return nil, errors.New("order not found")
	}

	order := &Order{}

	for _, event := range history {
		switch event.EventType {
		case events.OrderCreatedEvent:
			var data OrderCreatedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return nil, errors.Wrap(err, "failed to replay order creation")
			}
			order.applyCreated(data)
		case events.OrderApprovedEvent:
			var data OrderApprovedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return nil, errors.Wrap(err, "failed to replay order approval")
			}
			order.applyApproved(data)
		case events.OrderRejectedEvent:
			var data OrderRejectedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return nil, errors.Wrap(err, "failed to replay order rejection")
			}
			order.applyRejected(data)
		default:
			return nil, errors.Errorf("unknown order event type %q", event.EventType)
		}
		order.committedVersion++
	}

	return order, nil
}

// Events returns the recorded, not yet persisted domain events
func (o *Order) Events() []*events.Event {
	return o.events
}

// ClearEvents clears recorded domain events after persistence
func (o *Order) ClearEvents() {
	o.events = make([]*events.Event, 0)
}

// CommittedVersion returns the stream version the order was loaded at
func (o *Order) CommittedVersion() int {
	return o.committedVersion
}

func (o *Order) applyCreated(data OrderCreatedData) {
	o.ID = data.OrderID
	o.UserID = data.UserID
	o.ProductID = data.ProductID
	o.Quantity = data.Quantity
	o.AddressID = data.AddressID
	o.Status = data.Status
}

func (o *Order) applyApproved(data OrderApprovedData) {
	o.Status = data.Status
	o.Timestamps = o.Timestamps.Update()
}

func (o *Order) applyRejected(data OrderRejectedData) {
	o.Status = data.Status
	o.Reason = data.Reason
	o.Timestamps = o.Timestamps.Update()
}

func (o *Order) recordEvent(event *events.Event) {
	o.events = append(o.events, event)
}

// OrderRepository loads and persists orders through their event streams
type OrderRepository interface {
	Load(ctx context.Context, orderID models.ID) (*Order, error)
	Save(ctx context.Context, order *Order) error
}
