package application

import (
	"context"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/duche27/eStore-OrdersService/shared/deadline"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Deadline names armed by the saga
const (
	PaymentProcessingDeadline  = "payment-processing-deadline"
	ShipmentProcessingDeadline = "shipment-processing-deadline"
)

// Compensation reasons raised by the saga itself
const (
	ReasonPaymentDetailsUnavailable = "user payment details unavailable"
	ReasonPaymentFailed             = "payment could not be processed"
	ReasonShipmentFailed            = "order could not be shipped"
	ReasonPaymentTimeout            = "Payment processing timeout"
	ReasonShipmentTimeout           = "Shipment processing timeout"
)

// OrderSagaState is the per-order progress the saga retains between
// events. Step results are kept so compensations can be issued from
// any later step.
type OrderSagaState struct {
	OrderID                models.ID `json:"order_id"`
	UserID                 models.ID `json:"user_id"`
	ProductID              models.ID `json:"product_id"`
	Quantity               int       `json:"quantity"`
	AddressID              models.ID `json:"address_id"`
	UserEmail              string    `json:"user_email"`
	PaymentID              models.ID `json:"payment_id"`
	PaymentDeadlineHandle  string    `json:"payment_deadline_handle"`
	ShipmentDeadlineHandle string    `json:"shipment_deadline_handle"`
	Ended                  bool      `json:"ended"`
}

// OrderSagaConfig holds the saga timing knobs
type OrderSagaConfig struct {
	PaymentDeadline  time.Duration
	ShipmentDeadline time.Duration
	CommandWait      time.Duration
}

// DefaultOrderSagaConfig returns the production saga timings
func DefaultOrderSagaConfig() OrderSagaConfig {
	return OrderSagaConfig{
		PaymentDeadline:  2 * time.Minute,
		ShipmentDeadline: 5 * time.Minute,
		CommandWait:      10 * time.Second,
	}
}

// OrderSaga orchestrates an order from creation to a terminal status:
// reserve stock, charge the user, ship, notify, approve. Every failure
// on the way compensates the completed steps backwards until the order
// is rejected with the root cause.
type OrderSaga struct {
	commandBus bus.CommandBus
	queryBus   bus.QueryBus
	scheduler  deadline.Scheduler
	notifier   StatusNotifier
	config     OrderSagaConfig
}

// NewOrderSaga creates a new OrderSaga
func NewOrderSaga(
	commandBus bus.CommandBus,
	queryBus bus.QueryBus,
	scheduler deadline.Scheduler,
	notifier StatusNotifier,
	config OrderSagaConfig,
) *OrderSaga {
	return &OrderSaga{
		commandBus: commandBus,
		queryBus:   queryBus,
		scheduler:  scheduler,
		notifier:   notifier,
		config:     config,
	}
}

// HandleEvent advances the saga with one event. The caller owns loading,
// locking and persisting the state.
func (s *OrderSaga) HandleEvent(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	switch event.EventType {
	case events.OrderCreatedEvent:
		return s.handleOrderCreated(ctx, state, event)
	case events.ProductReservedEvent:
		return s.handleProductReserved(ctx, state, event)
	case events.ProductReservationCancelledEvent:
		return s.handleProductReservationCancelled(ctx, state, event)
	case events.PaymentProcessedEvent:
		return s.handlePaymentProcessed(ctx, state, event)
	case events.PaymentCancelledEvent:
		return s.handlePaymentCancelled(ctx, state, event)
	case events.OrderShippedEvent:
		return s.handleOrderShipped(ctx, state, event)
	case events.NotificationSentEvent:
		return s.handleNotificationSent(ctx, state)
	case events.OrderApprovedEvent:
		return s.handleOrderApproved(ctx, state)
	case events.OrderRejectedEvent:
		return s.handleOrderRejected(ctx, state, event)
	default:
		if event.Topic.Matches(events.DeadlineTopicPrefix + "#") {
			return s.handleDeadline(ctx, state, event)
		}
		return nil
	}
}

// Step 1: reserve the product. A reservation the inventory refuses
// outright rejects the order with the refusal reason untouched.
func (s *OrderSaga) handleOrderCreated(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.OrderCreatedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode order created event")
	}

	state.OrderID = data.OrderID
	state.UserID = data.UserID
	state.ProductID = data.ProductID
	state.Quantity = data.Quantity
	state.AddressID = data.AddressID

	cmd := ReserveProductCommand{
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UserID:    data.UserID,
	}

	if err := s.commandBus.Send(ctx, cmd); err != nil {
		return s.rejectOrder(ctx, state, err.Error())
	}

	return nil
}

// Step 2: the stock is held. Resolve the card on file, arm the payment
// deadline and charge. Any failure releases the reservation.
func (s *OrderSaga) handleProductReserved(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.ProductReservedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode product reserved event")
	}

	state.ProductID = data.ProductID
	state.Quantity = data.Quantity
	state.UserID = data.UserID

	result, err := s.queryBus.Query(ctx, FetchUserPaymentDetailsQuery{UserID: data.UserID})
	if err != nil {
		log.Error().Err(err).
			Str("order_id", state.OrderID.String()).
			Str("user_id", data.UserID.String()).
			Msg("failed to fetch user payment details")
		return s.cancelProductReservation(ctx, state, err.Error())
	}

	user, ok := result.(*domain.User)
	if !ok || user == nil {
		return s.cancelProductReservation(ctx, state, ReasonPaymentDetailsUnavailable)
	}
	state.UserEmail = user.Email

	handle, err := s.scheduler.Schedule(ctx, s.config.PaymentDeadline, PaymentProcessingDeadline, event)
	if err != nil {
		return errors.Wrap(err, "failed to schedule payment deadline")
	}
	state.PaymentDeadlineHandle = handle

	cmd := ProcessPaymentCommand{
		OrderID:         state.OrderID,
		PaymentID:       models.GenerateUUID(),
		CardNumber:      user.PaymentDetails.CardNumber,
		ValidUntilMonth: user.PaymentDetails.ValidUntilMonth,
		ValidUntilYear:  user.PaymentDetails.ValidUntilYear,
	}

	paymentResult, err := s.commandBus.SendAndWait(ctx, cmd, s.config.CommandWait)
	if err != nil {
		log.Error().Err(err).
			Str("order_id", state.OrderID.String()).
			Msg("payment processing failed")
		return s.cancelProductReservation(ctx, state, failureReason(err, ReasonPaymentFailed))
	}
	if paymentResult == "" {
		return s.cancelProductReservation(ctx, state, ReasonPaymentFailed)
	}

	return nil
}

// Step 3: paid. Disarm the payment deadline, arm the shipment deadline
// and dispatch. A shipment failure reverses the payment.
func (s *OrderSaga) handlePaymentProcessed(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.PaymentProcessedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode payment processed event")
	}

	state.PaymentID = data.PaymentID
	s.cancelPaymentDeadline(state)

	handle, err := s.scheduler.Schedule(ctx, s.config.ShipmentDeadline, ShipmentProcessingDeadline, event)
	if err != nil {
		return errors.Wrap(err, "failed to schedule shipment deadline")
	}
	state.ShipmentDeadlineHandle = handle

	cmd := ShipOrderCommand{
		OrderID:    state.OrderID,
		ShipmentID: models.GenerateUUID(),
		ProductID:  state.ProductID,
		Quantity:   state.Quantity,
		AddressID:  state.AddressID,
	}

	if _, err := s.commandBus.SendAndWait(ctx, cmd, s.config.CommandWait); err != nil {
		log.Error().Err(err).
			Str("order_id", state.OrderID.String()).
			Msg("order shipment failed")
		return s.cancelPayment(ctx, state, failureReason(err, ReasonShipmentFailed))
	}

	return nil
}

// Step 4: shipped. Disarm the shipment deadline and notify the buyer.
// A failed notification never rolls the order back: the goods are on
// their way, so the order is approved regardless.
func (s *OrderSaga) handleOrderShipped(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	s.cancelShipmentDeadline(state)

	cmd := SendNotificationCommand{
		OrderID:  state.OrderID,
		NoticeID: models.GenerateUUID(),
		UserID:   state.UserID,
		Email:    state.UserEmail,
	}

	if _, err := s.commandBus.SendAndWait(ctx, cmd, s.config.CommandWait); err != nil {
		log.Warn().Err(err).
			Str("order_id", state.OrderID.String()).
			Msg("shipment notification failed, approving order anyway")
		return s.approveOrder(ctx, state)
	}

	return nil
}

// Step 5: the buyer knows. Close the order as approved.
func (s *OrderSaga) handleNotificationSent(ctx context.Context, state *OrderSagaState) error {
	return s.approveOrder(ctx, state)
}

// A released reservation is the last compensation: nothing is held
// anymore, so the order itself gets rejected with the release reason.
func (s *OrderSaga) handleProductReservationCancelled(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.ProductReservationCancelledData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode reservation cancelled event")
	}

	return s.rejectOrder(ctx, state, data.Reason)
}

// A reversed payment unwinds the step before it: release the stock
// still held for this order, carrying the root cause along.
func (s *OrderSaga) handlePaymentCancelled(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.PaymentCancelledData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode payment cancelled event")
	}

	return s.cancelProductReservation(ctx, state, data.Reason)
}

func (s *OrderSaga) handleOrderApproved(ctx context.Context, state *OrderSagaState) error {
	state.Ended = true

	update := &OrderStatusUpdate{OrderID: state.OrderID, Status: domain.OrderStatusApproved}
	if err := s.notifier.Notify(ctx, update); err != nil {
		log.Warn().Err(err).
			Str("order_id", state.OrderID.String()).
			Msg("failed to push approved status update")
	}

	return nil
}

func (s *OrderSaga) handleOrderRejected(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	var data domain.OrderRejectedData
	if err := event.UnmarshalPayload(&data); err != nil {
		return errors.Wrap(err, "failed to decode order rejected event")
	}

	s.cancelPaymentDeadline(state)
	s.cancelShipmentDeadline(state)
	state.Ended = true

	update := &OrderStatusUpdate{OrderID: state.OrderID, Status: domain.OrderStatusRejected, Reason: data.Reason}
	if err := s.notifier.Notify(ctx, update); err != nil {
		log.Warn().Err(err).
			Str("order_id", state.OrderID.String()).
			Msg("failed to push rejected status update")
	}

	return nil
}

// handleDeadline compensates a step that never confirmed in time. The
// handle in the event is compared against the armed one: a deadline
// that was already disarmed, or that belongs to an earlier arming,
// fires into the void.
func (s *OrderSaga) handleDeadline(ctx context.Context, state *OrderSagaState, event *events.Event) error {
	name := event.Metadata[deadline.NameKey]
	handle := event.Metadata[deadline.HandleKey]
	if handle == "" {
		return nil
	}

	switch name {
	case PaymentProcessingDeadline:
		if handle != state.PaymentDeadlineHandle {
			return nil
		}
		state.PaymentDeadlineHandle = ""
		return s.cancelProductReservation(ctx, state, ReasonPaymentTimeout)
	case ShipmentProcessingDeadline:
		if handle != state.ShipmentDeadlineHandle {
			return nil
		}
		state.ShipmentDeadlineHandle = ""
		return s.cancelPayment(ctx, state, ReasonShipmentTimeout)
	default:
		return nil
	}
}

func (s *OrderSaga) cancelProductReservation(ctx context.Context, state *OrderSagaState, reason string) error {
	s.cancelPaymentDeadline(state)

	cmd := CancelProductReservationCommand{
		OrderID:   state.OrderID,
		ProductID: state.ProductID,
		Quantity:  state.Quantity,
		UserID:    state.UserID,
		Reason:    reason,
	}

	return errors.Wrap(s.commandBus.Send(ctx, cmd), "failed to cancel product reservation")
}

func (s *OrderSaga) cancelPayment(ctx context.Context, state *OrderSagaState, reason string) error {
	s.cancelShipmentDeadline(state)

	cmd := CancelPaymentCommand{
		OrderID:   state.OrderID,
		PaymentID: state.PaymentID,
		Reason:    reason,
	}

	return errors.Wrap(s.commandBus.Send(ctx, cmd), "failed to cancel payment")
}

func (s *OrderSaga) approveOrder(ctx context.Context, state *OrderSagaState) error {
	s.cancelPaymentDeadline(state)
	s.cancelShipmentDeadline(state)

	cmd := ApproveOrderCommand{OrderID: state.OrderID}

	return errors.Wrap(s.commandBus.Send(ctx, cmd), "failed to approve order")
}

func (s *OrderSaga) rejectOrder(ctx context.Context, state *OrderSagaState, reason string) error {
	s.cancelPaymentDeadline(state)
	s.cancelShipmentDeadline(state)

	cmd := RejectOrderCommand{OrderID: state.OrderID, Reason: reason}

	return errors.Wrap(s.commandBus.Send(ctx, cmd), "failed to reject order")
}

func (s *OrderSaga) cancelPaymentDeadline(state *OrderSagaState) {
	if state.PaymentDeadlineHandle == "" {
		return
	}
	s.scheduler.Cancel(PaymentProcessingDeadline, state.PaymentDeadlineHandle)
	state.PaymentDeadlineHandle = ""
}

func (s *OrderSaga) cancelShipmentDeadline(state *OrderSagaState) {
	if state.ShipmentDeadlineHandle == "" {
		return
	}
	s.scheduler.Cancel(ShipmentProcessingDeadline, state.ShipmentDeadlineHandle)
	state.ShipmentDeadlineHandle = ""
}

// failureReason extracts the root cause a failed capability reported,
// so it reaches the order rejection unmodified. Timeouts carry no
// remote message, so the step's own reason stands in.
func failureReason(err error, timeoutReason string) string {
	if errors.Is(err, bus.ErrCommandTimeout) || errors.Is(err, bus.ErrAwaitTimeout) {
		return timeoutReason
	}
	return err.Error()
}
