package application

import (
	"github.com/duche27/eStore-OrdersService/shared/models"
)

// Command names routed through the command bus
const (
	CreateOrderCommandName              = "order.create"
	ApproveOrderCommandName             = "order.approve"
	RejectOrderCommandName              = "order.reject"
	ReserveProductCommandName           = "product.reserve"
	CancelProductReservationCommandName = "product.reservation.cancel"
	ProcessPaymentCommandName           = "payment.process"
	CancelPaymentCommandName            = "payment.cancel"
	ShipOrderCommandName                = "order.ship"
	SendNotificationCommandName         = "notification.send"
)

// FetchUserPaymentDetailsQueryName identifies the user payment details lookup
const FetchUserPaymentDetailsQueryName = "user.payment-details"

// CreateOrderCommand opens a new order stream
type CreateOrderCommand struct {
	OrderID   models.ID `json:"order_id"`
	UserID    models.ID `json:"user_id"`
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddressID models.ID `json:"address_id"`
}

func (c CreateOrderCommand) CommandName() string    { return CreateOrderCommandName }
func (c CreateOrderCommand) AggregateID() models.ID { return c.OrderID }

// ApproveOrderCommand closes the order as APPROVED
type ApproveOrderCommand struct {
	OrderID models.ID `json:"order_id"`
}

func (c ApproveOrderCommand) CommandName() string    { return ApproveOrderCommandName }
func (c ApproveOrderCommand) AggregateID() models.ID { return c.OrderID }

// RejectOrderCommand closes the order as REJECTED with the root cause
type RejectOrderCommand struct {
	OrderID models.ID `json:"order_id"`
	Reason  string    `json:"reason"`
}

func (c RejectOrderCommand) CommandName() string    { return RejectOrderCommandName }
func (c RejectOrderCommand) AggregateID() models.ID { return c.OrderID }

// ReserveProductCommand asks the inventory capability to hold stock
type ReserveProductCommand struct {
	OrderID   models.ID `json:"order_id"`
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    models.ID `json:"user_id"`
}

func (c ReserveProductCommand) CommandName() string    { return ReserveProductCommandName }
func (c ReserveProductCommand) AggregateID() models.ID { return c.OrderID }

// CancelProductReservationCommand releases a previously held reservation
type CancelProductReservationCommand struct {
	OrderID   models.ID `json:"order_id"`
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    models.ID `json:"user_id"`
	Reason    string    `json:"reason"`
}

func (c CancelProductReservationCommand) CommandName() string {
	return CancelProductReservationCommandName
}
func (c CancelProductReservationCommand) AggregateID() models.ID { return c.OrderID }

// ProcessPaymentCommand charges the user's registered payment method
type ProcessPaymentCommand struct {
	OrderID         models.ID `json:"order_id"`
	PaymentID       models.ID `json:"payment_id"`
	CardNumber      string    `json:"card_number"`
	ValidUntilMonth int       `json:"valid_until_month"`
	ValidUntilYear  int       `json:"valid_until_year"`
}

func (c ProcessPaymentCommand) CommandName() string    { return ProcessPaymentCommandName }
func (c ProcessPaymentCommand) AggregateID() models.ID { return c.OrderID }

// CancelPaymentCommand reverses a processed payment
type CancelPaymentCommand struct {
	OrderID   models.ID `json:"order_id"`
	PaymentID models.ID `json:"payment_id"`
	Reason    string    `json:"reason"`
}

func (c CancelPaymentCommand) CommandName() string    { return CancelPaymentCommandName }
func (c CancelPaymentCommand) AggregateID() models.ID { return c.OrderID }

// ShipOrderCommand dispatches the reserved goods
type ShipOrderCommand struct {
	OrderID    models.ID `json:"order_id"`
	ShipmentID models.ID `json:"shipment_id"`
	ProductID  models.ID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	AddressID  models.ID `json:"address_id"`
}

func (c ShipOrderCommand) CommandName() string    { return ShipOrderCommandName }
func (c ShipOrderCommand) AggregateID() models.ID { return c.OrderID }

// SendNotificationCommand emails the buyer about the shipped order
type SendNotificationCommand struct {
	OrderID  models.ID `json:"order_id"`
	NoticeID models.ID `json:"notice_id"`
	UserID   models.ID `json:"user_id"`
	Email    string    `json:"email"`
}

func (c SendNotificationCommand) CommandName() string    { return SendNotificationCommandName }
func (c SendNotificationCommand) AggregateID() models.ID { return c.OrderID }

// FetchUserPaymentDetailsQuery resolves the buyer's profile and card on file
type FetchUserPaymentDetailsQuery struct {
	UserID models.ID `json:"user_id"`
}

func (q FetchUserPaymentDetailsQuery) QueryName() string { return FetchUserPaymentDetailsQueryName }
