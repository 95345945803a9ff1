package domain

import "github.com/duche27/eStore-OrdersService/shared/models"

// Order event payloads

type OrderCreatedData struct {
	OrderID   models.ID   `json:"order_id"`
	UserID    models.ID   `json:"user_id"`
	ProductID models.ID   `json:"product_id"`
	Quantity  int         `json:"quantity"`
	AddressID models.ID   `json:"address_id"`
	Status    OrderStatus `json:"status"`
}

type OrderApprovedData struct {
	OrderID models.ID   `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

type OrderRejectedData struct {
	OrderID models.ID   `json:"order_id"`
	Status  OrderStatus `json:"status"`
	Reason  string      `json:"reason"`
}

// Remote capability event payloads. These are the contract the saga
// consumes; the capabilities producing them are external services.

type ProductReservedData struct {
	OrderID   models.ID `json:"order_id"`
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    models.ID `json:"user_id"`
}

type ProductReservationCancelledData struct {
	OrderID   models.ID `json:"order_id"`
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    models.ID `json:"user_id"`
	Reason    string    `json:"reason"`
}

type ProductReservationFailedData struct {
	OrderID models.ID `json:"order_id"`
	Reason  string    `json:"reason"`
}

type PaymentProcessedData struct {
	OrderID   models.ID `json:"order_id"`
	PaymentID models.ID `json:"payment_id"`
}

type PaymentFailedData struct {
	OrderID   models.ID `json:"order_id"`
	PaymentID models.ID `json:"payment_id"`
	Reason    string    `json:"reason"`
}

type PaymentCancelledData struct {
	OrderID   models.ID `json:"order_id"`
	PaymentID models.ID `json:"payment_id"`
	Reason    string    `json:"reason"`
}

type OrderShippedData struct {
	OrderID    models.ID `json:"order_id"`
	ShipmentID models.ID `json:"shipment_id"`
}

type ShipmentFailedData struct {
	OrderID    models.ID `json:"order_id"`
	ShipmentID models.ID `json:"shipment_id"`
	Reason     string    `json:"reason"`
}

type NotificationSentData struct {
	OrderID  models.ID `json:"order_id"`
	NoticeID models.ID `json:"notice_id"`
	Email    string    `json:"email"`
}

type NotificationFailedData struct {
	OrderID models.ID `json:"order_id"`
	Reason  string    `json:"reason"`
}
