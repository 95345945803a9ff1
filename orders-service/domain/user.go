package domain

import "github.com/duche27/eStore-OrdersService/shared/models"

// PaymentDetails is the payment instrument returned by the user lookup
type PaymentDetails struct {
	CardNumber      string `json:"card_number"`
	ValidUntilMonth int    `json:"valid_until_month"`
	ValidUntilYear  int    `json:"valid_until_year"`
}

// User is the read returned by the user-lookup capability
type User struct {
	UserID         models.ID      `json:"user_id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	PaymentDetails PaymentDetails `json:"payment_details"`
}
