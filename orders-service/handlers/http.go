package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/infrastructure"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

const defaultStatusWatchTimeout = 30 * time.Second

// CreateOrderRequest is the POST /orders body
type CreateOrderRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	AddressID string `json:"address_id"`
}

// OrderHandlers contains order HTTP handlers
type OrderHandlers struct {
	createOrder *application.CreateOrder
	getOrder    *application.GetOrder
	listOrders  *application.ListOrders
	notifier    *infrastructure.InProcessStatusNotifier
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(
	createOrder *application.CreateOrder,
	getOrder *application.GetOrder,
	listOrders *application.ListOrders,
	notifier *infrastructure.InProcessStatusNotifier,
) *OrderHandlers {
	return &OrderHandlers{
		createOrder: createOrder,
		getOrder:    getOrder,
		listOrders:  listOrders,
		notifier:    notifier,
	}
}

// CreateOrder handles order creation requests
func (h *OrderHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cmd, err := toCreateOrderCommand(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.createOrder.Execute(r.Context(), cmd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetOrder handles order retrieval requests
func (h *OrderHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		http.Error(w, "Order ID is required", http.StatusBadRequest)
		return
	}

	query := &application.GetOrderQuery{OrderID: orderID}

	response, err := h.getOrder.Execute(r.Context(), query)
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ListOrders handles order listing requests
func (h *OrderHandlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := &application.ListOrdersQuery{}
	query.Limit = intQueryParam(r, "limit")
	query.Offset = intQueryParam(r, "offset")

	response, err := h.listOrders.Execute(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// WatchOrderStatus long-polls until the order reaches a terminal
// status. An order that already closed answers immediately; otherwise
// the request parks on the status notifier until the saga finishes or
// the watch window elapses with 204.
func (h *OrderHandlers) WatchOrderStatus(w http.ResponseWriter, r *http.Request) {
	rawOrderID := chi.URLParam(r, "id")
	orderID, err := models.NewID(rawOrderID)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	// Subscribe before checking the read model so an update landing
	// in between is not missed
	sub := h.notifier.Subscribe(orderID)
	defer sub.Close()

	query := &application.GetOrderQuery{OrderID: rawOrderID}
	current, err := h.getOrder.Execute(r.Context(), query)
	if err != nil && !errors.Is(err, application.ErrOrderNotFound) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if current != nil && current.Status.IsTerminal() {
		writeStatusUpdate(w, &application.OrderStatusUpdate{
			OrderID: orderID,
			Status:  current.Status,
			Reason:  current.Reason,
		})
		return
	}

	timer := time.NewTimer(defaultStatusWatchTimeout)
	defer timer.Stop()

	select {
	case update := <-sub.Updates():
		writeStatusUpdate(w, update)
	case <-timer.C:
		w.WriteHeader(http.StatusNoContent)
	case <-r.Context().Done():
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterRoutes registers order routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Get("/{id}/status", h.WatchOrderStatus)
	})
}

func toCreateOrderCommand(req *CreateOrderRequest) (*application.CreateOrderCommand, error) {
	userID, err := models.NewID(req.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	productID, err := models.NewID(req.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product ID")
	}

	addressID, err := models.NewID(req.AddressID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid address ID")
	}

	return &application.CreateOrderCommand{
		OrderID:   models.GenerateUUID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
		AddressID: addressID,
	}, nil
}

func writeStatusUpdate(w http.ResponseWriter, update *application.OrderStatusUpdate) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(update)
}

func intQueryParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
