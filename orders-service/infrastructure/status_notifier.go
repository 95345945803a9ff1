package infrastructure

import (
	"context"
	"sync"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/models"
)

// StatusSubscription is one watcher of one order's terminal status
type StatusSubscription struct {
	notifier *InProcessStatusNotifier
	orderID  string
	ch       chan *application.OrderStatusUpdate
	once     sync.Once
}

// Updates returns the channel the terminal status arrives on
func (s *StatusSubscription) Updates() <-chan *application.OrderStatusUpdate {
	return s.ch
}

// Close deregisters the subscription
func (s *StatusSubscription) Close() {
	s.once.Do(func() {
		s.notifier.mu.Lock()
		defer s.notifier.mu.Unlock()

		subs := s.notifier.subscriptions[s.orderID]
		delete(subs, s)
		if len(subs) == 0 {
			delete(s.notifier.subscriptions, s.orderID)
		}
	})
}

// InProcessStatusNotifier fans terminal status updates out to
// subscribed watchers. The last update per order is retained so a
// watcher arriving after the order closed still gets its answer.
type InProcessStatusNotifier struct {
	mu            sync.Mutex
	subscriptions map[string]map[*StatusSubscription]struct{}
	last          map[string]*application.OrderStatusUpdate
}

// NewInProcessStatusNotifier creates a new InProcessStatusNotifier
func NewInProcessStatusNotifier() *InProcessStatusNotifier {
	return &InProcessStatusNotifier{
		subscriptions: make(map[string]map[*StatusSubscription]struct{}),
		last:          make(map[string]*application.OrderStatusUpdate),
	}
}

// Subscribe registers a watcher for one order. If the order already
// reached a terminal status the update is delivered immediately.
func (n *InProcessStatusNotifier) Subscribe(orderID models.ID) *StatusSubscription {
	sub := &StatusSubscription{
		notifier: n,
		orderID:  orderID.String(),
		ch:       make(chan *application.OrderStatusUpdate, 1),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if update, ok := n.last[sub.orderID]; ok {
		sub.ch <- update
		return sub
	}

	subs, ok := n.subscriptions[sub.orderID]
	if !ok {
		subs = make(map[*StatusSubscription]struct{})
		n.subscriptions[sub.orderID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Notify implements application.StatusNotifier
func (n *InProcessStatusNotifier) Notify(_ context.Context, update *application.OrderStatusUpdate) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	orderID := update.OrderID.String()
	n.last[orderID] = update

	for sub := range n.subscriptions[orderID] {
		select {
		case sub.ch <- update:
		default:
			// watcher already has an update pending
		}
	}
	delete(n.subscriptions, orderID)

	return nil
}

var _ application.StatusNotifier = (*InProcessStatusNotifier)(nil)
