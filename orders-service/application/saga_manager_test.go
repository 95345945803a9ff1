package application

import (
	"context"
	"sync"
	"testing"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/orders-service/mocks"
	"github.com/duche27/eStore-OrdersService/shared/events"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memorySagaStore is a map-backed SagaStore for manager tests
type memorySagaStore struct {
	mu     sync.Mutex
	states map[string]*OrderSagaState
}

func newMemorySagaStore() *memorySagaStore {
	return &memorySagaStore{states: make(map[string]*OrderSagaState)}
}

func (s *memorySagaStore) Load(_ context.Context, orderID models.ID) (*OrderSagaState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[orderID.String()]
	if !ok {
		return nil, ErrSagaNotFound
	}
	copied := *state

	return &copied, nil
}

func (s *memorySagaStore) Save(_ context.Context, state *OrderSagaState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *state
	s.states[state.OrderID.String()] = &copied

	return nil
}

func (s *memorySagaStore) Delete(_ context.Context, orderID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, orderID.String())

	return nil
}

type managerFixture struct {
	manager    *SagaManager
	store      *memorySagaStore
	commandBus *mocks.MockCommandBus
	queryBus   *mocks.MockQueryBus
	scheduler  *mocks.MockScheduler
	notifier   *fakeStatusNotifier
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()

	f := &managerFixture{
		store:      newMemorySagaStore(),
		commandBus: mocks.NewMockCommandBus(t),
		queryBus:   mocks.NewMockQueryBus(t),
		scheduler:  mocks.NewMockScheduler(t),
		notifier:   &fakeStatusNotifier{},
	}
	saga := NewOrderSaga(f.commandBus, f.queryBus, f.scheduler, f.notifier, DefaultOrderSagaConfig())
	f.manager = NewSagaManager(saga, f.store)

	return f
}

func TestSagaManager_OrderCreated_OpensSaga(t *testing.T) {
	f := newManagerFixture(t)
	orderID := models.GenerateUUID()
	productID := models.GenerateUUID()

	f.commandBus.EXPECT().Send(mock.Anything, mock.AnythingOfType("application.ReserveProductCommand")).
		Return(nil).Once()

	event := orderCreatedEvent(orderID, models.GenerateUUID(), productID, 2, models.GenerateUUID())
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
	state, err := f.store.Load(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, productID, state.ProductID)
	assert.Equal(t, 2, state.Quantity)
}

func TestSagaManager_OrderCreated_DuplicateDelivery(t *testing.T) {
	f := newManagerFixture(t)
	orderID := models.GenerateUUID()

	require.NoError(t, f.store.Save(context.Background(), &OrderSagaState{OrderID: orderID}))

	// A second opening event may not issue a second reservation
	event := orderCreatedEvent(orderID, models.GenerateUUID(), models.GenerateUUID(), 1, models.GenerateUUID())
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
}

func TestSagaManager_EventWithoutOpenSaga_IsDropped(t *testing.T) {
	f := newManagerFixture(t)
	orderID := models.GenerateUUID()

	event := productReservedEvent(orderID, models.GenerateUUID(), 1, models.GenerateUUID())
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
}

func TestSagaManager_TerminalEvent_ClosesSaga(t *testing.T) {
	f := newManagerFixture(t)
	orderID := models.GenerateUUID()

	require.NoError(t, f.store.Save(context.Background(), &OrderSagaState{OrderID: orderID}))

	event := events.NewEvent(orderID, events.OrderApprovedEvent, domain.OrderApprovedData{
		OrderID: orderID,
		Status:  domain.OrderStatusApproved,
	})
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
	_, err = f.store.Load(context.Background(), orderID)
	assert.ErrorIs(t, err, ErrSagaNotFound)
}

func TestSagaManager_ProgressIsPersisted(t *testing.T) {
	f := newManagerFixture(t)
	orderID := models.GenerateUUID()
	paymentID := models.GenerateUUID()

	require.NoError(t, f.store.Save(context.Background(), &OrderSagaState{OrderID: orderID}))

	// The release from the payment compensation runs on persisted state
	f.commandBus.EXPECT().Send(mock.Anything, mock.AnythingOfType("application.CancelProductReservationCommand")).
		Return(nil).Once()

	event := events.NewEvent(orderID, events.PaymentCancelledEvent, domain.PaymentCancelledData{
		OrderID:   orderID,
		PaymentID: paymentID,
		Reason:    "order could not be shipped",
	})
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
	state, err := f.store.Load(context.Background(), orderID)
	require.NoError(t, err)
	assert.False(t, state.Ended)
}

func TestSagaManager_ForeignEvent_IsIgnored(t *testing.T) {
	f := newManagerFixture(t)

	event := events.NewEvent(models.GenerateUUID(), "wallet.credited", nil)
	err := f.manager.Handle(context.Background(), event)

	require.NoError(t, err)
}
