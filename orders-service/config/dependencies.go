package config

import (
	"context"
	"fmt"
	"log"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/orders-service/handlers"
	"github.com/duche27/eStore-OrdersService/orders-service/infrastructure"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/duche27/eStore-OrdersService/shared/deadline"
	sharedinfra "github.com/duche27/eStore-OrdersService/shared/infrastructure"
	"github.com/duche27/eStore-OrdersService/shared/telemetry"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Dispatching
	CommandBus *bus.InMemoryBus
	Awaiter    *bus.EventAwaiter
	Scheduler  *deadline.TimerScheduler

	// Repositories
	OrderRepository   *infrastructure.EventSourcedOrderRepository
	SummaryRepository *infrastructure.PostgresOrderSummaryRepository
	SagaStore         *infrastructure.PostgresSagaStore

	// Use Cases
	CreateOrder  *application.CreateOrder
	ApproveOrder *application.ApproveOrder
	RejectOrder  *application.RejectOrder
	GetOrder     *application.GetOrder
	ListOrders   *application.ListOrders

	// Saga
	OrderSaga   *application.OrderSaga
	SagaManager *application.SagaManager

	// Status notifications
	StatusNotifier *infrastructure.InProcessStatusNotifier

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Event Handlers
	OrderEventHandlers *handlers.OrderEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry
	if config.Telemetry.Enabled {
		telConfig := telemetry.OrdersServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize dispatching
	deps.CommandBus = bus.NewInMemoryBus()
	deps.Awaiter = bus.NewEventAwaiter()
	deps.Scheduler = deadline.NewTimerScheduler(eventPublisher)
	deps.StatusNotifier = infrastructure.NewInProcessStatusNotifier()

	// Initialize repositories
	eventStore := sharedinfra.NewPostgresEventStore(db)
	deps.OrderRepository = infrastructure.NewEventSourcedOrderRepository(eventStore)
	deps.SummaryRepository = infrastructure.NewPostgresOrderSummaryRepository(db)
	deps.SagaStore = infrastructure.NewPostgresSagaStore(db)

	// Initialize use cases
	deps.CreateOrder = application.NewCreateOrder(deps.OrderRepository, eventPublisher)
	deps.ApproveOrder = application.NewApproveOrder(deps.OrderRepository, eventPublisher)
	deps.RejectOrder = application.NewRejectOrder(deps.OrderRepository, eventPublisher)
	deps.GetOrder = application.NewGetOrder(deps.SummaryRepository)
	deps.ListOrders = application.NewListOrders(deps.SummaryRepository)

	// Initialize the saga
	sagaConfig := application.OrderSagaConfig{
		PaymentDeadline:  config.Saga.PaymentDeadline,
		ShipmentDeadline: config.Saga.ShipmentDeadline,
		CommandWait:      config.Saga.CommandWait,
	}
	deps.OrderSaga = application.NewOrderSaga(
		deps.CommandBus, deps.CommandBus, deps.Scheduler, deps.StatusNotifier, sagaConfig)
	deps.SagaManager = application.NewSagaManager(deps.OrderSaga, deps.SagaStore)

	// Wire commands and queries onto the bus
	handlers.RegisterOrderCommandHandlers(deps.CommandBus, deps.CreateOrder, deps.ApproveOrder, deps.RejectOrder)
	gateway := infrastructure.NewCapabilityGateway(eventPublisher, deps.Awaiter, config.Saga.CommandWait)
	gateway.Register(deps.CommandBus)
	deps.CommandBus.RegisterQuery(application.FetchUserPaymentDetailsQueryName, userDirectory(config))

	// Initialize handlers
	projector := application.NewOrderProjector(deps.SummaryRepository)
	deps.OrderHandlers = handlers.NewOrderHandlers(
		deps.CreateOrder, deps.GetOrder, deps.ListOrders, deps.StatusNotifier)
	deps.OrderEventHandlers = handlers.NewOrderEventHandlers(deps.Awaiter, projector, deps.SagaManager)

	return deps, nil
}

func userDirectory(config *Config) bus.QueryHandler {
	if config.Users.BaseURL != "" {
		return infrastructure.NewHTTPUserDirectory(config.Users.BaseURL, config.Users.Timeout)
	}
	return infrastructure.NewStaticUserDirectory()
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.Scheduler != nil {
		d.Scheduler.Stop()
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
