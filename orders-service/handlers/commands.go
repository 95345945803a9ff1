package handlers

import (
	"context"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/bus"
	"github.com/pkg/errors"
)

// RegisterOrderCommandHandlers wires the order-owned commands onto the
// bus so the saga drives the aggregate through the same path as any
// other caller
func RegisterOrderCommandHandlers(
	commandBus *bus.InMemoryBus,
	createOrder *application.CreateOrder,
	approveOrder *application.ApproveOrder,
	rejectOrder *application.RejectOrder,
) {
	commandBus.Register(application.CreateOrderCommandName,
		bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (string, error) {
			create, ok := cmd.(application.CreateOrderCommand)
			if !ok {
				return "", errors.Errorf("unexpected command type %T", cmd)
			}
			response, err := createOrder.Execute(ctx, &create)
			if err != nil {
				return "", err
			}
			return response.OrderID, nil
		}))

	commandBus.Register(application.ApproveOrderCommandName,
		bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (string, error) {
			approve, ok := cmd.(application.ApproveOrderCommand)
			if !ok {
				return "", errors.Errorf("unexpected command type %T", cmd)
			}
			return approve.OrderID.String(), approveOrder.Execute(ctx, &approve)
		}))

	commandBus.Register(application.RejectOrderCommandName,
		bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) (string, error) {
			reject, ok := cmd.(application.RejectOrderCommand)
			if !ok {
				return "", errors.Errorf("unexpected command type %T", cmd)
			}
			return reject.OrderID.String(), rejectOrder.Execute(ctx, &reject)
		}))
}
