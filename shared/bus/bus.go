package bus

import (
	"context"
	"time"

	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/pkg/errors"
)

var (
	ErrNoHandler      = errors.New("no handler registered for command")
	ErrNoQueryHandler = errors.New("no handler registered for query")
	ErrCommandTimeout = errors.New("no command result received within the wait bound")
)

// Command is a routable instruction addressed to a single aggregate.
type Command interface {
	CommandName() string
	AggregateID() models.ID
}

// CommandHandler executes one kind of command and reports its result.
// The returned string is an opaque result token; an error means the
// command was refused or failed on the handling side.
type CommandHandler interface {
	Handle(ctx context.Context, cmd Command) (string, error)
}

// CommandHandlerFunc adapts a function to the CommandHandler interface
type CommandHandlerFunc func(ctx context.Context, cmd Command) (string, error)

func (f CommandHandlerFunc) Handle(ctx context.Context, cmd Command) (string, error) {
	return f(ctx, cmd)
}

// CommandBus routes each command to exactly one handler.
//
// Send reports the handler's outcome synchronously, which is the
// command-callback contract: a non-nil error is the handling side's
// exception. SendAndWait additionally bounds the wait; when the bound
// elapses it returns ErrCommandTimeout, which callers treat the same
// as a remote failure.
type CommandBus interface {
	Send(ctx context.Context, cmd Command) error
	SendAndWait(ctx context.Context, cmd Command, timeout time.Duration) (string, error)
}

// Query is a request for data owned by another component.
type Query interface {
	QueryName() string
}

// QueryHandler answers one kind of query.
type QueryHandler interface {
	Handle(ctx context.Context, query Query) (interface{}, error)
}

// QueryHandlerFunc adapts a function to the QueryHandler interface
type QueryHandlerFunc func(ctx context.Context, query Query) (interface{}, error)

func (f QueryHandlerFunc) Handle(ctx context.Context, query Query) (interface{}, error) {
	return f(ctx, query)
}

// QueryBus routes each query to exactly one handler.
type QueryBus interface {
	Query(ctx context.Context, query Query) (interface{}, error)
}
