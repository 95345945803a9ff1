package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/application"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresSagaStore implements SagaStore using PostgreSQL. The state
// is stored as one JSONB blob per order so saga shape changes never
// need a migration.
type PostgresSagaStore struct {
	db *sqlx.DB
}

// NewPostgresSagaStore creates a new PostgresSagaStore
func NewPostgresSagaStore(db *sqlx.DB) *PostgresSagaStore {
	return &PostgresSagaStore{db: db}
}

type postgresSagaState struct {
	OrderID   string    `db:"order_id"`
	State     []byte    `db:"state"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Load reads the saga state for an order
func (s *PostgresSagaStore) Load(ctx context.Context, orderID models.ID) (*application.OrderSagaState, error) {
	query := `SELECT order_id, state, updated_at FROM order_sagas WHERE order_id = $1`

	var pgState postgresSagaState
	err := s.db.GetContext(ctx, &pgState, query, orderID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrSagaNotFound
		}
		return nil, errors.Wrap(err, "failed to load saga state")
	}

	var state application.OrderSagaState
	if err := json.Unmarshal(pgState.State, &state); err != nil {
		return nil, errors.Wrap(err, "failed to decode saga state")
	}

	return &state, nil
}

// Save upserts the saga state for an order
func (s *PostgresSagaStore) Save(ctx context.Context, state *application.OrderSagaState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode saga state")
	}

	query := `
		INSERT INTO order_sagas (order_id, state, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`

	_, err = s.db.ExecContext(ctx, query, state.OrderID.String(), data, time.Now())
	if err != nil {
		return errors.Wrap(err, "failed to save saga state")
	}

	return nil
}

// Delete removes the saga state once the order reached a terminal status
func (s *PostgresSagaStore) Delete(ctx context.Context, orderID models.ID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM order_sagas WHERE order_id = $1`, orderID.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete saga state")
	}

	return nil
}

var _ application.SagaStore = (*PostgresSagaStore)(nil)
