package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/duche27/eStore-OrdersService/orders-service/domain"
	"github.com/duche27/eStore-OrdersService/shared/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PostgresOrderSummaryRepository implements OrderSummaryRepository using PostgreSQL
type PostgresOrderSummaryRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderSummaryRepository creates a new PostgresOrderSummaryRepository
func NewPostgresOrderSummaryRepository(db *sqlx.DB) *PostgresOrderSummaryRepository {
	return &PostgresOrderSummaryRepository{db: db}
}

// postgresOrderSummary represents an order summary row in the database
type postgresOrderSummary struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ProductID string    `db:"product_id"`
	Quantity  int       `db:"quantity"`
	AddressID string    `db:"address_id"`
	Status    string    `db:"status"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save upserts an order summary
func (r *PostgresOrderSummaryRepository) Save(ctx context.Context, summary *domain.OrderSummary) error {
	query := `
		INSERT INTO order_summaries (
			id, user_id, product_id, quantity, address_id,
			status, reason, created_at, updated_at
		) VALUES (
			:id, :user_id, :product_id, :quantity, :address_id,
			:status, :reason, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(summary))
	if err != nil {
		return errors.Wrap(err, "failed to save order summary")
	}

	return nil
}

// FindByID finds an order summary by ID
func (r *PostgresOrderSummaryRepository) FindByID(ctx context.Context, orderID models.ID) (*domain.OrderSummary, error) {
	query := `
		SELECT id, user_id, product_id, quantity, address_id,
			   status, reason, created_at, updated_at
		FROM order_summaries
		WHERE id = $1`

	var pgSummary postgresOrderSummary
	err := r.db.GetContext(ctx, &pgSummary, query, orderID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Order not found
		}
		return nil, errors.Wrap(err, "failed to find order summary")
	}

	return r.toDomain(&pgSummary)
}

// FindAll returns a page of order summaries, newest first
func (r *PostgresOrderSummaryRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.OrderSummary, error) {
	query := `
		SELECT id, user_id, product_id, quantity, address_id,
			   status, reason, created_at, updated_at
		FROM order_summaries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var pgSummaries []postgresOrderSummary
	err := r.db.SelectContext(ctx, &pgSummaries, query, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order summaries")
	}

	summaries := make([]*domain.OrderSummary, 0, len(pgSummaries))
	for i := range pgSummaries {
		summary, err := r.toDomain(&pgSummaries[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (r *PostgresOrderSummaryRepository) toPostgres(summary *domain.OrderSummary) *postgresOrderSummary {
	return &postgresOrderSummary{
		ID:        summary.ID.String(),
		UserID:    summary.UserID.String(),
		ProductID: summary.ProductID.String(),
		Quantity:  summary.Quantity,
		AddressID: summary.AddressID.String(),
		Status:    string(summary.Status),
		Reason:    summary.Reason,
		CreatedAt: summary.Timestamps.CreatedAt,
		UpdatedAt: summary.Timestamps.UpdatedAt,
	}
}

func (r *PostgresOrderSummaryRepository) toDomain(pgSummary *postgresOrderSummary) (*domain.OrderSummary, error) {
	id, err := models.NewID(pgSummary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	userID, err := models.NewID(pgSummary.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	productID, err := models.NewID(pgSummary.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product ID")
	}

	addressID, err := models.NewID(pgSummary.AddressID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid address ID")
	}

	return &domain.OrderSummary{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		Quantity:  pgSummary.Quantity,
		AddressID: addressID,
		Status:    domain.OrderStatus(pgSummary.Status),
		Reason:    pgSummary.Reason,
		Timestamps: models.Timestamps{
			CreatedAt: pgSummary.CreatedAt,
			UpdatedAt: pgSummary.UpdatedAt,
		},
	}, nil
}

var _ domain.OrderSummaryRepository = (*PostgresOrderSummaryRepository)(nil)
