package queries

import (
	"context"
	"database/sql"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves one delivery man's work list from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery work list queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve the delivery man's deliveries.
// The default scope excludes delivered and canceled orders; the delivered
// filter selects exactly the completed ones.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := "o.end_date IS NULL AND o.canceled_at IS NULL"
	if query.Delivered() {
		scope = "o.end_date IS NOT NULL"
	}

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.product,
			o.start_date,
			o.end_date,
			o.canceled_at,
			o.created_at,
			r.name,
			r.street,
			r.number,
			r.city,
			r.state,
			r.postal_code
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		WHERE o.delivery_man_id = ? AND `+scope+`
		ORDER BY o.created_at, o.id
	`, query.DeliveryManID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveriesQueryResponse
		var id uuid.UUID
		var startDate, endDate, canceledAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Product,
			&startDate,
			&endDate,
			&canceledAt,
			&resp.CreatedAt,
			&resp.Recipient.Name,
			&resp.Recipient.Street,
			&resp.Recipient.Number,
			&resp.Recipient.City,
			&resp.Recipient.State,
			&resp.Recipient.PostalCode,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		resp.StartDate = nullableTime(startDate)
		resp.EndDate = nullableTime(endDate)
		resp.CanceledAt = nullableTime(canceledAt)
		resp.Status = order.StatusOf(resp.StartDate, resp.EndDate, resp.CanceledAt)

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
