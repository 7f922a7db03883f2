package queries

import (
	"context"
	"database/sql"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the full order listing from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with recipient and
// delivery man details. Results are sorted by creation time for a stable
// listing.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.product,
			o.start_date,
			o.end_date,
			o.canceled_at,
			o.created_at,
			COALESCE(f.url, ''),
			r.name,
			r.street,
			r.number,
			r.city,
			r.state,
			r.postal_code,
			dm.name,
			dm.email
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		JOIN delivery_men dm ON dm.id = o.delivery_man_id
		LEFT JOIN files f ON f.id = o.signature_id
		ORDER BY o.created_at, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id uuid.UUID
		var startDate, endDate, canceledAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Product,
			&startDate,
			&endDate,
			&canceledAt,
			&resp.CreatedAt,
			&resp.SignatureURL,
			&resp.Recipient.Name,
			&resp.Recipient.Street,
			&resp.Recipient.Number,
			&resp.Recipient.City,
			&resp.Recipient.State,
			&resp.Recipient.PostalCode,
			&resp.DeliveryMan.Name,
			&resp.DeliveryMan.Email,
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

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// nullableTime converts a scanned nullable column to the pointer form the
// response and status derivation use.
func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
