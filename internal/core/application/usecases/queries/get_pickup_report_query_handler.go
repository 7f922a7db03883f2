package queries

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickupReportQueryHandler aggregates pickup counts per delivery man.
type GetPickupReportQueryHandler struct {
	db *gorm.DB
}

// NewGetPickupReportQueryHandler creates a handler for daily pickup reports.
// Requires a GORM database connection for query execution.
func NewGetPickupReportQueryHandler(db *gorm.DB) GetPickupReportQueryHandler {
	return GetPickupReportQueryHandler{db: db}
}

// Handle executes the query to count the day's pickups per delivery man.
// Delivery men without a pickup that day are omitted; busiest first.
func (h GetPickupReportQueryHandler) Handle(
	ctx context.Context,
	query GetPickupReportQuery,
) ([]GetPickupReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	day := query.Day()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	nextDay := dayStart.AddDate(0, 0, 1)

	report := make([]GetPickupReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dm.id,
			dm.name,
			COUNT(*)
		FROM orders o
		JOIN delivery_men dm ON dm.id = o.delivery_man_id
		WHERE o.start_date >= ? AND o.start_date < ?
		GROUP BY dm.id, dm.name
		ORDER BY COUNT(*) DESC, dm.name
	`, dayStart, nextDay).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPickupReportQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Pickups,
		)
		if err != nil {
			return nil, err
		}

		deliveryManID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DeliveryManID = deliveryManID
		resp.QuotaReached = resp.Pickups >= order.MaxDailyPickups

		report = append(report, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// GetPickupReportQueryResponse represents one delivery man's pickup count.
type GetPickupReportQueryResponse struct {
	DeliveryManID kernel.UUID
	Name          string
	Pickups       int
	QuotaReached  bool
}
