package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDeliveryMenQueryHandler retrieves delivery man listings from the database.
type GetAllDeliveryMenQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveryMenQueryHandler creates a handler for delivery man listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllDeliveryMenQueryHandler(db *gorm.DB) GetAllDeliveryMenQueryHandler {
	return GetAllDeliveryMenQueryHandler{db: db}
}

// Handle executes the query to retrieve delivery men sorted by name.
// A non-empty name filter matches case-insensitively anywhere in the name.
func (h GetAllDeliveryMenQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveryMenQuery,
) ([]GetAllDeliveryMenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveryMen := make([]GetAllDeliveryMenQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dm.id,
			dm.name,
			dm.email,
			COALESCE(f.url, '')
		FROM delivery_men dm
		LEFT JOIN files f ON f.id = dm.avatar_id
		WHERE ? = '' OR dm.name ILIKE ?
		ORDER BY dm.name
	`, query.NameFilter(), "%"+query.NameFilter()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDeliveryMenQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.AvatarURL,
		)
		if err != nil {
			return nil, err
		}

		deliveryManID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryManID

		deliveryMen = append(deliveryMen, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveryMen, nil
}
