package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRecipientsQueryHandler retrieves recipient listings from the database.
type GetAllRecipientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRecipientsQueryHandler creates a handler for recipient listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllRecipientsQueryHandler(db *gorm.DB) GetAllRecipientsQueryHandler {
	return GetAllRecipientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all recipients sorted by name.
func (h GetAllRecipientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRecipientsQuery,
) ([]GetAllRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recipients := make([]GetAllRecipientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			street,
			number,
			additional_details,
			city,
			state,
			postal_code
		FROM recipients
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRecipientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Street,
			&resp.Number,
			&resp.AdditionalDetails,
			&resp.City,
			&resp.State,
			&resp.PostalCode,
		)
		if err != nil {
			return nil, err
		}

		recipientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recipientID

		recipients = append(recipients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}
