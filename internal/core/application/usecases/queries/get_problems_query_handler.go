package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProblemsQueryHandler retrieves delivery problem listings from the database.
type GetProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetProblemsQueryHandler creates a handler for problem listing queries.
// Requires a GORM database connection for query execution.
func NewGetProblemsQueryHandler(db *gorm.DB) GetProblemsQueryHandler {
	return GetProblemsQueryHandler{db: db}
}

// Handle executes the query to retrieve problem records, newest first.
// A scoped query returns only the problems of its order.
func (h GetProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetProblemsQuery,
) ([]GetProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx)
	if scope := query.OrderID(); scope != nil {
		q = q.Raw(`
			SELECT id, order_id, description, created_at
			FROM delivery_problems
			WHERE order_id = ?
			ORDER BY created_at DESC, id
		`, scope.Bytes())
	} else {
		q = q.Raw(`
			SELECT id, order_id, description, created_at
			FROM delivery_problems
			ORDER BY created_at DESC, id
		`)
	}

	problems := make([]GetProblemsQueryResponse, 0)

	rows, err := q.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProblemsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Description,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		problemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = problemID

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = oID

		problems = append(problems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
