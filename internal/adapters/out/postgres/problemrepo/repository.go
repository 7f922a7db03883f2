package problemrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryProblemRepository implements DeliveryProblemRepository using GORM.
type GormDeliveryProblemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryProblemRepository creates a new GORM delivery problem repository.
func NewGormDeliveryProblemRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryProblemRepository {
	return &GormDeliveryProblemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery problem to the database.
func (r *GormDeliveryProblemRepository) Add(ctx context.Context, aggregate *problem.DeliveryProblem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery problem by ID.
func (r *GormDeliveryProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.DeliveryProblem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryProblemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery problem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
