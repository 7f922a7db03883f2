package deliverymanrepo

import (
	"context"
	"errors"

	"fastfeet/internal/core/domain/model/deliveryman"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryManRepository implements DeliveryManRepository using GORM.
type GormDeliveryManRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryManRepository creates a new GORM delivery man repository.
func NewGormDeliveryManRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryManRepository {
	return &GormDeliveryManRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery man to the database.
func (r *GormDeliveryManRepository) Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error {
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

// Update saves an existing delivery man to the database.
func (r *GormDeliveryManRepository) Update(ctx context.Context, aggregate *deliveryman.DeliveryMan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryManDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery man", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery man by ID.
func (r *GormDeliveryManRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.DeliveryMan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryManDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery man", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a delivery man from the database.
func (r *GormDeliveryManRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryManDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery man", id.String())
	}

	return nil
}

// FindByEmail retrieves a delivery man by email address.
func (r *GormDeliveryManRepository) FindByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error) {
	var dto DeliveryManDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery man", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
