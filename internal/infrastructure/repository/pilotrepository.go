package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/mappers"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
	"github.com/cotracker/cotracker/internal/shared/db"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

type PilotRepository struct {
	db     *gorm.DB
	mapper mappers.CheckoutMapper
}

func NewPilotRepository(db *gorm.DB) *PilotRepository {
	return &PilotRepository{db: db, mapper: mappers.NewCheckoutMapper()}
}

func (r *PilotRepository) Create(ctx context.Context, pilot *checkout.Pilot) error {
	model := r.mapper.PilotToModel(pilot)
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", checkout.ErrPilotExists, pilot.Username())
		}
		return fmt.Errorf("failed to create pilot: %w", err)
	}
	pilot.SetID(model.ID)
	return nil
}

func (r *PilotRepository) GetByID(ctx context.Context, id uint) (*checkout.Pilot, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *PilotRepository) GetByUsername(ctx context.Context, username string) (*checkout.Pilot, error) {
	return r.getWhere(ctx, "username = ?", username)
}

func (r *PilotRepository) getWhere(ctx context.Context, query string, arg interface{}) (*checkout.Pilot, error) {
	var model models.PilotModel
	if err := db.Conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrPilotNotFound
		}
		return nil, fmt.Errorf("failed to get pilot: %w", err)
	}
	return r.mapper.PilotToDomain(&model), nil
}

func (r *PilotRepository) List(ctx context.Context) ([]*checkout.Pilot, error) {
	var ms []models.PilotModel
	if err := db.Conn(ctx, r.db).Scopes(orderPilots("")).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	return r.mapper.PilotsToDomain(ms), nil
}

// Delete removes the pilot together with the pilot's checkouts.
func (r *PilotRepository) Delete(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pilot_id = ?", id).Delete(&models.CheckoutModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete pilot checkouts: %w", err)
		}
		result := tx.Delete(&models.PilotModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete pilot: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return checkout.ErrPilotNotFound
		}
		return nil
	})
}
