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

type AircraftTypeRepository struct {
	db     *gorm.DB
	mapper mappers.CheckoutMapper
}

func NewAircraftTypeRepository(db *gorm.DB) *AircraftTypeRepository {
	return &AircraftTypeRepository{db: db, mapper: mappers.NewCheckoutMapper()}
}

func (r *AircraftTypeRepository) Create(ctx context.Context, aircraftType *checkout.AircraftType) error {
	model := r.mapper.AircraftTypeToModel(aircraftType)
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", checkout.ErrAircraftTypeExists, aircraftType.Name())
		}
		return fmt.Errorf("failed to create aircraft type: %w", err)
	}
	aircraftType.SetID(model.ID)
	return nil
}

func (r *AircraftTypeRepository) GetByID(ctx context.Context, id uint) (*checkout.AircraftType, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *AircraftTypeRepository) GetByName(ctx context.Context, name string) (*checkout.AircraftType, error) {
	return r.getWhere(ctx, "name = ?", name)
}

func (r *AircraftTypeRepository) getWhere(ctx context.Context, query string, arg interface{}) (*checkout.AircraftType, error) {
	var model models.AircraftTypeModel
	if err := db.Conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrAircraftTypeNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft type: %w", err)
	}
	return r.mapper.AircraftTypeToDomain(&model), nil
}

func (r *AircraftTypeRepository) List(ctx context.Context) ([]*checkout.AircraftType, error) {
	var ms []models.AircraftTypeModel
	if err := db.Conn(ctx, r.db).Order("name").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list aircraft types: %w", err)
	}
	return r.mapper.AircraftTypesToDomain(ms), nil
}

func (r *AircraftTypeRepository) Delete(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("aircraft_type_id = ?", id).Delete(&models.CheckoutModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete aircraft type checkouts: %w", err)
		}
		result := tx.Delete(&models.AircraftTypeModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete aircraft type: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return checkout.ErrAircraftTypeNotFound
		}
		return nil
	})
}
