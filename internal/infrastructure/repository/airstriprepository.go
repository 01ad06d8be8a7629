package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/mappers"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
	"github.com/cotracker/cotracker/internal/shared/db"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

type AirstripRepository struct {
	db     *gorm.DB
	mapper mappers.CheckoutMapper
}

func NewAirstripRepository(db *gorm.DB) *AirstripRepository {
	return &AirstripRepository{db: db, mapper: mappers.NewCheckoutMapper()}
}

func (r *AirstripRepository) Create(ctx context.Context, airstrip *checkout.Airstrip) error {
	model := r.mapper.AirstripToModel(airstrip)
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", checkout.ErrAirstripExists, airstrip.Ident())
		}
		return fmt.Errorf("failed to create airstrip: %w", err)
	}
	airstrip.SetID(model.ID)
	return nil
}

func (r *AirstripRepository) Update(ctx context.Context, airstrip *checkout.Airstrip) error {
	model := r.mapper.AirstripToModel(airstrip)
	result := db.Conn(ctx, r.db).
		Model(&models.AirstripModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"ident":   model.Ident,
			"name":    model.Name,
			"is_base": model.IsBase,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return fmt.Errorf("%w: %s", checkout.ErrAirstripExists, airstrip.Ident())
		}
		return fmt.Errorf("failed to update airstrip: %w", result.Error)
	}
	return nil
}

func (r *AirstripRepository) GetByID(ctx context.Context, id uint) (*checkout.Airstrip, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *AirstripRepository) GetByIdent(ctx context.Context, ident string) (*checkout.Airstrip, error) {
	return r.getWhere(ctx, "ident = ?", checkout.NormalizeIdent(ident))
}

func (r *AirstripRepository) getWhere(ctx context.Context, query string, arg interface{}) (*checkout.Airstrip, error) {
	var model models.AirstripModel
	if err := db.Conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrAirstripNotFound
		}
		return nil, fmt.Errorf("failed to get airstrip: %w", err)
	}
	return r.mapper.AirstripToDomain(&model), nil
}

func (r *AirstripRepository) List(ctx context.Context) ([]*checkout.Airstrip, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB { return q.Order("ident") })
}

func (r *AirstripRepository) ListBases(ctx context.Context) ([]*checkout.Airstrip, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_base = ?", true).Order("name").Order("ident")
	})
}

func (r *AirstripRepository) ListAttached(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id IN (SELECT airstrip_id FROM airstrip_bases WHERE base_id = ?)", baseID).
			Order("ident")
	})
}

func (r *AirstripRepository) ListUnattached(ctx context.Context, baseID uint) ([]*checkout.Airstrip, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_base = ?", false).
			Where("id NOT IN (SELECT airstrip_id FROM airstrip_bases WHERE base_id = ?)", baseID).
			Order("ident")
	})
}

func (r *AirstripRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*checkout.Airstrip, error) {
	var ms []models.AirstripModel
	if err := db.Conn(ctx, r.db).Scopes(scope).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list airstrips: %w", err)
	}
	return r.mapper.AirstripsToDomain(ms), nil
}

// AttachToBase is idempotent.
func (r *AirstripRepository) AttachToBase(ctx context.Context, airstripID, baseID uint) error {
	link := &models.AirstripBaseModel{AirstripID: airstripID, BaseID: baseID}
	if err := db.Conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
		return fmt.Errorf("failed to attach airstrip %d to base %d: %w", airstripID, baseID, err)
	}
	return nil
}

func (r *AirstripRepository) DetachFromBase(ctx context.Context, airstripID, baseID uint) error {
	result := db.Conn(ctx, r.db).
		Where("airstrip_id = ? AND base_id = ?", airstripID, baseID).
		Delete(&models.AirstripBaseModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to detach airstrip %d from base %d: %w", airstripID, baseID, result.Error)
	}
	if result.RowsAffected == 0 {
		return checkout.ErrAirstripNotFound
	}
	return nil
}

// Delete removes the airstrip, its checkouts and its base links in either
// direction.
func (r *AirstripRepository) Delete(ctx context.Context, id uint) error {
	return db.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("airstrip_id = ?", id).Delete(&models.CheckoutModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete airstrip checkouts: %w", err)
		}
		if err := tx.Where("airstrip_id = ? OR base_id = ?", id, id).Delete(&models.AirstripBaseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete airstrip base links: %w", err)
		}
		result := tx.Delete(&models.AirstripModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete airstrip: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return checkout.ErrAirstripNotFound
		}
		return nil
	})
}
