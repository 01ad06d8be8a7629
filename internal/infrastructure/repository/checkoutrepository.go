package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/mappers"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
	"github.com/cotracker/cotracker/internal/shared/db"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

type CheckoutRepository struct {
	db     *gorm.DB
	mapper mappers.CheckoutMapper
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db, mapper: mappers.NewCheckoutMapper()}
}

func (r *CheckoutRepository) Create(ctx context.Context, c *checkout.Checkout) error {
	model := r.mapper.CheckoutToModel(c)
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", checkout.ErrCheckoutExists, c)
		}
		return fmt.Errorf("failed to create checkout: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *CheckoutRepository) GetByID(ctx context.Context, id uint) (*checkout.Checkout, error) {
	var rows []models.CheckoutRow
	err := r.joined(ctx).
		Where("c.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout: %w", err)
	}
	if len(rows) == 0 {
		return nil, checkout.ErrCheckoutNotFound
	}
	return r.mapper.RowsToDomain(rows)[0], nil
}

func (r *CheckoutRepository) Delete(ctx context.Context, id uint) error {
	result := db.Conn(ctx, r.db).Delete(&models.CheckoutModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete checkout: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return checkout.ErrCheckoutNotFound
	}
	return nil
}

func (r *CheckoutRepository) Find(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error) {
	if filter.AirstripIDs != nil && len(filter.AirstripIDs) == 0 {
		return []*checkout.Checkout{}, nil
	}

	var rows []models.CheckoutRow
	err := r.joined(ctx).
		Scopes(checkoutFilter(filter), checkoutOrder).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find checkouts: %w", err)
	}
	return r.mapper.RowsToDomain(rows), nil
}

// FindMissing enumerates pilot, airstrip and aircraft type combinations with
// no checkout row.
func (r *CheckoutRepository) FindMissing(ctx context.Context, filter checkout.CheckoutFilter) ([]*checkout.Checkout, error) {
	if filter.AirstripIDs != nil && len(filter.AirstripIDs) == 0 {
		return []*checkout.Checkout{}, nil
	}

	var rows []models.CheckoutRow
	err := db.Conn(ctx, r.db).
		Table("pilots AS p").
		Select("0 AS id, " + checkoutRowColumns).
		Joins("CROSS JOIN airstrips AS a").
		Joins("CROSS JOIN aircraft_types AS t").
		Where("NOT EXISTS (SELECT 1 FROM checkouts AS c " +
			"WHERE c.pilot_id = p.id AND c.airstrip_id = a.id AND c.aircraft_type_id = t.id)").
		Scopes(checkoutFilter(filter), checkoutOrder).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find missing checkouts: %w", err)
	}
	return r.mapper.RowsToDomain(rows), nil
}

func (r *CheckoutRepository) joined(ctx context.Context) *gorm.DB {
	return db.Conn(ctx, r.db).
		Table("checkouts AS c").
		Select("c.id AS id, " + checkoutRowColumns).
		Joins("JOIN pilots AS p ON p.id = c.pilot_id").
		Joins("JOIN airstrips AS a ON a.id = c.airstrip_id").
		Joins("JOIN aircraft_types AS t ON t.id = c.aircraft_type_id")
}
