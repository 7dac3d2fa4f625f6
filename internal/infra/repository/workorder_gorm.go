package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/WorkshopSystems01/workshop-tracker/internal/domain/workorder"
	"github.com/WorkshopSystems01/workshop-tracker/internal/models"
)

type WorkorderGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*WorkorderGormRepository)(nil)

func NewWorkorderGormRepository(db *gorm.DB) *WorkorderGormRepository {
	return &WorkorderGormRepository{db: db}
}

func (r *WorkorderGormRepository) GetForBranch(
	ctx context.Context,
	orderID uint,
	branchID uint,
) (*models.Order, error) {

	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("id = ? AND branch_id = ?", orderID, branchID).
		First(&order).Error

	return firstResult(&order, err)
}

func (r *WorkorderGormRepository) ListByDateRange(
	ctx context.Context,
	branchID uint,
	from, to time.Time,
) ([]models.Order, error) {

	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where(
			"branch_id = ? AND created_at >= ? AND created_at < ?",
			branchID, from, to,
		).
		Order("created_at ASC").
		Find(&orders).Error

	return orders, err
}

func (r *WorkorderGormRepository) Save(
	ctx context.Context,
	order *models.Order,
) error {
	return r.db.WithContext(ctx).Save(order).Error
}
