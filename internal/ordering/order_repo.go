package ordering

import (
	"context"
	"database/sql"

	"go-rms/internal/shared/gormtx"

	"gorm.io/gorm"
)

// MenuItemRow is the slice of the catalog this package needs when pricing
// line items.
type MenuItemRow struct {
	ID          string
	Name        string
	Price       int64
	IsAvailable bool
}

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context, status *OrderStatus) ([]Order, error)
	Update(ctx context.Context, order *Order) error
	ReplaceItems(ctx context.Context, orderID string, items []LineItem) error
	FindMenuItems(ctx context.Context, ids []string) ([]MenuItemRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds every statement of the returned repository to tx, so the
// service's commit/rollback covers the gorm writes too.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: gormtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Preload("Items.Extras").
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *repository) FindAll(ctx context.Context, status *OrderStatus) ([]Order, error) {
	db := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Extras").
		Order("created_at DESC")
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var rows []Order
	err := db.Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// ReplaceItems swaps the full item set of an order. Totals recomputation and
// the surrounding transaction are the service's responsibility.
func (r *repository) ReplaceItems(ctx context.Context, orderID string, items []LineItem) error {
	db := r.db.WithContext(ctx)

	if err := db.
		Where("order_item_id IN (SELECT id FROM order_items WHERE order_id = ?)", orderID).
		Delete(&LineItemExtra{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", orderID).Delete(&LineItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *repository) FindMenuItems(ctx context.Context, ids []string) ([]MenuItemRow, error) {
	var rows []MenuItemRow
	err := r.db.WithContext(ctx).
		Table("menu_items").
		Select("id::text AS id, name, price, is_available").
		Where("id IN ?", ids).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}
