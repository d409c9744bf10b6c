package catalog

import (
	"context"
	"database/sql"

	"go-rms/internal/shared/gormtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=catalog_repo.go -destination=mock/catalog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *MenuItem) error
	FindAll(ctx context.Context) ([]MenuItem, error)
	FindAvailable(ctx context.Context) ([]MenuItem, error)
	FindByID(ctx context.Context, id string) (*MenuItem, error)
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id string) error
	FindTableByNumber(ctx context.Context, number int) (*Table, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: gormtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, item *MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context) ([]MenuItem, error) {
	var rows []MenuItem
	err := r.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAvailable(ctx context.Context) ([]MenuItem, error) {
	var rows []MenuItem
	err := r.db.WithContext(ctx).
		Where("is_available = true").
		Order("category ASC, name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	var item MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *repository) Update(ctx context.Context, item *MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&MenuItem{}, "id = ?", id).Error
}

func (r *repository) FindTableByNumber(ctx context.Context, number int) (*Table, error) {
	var t Table
	err := r.db.WithContext(ctx).First(&t, "number = ?", number).Error
	return &t, err
}
