package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	catalogerrors "go-rms/internal/catalog/errors"
)

type fakeRepo struct {
	createFn            func(ctx context.Context, item *MenuItem) error
	findAllFn           func(ctx context.Context) ([]MenuItem, error)
	findAvailableFn     func(ctx context.Context) ([]MenuItem, error)
	findByIDFn          func(ctx context.Context, id string) (*MenuItem, error)
	updateFn            func(ctx context.Context, item *MenuItem) error
	deleteFn            func(ctx context.Context, id string) error
	findTableByNumberFn func(ctx context.Context, number int) (*Table, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, item *MenuItem) error {
	return f.createFn(ctx, item)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]MenuItem, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindAvailable(ctx context.Context) ([]MenuItem, error) {
	return f.findAvailableFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, item *MenuItem) error {
	return f.updateFn(ctx, item)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) FindTableByNumber(ctx context.Context, number int) (*Table, error) {
	return f.findTableByNumberFn(ctx, number)
}

// PNG magic bytes.
var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestService_TableQR(t *testing.T) {
	tableID := uuid.New()
	repo := &fakeRepo{
		findTableByNumberFn: func(ctx context.Context, number int) (*Table, error) {
			assert.Equal(t, 7, number)
			return &Table{ID: tableID, Number: 7}, nil
		},
	}
	svc := NewService(nil, repo, nil, "https://menu.example.com")

	png, err := svc.TableQR(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader), "output must be a PNG image")
}

func TestService_TableQR_UnknownTable(t *testing.T) {
	repo := &fakeRepo{
		findTableByNumberFn: func(ctx context.Context, number int) (*Table, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(nil, repo, nil, "https://menu.example.com")

	_, err := svc.TableQR(context.Background(), 99)
	assert.ErrorIs(t, err, catalogerrors.ErrTableNotFound)
}

func TestService_GetAll(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]MenuItem, error) {
			return []MenuItem{
				{ID: uuid.New(), Name: "Nasi Goreng", Price: 1000, IsAvailable: true},
				{ID: uuid.New(), Name: "Es Teh", Price: 500, IsAvailable: false},
			}, nil
		},
	}
	svc := NewService(nil, repo, nil, "")

	items, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(1000), items[0].Price)
}
