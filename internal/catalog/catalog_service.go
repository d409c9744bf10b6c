package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	catalogerrors "go-rms/internal/catalog/errors"
	"go-rms/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	menuCacheKey = "catalog:menu:available"
	menuCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateMenuItemRequest) (MenuItemResponse, error)
	GetAll(ctx context.Context) ([]MenuItemResponse, error)
	GetMenu(ctx context.Context) ([]MenuItemResponse, error)
	GetByID(ctx context.Context, id string) (MenuItemResponse, error)
	Update(ctx context.Context, id string, req UpdateMenuItemRequest) (MenuItemResponse, error)
	Delete(ctx context.Context, id string) error
	TableQR(ctx context.Context, tableNumber int) ([]byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	menuURL string
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, menuURL string) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, menuURL: menuURL}
}

func (s *service) Create(ctx context.Context, req CreateMenuItemRequest) (MenuItemResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item := &MenuItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}

	if err := qtx.Create(ctx, item); err != nil {
		return MenuItemResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return MenuItemResponse{}, err
	}

	s.invalidateMenuCache(ctx)
	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context) ([]MenuItemResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// GetMenu is the customer-facing read path: available items only, served
// through Redis with singleflight collapsing concurrent misses.
func (s *service) GetMenu(ctx context.Context) ([]MenuItemResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, menuCacheKey).Result()
		if err == nil {
			var resp []MenuItemResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(menuCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAvailable(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, menuCacheKey, jsonData, menuCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]MenuItemResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MenuItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MenuItemResponse{}, catalogerrors.ErrInvalidMenuItemID
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MenuItemResponse{}, catalogerrors.ErrMenuItemNotFound
		}
		return MenuItemResponse{}, err
	}
	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMenuItemRequest) (MenuItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MenuItemResponse{}, catalogerrors.ErrInvalidMenuItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MenuItemResponse{}, catalogerrors.ErrMenuItemNotFound
		}
		return MenuItemResponse{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := qtx.Update(ctx, item); err != nil {
		return MenuItemResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return MenuItemResponse{}, err
	}

	s.invalidateMenuCache(ctx)
	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return catalogerrors.ErrInvalidMenuItemID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateMenuCache(ctx)
	return nil
}

func (s *service) invalidateMenuCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, menuCacheKey).Err(); err != nil {
		contextutil.Logger(ctx).Warn("invalidate menu cache failed",
			zap.String("key", menuCacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(item MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
	}
}

func mapToListResponse(items []MenuItem) []MenuItemResponse {
	resp := make([]MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp
}
