package ordering

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-rms/internal/events"
	"go-rms/internal/messaging/kafka"
	orderingerrors "go-rms/internal/ordering/errors"
	"go-rms/internal/shared/contextutil"
	"go-rms/internal/shared/counter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateOrderRequest) (OrderResponse, error)
	GetAll(ctx context.Context, status *OrderStatus) ([]OrderResponse, error)
	GetByID(ctx context.Context, id string) (OrderResponse, error)
	SetItemQuantity(ctx context.Context, orderID, lineItemID string, quantity int) (OrderResponse, error)
	SetTip(ctx context.Context, orderID string, amount int64) (OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID string, next OrderStatus) (OrderResponse, error)
	Pay(ctx context.Context, orderID string, method PaymentMethod) (OrderResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rates   RateConfig
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	rates RateConfig,
) Service {
	return &service{db: db, repo: repo, counter: counterRepo, outbox: outbox, rates: rates}
}

// ratesFor enables the service charge for dine-in orders only; takeaway
// orders pay tax but no service charge.
func (s *service) ratesFor(order *Order) RateConfig {
	rates := s.rates
	rates.ServiceChargeEnabled = order.TableID != nil
	return rates
}

func (s *service) Create(ctx context.Context, actorID string, req CreateOrderRequest) (OrderResponse, error) {
	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		return OrderResponse{}, orderingerrors.ErrInvalidOrderID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	items, err := s.buildLineItems(ctx, qtx, req.Items)
	if err != nil {
		return OrderResponse{}, err
	}

	seq, err := s.counter.GetNextValue(ctx, "order")
	if err != nil {
		return OrderResponse{}, err
	}

	order := &Order{
		ID:            uuid.New(),
		OrderNumber:   fmt.Sprintf("ORD-%06d", seq),
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
		Items:         items,
	}
	if req.TableID != nil {
		tableID, err := uuid.Parse(*req.TableID)
		if err != nil {
			return OrderResponse{}, orderingerrors.ErrInvalidOrderID
		}
		order.TableID = &tableID
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	applyTotals(order, CalculateTotals(order.Items, s.ratesFor(order), 0))

	if err := qtx.Create(ctx, order); err != nil {
		return OrderResponse{}, err
	}

	if err := s.enqueueOrderPlaced(ctx, tx, order); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

func (s *service) buildLineItems(ctx context.Context, repo Repository, reqs []OrderItemRequest) ([]LineItem, error) {
	ids := make([]string, len(reqs))
	for i, item := range reqs {
		ids[i] = item.ProductID
	}

	menuRows, err := repo.FindMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]MenuItemRow, len(menuRows))
	for _, row := range menuRows {
		byID[row.ID] = row
	}

	items := make([]LineItem, 0, len(reqs))
	for _, req := range reqs {
		row, ok := byID[req.ProductID]
		if !ok || !row.IsAvailable {
			return nil, orderingerrors.ErrMenuItemUnavailable
		}

		item := LineItem{
			ID:        uuid.New(),
			ProductID: uuid.MustParse(req.ProductID),
			Name:      row.Name,
			UnitPrice: row.Price,
			Quantity:  req.Quantity,
			Notes:     req.Notes,
			Removed:   req.Removed,
		}
		for _, extra := range req.Extras {
			item.Extras = append(item.Extras, LineItemExtra{
				ID:         uuid.New(),
				LineItemID: item.ID,
				Name:       extra.Name,
				Price:      extra.Price,
				Quantity:   extra.Quantity,
			})
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *service) GetAll(ctx context.Context, status *OrderStatus) ([]OrderResponse, error) {
	rows, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OrderResponse, error) {
	order, err := s.findOrder(ctx, s.repo, id)
	if err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

// SetItemQuantity changes one line item's quantity and recomputes the
// breakdown in the same transaction. Quantity zero removes the line item.
func (s *service) SetItemQuantity(ctx context.Context, orderID, lineItemID string, quantity int) (OrderResponse, error) {
	if quantity < 0 {
		return OrderResponse{}, orderingerrors.ErrNegativeQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	order, err := s.findOrder(ctx, qtx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	if order.Status != StatusPending {
		return OrderResponse{}, orderingerrors.ErrOrderNotEditable
	}

	items, found := SetItemQuantity(order.Items, lineItemID, quantity)
	if !found {
		return OrderResponse{}, orderingerrors.ErrLineItemNotFound
	}

	if err := qtx.ReplaceItems(ctx, orderID, items); err != nil {
		return OrderResponse{}, err
	}

	order.Items = items
	applyTotals(order, CalculateTotals(items, s.ratesFor(order), order.Tip))

	if err := qtx.Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

func (s *service) SetTip(ctx context.Context, orderID string, amount int64) (OrderResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	order, err := s.findOrder(ctx, qtx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	if order.PaymentStatus == PaymentPaid {
		return OrderResponse{}, orderingerrors.ErrAlreadyPaid
	}

	tip := ToggleTip(order.Tip, amount)
	applyTotals(order, CalculateTotals(order.Items, s.ratesFor(order), tip))

	if err := qtx.Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, next OrderStatus) (OrderResponse, error) {
	if !next.Valid() {
		return OrderResponse{}, orderingerrors.ErrInvalidStatusTransition
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	order, err := s.findOrder(ctx, qtx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	if !order.Status.CanTransition(next) {
		return OrderResponse{}, orderingerrors.ErrInvalidStatusTransition
	}

	order.Status = next

	if err := qtx.Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

func (s *service) Pay(ctx context.Context, orderID string, method PaymentMethod) (OrderResponse, error) {
	if !method.Valid() {
		return OrderResponse{}, orderingerrors.ErrInvalidOrderID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	order, err := s.findOrder(ctx, qtx, orderID)
	if err != nil {
		return OrderResponse{}, err
	}
	if order.Status == StatusCancelled {
		return OrderResponse{}, orderingerrors.ErrCancelledOrder
	}
	if order.PaymentStatus == PaymentPaid {
		return OrderResponse{}, orderingerrors.ErrAlreadyPaid
	}

	now := time.Now().UTC()
	order.PaymentStatus = PaymentPaid
	order.PaymentMethod = &method
	order.PaidAt = &now

	if err := qtx.Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return OrderResponse{}, err
	}
	return mapToResponse(*order), nil
}

func (s *service) findOrder(ctx context.Context, repo Repository, id string) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, orderingerrors.ErrInvalidOrderID
	}

	order, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orderingerrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *service) enqueueOrderPlaced(ctx context.Context, tx *sql.Tx, order *Order) error {
	var tableID *string
	if order.TableID != nil {
		v := order.TableID.String()
		tableID = &v
	}

	payload, err := json.Marshal(events.OrderPlacedEvent{
		EventType:   "order.placed",
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		TableID:     tableID,
		TotalCents:  order.Total,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "order",
		AggregateID:   order.ID.String(),
		EventType:     "order.placed",
		Topic:         events.OrderPlacedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func applyTotals(order *Order, breakdown TotalBreakdown) {
	order.Subtotal = breakdown.Subtotal
	order.Tax = breakdown.Tax
	order.ServiceCharge = breakdown.ServiceCharge
	order.Tip = breakdown.Tip
	order.Total = breakdown.Total
}

func mapToResponse(order Order) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		ServiceCharge: order.ServiceCharge,
		Tip:           order.Tip,
		Total:         order.Total,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
		Items:         make([]LineItemResponse, len(order.Items)),
	}
	if order.TableID != nil {
		v := order.TableID.String()
		resp.TableID = &v
	}
	if order.PaymentMethod != nil {
		v := string(*order.PaymentMethod)
		resp.PaymentMethod = &v
	}
	if order.PaidAt != nil {
		v := order.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	for i, item := range order.Items {
		itemResp := LineItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			Removed:   item.Removed,
		}
		for _, extra := range item.Extras {
			itemResp.Extras = append(itemResp.Extras, ItemExtraResponse{
				Name:     extra.Name,
				Price:    extra.Price,
				Quantity: extra.Quantity,
			})
		}
		resp.Items[i] = itemResp
	}

	return resp
}
