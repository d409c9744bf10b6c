package ordering

type OrderItemRequest struct {
	ProductID string             `json:"product_id" binding:"required,uuid"`
	Quantity  int                `json:"quantity" binding:"required,min=1"`
	Notes     *string            `json:"notes"`
	Extras    []ItemExtraRequest `json:"extras" binding:"dive"`
	Removed   []string           `json:"removed"`
}

type ItemExtraRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	TableID *string            `json:"table_id" binding:"omitempty,uuid"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes   *string            `json:"notes"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetTipRequest struct {
	Amount int64 `json:"amount" binding:"min=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=IN_PROGRESS READY DELIVERED"`
}

type PayOrderRequest struct {
	Method string `json:"method" binding:"required,oneof=CASH CARD TRANSFER"`
}

type LineItemResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	Name      string              `json:"name"`
	UnitPrice int64               `json:"unit_price"`
	Quantity  int                 `json:"quantity"`
	Notes     *string             `json:"notes,omitempty"`
	Extras    []ItemExtraResponse `json:"extras,omitempty"`
	Removed   []string            `json:"removed,omitempty"`
}

type ItemExtraResponse struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	TableID       *string            `json:"table_id,omitempty"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	PaymentMethod *string            `json:"payment_method,omitempty"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      int64              `json:"subtotal"`
	Tax           int64              `json:"tax"`
	ServiceCharge int64              `json:"service_charge"`
	Tip           int64              `json:"tip"`
	Total         int64              `json:"total"`
	Notes         *string            `json:"notes,omitempty"`
	PaidAt        *string            `json:"paid_at,omitempty"`
	CreatedAt     string             `json:"created_at"`
}
