package ordering

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string    `gorm:"column:order_number;type:varchar(20);not null;uniqueIndex:uq_order_number"`
	// Null table means takeaway.
	TableID       *uuid.UUID     `gorm:"column:table_id;type:uuid;index"`
	Status        OrderStatus    `gorm:"column:status;type:varchar(20);not null;default:'PENDING';index"`
	PaymentStatus PaymentStatus  `gorm:"column:payment_status;type:varchar(20);not null;default:'PENDING'"`
	PaymentMethod *PaymentMethod `gorm:"column:payment_method;type:varchar(20)"`

	// Totals in cents, recomputed from items on every mutation.
	Subtotal      int64 `gorm:"column:subtotal;type:bigint;not null;default:0"`
	Tax           int64 `gorm:"column:tax;type:bigint;not null;default:0"`
	ServiceCharge int64 `gorm:"column:service_charge;type:bigint;not null;default:0"`
	Tip           int64 `gorm:"column:tip;type:bigint;not null;default:0"`
	Total         int64 `gorm:"column:total;type:bigint;not null;default:0"`

	Notes     *string        `gorm:"column:notes;type:text"`
	CreatedBy uuid.UUID      `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	PaidAt    *time.Time     `gorm:"column:paid_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`

	Items []LineItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

type LineItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Name      string    `gorm:"column:name;type:varchar(120);not null"`
	// Base unit price in cents at the time of ordering; extras add on top.
	UnitPrice int64   `gorm:"column:unit_price;type:bigint;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	Notes     *string `gorm:"column:notes;type:text"`
	// Components the guest asked to leave out, e.g. "onion".
	Removed   []string  `gorm:"column:removed;serializer:json"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Extras []LineItemExtra `gorm:"foreignKey:LineItemID"`
}

func (LineItem) TableName() string {
	return "order_items"
}

// LineItemExtra is a paid customization added to a single line item.
type LineItemExtra struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LineItemID uuid.UUID `gorm:"column:order_item_id;type:uuid;not null;index"`
	Name       string    `gorm:"column:name;type:varchar(120);not null"`
	Price      int64     `gorm:"column:price;type:bigint;not null"`
	Quantity   int       `gorm:"column:quantity;not null;default:1"`
}

func (LineItemExtra) TableName() string {
	return "order_item_extras"
}
