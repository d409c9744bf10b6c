package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"column:name;type:varchar(120);not null"`
	Description *string   `gorm:"column:description;type:text"`
	Category    string    `gorm:"column:category;type:varchar(60);not null;index"`
	// Price in cents.
	Price       int64          `gorm:"column:price;type:bigint;not null"`
	ImageURL    *string        `gorm:"column:image_url;type:text"`
	IsAvailable bool           `gorm:"column:is_available;not null;default:true"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type Table struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Number    int       `gorm:"column:number;not null;uniqueIndex:uq_table_number"`
	Seats     int       `gorm:"column:seats;not null;default:2"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Table) TableName() string {
	return "tables"
}
