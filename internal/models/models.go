package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName       *string   `gorm:"size:255"                      json:"full_name,omitempty"`
	IsActive       bool      `gorm:"not null;default:true"         json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false"        json:"is_superuser"`
	HashedPassword string    `gorm:"not null"                      json:"-"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Item has no routes of its own, it exists for the user-delete cascade.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Title       string    `gorm:"size:255;not null"     json:"title"`
	Description *string   `gorm:"size:255"              json:"description,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
}

func (i *Item) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null"    json:"name"`
	Category string    `gorm:"size:255;not null"    json:"category"`
	Price    int64     `gorm:"not null"             json:"price"`
	Rating   int       `gorm:"not null"             json:"rating"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	Description *string   `gorm:"size:255"                 json:"description,omitempty"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null"                 json:"created_at"`
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderProduct is the order/product join row. The cascade rules for it live
// in the repo layer: deleting an order, a product or a user removes the
// affected rows inside the same transaction.
type OrderProduct struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"product_id"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"order_id"`
}

// All lists every entity for AutoMigrate.
func All() []any {
	return []any{&User{}, &Item{}, &Product{}, &Order{}, &OrderProduct{}}
}
