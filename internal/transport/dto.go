package transport

import (
	"time"

	"github.com/google/uuid"

	"shopapi/internal/models"
)

type Message struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FullName    *string `json:"full_name"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
}

type UserPublic struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    *string   `json:"full_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

func UserToPublic(u models.User) UserPublic {
	return UserPublic{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Rating   int    `json:"rating"`
}

// PatchProductRequest carries a sparse patch: a nil field was absent from the
// request body and must leave the stored value untouched.
type PatchProductRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    *int64  `json:"price"`
	Rating   *int    `json:"rating"`
}

type ProductList struct {
	Data  []models.Product `json:"data"`
	Count int64            `json:"count"`
}

type CreateOrderRequest struct {
	Description *string     `json:"description"`
	ProductIDs  []uuid.UUID `json:"product_ids"`
}

// OrderPublic is the list projection: no product expansion.
type OrderPublic struct {
	ID          uuid.UUID `json:"id"`
	Description *string   `json:"description,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderDetail is the single-order projection with its product set.
type OrderDetail struct {
	OrderPublic
	Products []models.Product `json:"products"`
}

func OrderToPublic(o models.Order) OrderPublic {
	return OrderPublic{
		ID:          o.ID,
		Description: o.Description,
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
	}
}

func OrderToDetail(o models.Order, products []models.Product) OrderDetail {
	if products == nil {
		products = []models.Product{}
	}
	return OrderDetail{OrderPublic: OrderToPublic(o), Products: products}
}

type OrderList struct {
	Data  []OrderPublic `json:"data"`
	Count int64         `json:"count"`
}
