package repo

import (
	"gorm.io/gorm"
)

// GormRepo is the storage layer. Cascades across the order/product join
// table are done explicitly inside transactions here instead of relying on
// ORM association management, so the atomicity contract is visible in one
// place.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
