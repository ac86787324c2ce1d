package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trip sources
const (
	TripSourceLedger = "ledger"
	TripSourceImport = "import"
)

// Trip is one trade run: fruit bought from a supplier and sold to a client.
// Price intelligence only reads Date, Product and PurchasePrice.
type Trip struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	Product       string          `gorm:"type:varchar(120);not null;index" json:"product"`
	Supplier      string          `gorm:"type:varchar(255)" json:"supplier"`
	Client        string          `gorm:"type:varchar(255)" json:"client"`
	KgPurchased   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"kg_purchased"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"purchase_price"` // per kg, 0 = not recorded
	KgSold        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"kg_sold"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sale_price"`
	Source        string          `gorm:"type:varchar(20);not null;default:'ledger'" json:"source"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate assigns an ID when the caller did not.
func (t *Trip) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// PriceObservationRow is the projection of a trip the pricing core consumes.
type PriceObservationRow struct {
	Date          time.Time
	Product       string
	PurchasePrice decimal.Decimal
}
