package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Price note event types
const (
	NoteEventHarvest = "HARVEST"
	NoteEventWeather = "WEATHER"
	NoteEventDemand  = "DEMAND"
	NoteEventSupply  = "SUPPLY"
	NoteEventOther   = "OTHER"
)

// PriceNote is a market remark explaining a price movement on a given day.
type PriceNote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Product   string    `gorm:"type:varchar(120);not null;index" json:"product"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	EventType string    `gorm:"type:varchar(20);not null" json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *PriceNote) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
