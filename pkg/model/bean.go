package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsMap is a free-form settings document stored as a JSON column.
type SettingsMap map[string]any

func (m SettingsMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

func (m *SettingsMap) Scan(value any) error {
	if value == nil {
		*m = nil

		return nil
	}

	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, m)
	case string:
		return json.Unmarshal([]byte(data), m)
	default:
		return fmt.Errorf("unsupported settings column type %T", value)
	}
}

// Bean is a coffee product in inventory. Beans are never deleted, only archived.
type Bean struct {
	ID                  string `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	Roaster             *string
	Origin              *string
	Process             *string
	RoastLevel          *string
	TastingNotes        *string
	RoastDate           *time.Time `gorm:"type:date"`
	OpenDate            *time.Time `gorm:"type:date"`
	BagSizeG            *int
	Price               *float64
	Decaf               bool
	Notes               *string
	ImagePath           *string
	ThumbnailPath       *string
	Archived            bool
	CurrentBestSettings SettingsMap `gorm:"type:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Drinks []DrinkLog `gorm:"foreignKey:BeanID"`
}

func (b *Bean) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	return nil
}
