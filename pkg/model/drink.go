package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrinkLog is a single brewed drink, always tied to exactly one Bean.
// Unlike beans, drink logs are hard-deleted.
type DrinkLog struct {
	ID          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	BeanID      string `gorm:"not null;index"`
	DrinkType   string `gorm:"not null"`
	CustomLabel *string
	MadeBy      *string
	RatedBy     *string

	TemperatureLevel string  `gorm:"not null"`
	BodyLevel        string  `gorm:"not null"`
	Order            string  `gorm:"column:order;not null"`
	CoffeeVolumeML   float64 `gorm:"column:coffee_volume_ml;not null"`
	MilkVolumeML     float64 `gorm:"column:milk_volume_ml;not null"`
	StrengthLevel    string  `gorm:"not null"`
	GrindSetting     int     `gorm:"not null"`

	OverallRating  int `gorm:"not null"`
	Sweetness      int `gorm:"not null"`
	Bitterness     int `gorm:"not null"`
	Acidity        int `gorm:"not null"`
	BodyMouthfeel  int `gorm:"not null"`
	Balance        int `gorm:"not null"`
	WouldMakeAgain bool
	DialedIn       bool

	Notes         *string
	PhotoPath     *string
	ThumbnailPath *string

	Bean Bean `gorm:"foreignKey:BeanID"`
}

func (d *DrinkLog) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	return nil
}

// BrewSettings is the parameter tuple a drink was brewed with.
type BrewSettings struct {
	TemperatureLevel string  `json:"temperature_level"`
	BodyLevel        string  `json:"body_level"`
	Order            string  `json:"order"`
	CoffeeVolumeML   float64 `json:"coffee_volume_ml"`
	MilkVolumeML     float64 `json:"milk_volume_ml"`
	StrengthLevel    string  `json:"strength_level"`
	GrindSetting     int     `json:"grind_setting"`
}

// Settings extracts the brew parameter tuple from a drink.
func (d *DrinkLog) Settings() BrewSettings {
	return BrewSettings{
		TemperatureLevel: d.TemperatureLevel,
		BodyLevel:        d.BodyLevel,
		Order:            d.Order,
		CoffeeVolumeML:   d.CoffeeVolumeML,
		MilkVolumeML:     d.MilkVolumeML,
		StrengthLevel:    d.StrengthLevel,
		GrindSetting:     d.GrindSetting,
	}
}
