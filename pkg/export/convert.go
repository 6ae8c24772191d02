package export

import (
	"encoding/json"
	"strconv"
	"time"

	"droscher.com/BrewNotes/pkg/model"
)

const (
	dateFormat = "2006-01-02"
)

// Bean mirrors the bean table; field declaration order fixes the CSV column order.
type Bean struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Roaster             *string        `json:"roaster"`
	Origin              *string        `json:"origin"`
	Process             *string        `json:"process"`
	RoastLevel          *string        `json:"roast_level"`
	TastingNotes        *string        `json:"tasting_notes"`
	RoastDate           *string        `json:"roast_date"`
	OpenDate            *string        `json:"open_date"`
	BagSizeG            *int           `json:"bag_size_g"`
	Price               *float64       `json:"price"`
	Decaf               bool           `json:"decaf"`
	Notes               *string        `json:"notes"`
	ImagePath           *string        `json:"image_path"`
	ThumbnailPath       *string        `json:"thumbnail_path"`
	Archived            bool           `json:"archived"`
	CurrentBestSettings map[string]any `json:"current_best_settings"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

type Drink struct {
	ID               string   `json:"id"`
	CreatedAt        string   `json:"created_at"`
	BeanID           string   `json:"bean_id"`
	DrinkType        string   `json:"drink_type"`
	CustomLabel      *string  `json:"custom_label"`
	MadeBy           *string  `json:"made_by"`
	RatedBy          *string  `json:"rated_by"`
	TemperatureLevel string   `json:"temperature_level"`
	BodyLevel        string   `json:"body_level"`
	Order            string   `json:"order"`
	CoffeeVolumeML   float64  `json:"coffee_volume_ml"`
	MilkVolumeML     float64  `json:"milk_volume_ml"`
	StrengthLevel    string   `json:"strength_level"`
	GrindSetting     int      `json:"grind_setting"`
	OverallRating    int      `json:"overall_rating"`
	Sweetness        int      `json:"sweetness"`
	Bitterness       int      `json:"bitterness"`
	Acidity          int      `json:"acidity"`
	BodyMouthfeel    int      `json:"body_mouthfeel"`
	Balance          int      `json:"balance"`
	WouldMakeAgain   bool     `json:"would_make_again"`
	DialedIn         bool     `json:"dialed_in"`
	Notes            *string  `json:"notes"`
	PhotoPath        *string  `json:"photo_path"`
	ThumbnailPath    *string  `json:"thumbnail_path"`
}

var beanHeader = []string{
	"id", "name", "roaster", "origin", "process", "roast_level", "tasting_notes",
	"roast_date", "open_date", "bag_size_g", "price", "decaf", "notes",
	"image_path", "thumbnail_path", "archived", "current_best_settings",
	"created_at", "updated_at",
}

var drinkHeader = []string{
	"id", "created_at", "bean_id", "drink_type", "custom_label", "made_by", "rated_by",
	"temperature_level", "body_level", "order", "coffee_volume_ml", "milk_volume_ml",
	"strength_level", "grind_setting", "overall_rating", "sweetness", "bitterness",
	"acidity", "body_mouthfeel", "balance", "would_make_again", "dialed_in",
	"notes", "photo_path", "thumbnail_path",
}

func BeansFromModel(beans []*model.Bean) []Bean {
	rows := make([]Bean, 0, len(beans))

	for _, bean := range beans {
		rows = append(rows, BeanFromModel(bean))
	}

	return rows
}

func BeanFromModel(bean *model.Bean) Bean {
	return Bean{
		ID:                  bean.ID,
		Name:                bean.Name,
		Roaster:             bean.Roaster,
		Origin:              bean.Origin,
		Process:             bean.Process,
		RoastLevel:          bean.RoastLevel,
		TastingNotes:        bean.TastingNotes,
		RoastDate:           formatDate(bean.RoastDate),
		OpenDate:            formatDate(bean.OpenDate),
		BagSizeG:            bean.BagSizeG,
		Price:               bean.Price,
		Decaf:               bean.Decaf,
		Notes:               bean.Notes,
		ImagePath:           bean.ImagePath,
		ThumbnailPath:       bean.ThumbnailPath,
		Archived:            bean.Archived,
		CurrentBestSettings: bean.CurrentBestSettings,
		CreatedAt:           formatTime(bean.CreatedAt),
		UpdatedAt:           formatTime(bean.UpdatedAt),
	}
}

func DrinksFromModel(drinks []*model.DrinkLog) []Drink {
	rows := make([]Drink, 0, len(drinks))

	for _, drink := range drinks {
		rows = append(rows, DrinkFromModel(drink))
	}

	return rows
}

func DrinkFromModel(drink *model.DrinkLog) Drink {
	return Drink{
		ID:               drink.ID,
		CreatedAt:        formatTime(drink.CreatedAt),
		BeanID:           drink.BeanID,
		DrinkType:        drink.DrinkType,
		CustomLabel:      drink.CustomLabel,
		MadeBy:           drink.MadeBy,
		RatedBy:          drink.RatedBy,
		TemperatureLevel: drink.TemperatureLevel,
		BodyLevel:        drink.BodyLevel,
		Order:            drink.Order,
		CoffeeVolumeML:   drink.CoffeeVolumeML,
		MilkVolumeML:     drink.MilkVolumeML,
		StrengthLevel:    drink.StrengthLevel,
		GrindSetting:     drink.GrindSetting,
		OverallRating:    drink.OverallRating,
		Sweetness:        drink.Sweetness,
		Bitterness:       drink.Bitterness,
		Acidity:          drink.Acidity,
		BodyMouthfeel:    drink.BodyMouthfeel,
		Balance:          drink.Balance,
		WouldMakeAgain:   drink.WouldMakeAgain,
		DialedIn:         drink.DialedIn,
		Notes:            drink.Notes,
		PhotoPath:        drink.PhotoPath,
		ThumbnailPath:    drink.ThumbnailPath,
	}
}

func beanRecords(beans []*model.Bean) [][]string {
	records := make([][]string, 0, len(beans))

	for _, bean := range beans {
		row := BeanFromModel(bean)
		records = append(records, []string{
			row.ID, row.Name, str(row.Roaster), str(row.Origin), str(row.Process),
			str(row.RoastLevel), str(row.TastingNotes), str(row.RoastDate), str(row.OpenDate),
			intStr(row.BagSizeG), floatStr(row.Price), strconv.FormatBool(row.Decaf),
			str(row.Notes), str(row.ImagePath), str(row.ThumbnailPath),
			strconv.FormatBool(row.Archived), settingsStr(row.CurrentBestSettings),
			row.CreatedAt, row.UpdatedAt,
		})
	}

	return records
}

func drinkRecords(drinks []*model.DrinkLog) [][]string {
	records := make([][]string, 0, len(drinks))

	for _, drink := range drinks {
		row := DrinkFromModel(drink)
		records = append(records, []string{
			row.ID, row.CreatedAt, row.BeanID, row.DrinkType, str(row.CustomLabel),
			str(row.MadeBy), str(row.RatedBy), row.TemperatureLevel, row.BodyLevel, row.Order,
			formatFloat(row.CoffeeVolumeML), formatFloat(row.MilkVolumeML), row.StrengthLevel,
			strconv.Itoa(row.GrindSetting), strconv.Itoa(row.OverallRating),
			strconv.Itoa(row.Sweetness), strconv.Itoa(row.Bitterness), strconv.Itoa(row.Acidity),
			strconv.Itoa(row.BodyMouthfeel), strconv.Itoa(row.Balance),
			strconv.FormatBool(row.WouldMakeAgain), strconv.FormatBool(row.DialedIn),
			str(row.Notes), str(row.PhotoPath), str(row.ThumbnailPath),
		})
	}

	return records
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	date := t.Format(dateFormat)

	return &date
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func str(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func intStr(value *int) string {
	if value == nil {
		return ""
	}

	return strconv.Itoa(*value)
}

func floatStr(value *float64) string {
	if value == nil {
		return ""
	}

	return formatFloat(*value)
}

func settingsStr(settings map[string]any) string {
	if settings == nil {
		return ""
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return ""
	}

	return string(data)
}
