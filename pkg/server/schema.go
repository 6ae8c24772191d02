package server

// Wire shapes for the JSON API. Calendar dates travel as "2006-01-02" strings,
// timestamps as RFC 3339.

type BeanOut struct {
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
	Archived            bool           `json:"archived"`
	CurrentBestSettings map[string]any `json:"current_best_settings"`
	ImagePath           *string        `json:"image_path"`
	ThumbnailPath       *string        `json:"thumbnail_path"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
}

type BeanCreate struct {
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
	Archived            bool           `json:"archived"`
	CurrentBestSettings map[string]any `json:"current_best_settings"`
}

// BeanPatch applies partial-update semantics: absent fields stay untouched,
// explicit nulls clear nullable fields.
type BeanPatch struct {
	Name                Optional[string]         `json:"name"`
	Roaster             Optional[string]         `json:"roaster"`
	Origin              Optional[string]         `json:"origin"`
	Process             Optional[string]         `json:"process"`
	RoastLevel          Optional[string]         `json:"roast_level"`
	TastingNotes        Optional[string]         `json:"tasting_notes"`
	RoastDate           Optional[string]         `json:"roast_date"`
	OpenDate            Optional[string]         `json:"open_date"`
	BagSizeG            Optional[int]            `json:"bag_size_g"`
	Price               Optional[float64]        `json:"price"`
	Decaf               Optional[bool]           `json:"decaf"`
	Notes               Optional[string]         `json:"notes"`
	Archived            Optional[bool]           `json:"archived"`
	CurrentBestSettings Optional[map[string]any] `json:"current_best_settings"`
	ImagePath           Optional[string]         `json:"image_path"`
	ThumbnailPath       Optional[string]         `json:"thumbnail_path"`
}

type DrinkOut struct {
	ID               string  `json:"id"`
	CreatedAt        string  `json:"created_at"`
	BeanID           string  `json:"bean_id"`
	DrinkType        string  `json:"drink_type"`
	CustomLabel      *string `json:"custom_label"`
	MadeBy           *string `json:"made_by"`
	RatedBy          *string `json:"rated_by"`
	TemperatureLevel string  `json:"temperature_level"`
	BodyLevel        string  `json:"body_level"`
	Order            string  `json:"order"`
	CoffeeVolumeML   float64 `json:"coffee_volume_ml"`
	MilkVolumeML     float64 `json:"milk_volume_ml"`
	StrengthLevel    string  `json:"strength_level"`
	GrindSetting     int     `json:"grind_setting"`
	OverallRating    int     `json:"overall_rating"`
	Sweetness        int     `json:"sweetness"`
	Bitterness       int     `json:"bitterness"`
	Acidity          int     `json:"acidity"`
	BodyMouthfeel    int     `json:"body_mouthfeel"`
	Balance          int     `json:"balance"`
	WouldMakeAgain   bool    `json:"would_make_again"`
	DialedIn         bool    `json:"dialed_in"`
	Notes            *string `json:"notes"`
	PhotoPath        *string `json:"photo_path"`
	ThumbnailPath    *string `json:"thumbnail_path"`
}

type DrinkCreate struct {
	BeanID           string   `json:"bean_id"`
	DrinkType        string   `json:"drink_type"`
	CustomLabel      *string  `json:"custom_label"`
	MadeBy           *string  `json:"made_by"`
	RatedBy          *string  `json:"rated_by"`
	TemperatureLevel string   `json:"temperature_level"`
	BodyLevel        string   `json:"body_level"`
	Order            string   `json:"order"`
	CoffeeVolumeML   *float64 `json:"coffee_volume_ml"`
	MilkVolumeML     *float64 `json:"milk_volume_ml"`
	StrengthLevel    string   `json:"strength_level"`
	GrindSetting     *int     `json:"grind_setting"`
	OverallRating    *int     `json:"overall_rating"`
	Sweetness        *int     `json:"sweetness"`
	Bitterness       *int     `json:"bitterness"`
	Acidity          *int     `json:"acidity"`
	BodyMouthfeel    *int     `json:"body_mouthfeel"`
	Balance          *int     `json:"balance"`
	WouldMakeAgain   bool     `json:"would_make_again"`
	DialedIn         bool     `json:"dialed_in"`
	Notes            *string  `json:"notes"`
}

type DrinkPatch struct {
	BeanID           Optional[string]  `json:"bean_id"`
	DrinkType        Optional[string]  `json:"drink_type"`
	CustomLabel      Optional[string]  `json:"custom_label"`
	MadeBy           Optional[string]  `json:"made_by"`
	RatedBy          Optional[string]  `json:"rated_by"`
	TemperatureLevel Optional[string]  `json:"temperature_level"`
	BodyLevel        Optional[string]  `json:"body_level"`
	Order            Optional[string]  `json:"order"`
	CoffeeVolumeML   Optional[float64] `json:"coffee_volume_ml"`
	MilkVolumeML     Optional[float64] `json:"milk_volume_ml"`
	StrengthLevel    Optional[string]  `json:"strength_level"`
	GrindSetting     Optional[int]     `json:"grind_setting"`
	OverallRating    Optional[int]     `json:"overall_rating"`
	Sweetness        Optional[int]     `json:"sweetness"`
	Bitterness       Optional[int]     `json:"bitterness"`
	Acidity          Optional[int]     `json:"acidity"`
	BodyMouthfeel    Optional[int]     `json:"body_mouthfeel"`
	Balance          Optional[int]     `json:"balance"`
	WouldMakeAgain   Optional[bool]    `json:"would_make_again"`
	DialedIn         Optional[bool]    `json:"dialed_in"`
	Notes            Optional[string]  `json:"notes"`
	PhotoPath        Optional[string]  `json:"photo_path"`
	ThumbnailPath    Optional[string]  `json:"thumbnail_path"`
}
