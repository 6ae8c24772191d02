package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.openly.dev/pointy"

	"droscher.com/BrewNotes/pkg/model"
)

const dateFormat = "2006-01-02"

func validationError(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf(format, args...))
}

func BeansFromModel(beans []*model.Bean) []BeanOut {
	out := make([]BeanOut, 0, len(beans))

	for _, bean := range beans {
		out = append(out, BeanFromModel(bean))
	}

	return out
}

func BeanFromModel(bean *model.Bean) BeanOut {
	return BeanOut{
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
		Archived:            bean.Archived,
		CurrentBestSettings: bean.CurrentBestSettings,
		ImagePath:           bean.ImagePath,
		ThumbnailPath:       bean.ThumbnailPath,
		CreatedAt:           bean.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           bean.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func BeanCreateToModel(req BeanCreate) (model.Bean, error) {
	roastDate, err := parseDate(req.RoastDate, "roast_date")
	if err != nil {
		return model.Bean{}, err
	}

	openDate, err := parseDate(req.OpenDate, "open_date")
	if err != nil {
		return model.Bean{}, err
	}

	return model.Bean{
		Name:                req.Name,
		Roaster:             req.Roaster,
		Origin:              req.Origin,
		Process:             req.Process,
		RoastLevel:          req.RoastLevel,
		TastingNotes:        req.TastingNotes,
		RoastDate:           roastDate,
		OpenDate:            openDate,
		BagSizeG:            req.BagSizeG,
		Price:               req.Price,
		Decaf:               req.Decaf,
		Notes:               req.Notes,
		Archived:            req.Archived,
		CurrentBestSettings: model.SettingsMap(req.CurrentBestSettings),
	}, nil
}

// ApplyBeanPatch copies only the fields present in the patch onto the bean.
// Explicit null clears nullable fields and is rejected on required ones.
func ApplyBeanPatch(bean *model.Bean, patch BeanPatch) error {
	if patch.Name.Set {
		if !patch.Name.Valid || patch.Name.Value == "" {
			return validationError("name cannot be empty")
		}

		bean.Name = patch.Name.Value
	}

	applyStringPtr(&bean.Roaster, patch.Roaster)
	applyStringPtr(&bean.Origin, patch.Origin)
	applyStringPtr(&bean.Process, patch.Process)
	applyStringPtr(&bean.RoastLevel, patch.RoastLevel)
	applyStringPtr(&bean.TastingNotes, patch.TastingNotes)
	applyStringPtr(&bean.Notes, patch.Notes)
	applyStringPtr(&bean.ImagePath, patch.ImagePath)
	applyStringPtr(&bean.ThumbnailPath, patch.ThumbnailPath)
	applyIntPtr(&bean.BagSizeG, patch.BagSizeG)
	applyFloatPtr(&bean.Price, patch.Price)

	if err := applyDatePtr(&bean.RoastDate, patch.RoastDate, "roast_date"); err != nil {
		return err
	}

	if err := applyDatePtr(&bean.OpenDate, patch.OpenDate, "open_date"); err != nil {
		return err
	}

	if patch.Decaf.Set {
		if !patch.Decaf.Valid {
			return validationError("decaf cannot be null")
		}

		bean.Decaf = patch.Decaf.Value
	}

	if patch.Archived.Set {
		if !patch.Archived.Valid {
			return validationError("archived cannot be null")
		}

		bean.Archived = patch.Archived.Value
	}

	if patch.CurrentBestSettings.Set {
		if !patch.CurrentBestSettings.Valid {
			bean.CurrentBestSettings = nil
		} else {
			bean.CurrentBestSettings = model.SettingsMap(patch.CurrentBestSettings.Value)
		}
	}

	return nil
}

func DrinksFromModel(drinks []*model.DrinkLog) []DrinkOut {
	out := make([]DrinkOut, 0, len(drinks))

	for _, drink := range drinks {
		out = append(out, DrinkFromModel(drink))
	}

	return out
}

func DrinkFromModel(drink *model.DrinkLog) DrinkOut {
	return DrinkOut{
		ID:               drink.ID,
		CreatedAt:        drink.CreatedAt.UTC().Format(time.RFC3339Nano),
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

func validateDrinkCreate(req DrinkCreate) error {
	required := []struct {
		name  string
		value string
	}{
		{"bean_id", req.BeanID},
		{"drink_type", req.DrinkType},
		{"temperature_level", req.TemperatureLevel},
		{"body_level", req.BodyLevel},
		{"order", req.Order},
		{"strength_level", req.StrengthLevel},
	}

	for _, field := range required {
		if field.value == "" {
			return validationError("%s is required", field.name)
		}
	}

	volumes := []struct {
		name  string
		value *float64
	}{
		{"coffee_volume_ml", req.CoffeeVolumeML},
		{"milk_volume_ml", req.MilkVolumeML},
	}

	for _, volume := range volumes {
		if volume.value == nil {
			return validationError("%s is required", volume.name)
		}

		if *volume.value < 0 {
			return validationError("%s must be non-negative", volume.name)
		}
	}

	if req.GrindSetting == nil {
		return validationError("grind_setting is required")
	}

	ratings := []struct {
		name  string
		value *int
	}{
		{"overall_rating", req.OverallRating},
		{"sweetness", req.Sweetness},
		{"bitterness", req.Bitterness},
		{"acidity", req.Acidity},
		{"body_mouthfeel", req.BodyMouthfeel},
		{"balance", req.Balance},
	}

	for _, rating := range ratings {
		if rating.value == nil {
			return validationError("%s is required", rating.name)
		}

		if err := checkRating(rating.name, *rating.value); err != nil {
			return err
		}
	}

	return nil
}

func checkRating(name string, value int) error {
	if value < 1 || value > 5 {
		return validationError("%s must be between 1 and 5", name)
	}

	return nil
}

func DrinkCreateToModel(req DrinkCreate) model.DrinkLog {
	return model.DrinkLog{
		BeanID:           req.BeanID,
		DrinkType:        req.DrinkType,
		CustomLabel:      req.CustomLabel,
		MadeBy:           req.MadeBy,
		RatedBy:          req.RatedBy,
		TemperatureLevel: req.TemperatureLevel,
		BodyLevel:        req.BodyLevel,
		Order:            req.Order,
		CoffeeVolumeML:   *req.CoffeeVolumeML,
		MilkVolumeML:     *req.MilkVolumeML,
		StrengthLevel:    req.StrengthLevel,
		GrindSetting:     *req.GrindSetting,
		OverallRating:    *req.OverallRating,
		Sweetness:        *req.Sweetness,
		Bitterness:       *req.Bitterness,
		Acidity:          *req.Acidity,
		BodyMouthfeel:    *req.BodyMouthfeel,
		Balance:          *req.Balance,
		WouldMakeAgain:   req.WouldMakeAgain,
		DialedIn:         req.DialedIn,
		Notes:            req.Notes,
	}
}

// ApplyDrinkPatch mirrors ApplyBeanPatch for drink logs.
func ApplyDrinkPatch(drink *model.DrinkLog, patch DrinkPatch) error {
	requiredStrings := []struct {
		name   string
		target *string
		opt    Optional[string]
	}{
		{"bean_id", &drink.BeanID, patch.BeanID},
		{"drink_type", &drink.DrinkType, patch.DrinkType},
		{"temperature_level", &drink.TemperatureLevel, patch.TemperatureLevel},
		{"body_level", &drink.BodyLevel, patch.BodyLevel},
		{"order", &drink.Order, patch.Order},
		{"strength_level", &drink.StrengthLevel, patch.StrengthLevel},
	}

	for _, field := range requiredStrings {
		if !field.opt.Set {
			continue
		}

		if !field.opt.Valid || field.opt.Value == "" {
			return validationError("%s cannot be empty", field.name)
		}

		*field.target = field.opt.Value
	}

	applyStringPtr(&drink.CustomLabel, patch.CustomLabel)
	applyStringPtr(&drink.MadeBy, patch.MadeBy)
	applyStringPtr(&drink.RatedBy, patch.RatedBy)
	applyStringPtr(&drink.Notes, patch.Notes)
	applyStringPtr(&drink.PhotoPath, patch.PhotoPath)
	applyStringPtr(&drink.ThumbnailPath, patch.ThumbnailPath)

	volumes := []struct {
		name   string
		target *float64
		opt    Optional[float64]
	}{
		{"coffee_volume_ml", &drink.CoffeeVolumeML, patch.CoffeeVolumeML},
		{"milk_volume_ml", &drink.MilkVolumeML, patch.MilkVolumeML},
	}

	for _, volume := range volumes {
		if !volume.opt.Set {
			continue
		}

		if !volume.opt.Valid {
			return validationError("%s cannot be null", volume.name)
		}

		if volume.opt.Value < 0 {
			return validationError("%s must be non-negative", volume.name)
		}

		*volume.target = volume.opt.Value
	}

	if patch.GrindSetting.Set {
		if !patch.GrindSetting.Valid {
			return validationError("grind_setting cannot be null")
		}

		drink.GrindSetting = patch.GrindSetting.Value
	}

	ratings := []struct {
		name   string
		target *int
		opt    Optional[int]
	}{
		{"overall_rating", &drink.OverallRating, patch.OverallRating},
		{"sweetness", &drink.Sweetness, patch.Sweetness},
		{"bitterness", &drink.Bitterness, patch.Bitterness},
		{"acidity", &drink.Acidity, patch.Acidity},
		{"body_mouthfeel", &drink.BodyMouthfeel, patch.BodyMouthfeel},
		{"balance", &drink.Balance, patch.Balance},
	}

	for _, rating := range ratings {
		if !rating.opt.Set {
			continue
		}

		if !rating.opt.Valid {
			return validationError("%s cannot be null", rating.name)
		}

		if err := checkRating(rating.name, rating.opt.Value); err != nil {
			return err
		}

		*rating.target = rating.opt.Value
	}

	bools := []struct {
		name   string
		target *bool
		opt    Optional[bool]
	}{
		{"would_make_again", &drink.WouldMakeAgain, patch.WouldMakeAgain},
		{"dialed_in", &drink.DialedIn, patch.DialedIn},
	}

	for _, flag := range bools {
		if !flag.opt.Set {
			continue
		}

		if !flag.opt.Valid {
			return validationError("%s cannot be null", flag.name)
		}

		*flag.target = flag.opt.Value
	}

	return nil
}

func applyStringPtr(target **string, opt Optional[string]) {
	if !opt.Set {
		return
	}

	if !opt.Valid {
		*target = nil

		return
	}

	*target = pointy.String(opt.Value)
}

func applyIntPtr(target **int, opt Optional[int]) {
	if !opt.Set {
		return
	}

	if !opt.Valid {
		*target = nil

		return
	}

	*target = pointy.Int(opt.Value)
}

func applyFloatPtr(target **float64, opt Optional[float64]) {
	if !opt.Set {
		return
	}

	if !opt.Valid {
		*target = nil

		return
	}

	*target = pointy.Float64(opt.Value)
}

func applyDatePtr(target **time.Time, opt Optional[string], field string) error {
	if !opt.Set {
		return nil
	}

	if !opt.Valid {
		*target = nil

		return nil
	}

	parsed, err := parseDate(pointy.String(opt.Value), field)
	if err != nil {
		return err
	}

	*target = parsed

	return nil
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := time.Parse(dateFormat, *value)
	if err != nil {
		return nil, validationError("%s must be a %s date", field, dateFormat)
	}

	return &parsed, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return pointy.String(t.Format(dateFormat))
}
