package server

import (
	"sort"

	"go.openly.dev/pointy"

	"droscher.com/BrewNotes/pkg/model"
)

// consideredRatingFloor is the minimum overall rating for a drink to count
// toward recommendations and the "top rated" radar series.
const consideredRatingFloor = 4

// AnalyticsFromDrinks aggregates one bean's drinks into chartable series.
// An empty drink set yields empty slices throughout.
func AnalyticsFromDrinks(drinks []*model.DrinkLog) model.BeanAnalytics {
	analytics := model.BeanAnalytics{
		RatingVsGrind:        make([]model.ScatterPoint, 0, len(drinks)),
		RatingVsCoffeeVolume: make([]model.ScatterPoint, 0, len(drinks)),
		RatingByTemperature:  []model.TemperatureRating{},
		RatingTimeline:       []model.TimelinePoint{},
		Radar:                []model.RadarEntry{},
	}

	tempOrder := make([]string, 0)
	tempRatings := make(map[string][]int)
	dayRatings := make(map[string][]int)

	for _, drink := range drinks {
		rating := float64(drink.OverallRating)

		analytics.RatingVsGrind = append(analytics.RatingVsGrind,
			model.ScatterPoint{X: float64(drink.GrindSetting), Y: rating})
		analytics.RatingVsCoffeeVolume = append(analytics.RatingVsCoffeeVolume,
			model.ScatterPoint{X: drink.CoffeeVolumeML, Y: rating})

		if _, seen := tempRatings[drink.TemperatureLevel]; !seen {
			tempOrder = append(tempOrder, drink.TemperatureLevel)
		}

		tempRatings[drink.TemperatureLevel] = append(tempRatings[drink.TemperatureLevel], drink.OverallRating)

		day := drink.CreatedAt.UTC().Format(dateFormat)
		dayRatings[day] = append(dayRatings[day], drink.OverallRating)
	}

	for _, level := range tempOrder {
		analytics.RatingByTemperature = append(analytics.RatingByTemperature,
			model.TemperatureRating{TemperatureLevel: level, AverageRating: meanInt(tempRatings[level])})
	}

	days := make([]string, 0, len(dayRatings))
	for day := range dayRatings {
		days = append(days, day)
	}

	sort.Strings(days)

	for _, day := range days {
		analytics.RatingTimeline = append(analytics.RatingTimeline,
			model.TimelinePoint{Date: day, AverageRating: meanInt(dayRatings[day])})
	}

	if len(drinks) > 0 {
		analytics.Radar = radarFromDrinks(drinks)
	}

	return analytics
}

func radarFromDrinks(drinks []*model.DrinkLog) []model.RadarEntry {
	categories := []struct {
		name string
		pick func(*model.DrinkLog) int
	}{
		{"Sweetness", func(d *model.DrinkLog) int { return d.Sweetness }},
		{"Bitterness", func(d *model.DrinkLog) int { return d.Bitterness }},
		{"Acidity", func(d *model.DrinkLog) int { return d.Acidity }},
		{"Body Mouthfeel", func(d *model.DrinkLog) int { return d.BodyMouthfeel }},
		{"Balance", func(d *model.DrinkLog) int { return d.Balance }},
	}

	topRated := consideredDrinks(drinks)

	radar := make([]model.RadarEntry, 0, len(categories))

	for _, category := range categories {
		entry := model.RadarEntry{
			Category: category.name,
			Average:  meanOf(drinks, category.pick),
		}

		if len(topRated) > 0 {
			entry.TopRatedAverage = pointy.Float64(meanOf(topRated, category.pick))
		}

		radar = append(radar, entry)
	}

	return radar
}

// RecommendationFromDrinks derives the most repeated well-rated parameter
// tuple and the single best-rated one. Drinks must arrive in creation order;
// ties fall to the tuple seen first.
func RecommendationFromDrinks(drinks []*model.DrinkLog) model.RecommendedSettings {
	considered := consideredDrinks(drinks)
	if len(considered) == 0 {
		return model.RecommendedSettings{TotalConsidered: 0}
	}

	groupOrder := make([]model.BrewSettings, 0)
	groups := make(map[model.BrewSettings][]*model.DrinkLog)

	for _, drink := range considered {
		key := drink.Settings()
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}

		groups[key] = append(groups[key], drink)
	}

	best := groupOrder[0]
	for _, key := range groupOrder[1:] {
		if better(groups[key], groups[best]) {
			best = key
		}
	}

	highest := considered[0]
	for _, drink := range considered[1:] {
		if drink.OverallRating > highest.OverallRating {
			highest = drink
		}
	}

	recommended := best
	highestRated := highest.Settings()

	return model.RecommendedSettings{
		Recommended:     &recommended,
		HighestRated:    &highestRated,
		TotalConsidered: len(considered),
	}
}

// better reports whether group a beats group b: larger wins, then higher
// average overall rating.
func better(a, b []*model.DrinkLog) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}

	return meanOf(a, func(d *model.DrinkLog) int { return d.OverallRating }) >
		meanOf(b, func(d *model.DrinkLog) int { return d.OverallRating })
}

func consideredDrinks(drinks []*model.DrinkLog) []*model.DrinkLog {
	considered := make([]*model.DrinkLog, 0, len(drinks))

	for _, drink := range drinks {
		if drink.OverallRating >= consideredRatingFloor {
			considered = append(considered, drink)
		}
	}

	return considered
}

func meanOf(drinks []*model.DrinkLog, pick func(*model.DrinkLog) int) float64 {
	total := 0
	for _, drink := range drinks {
		total += pick(drink)
	}

	return float64(total) / float64(len(drinks))
}

func meanInt(values []int) float64 {
	total := 0
	for _, value := range values {
		total += value
	}

	return float64(total) / float64(len(values))
}
