package model

type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TemperatureRating struct {
	TemperatureLevel string  `json:"temperature_level"`
	AverageRating    float64 `json:"average_rating"`
}

type TimelinePoint struct {
	Date          string  `json:"date"`
	AverageRating float64 `json:"average_rating"`
}

type RadarEntry struct {
	Category        string   `json:"category"`
	Average         float64  `json:"average"`
	TopRatedAverage *float64 `json:"top_rated_average"`
}

// BeanAnalytics aggregates every drink logged against a single bean.
type BeanAnalytics struct {
	RatingVsGrind        []ScatterPoint      `json:"rating_vs_grind"`
	RatingVsCoffeeVolume []ScatterPoint      `json:"rating_vs_coffee_volume"`
	RatingByTemperature  []TemperatureRating `json:"rating_by_temperature"`
	RatingTimeline       []TimelinePoint     `json:"rating_timeline"`
	Radar                []RadarEntry        `json:"radar"`
}

// RecommendedSettings is derived from drinks rated 4 or better.
type RecommendedSettings struct {
	Recommended     *BrewSettings `json:"recommended"`
	HighestRated    *BrewSettings `json:"highest_rated"`
	TotalConsidered int           `json:"total_considered"`
}

// Summary is the cross-bean dashboard aggregate.
type Summary struct {
	TotalDrinks   int64    `json:"total_drinks"`
	AverageRating float64  `json:"average_rating"`
	RecentDrinks  []string `json:"recent_drinks"`
	HallOfFame    []string `json:"hall_of_fame"`
}
