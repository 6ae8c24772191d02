package repository

import (
	"context"
	"time"

	"droscher.com/BrewNotes/pkg/model"
)

const (
	recentDrinkLimit = 10
	hallOfFameLimit  = 5
	hallOfFameWindow = 30 // days
)

// GetSummary computes the dashboard aggregate: total drink count, mean overall
// rating, the most recent drink ids and the best-rated ids of the last 30 days.
func (r *Repository) GetSummary(ctx context.Context) (*model.Summary, error) {
	summary := model.Summary{
		RecentDrinks: []string{},
		HallOfFame:   []string{},
	}

	db := r.DB.WithContext(ctx)

	if result := db.Model(&model.DrinkLog{}).Count(&summary.TotalDrinks); result.Error != nil {
		return nil, result.Error
	}

	if summary.TotalDrinks > 0 {
		result := db.Model(&model.DrinkLog{}).
			Select("avg(overall_rating)").
			Scan(&summary.AverageRating)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	result := db.Model(&model.DrinkLog{}).
		Order("created_at desc").
		Limit(recentDrinkLimit).
		Pluck("id", &summary.RecentDrinks)
	if result.Error != nil {
		return nil, result.Error
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -hallOfFameWindow)

	result = db.Model(&model.DrinkLog{}).
		Where("created_at >= ?", cutoff).
		Order("overall_rating desc").
		Limit(hallOfFameLimit).
		Pluck("id", &summary.HallOfFame)
	if result.Error != nil {
		return nil, result.Error
	}

	return &summary, nil
}
