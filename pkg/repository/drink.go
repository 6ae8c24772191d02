package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BrewNotes/pkg/model"
)

var ErrDrinkNotFound = errors.New("drink not found")

func (r *Repository) GetDrinks(ctx context.Context) ([]*model.DrinkLog, error) {
	var drinks []*model.DrinkLog

	result := r.DB.WithContext(ctx).Order("created_at desc").Find(&drinks)
	if result.Error != nil {
		r.Logger.Error("error listing drinks", zap.Error(result.Error))

		return nil, result.Error
	}

	return drinks, nil
}

// GetDrinksForBean returns the bean's drinks in creation order, which the
// recommendation grouping relies on.
func (r *Repository) GetDrinksForBean(ctx context.Context, beanID string) ([]*model.DrinkLog, error) {
	var drinks []*model.DrinkLog

	result := r.DB.WithContext(ctx).Where("bean_id = ?", beanID).Order("created_at asc").Find(&drinks)
	if result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

func (r *Repository) AddDrink(ctx context.Context, drink model.DrinkLog) (*model.DrinkLog, error) {
	if result := r.DB.WithContext(ctx).Create(&drink); result.Error != nil {
		return nil, result.Error
	}

	return &drink, nil
}

func (r *Repository) GetDrinkByID(ctx context.Context, drinkID string) (*model.DrinkLog, error) {
	var drink model.DrinkLog

	result := r.DB.WithContext(ctx).Where("id = ?", drinkID).First(&drink)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkNotFound
		}

		return nil, result.Error
	}

	return &drink, nil
}

func (r *Repository) SaveDrink(ctx context.Context, drink *model.DrinkLog) (*model.DrinkLog, error) {
	if result := r.DB.WithContext(ctx).Save(drink); result.Error != nil {
		return nil, result.Error
	}

	return drink, nil
}

// DeleteDrink hard-deletes a drink log. Deleting a missing id is an error,
// so a second delete of the same id reports not found.
func (r *Repository) DeleteDrink(ctx context.Context, drinkID string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", drinkID).Delete(&model.DrinkLog{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDrinkNotFound
	}

	return nil
}
