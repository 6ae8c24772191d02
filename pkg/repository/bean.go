package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BrewNotes/pkg/model"
)

var ErrBeanNotFound = errors.New("bean not found")

func (r *Repository) GetBeans(ctx context.Context, includeArchived bool) ([]*model.Bean, error) {
	var beans []*model.Bean

	query := r.DB.WithContext(ctx).Order("name asc")
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	if result := query.Find(&beans); result.Error != nil {
		r.Logger.Error("error listing beans", zap.Error(result.Error))

		return nil, result.Error
	}

	return beans, nil
}

func (r *Repository) AddBean(ctx context.Context, bean model.Bean) (*model.Bean, error) {
	if result := r.DB.WithContext(ctx).Create(&bean); result.Error != nil {
		return nil, result.Error
	}

	return &bean, nil
}

func (r *Repository) GetBeanByID(ctx context.Context, beanID string) (*model.Bean, error) {
	var bean model.Bean

	result := r.DB.WithContext(ctx).Where("id = ?", beanID).First(&bean)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeanNotFound
		}

		return nil, result.Error
	}

	return &bean, nil
}

// SaveBean writes back every field of the bean and refreshes updated_at.
func (r *Repository) SaveBean(ctx context.Context, bean *model.Bean) (*model.Bean, error) {
	if result := r.DB.WithContext(ctx).Save(bean); result.Error != nil {
		return nil, result.Error
	}

	return bean, nil
}
