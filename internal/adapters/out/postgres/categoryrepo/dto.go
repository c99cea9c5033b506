// Package categoryrepo implements the repository pattern for the category
// aggregate, mapping between the domain model and the categories table.
package categoryrepo

import (
	"time"

	"inventory/internal/core/domain/model/category"
	"inventory/internal/core/domain/model/kernel"
)

// CategoryDTO represents the database row for a category.
type CategoryDTO struct {
	CategoryID   int64     `gorm:"column:category_id;primaryKey;autoIncrement"`
	CategoryName string    `gorm:"column:category_name"`
	Description  string    `gorm:"column:description"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides GORM's default naming convention.
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *category.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:   aggregate.ID().Int64(),
		CategoryName: aggregate.Name(),
		Description:  aggregate.Description(),
		IsActive:     aggregate.IsActive(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.NewID(dto.CategoryID)
	if err != nil {
		return nil, err
	}

	return category.RestoreCategory(
		id, dto.CategoryName, dto.Description,
		dto.IsActive, dto.CreatedAt, dto.UpdatedAt,
	)
}
