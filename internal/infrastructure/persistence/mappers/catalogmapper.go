package mappers

import (
	"workdesk/internal/domain/catalog"
	"workdesk/internal/infrastructure/persistence/models"
)

// CatalogMapper handles the conversion between catalog domain entities and persistence models.
type CatalogMapper interface {
	TaskTypeToModel(t *catalog.TaskType) *models.TaskTypeModel
	TaskTypeToDomain(model *models.TaskTypeModel) (*catalog.TaskType, error)
	CategoryToModel(c *catalog.TaskCategory) *models.TaskCategoryModel
	CategoryToDomain(model *models.TaskCategoryModel) (*catalog.TaskCategory, error)
}

// CatalogMapperImpl is the concrete implementation of CatalogMapper.
type CatalogMapperImpl struct{}

// NewCatalogMapper creates a new CatalogMapper.
func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) TaskTypeToModel(t *catalog.TaskType) *models.TaskTypeModel {
	return &models.TaskTypeModel{
		ID:         t.ID(),
		Name:       t.Name(),
		BasePoints: t.BasePoints(),
		Active:     t.IsActive(),
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) TaskTypeToDomain(model *models.TaskTypeModel) (*catalog.TaskType, error) {
	return catalog.ReconstructTaskType(
		model.ID,
		model.Name,
		model.BasePoints,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CatalogMapperImpl) CategoryToModel(c *catalog.TaskCategory) *models.TaskCategoryModel {
	return &models.TaskCategoryModel{
		ID:         c.ID(),
		Name:       c.Name(),
		Color:      c.Color(),
		Multiplier: c.Multiplier(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *CatalogMapperImpl) CategoryToDomain(model *models.TaskCategoryModel) (*catalog.TaskCategory, error) {
	return catalog.ReconstructTaskCategory(
		model.ID,
		model.Name,
		model.Color,
		model.Multiplier,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
