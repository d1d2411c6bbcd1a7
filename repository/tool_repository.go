package repository

import (
	"github.com/moneygate/tool-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToolRepository persists tool metadata. Every read and delete is scoped
// to one owner; cross-owner access is not expressible through it.
type ToolRepository interface {
	Create(tool *models.GeneratedTool) error
	GetByOwnerAndID(ownerID string, id uuid.UUID) (*models.GeneratedTool, error)
	ListByOwner(ownerID string) ([]*models.GeneratedTool, error)
	ListByOwnerWithPagination(ownerID string, page, pageSize int32) ([]*models.GeneratedTool, int64, error)
	DeleteByOwnerAndID(ownerID string, id uuid.UUID) error
	CountByOwner(ownerID string) (int64, error)
}

type ToolRepositoryImpl struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &ToolRepositoryImpl{db: db}
}

func (r *ToolRepositoryImpl) Create(tool *models.GeneratedTool) error {
	return r.db.Create(tool).Error
}

func (r *ToolRepositoryImpl) GetByOwnerAndID(ownerID string, id uuid.UUID) (*models.GeneratedTool, error) {
	var tool models.GeneratedTool
	err := r.db.First(&tool, "owner_id = ? AND id = ?", ownerID, id).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// ListByOwner returns every tool for one owner, newest first.
func (r *ToolRepositoryImpl) ListByOwner(ownerID string) ([]*models.GeneratedTool, error) {
	var tools []*models.GeneratedTool
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tools).Error
	if err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *ToolRepositoryImpl) ListByOwnerWithPagination(ownerID string, page, pageSize int32) ([]*models.GeneratedTool, int64, error) {
	var tools []*models.GeneratedTool
	var total int64

	offset := (page - 1) * pageSize

	err := r.db.Model(&models.GeneratedTool{}).Where("owner_id = ?", ownerID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Where("owner_id = ?", ownerID).
		Limit(int(pageSize)).
		Offset(int(offset)).
		Order("created_at DESC").
		Find(&tools).Error
	if err != nil {
		return nil, 0, err
	}

	return tools, total, nil
}

func (r *ToolRepositoryImpl) DeleteByOwnerAndID(ownerID string, id uuid.UUID) error {
	return r.db.Delete(&models.GeneratedTool{}, "owner_id = ? AND id = ?", ownerID, id).Error
}

func (r *ToolRepositoryImpl) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.GeneratedTool{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}
