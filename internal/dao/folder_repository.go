package dao

import (
	"context"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/model"
	"github.com/haierkeys/note-organizer-service/pkg/convert"
)

// folderRepository 实现 domain.FolderRepository 接口
type folderRepository struct {
	dao *Dao
}

// NewFolderRepository 创建 FolderRepository 实例
func NewFolderRepository(dao *Dao) domain.FolderRepository {
	return &folderRepository{dao: dao}
}

func (r *folderRepository) toDomain(m *model.Folder) *domain.Folder {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Folder{}).(*domain.Folder)
}

// GetByID 根据ID获取文件夹
func (r *folderRepository) GetByID(ctx context.Context, id int64) (*domain.Folder, error) {
	var m model.Folder
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 获取文件夹列表
func (r *folderRepository) List(ctx context.Context) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.dao.db.WithContext(ctx).Order("id ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	folders := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		folders = append(folders, r.toDomain(m))
	}
	return folders, nil
}

// Create 创建文件夹
func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder) (*domain.Folder, error) {
	m := &model.Folder{Name: folder.Name}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新文件夹
func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	return r.dao.db.WithContext(ctx).
		Model(&model.Folder{}).
		Where("id = ?", folder.ID).
		Update("name", folder.Name).Error
}

// Delete 删除文件夹并将所属笔记的 folder_id 置空
func (r *folderRepository) Delete(ctx context.Context, id int64) error {
	err := r.dao.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("folder_id = ?", id).
		Update("folder_id", nil).Error
	if err != nil {
		return err
	}
	return r.dao.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Folder{}).Error
}
