package dao

import (
	"context"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/model"
	"github.com/haierkeys/note-organizer-service/pkg/convert"
)

// tagRepository 实现 domain.TagRepository 接口
type tagRepository struct {
	dao *Dao
}

// NewTagRepository 创建 TagRepository 实例
func NewTagRepository(dao *Dao) domain.TagRepository {
	return &tagRepository{dao: dao}
}

func (r *tagRepository) toDomain(m *model.Tag) *domain.Tag {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Tag{}).(*domain.Tag)
}

// GetByID 根据ID获取标签
func (r *tagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var m model.Tag
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// List 获取标签列表
func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	var ms []*model.Tag
	err := r.dao.db.WithContext(ctx).Order("id ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	tags := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		tags = append(tags, r.toDomain(m))
	}
	return tags, nil
}

// Create 创建标签
func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	m := &model.Tag{Name: tag.Name}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新标签
func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	return r.dao.db.WithContext(ctx).
		Model(&model.Tag{}).
		Where("id = ?", tag.ID).
		Update("name", tag.Name).Error
}

// Delete 删除标签并移除其全部关联
func (r *tagRepository) Delete(ctx context.Context, id int64) error {
	err := r.dao.db.WithContext(ctx).
		Where("tag_id = ?", id).
		Delete(&model.NoteTag{}).Error
	if err != nil {
		return err
	}
	return r.dao.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Tag{}).Error
}
