package service

import (
	"context"
	"errors"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	"github.com/haierkeys/note-organizer-service/pkg/code"

	"gorm.io/gorm"
)

// TagService 定义标签业务服务接口
type TagService interface {
	// List 获取标签列表
	List(ctx context.Context) ([]*TagDTO, error)

	// Get 获取单个标签
	Get(ctx context.Context, id int64) (*TagDTO, error)

	// Create 创建标签
	Create(ctx context.Context, params *dto.TagCreateRequest) (*TagDTO, error)

	// Update 更新标签
	Update(ctx context.Context, id int64, params *dto.TagUpdateRequest) (*TagDTO, error)

	// Delete 删除标签并移除其全部关联
	Delete(ctx context.Context, id int64) error
}

// TagDTO 标签数据传输对象
type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// tagService 实现 TagService 接口
type tagService struct {
	tagRepo domain.TagRepository
}

// NewTagService 创建 TagService 实例
func NewTagService(tagRepo domain.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) domainToDTO(tag *domain.Tag) *TagDTO {
	if tag == nil {
		return nil
	}
	return &TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

// List 获取标签列表
func (s *tagService) List(ctx context.Context) ([]*TagDTO, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	list := make([]*TagDTO, 0, len(tags))
	for _, tag := range tags {
		list = append(list, s.domainToDTO(tag))
	}
	return list, nil
}

// Get 获取单个标签
func (s *tagService) Get(ctx context.Context, id int64) (*TagDTO, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorTagNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

// Create 创建标签
func (s *tagService) Create(ctx context.Context, params *dto.TagCreateRequest) (*TagDTO, error) {
	tag, err := s.tagRepo.Create(ctx, &domain.Tag{Name: params.Name})
	if err != nil {
		return nil, code.ErrorTagCreateFail.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

// Update 更新标签
func (s *tagService) Update(ctx context.Context, id int64, params *dto.TagUpdateRequest) (*TagDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	err := s.tagRepo.Update(ctx, &domain.Tag{ID: id, Name: params.Name})
	if err != nil {
		return nil, code.ErrorTagUpdateFail.WithDetails(err.Error())
	}
	return s.Get(ctx, id)
}

// Delete 删除标签，其笔记关联一并移除
func (s *tagService) Delete(ctx context.Context, id int64) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return code.ErrorTagDeleteFail.WithDetails(err.Error())
	}
	return nil
}
