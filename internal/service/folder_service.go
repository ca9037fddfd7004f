package service

import (
	"context"
	"errors"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	"github.com/haierkeys/note-organizer-service/pkg/code"

	"gorm.io/gorm"
)

// FolderService 定义文件夹业务服务接口
type FolderService interface {
	// List 获取文件夹列表
	List(ctx context.Context) ([]*FolderDTO, error)

	// Get 获取单个文件夹
	Get(ctx context.Context, id int64) (*FolderDTO, error)

	// Create 创建文件夹
	Create(ctx context.Context, params *dto.FolderCreateRequest) (*FolderDTO, error)

	// Update 更新文件夹
	Update(ctx context.Context, id int64, params *dto.FolderUpdateRequest) (*FolderDTO, error)

	// Delete 删除文件夹并解除笔记归属
	Delete(ctx context.Context, id int64) error
}

// FolderDTO 文件夹数据传输对象
type FolderDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// folderService 实现 FolderService 接口
type folderService struct {
	folderRepo domain.FolderRepository
}

// NewFolderService 创建 FolderService 实例
func NewFolderService(folderRepo domain.FolderRepository) FolderService {
	return &folderService{folderRepo: folderRepo}
}

func (s *folderService) domainToDTO(folder *domain.Folder) *FolderDTO {
	if folder == nil {
		return nil
	}
	return &FolderDTO{
		ID:   folder.ID,
		Name: folder.Name,
	}
}

// List 获取文件夹列表
func (s *folderService) List(ctx context.Context) ([]*FolderDTO, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	list := make([]*FolderDTO, 0, len(folders))
	for _, folder := range folders {
		list = append(list, s.domainToDTO(folder))
	}
	return list, nil
}

// Get 获取单个文件夹
func (s *folderService) Get(ctx context.Context, id int64) (*FolderDTO, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorFolderNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

// Create 创建文件夹
func (s *folderService) Create(ctx context.Context, params *dto.FolderCreateRequest) (*FolderDTO, error) {
	folder, err := s.folderRepo.Create(ctx, &domain.Folder{Name: params.Name})
	if err != nil {
		return nil, code.ErrorFolderCreateFail.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

// Update 更新文件夹
func (s *folderService) Update(ctx context.Context, id int64, params *dto.FolderUpdateRequest) (*FolderDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	err := s.folderRepo.Update(ctx, &domain.Folder{ID: id, Name: params.Name})
	if err != nil {
		return nil, code.ErrorFolderUpdateFail.WithDetails(err.Error())
	}
	return s.Get(ctx, id)
}

// Delete 删除文件夹，所属笔记的归属被置空
func (s *folderService) Delete(ctx context.Context, id int64) error {
	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return code.ErrorFolderDeleteFail.WithDetails(err.Error())
	}
	return nil
}
