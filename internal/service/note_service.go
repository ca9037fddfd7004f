// Package service 实现业务逻辑层
package service

import (
	"context"

	"github.com/haierkeys/note-organizer-service/internal/domain"
	"github.com/haierkeys/note-organizer-service/internal/dto"
	"github.com/haierkeys/note-organizer-service/pkg/code"
	"github.com/haierkeys/note-organizer-service/pkg/timex"
)

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// List 按过滤条件获取笔记列表
	List(ctx context.Context, params *dto.NoteListRequest) ([]*NoteDTO, error)

	// Get 获取单条笔记
	Get(ctx context.Context, id int64) (*NoteDTO, error)

	// Create 创建笔记
	Create(ctx context.Context, params *dto.NoteCreateRequest) (*NoteDTO, error)

	// Update 更新笔记
	Update(ctx context.Context, id int64, params *dto.NoteUpdateRequest) (*NoteDTO, error)

	// Delete 删除笔记
	Delete(ctx context.Context, id int64) error
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Created    timex.Time `json:"created"`
	FolderID   *int64     `json:"folderId,omitempty"`
	FolderName *string    `json:"folderName,omitempty"`
	Tags       []*TagDTO  `json:"tags"`
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo domain.NoteRepository
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository) NoteService {
	return &noteService{noteRepo: noteRepo}
}

// List 按过滤条件获取笔记列表
func (s *noteService) List(ctx context.Context, params *dto.NoteListRequest) ([]*NoteDTO, error) {
	filter := domain.NoteFilter{
		SearchTerm: params.Search,
		FolderID:   params.FolderID,
		TagID:      params.TagID,
	}
	rows, err := s.noteRepo.ListRows(ctx, filter)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return hydrateNotes(rows), nil
}

// Get 获取单条笔记
func (s *noteService) Get(ctx context.Context, id int64) (*NoteDTO, error) {
	rows, err := s.noteRepo.GetRows(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	notes := hydrateNotes(rows)
	if len(notes) == 0 {
		return nil, code.ErrorNoteNotFound
	}
	return notes[0], nil
}

// Create 创建笔记，写入后重新读取以返回完整对象
func (s *noteService) Create(ctx context.Context, params *dto.NoteCreateRequest) (*NoteDTO, error) {
	set := &domain.NoteSet{
		Title:    params.Title,
		Content:  params.Content,
		FolderID: params.FolderID,
		TagIDs:   params.Tags,
	}
	id, err := s.noteRepo.Insert(ctx, set)
	if err != nil {
		return nil, code.ErrorNoteCreateFail.WithDetails(err.Error())
	}
	return s.Get(ctx, id)
}

// Update 更新笔记：先更新标量字段，再重建标签关联，最后重新读取
// 多步写入不在同一事务内，孤儿关联由后台清理任务兜底
func (s *noteService) Update(ctx context.Context, id int64, params *dto.NoteUpdateRequest) (*NoteDTO, error) {
	exists, err := s.noteRepo.Exists(ctx, id)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if !exists {
		return nil, code.ErrorNoteNotFound
	}

	set := &domain.NoteSet{
		Title:    params.Title,
		Content:  params.Content,
		FolderID: params.FolderID,
	}
	if err := s.noteRepo.Update(ctx, id, set); err != nil {
		return nil, code.ErrorNoteUpdateFail.WithDetails(err.Error())
	}
	if err := s.noteRepo.ReplaceTags(ctx, id, params.Tags); err != nil {
		return nil, code.ErrorNoteUpdateFail.WithDetails(err.Error())
	}
	return s.Get(ctx, id)
}

// Delete 删除笔记，目标不存在时同样视为成功
func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return code.ErrorNoteDeleteFail.WithDetails(err.Error())
	}
	return nil
}
