// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// ListRows 根据过滤条件获取反规格化的笔记行
	ListRows(ctx context.Context, filter NoteFilter) ([]*NoteRow, error)

	// GetRows 获取单条笔记的全部反规格化行
	GetRows(ctx context.Context, id int64) ([]*NoteRow, error)

	// Exists 判断笔记是否存在
	Exists(ctx context.Context, id int64) (bool, error)

	// Insert 创建笔记并返回自增ID
	Insert(ctx context.Context, set *NoteSet) (int64, error)

	// Update 更新笔记的标量字段
	Update(ctx context.Context, id int64, set *NoteSet) error

	// ReplaceTags 重建笔记的标签关联（先删后插）
	ReplaceTags(ctx context.Context, id int64, tagIDs []int64) error

	// Delete 删除笔记及其标签关联
	Delete(ctx context.Context, id int64) error

	// DeleteOrphanAssociations 清理指向已删除笔记或标签的关联
	DeleteOrphanAssociations(ctx context.Context) (int64, error)
}

// FolderRepository 文件夹仓储接口
type FolderRepository interface {
	// GetByID 根据ID获取文件夹
	GetByID(ctx context.Context, id int64) (*Folder, error)

	// List 获取文件夹列表
	List(ctx context.Context) ([]*Folder, error)

	// Create 创建文件夹
	Create(ctx context.Context, folder *Folder) (*Folder, error)

	// Update 更新文件夹
	Update(ctx context.Context, folder *Folder) error

	// Delete 删除文件夹并将所属笔记的 folder_id 置空
	Delete(ctx context.Context, id int64) error
}

// TagRepository 标签仓储接口
type TagRepository interface {
	// GetByID 根据ID获取标签
	GetByID(ctx context.Context, id int64) (*Tag, error)

	// List 获取标签列表
	List(ctx context.Context) ([]*Tag, error)

	// Create 创建标签
	Create(ctx context.Context, tag *Tag) (*Tag, error)

	// Update 更新标签
	Update(ctx context.Context, tag *Tag) error

	// Delete 删除标签并移除其全部关联
	Delete(ctx context.Context, id int64) error
}
