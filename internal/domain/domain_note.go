// Package domain 定义领域模型和接口
package domain

import "github.com/haierkeys/note-organizer-service/pkg/timex"

// Note 笔记领域模型
type Note struct {
	ID       int64
	Title    string
	Content  string
	FolderID *int64
	Created  timex.Time
}

// NoteRow is one denormalized row of a note joined with its optional
// folder and one of its tags. A note with k tags produces k rows, a
// note with no tags produces one row with nil tag fields.
// NoteRow 是笔记与文件夹、标签左连接后的一行反规格化数据
type NoteRow struct {
	ID         int64      `gorm:"column:id"`
	Title      string     `gorm:"column:title"`
	Content    string     `gorm:"column:content"`
	Created    timex.Time `gorm:"column:created"`
	FolderID   *int64     `gorm:"column:folder_id"`
	FolderName *string    `gorm:"column:folder_name"`
	TagID      *int64     `gorm:"column:tag_id"`
	TagName    *string    `gorm:"column:tag_name"`
}

// NoteFilter 笔记列表的可选过滤条件，按 AND 组合
type NoteFilter struct {
	SearchTerm string
	FolderID   *int64
	TagID      *int64
}

// IsZero 判断是否没有任何过滤条件
func (f NoteFilter) IsZero() bool {
	return f.SearchTerm == "" && f.FolderID == nil && f.TagID == nil
}

// NoteSet 笔记的可写字段集合，用于创建和更新
type NoteSet struct {
	Title    string
	Content  string
	FolderID *int64
	TagIDs   []int64
}
