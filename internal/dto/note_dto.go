// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

// NoteListRequest Optional list filters, combined with AND
// NoteListRequest 笔记列表的可选过滤参数，按 AND 组合
type NoteListRequest struct {
	Search   string `json:"searchTerm" form:"searchTerm"`
	FolderID *int64 `json:"folderId" form:"folderId"`
	TagID    *int64 `json:"tagId" form:"tagId"`
}

// NoteCreateRequest Request parameters for creating a note
// NoteCreateRequest 用于创建笔记的请求参数
type NoteCreateRequest struct {
	Title    string  `json:"title" form:"title" binding:"required"`
	Content  string  `json:"content" form:"content"`
	FolderID *int64  `json:"folderId" form:"folderId"`
	Tags     []int64 `json:"tags" form:"tags"`
}

// NoteUpdateRequest Request parameters for updating a note
// NoteUpdateRequest 用于更新笔记的请求参数
type NoteUpdateRequest struct {
	Title    string  `json:"title" form:"title" binding:"required"`
	Content  string  `json:"content" form:"content"`
	FolderID *int64  `json:"folderId" form:"folderId"`
	Tags     []int64 `json:"tags" form:"tags"`
}
