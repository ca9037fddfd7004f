package dto

// FolderCreateRequest 用于创建文件夹的请求参数
type FolderCreateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// FolderUpdateRequest 用于更新文件夹的请求参数
type FolderUpdateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}
