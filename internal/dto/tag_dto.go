package dto

// TagCreateRequest 用于创建标签的请求参数
type TagCreateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

// TagUpdateRequest 用于更新标签的请求参数
type TagUpdateRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}
