package code

import "net/http"

// 通用状态码
var (
	Success = NewSuss(0, lang{
		en:    "Success",
		zh_cn: "成功",
	})
	SuccessCreated = NewSuss(1, lang{
		en:    "Created",
		zh_cn: "创建成功",
	}, http.StatusCreated)
	SuccessNoContent = NewSuss(2, lang{
		en:    "No Content",
		zh_cn: "无内容",
	}, http.StatusNoContent)
	Failed = NewError(1, lang{
		en:    "Failed",
		zh_cn: "失败",
	})

	ErrorServerInternal = NewError(10000, lang{
		en:    "Server internal error",
		zh_cn: "服务内部错误",
	}, http.StatusInternalServerError)
	ErrorInvalidParams = NewError(10001, lang{
		en:    "Invalid request parameters",
		zh_cn: "入参错误",
	}, http.StatusBadRequest)
	ErrorNotFoundAPI = NewError(10002, lang{
		en:    "API not found",
		zh_cn: "接口不存在",
	}, http.StatusNotFound)
	ErrorTooManyRequests = NewError(10003, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	}, http.StatusTooManyRequests)
	ErrorDBQuery = NewError(10004, lang{
		en:    "Database query error",
		zh_cn: "数据库查询错误",
	}, http.StatusInternalServerError)
)

// 笔记相关状态码
var (
	ErrorNoteNotFound = NewError(20000, lang{
		en:    "Note not found",
		zh_cn: "笔记不存在",
	}, http.StatusNotFound)
	ErrorNoteCreateFail = NewError(20001, lang{
		en:    "Failed to create note",
		zh_cn: "创建笔记失败",
	}, http.StatusInternalServerError)
	ErrorNoteUpdateFail = NewError(20002, lang{
		en:    "Failed to update note",
		zh_cn: "更新笔记失败",
	}, http.StatusInternalServerError)
	ErrorNoteDeleteFail = NewError(20003, lang{
		en:    "Failed to delete note",
		zh_cn: "删除笔记失败",
	}, http.StatusInternalServerError)
)

// 文件夹与标签相关状态码
var (
	ErrorFolderNotFound = NewError(20100, lang{
		en:    "Folder not found",
		zh_cn: "文件夹不存在",
	}, http.StatusNotFound)
	ErrorFolderCreateFail = NewError(20101, lang{
		en:    "Failed to create folder",
		zh_cn: "创建文件夹失败",
	}, http.StatusInternalServerError)
	ErrorFolderUpdateFail = NewError(20102, lang{
		en:    "Failed to update folder",
		zh_cn: "更新文件夹失败",
	}, http.StatusInternalServerError)
	ErrorFolderDeleteFail = NewError(20103, lang{
		en:    "Failed to delete folder",
		zh_cn: "删除文件夹失败",
	}, http.StatusInternalServerError)

	ErrorTagNotFound = NewError(20200, lang{
		en:    "Tag not found",
		zh_cn: "标签不存在",
	}, http.StatusNotFound)
	ErrorTagCreateFail = NewError(20201, lang{
		en:    "Failed to create tag",
		zh_cn: "创建标签失败",
	}, http.StatusInternalServerError)
	ErrorTagUpdateFail = NewError(20202, lang{
		en:    "Failed to update tag",
		zh_cn: "更新标签失败",
	}, http.StatusInternalServerError)
	ErrorTagDeleteFail = NewError(20203, lang{
		en:    "Failed to delete tag",
		zh_cn: "删除标签失败",
	}, http.StatusInternalServerError)
)
