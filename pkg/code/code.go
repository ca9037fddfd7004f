// Package code 定义带语言的业务状态码
package code

import (
	"fmt"
	"net/http"
)

type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// HTTP 状态码
	statusCode int
	// 错误消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers an error code, panics on duplicates
// NewError 注册错误码，重复时 panic
func NewError(code int, l lang, statusCode ...int) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()

	c := &Code{code: code, status: false, statusCode: http.StatusOK, Lang: l}
	if len(statusCode) > 0 {
		c.statusCode = statusCode[0]
	}
	return c
}

var sussCodes = map[int]string{}

// NewSuss registers a success code
// NewSuss 注册成功码
func NewSuss(code int, l lang, statusCode ...int) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()

	c := &Code{code: code, status: true, statusCode: http.StatusOK, Lang: l}
	if len(statusCode) > 0 {
		c.statusCode = statusCode[0]
	}
	return c
}

// Clone 创建一个新的 Code 副本
// WithData / WithDetails 修改的是副本，注册的原始对象保持干净
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		status:     e.status,
		statusCode: e.statusCode,
		Lang:       e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData 返回携带数据的副本
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails 返回携带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// StatusCode 返回对应的 HTTP 状态码
func (e *Code) StatusCode() int {
	return e.statusCode
}
