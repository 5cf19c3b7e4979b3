package errs

import (
	"errors"
	"fmt"
)

// Kind 错误分类，用于映射响应状态码
type Kind int

const (
	// Unknown 未分类的错误
	Unknown Kind = iota
	// Validation 请求缺少必填参数（客户端错误）
	Validation
	// Fetch 页面内容抓取失败（上游错误）
	Fetch
	// Extraction 模型调用失败或返回结构不合法
	Extraction
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Fetch:
		return "fetch"
	case Extraction:
		return "extraction"
	default:
		return "unknown"
	}
}

// AppError 携带分类、可读信息和原始错误
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// New 创建不带原始错误的 AppError
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap 创建包装原始错误的 AppError
func Wrap(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// KindOf 返回错误链中第一个 AppError 的分类
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}
