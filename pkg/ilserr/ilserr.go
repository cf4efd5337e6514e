// Package ilserr 提供引擎统一的错误处理框架
package ilserr

import (
	"errors"
	"fmt"
)

// Code 错误码
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInvalidInput Code = "INVALID_INPUT"
)

// EngineError 引擎错误
type EngineError struct {
	Code    Code
	Message string
	Cause   error
	Fields  map[string]interface{}
}

// Error 实现 error 接口
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// WithCause 添加原因
func (e *EngineError) WithCause(cause error) *EngineError {
	e.Cause = cause
	return e
}

// WithField 添加字段
func (e *EngineError) WithField(key string, value interface{}) *EngineError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New 创建新错误
func New(code Code, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// Is 检查错误是否为特定类型
func Is(err error, code Code) bool {
	var engErr *EngineError
	if errors.As(err, &engErr) {
		return engErr.Code == code
	}
	return false
}

// GetCode 获取错误码
func GetCode(err error) Code {
	var engErr *EngineError
	if errors.As(err, &engErr) {
		return engErr.Code
	}
	return CodeUnknown
}

// InvalidInput 创建配置/输入无效错误，用于零容量、零边长等构造期错误
func InvalidInput(field, reason string) *EngineError {
	return New(CodeInvalidInput, fmt.Sprintf("字段 '%s' 无效: %s", field, reason)).WithField("field", field)
}
