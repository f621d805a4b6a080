package config

import (
	"errors"
	"fmt"
)

// ErrMissingURL 合并后仍然没有 url
var ErrMissingURL = errors.New("api url is required (use --url or a config profile)")

// ErrInvalidParameters parameters 字段不是合法的 JSON 对象 / TOML 表
var ErrInvalidParameters = errors.New("invalid parameters")

// SectionNotFoundError 配置文件中不存在该 tag
type SectionNotFoundError struct {
	Path string
	Tag  string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("the '%s' section is not found in %s", e.Tag, e.Path)
}

// MissingKeyError tag 存在但缺少必填字段
type MissingKeyError struct {
	Tag string
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("section '%s': missing required key '%s'", e.Tag, e.Key)
}
