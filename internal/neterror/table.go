// Package neterror 网络错误码与规范名称的对照表
package neterror

import (
	"sort"
	"sync"
)

// Code 网络错误码，0 表示成功，错误为负数
type Code int32

// UnknownName 未登记错误码对应的名称
const UnknownName = "UNKNOWN_ERROR_CODE"

// ValidateAndGetName 查询错误码名称，未登记时返回 UnknownName 和 false
func ValidateAndGetName(code Code) (string, bool) {
	name, ok := names[code]
	if !ok {
		return UnknownName, false
	}
	return name, true
}

// Valid 错误码是否登记在表中
func Valid(code Code) bool {
	_, ok := names[code]
	return ok
}

var (
	sortedOnce  sync.Once
	sortedCodes []Code
)

// Codes 返回按数值降序排列的全部错误码（NetOK 在首位）
func Codes() []Code {
	sortedOnce.Do(func() {
		sortedCodes = make([]Code, 0, len(names))
		for c := range names {
			sortedCodes = append(sortedCodes, c)
		}
		sort.Slice(sortedCodes, func(i, j int) bool { return sortedCodes[i] > sortedCodes[j] })
	})
	out := make([]Code, len(sortedCodes))
	copy(out, sortedCodes)
	return out
}

// String 返回错误码名称
func (c Code) String() string {
	name, _ := ValidateAndGetName(c)
	return name
}
