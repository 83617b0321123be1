// Package util 文件发现相关的辅助函数。
// 路径/通配符解析只发生在这里和各入口程序里，核心组件只接收已解析的路径。
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindFile 把文件名或通配符模式解析为一个具体路径。
// 查找顺序：原样路径 → 在各目录下拼接 → 在各目录下按模式通配。
// 通配命中多个文件时取修改时间最新的；名字里带 ~ 的（Office 锁文件）排除。
func FindFile(pattern string, dirs ...string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("文件名为空")
	}

	if _, err := os.Stat(pattern); err == nil {
		return pattern, nil
	}
	for _, d := range dirs {
		p := filepath.Join(d, pattern)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	var matches []string
	search := append([]string{"."}, dirs...)
	for _, d := range search {
		found, err := filepath.Glob(filepath.Join(d, pattern))
		if err != nil {
			return "", fmt.Errorf("模式 %q 无效: %w", pattern, err)
		}
		matches = append(matches, found...)
	}

	newest := ""
	var newestMod int64
	for _, m := range matches {
		if strings.Contains(filepath.Base(m), "~") {
			continue
		}
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = m
			newestMod = mod
		}
	}
	if newest == "" {
		return "", fmt.Errorf("找不到匹配 %q 的文件（目录: %s）", pattern, strings.Join(dirs, ", "))
	}
	return newest, nil
}

// EnsureDir 确保目录存在
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
