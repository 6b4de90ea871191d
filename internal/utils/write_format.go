package utils

import (
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

// WriteFormat 格式化 Go 源码并写入文件
// 使用 goimports 处理：格式化的同时整理 import 分组
// 格式化失败时写入原始内容，便于排查生成的代码问题
func WriteFormat(path string, source []byte) error {
	formatted, err := imports.Process(path, source, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		// 保留未格式化的输出用于排查
		if writeErr := os.WriteFile(path, source, 0644); writeErr != nil {
			return fmt.Errorf("写入未格式化文件失败: %w", writeErr)
		}
		return fmt.Errorf("格式化失败: %w", err)
	}

	return os.WriteFile(path, formatted, 0644)
}
