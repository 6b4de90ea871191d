package example

// 示例 0: 基本文本 newtype
// @WrapStr
type Email string

// 示例 1: 同一个包里的多个文本 newtype 默认合并到同一个输出文件
// @WrapStr
type Username string

// 示例 2: 自定义输出文件
// @WrapStr(output=`$FILE_wrap`)
type Country string
