// Package typeparse 解析 newtype 声明式输入的底层类型
//
// 注解目标是一个命名类型声明（type UserID uint64），
// 本包负责把声明的底层类型文本解析为受支持的表示（Kind），
// 并校验位宽参数与声明是否一致。
package typeparse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind 表示受支持的底层表示
type Kind int

const (
	KindInvalid Kind = iota

	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128 // Go 没有原生 uint128，声明为大端 [16]byte
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint128:
		return "uint128"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// GoType 返回该表示在 Go 源码中的类型文本
func (k Kind) GoType() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint128:
		return "[16]byte"
	case KindString:
		return "string"
	default:
		return ""
	}
}

// IsUint 是否为无符号整数表示（含 128 位）
func (k Kind) IsUint() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint128:
		return true
	default:
		return false
	}
}

// Bits 返回整数表示的位宽
func (k Kind) Bits() int {
	switch k {
	case KindUint8:
		return 8
	case KindUint16:
		return 16
	case KindUint32:
		return 32
	case KindUint64:
		return 64
	case KindUint128:
		return 128
	default:
		return 0
	}
}

// Suffix 返回转换方法名中使用的首字母大写形式
// 例如 KindUint32 -> "Uint32"，用于生成 Uint32() 取值方法
func (k Kind) Suffix() string {
	switch k {
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindUint128:
		return "Uint128"
	default:
		return ""
	}
}

// MaxDecimal 返回该位宽能表示的最大十进制值文本（用于生成的文档注释）
func (k Kind) MaxDecimal() string {
	switch k {
	case KindUint8:
		return "255"
	case KindUint16:
		return "65535"
	case KindUint32:
		return "4294967295"
	case KindUint64:
		return "18446744073709551615"
	case KindUint128:
		return "340282366920938463463374607431768211455"
	default:
		return ""
	}
}

// uintKinds 底层类型文本 -> Kind
var uintKinds = map[string]Kind{
	"uint8":    KindUint8,
	"uint16":   KindUint16,
	"uint32":   KindUint32,
	"uint64":   KindUint64,
	"[16]byte": KindUint128,
}

// ResolveUint 解析无符号整数 newtype 的底层类型
// underlying: 声明的底层类型文本（来自 AST）
// bits: 注解的 bits 参数，0 表示未指定（按声明推断）
//
// 规则:
//   - uint8/uint16/uint32/uint64 直接映射；bits 如指定必须与声明一致
//   - [16]byte 必须显式指定 bits=128（大端字节序）
func ResolveUint(underlying string, bits int) (Kind, error) {
	kind, ok := uintKinds[normalize(underlying)]
	if !ok {
		return KindInvalid, fmt.Errorf("不支持的底层类型 %q（支持: uint8/uint16/uint32/uint64/[16]byte）", underlying)
	}

	if kind == KindUint128 && bits != 128 {
		return KindInvalid, fmt.Errorf("底层类型 [16]byte 必须显式声明 bits=128")
	}

	if bits != 0 && bits != kind.Bits() {
		return KindInvalid, fmt.Errorf("bits=%d 与底层类型 %s 不一致", bits, underlying)
	}

	return kind, nil
}

// ResolveString 解析文本 newtype 的底层类型
func ResolveString(underlying string) (Kind, error) {
	if normalize(underlying) != "string" {
		return KindInvalid, fmt.Errorf("不支持的底层类型 %q（文本 newtype 仅支持 string）", underlying)
	}
	return KindString, nil
}

// normalize 去除底层类型文本中的空白
func normalize(underlying string) string {
	return strings.Join(strings.Fields(underlying), "")
}

// SameUnderlying 判断两个底层类型文本是否表示同一种类型
// 跨类型转换要求两侧共享同一底层表示
func SameUnderlying(a, b string) bool {
	return normalize(a) == normalize(b)
}

// goKeywords Go 关键词集合，接收者命名时需要规避
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// ReceiverName 根据类型名生成接收者变量名
// UserID -> u, Email -> e
// 单个小写字母不可能是 Go 关键词，无需规避
func ReceiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError {
		return "v"
	}
	return string(unicode.ToLower(r))
}

// ValidateWrapperName 校验 newtype 名称是否为合法的 Go 标识符
// AST 解析保证了语法合法性，这里额外拒绝下划线开头（生成的构造函数会导出）
func ValidateWrapperName(name string) error {
	if name == "" {
		return fmt.Errorf("newtype 名称为空")
	}
	if strings.HasPrefix(name, "_") {
		return fmt.Errorf("newtype 名称 %q 不能以下划线开头", name)
	}
	if goKeywords[name] {
		return fmt.Errorf("newtype 名称 %q 是 Go 关键词", name)
	}
	return nil
}
