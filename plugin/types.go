package plugin

import (
	"go/ast"
	"go/token"

	"github.com/donutnomad/gg"
)

// TargetKind 表示注解目标的类型
type TargetKind int

const (
	TargetType   TargetKind = iota + 1 // 命名类型声明（newtype 的声明式输入）
	TargetStruct                       // 结构体
	TargetVar                          // 包级变量
	TargetConst                        // 包级常量
)

func (k TargetKind) String() string {
	switch k {
	case TargetType:
		return "type"
	case TargetStruct:
		return "struct"
	case TargetVar:
		return "var"
	case TargetConst:
		return "const"
	default:
		return "unknown"
	}
}

// ParamDef 定义注解参数的元信息
type ParamDef struct {
	Name        string // 参数名称
	Required    bool   // 是否必填
	Default     string // 默认值（如果不是必填）
	Description string // 参数描述
}

// Annotation 表示解析后的注解
type Annotation struct {
	Name   string            // 注解名称，如 "WrapUint", "WrapStr"
	Params map[string]string // 注解参数，如 bits=`32`
	Raw    string            // 原始注解文本
}

// Target 表示注解的目标
type Target struct {
	Kind        TargetKind // 目标类型
	Name        string     // 名称（类型名、变量名、常量名）
	PackageName string     // 包名
	FilePath    string     // 文件路径
	Position    token.Pos  // 位置信息

	// Underlying 是类型声明的底层类型源码文本（仅 TargetType/TargetStruct）
	// 例如 "uint32"、"string"、"[16]byte"
	Underlying string

	// AST 节点（可选，用于深度解析）
	Node ast.Node
}

// AnnotatedTarget 表示带注解的目标
type AnnotatedTarget struct {
	Target       *Target       // 目标信息
	Annotations  []*Annotation // 注解列表
	ParsedParams any           // 解析后的参数结构体
}

// ScanResult 表示扫描结果
type ScanResult struct {
	Types   []*AnnotatedTarget // 带注解的命名类型声明
	Structs []*AnnotatedTarget // 带注解的结构体
	Vars    []*AnnotatedTarget // 带注解的包级变量
	Consts  []*AnnotatedTarget // 带注解的包级常量

	// PackageConfigs 包级配置
	// key: 包目录路径
	PackageConfigs map[string]*PackageConfig
}

// All 返回所有带注解的目标
func (r *ScanResult) All() []*AnnotatedTarget {
	result := make([]*AnnotatedTarget, 0, len(r.Types)+len(r.Structs)+len(r.Vars)+len(r.Consts))
	result = append(result, r.Types...)
	result = append(result, r.Structs...)
	result = append(result, r.Vars...)
	result = append(result, r.Consts...)
	return result
}

// ByAnnotation 按注解名称过滤
func (r *ScanResult) ByAnnotation(name string) []*AnnotatedTarget {
	var result []*AnnotatedTarget
	for _, t := range r.All() {
		for _, a := range t.Annotations {
			if a.Name == name {
				result = append(result, t)
				break
			}
		}
	}
	return result
}

// GenerateContext 生成上下文，传递给 Generator
type GenerateContext struct {
	Targets        []*AnnotatedTarget        // 该 Generator 需要处理的目标
	AllTargets     []*AnnotatedTarget        // 本次扫描的全部目标（供跨类型引用校验）
	PackageConfigs map[string]*PackageConfig // 包级配置，key: 包目录路径
	DefaultOutput  string                    // 命令行指定的默认输出路径（最低优先级）
	Verbose        bool                      // 详细输出
}

// FindTarget 在扫描结果中按包名和名称查找目标
// 未设置 AllTargets 时退回到 Targets
func (c *GenerateContext) FindTarget(pkgName, name string) *Target {
	targets := c.AllTargets
	if len(targets) == 0 {
		targets = c.Targets
	}
	for _, at := range targets {
		if at.Target.PackageName == pkgName && at.Target.Name == name {
			return at.Target
		}
	}
	return nil
}

// GetPackageConfig 获取指定包目录的配置
func (c *GenerateContext) GetPackageConfig(pkgDir string) *PackageConfig {
	if c.PackageConfigs == nil {
		return nil
	}
	return c.PackageConfigs[pkgDir]
}

// GenerateResult 生成结果
// Generator 返回 gg 定义或原始源码，由聚合器统一处理
type GenerateResult struct {
	// Definitions 是生成的 gg 定义
	// key: 输出文件路径（相对路径或绝对路径）
	// value: gg.Generator 定义
	Definitions map[string]*gg.Generator

	// RawOutputs 是生成的原始 Go 源码
	// 不使用 gg 构建定义的生成器可以直接返回源码字节，
	// 聚合器会通过 ParseSourceToGG 转换后参与合并
	RawOutputs map[string][]byte

	// Errors 错误列表
	Errors []error

	// Skipped 跳过的数量
	Skipped int
}

// PackageConfig 包级生成配置
// 通过 // go:newtypegen: 注释定义
// 示例:
//
//	// go:newtypegen: -output `$FILE_wrap`
//	// go:newtypegen: plugin:uintgen -output `ids_wrap` plugin:strgen -output `names_wrap`
type PackageConfig struct {
	PackageDir string // 包目录路径

	// DefaultOutput 默认输出路径（对所有插件生效）
	// 来自: // go:newtypegen: -output `xxx`
	DefaultOutput string

	// PluginOutputs 插件特定的输出路径
	// key: 插件名（小写）, value: 输出路径
	// 来自: // go:newtypegen: plugin:uintgen -output `xxx`
	PluginOutputs map[string]string
}

// GetPluginOutput 获取指定插件的输出路径
// 优先返回插件特定配置，其次返回默认配置，最后返回空字符串
func (c *PackageConfig) GetPluginOutput(pluginName string) string {
	if c == nil {
		return ""
	}
	if output, ok := c.PluginOutputs[pluginName]; ok {
		return output
	}
	return c.DefaultOutput
}

// NewGenerateResult 创建新的生成结果
func NewGenerateResult() *GenerateResult {
	return &GenerateResult{
		Definitions: make(map[string]*gg.Generator),
	}
}

// AddDefinition 添加 gg 定义
func (r *GenerateResult) AddDefinition(path string, gen *gg.Generator) {
	if r.Definitions == nil {
		r.Definitions = make(map[string]*gg.Generator)
	}
	r.Definitions[path] = gen
}

// AddRawOutput 添加原始源码输出
func (r *GenerateResult) AddRawOutput(path string, source []byte) {
	if r.RawOutputs == nil {
		r.RawOutputs = make(map[string][]byte)
	}
	r.RawOutputs[path] = source
}

// AddError 添加错误
func (r *GenerateResult) AddError(err error) {
	r.Errors = append(r.Errors, err)
}

// HasErrors 检查是否有错误
func (r *GenerateResult) HasErrors() bool {
	return len(r.Errors) > 0
}
