package strgen

import (
	"fmt"
	"path/filepath"

	"github.com/donutnomad/gg"
	"github.com/donutnomad/newtypegen/internal/typeparse"
	"github.com/donutnomad/newtypegen/plugin"
)

const generatorName = "strgen"

// StrGenerator 为文本 newtype 生成包装代码
// 注解目标是命名类型声明: type Email string
//
// 所有权语义:
//   - 传入 string: 已拥有的不可变文本，直接接管（零拷贝）
//   - 传入 []byte: 借用的可变视图，构造时复制一份
type StrGenerator struct {
	plugin.BaseGenerator
}

func NewStrGenerator() *StrGenerator {
	gen := &StrGenerator{
		BaseGenerator: *plugin.NewBaseGenerator(
			generatorName,
			[]string{"WrapStr"},
			[]plugin.TargetKind{plugin.TargetType},
		),
	}
	gen.SetPriority(60)
	return gen
}

// Generate 执行代码生成
func (g *StrGenerator) Generate(ctx *plugin.GenerateContext) (*plugin.GenerateResult, error) {
	result := plugin.NewGenerateResult()

	if len(ctx.Targets) == 0 {
		return result, nil
	}

	// 按输出路径分组
	fileTargets := make(map[string][]*strInfo)

	// 包级重复检测
	pkgTypeNames := make(map[string]map[string]bool)

	for _, at := range ctx.Targets {
		ann := plugin.GetAnnotation(at.Annotations, "WrapStr")
		if ann == nil {
			result.Skipped++
			continue
		}

		if err := typeparse.ValidateWrapperName(at.Target.Name); err != nil {
			result.AddError(fmt.Errorf("类型 %s: %w", at.Target.Name, err))
			continue
		}

		if _, err := typeparse.ResolveString(at.Target.Underlying); err != nil {
			result.AddError(fmt.Errorf("类型 %s: %w", at.Target.Name, err))
			continue
		}

		pkgKey := at.Target.PackageName
		if pkgTypeNames[pkgKey] == nil {
			pkgTypeNames[pkgKey] = make(map[string]bool)
		}
		if pkgTypeNames[pkgKey][at.Target.Name] {
			result.AddError(fmt.Errorf("包 %s 中类型 %s 重复注解", pkgKey, at.Target.Name))
			continue
		}
		pkgTypeNames[pkgKey][at.Target.Name] = true

		// 计算输出路径
		pkgConfig := ctx.GetPackageConfig(filepath.Dir(at.Target.FilePath))
		outputPath := plugin.GetOutputPath(at.Target, ann, "generate.go", pkgConfig, g.Name(), ctx.DefaultOutput)

		fileTargets[outputPath] = append(fileTargets[outputPath], &strInfo{
			name:    at.Target.Name,
			recv:    typeparse.ReceiverName(at.Target.Name),
			pkgName: at.Target.PackageName,
		})

		if ctx.Verbose {
			fmt.Printf("[strgen] 处理 type %s -> %s\n", at.Target.Name, outputPath)
		}
	}

	for outputPath, infos := range fileTargets {
		gen, err := g.generateDefinition(infos)
		if err != nil {
			result.AddError(fmt.Errorf("生成 %s 失败: %w", outputPath, err))
			continue
		}
		result.AddDefinition(outputPath, gen)

		if ctx.Verbose {
			fmt.Printf("[strgen] 生成定义 %s\n", outputPath)
		}
	}

	return result, nil
}

type strInfo struct {
	name    string
	recv    string
	pkgName string
}

// generateDefinition 生成 gg 定义
func (g *StrGenerator) generateDefinition(infos []*strInfo) (*gg.Generator, error) {
	if len(infos) == 0 {
		return nil, fmt.Errorf("没有类型需要生成")
	}

	gen := gg.New()
	gen.SetPackage(infos[0].pkgName)
	gen.P("strings")

	body := gen.Body()

	for _, info := range infos {
		emitString(body, info)
	}

	return gen, nil
}

// emitString 生成单个文本 newtype 的包装代码
func emitString(body *gg.Group, info *strInfo) {
	name := info.name
	recv := info.recv

	// 构造: 接管 string（零拷贝），复制 []byte
	body.AddLine()
	body.AddString(fmt.Sprintf("// New%s adopts an already-owned string.", name))
	body.AddString("// Strings are immutable, so adoption never copies the text.")
	body.AddString(fmt.Sprintf("func New%s(s string) %s {", name, name))
	body.AddString(fmt.Sprintf("\treturn %s(s)", name))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// %sFromBytes copies borrowed bytes into owned text.", name))
	body.AddString("// Later writes to b do not affect the returned value.")
	body.AddString(fmt.Sprintf("func %sFromBytes(b []byte) %s {", name, name))
	body.AddString(fmt.Sprintf("\treturn %s(b)", name))
	body.AddString("}")

	// 取值
	body.AddLine()
	body.AddString("// Str returns a view of the underlying text without copying.")
	body.AddString(fmt.Sprintf("func (%s %s) Str() string {", recv, name))
	body.AddString(fmt.Sprintf("\treturn string(%s)", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString("// Len returns the length of the text in bytes.")
	body.AddString(fmt.Sprintf("func (%s %s) Len() int {", recv, name))
	body.AddString(fmt.Sprintf("\treturn len(%s)", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString("// IsEmpty reports whether the text is empty.")
	body.AddString(fmt.Sprintf("func (%s %s) IsEmpty() bool {", recv, name))
	body.AddString(fmt.Sprintf("\treturn len(%s) == 0", recv))
	body.AddString("}")

	// 相等与排序
	body.AddLine()
	body.AddString("// Equal reports whether two values hold the same text.")
	body.AddString(fmt.Sprintf("func (%s %s) Equal(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s == other", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Compare returns -1, 0 or 1 comparing %s with other byte-wise.", recv))
	body.AddString(fmt.Sprintf("func (%s %s) Compare(other %s) int {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn strings.Compare(string(%s), string(other))", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Less reports whether %s sorts before other.", recv))
	body.AddString(fmt.Sprintf("func (%s %s) Less(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s < other", recv))
	body.AddString("}")

	// fmt.Stringer
	body.AddLine()
	body.AddString("// String returns the underlying text.")
	body.AddString(fmt.Sprintf("func (%s %s) String() string {", recv, name))
	body.AddString(fmt.Sprintf("\treturn string(%s)", recv))
	body.AddString("}")
}
