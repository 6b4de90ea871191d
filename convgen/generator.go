package convgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/donutnomad/newtypegen/internal/typeparse"
	"github.com/donutnomad/newtypegen/plugin"
)

const generatorName = "convgen"

// ConvGenerator 为 newtype 之间生成跨类型转换与比较代码
//
// 两个注解:
//   - @WrapFrom(types=`A,B`): 生成 XFromA/XFromB 转换函数
//   - @WrapOrdEq(with=`A`): 生成双向跨类型比较方法，
//     目标类型得到 EqualA/CompareA/LessA，A 得到镜像的 EqualX/CompareX/LessX，
//     注解只写在其中一侧，写两侧会产生重复方法
//
// 被引用的类型必须与目标类型共享相同的底层表示，
// 生成阶段对照扫描到的底层声明校验，不一致或未注解时直接报错
// Compare 方法依赖两侧已生成的 Compare（@WrapUint 或 @WrapStr）
//
// 本生成器直接拼接源码并通过 RawOutputs 返回，
// 由聚合器经 ParseSourceToGG 转换后参与合并
type ConvGenerator struct {
	plugin.BaseGenerator
}

func NewConvGenerator() *ConvGenerator {
	gen := &ConvGenerator{
		BaseGenerator: *plugin.NewBaseGenerator(
			generatorName,
			[]string{"WrapFrom", "WrapOrdEq"},
			[]plugin.TargetKind{plugin.TargetType},
		),
	}
	gen.SetParamDefs([]plugin.ParamDef{
		{Name: "types", Required: false, Description: "WrapFrom: 来源类型列表，逗号分隔"},
		{Name: "with", Required: false, Description: "WrapOrdEq: 参与比较的类型"},
	})
	gen.SetPriority(70)
	return gen
}

// Generate 执行代码生成
func (g *ConvGenerator) Generate(ctx *plugin.GenerateContext) (*plugin.GenerateResult, error) {
	result := plugin.NewGenerateResult()

	if len(ctx.Targets) == 0 {
		return result, nil
	}

	// 按输出路径分组
	fileTargets := make(map[string][]*convInfo)

	for _, at := range ctx.Targets {
		if err := typeparse.ValidateWrapperName(at.Target.Name); err != nil {
			result.AddError(fmt.Errorf("类型 %s: %w", at.Target.Name, err))
			continue
		}

		info := &convInfo{
			name:    at.Target.Name,
			recv:    typeparse.ReceiverName(at.Target.Name),
			pkgName: at.Target.PackageName,
		}

		// 两个注解可以同时出现在同一个目标上
		var ann *plugin.Annotation
		if fromAnn := plugin.GetAnnotation(at.Annotations, "WrapFrom"); fromAnn != nil {
			ann = fromAnn
			types := fromAnn.GetParam("types")
			if types == "" {
				result.AddError(fmt.Errorf("类型 %s: @WrapFrom 缺少必填参数 types", at.Target.Name))
				continue
			}
			for _, from := range strings.Split(types, ",") {
				from = strings.TrimSpace(from)
				if from == "" {
					continue
				}
				if from == at.Target.Name {
					result.AddError(fmt.Errorf("类型 %s: @WrapFrom 不能引用自身", at.Target.Name))
					continue
				}
				if err := checkUnderlying(ctx, at.Target, from); err != nil {
					result.AddError(fmt.Errorf("类型 %s: @WrapFrom %w", at.Target.Name, err))
					continue
				}
				info.fromTypes = append(info.fromTypes, from)
			}
		}
		if ordAnn := plugin.GetAnnotation(at.Annotations, "WrapOrdEq"); ordAnn != nil {
			if ann == nil {
				ann = ordAnn
			}
			with := ordAnn.GetParam("with")
			if with == "" {
				result.AddError(fmt.Errorf("类型 %s: @WrapOrdEq 缺少必填参数 with", at.Target.Name))
				continue
			}
			if with == at.Target.Name {
				result.AddError(fmt.Errorf("类型 %s: @WrapOrdEq 不能引用自身", at.Target.Name))
				continue
			}
			if err := checkUnderlying(ctx, at.Target, with); err != nil {
				result.AddError(fmt.Errorf("类型 %s: @WrapOrdEq %w", at.Target.Name, err))
			} else {
				info.ordEqWith = with
			}
		}

		if ann == nil {
			result.Skipped++
			continue
		}
		if len(info.fromTypes) == 0 && info.ordEqWith == "" {
			continue
		}

		// 计算输出路径
		pkgConfig := ctx.GetPackageConfig(filepath.Dir(at.Target.FilePath))
		outputPath := plugin.GetOutputPath(at.Target, ann, "generate.go", pkgConfig, g.Name(), ctx.DefaultOutput)

		fileTargets[outputPath] = append(fileTargets[outputPath], info)

		if ctx.Verbose {
			fmt.Printf("[convgen] 处理 type %s (from=%v, with=%s) -> %s\n",
				at.Target.Name, info.fromTypes, info.ordEqWith, outputPath)
		}
	}

	for outputPath, infos := range fileTargets {
		source := g.generateSource(infos)
		result.AddRawOutput(outputPath, source)

		if ctx.Verbose {
			fmt.Printf("[convgen] 生成源码 %s (%d 字节)\n", outputPath, len(source))
		}
	}

	return result, nil
}

// checkUnderlying 校验被引用类型与目标类型共享同一底层表示
// 底层不一致时生成的转换无法通过编译，必须在生成阶段报错而不是写出坏代码
func checkUnderlying(ctx *plugin.GenerateContext, target *plugin.Target, refName string) error {
	ref := ctx.FindTarget(target.PackageName, refName)
	if ref == nil {
		return fmt.Errorf("引用的类型 %s 在包 %s 中没有注解声明", refName, target.PackageName)
	}
	if !typeparse.SameUnderlying(target.Underlying, ref.Underlying) {
		return fmt.Errorf("引用的类型 %s 底层表示不一致: %s vs %s",
			refName, target.Underlying, ref.Underlying)
	}
	return nil
}

type convInfo struct {
	name      string
	recv      string
	pkgName   string
	fromTypes []string
	ordEqWith string
}

// generateSource 拼接原始 Go 源码
func (g *ConvGenerator) generateSource(infos []*convInfo) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("package %s\n", infos[0].pkgName))

	for _, info := range infos {
		for _, from := range info.fromTypes {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// %sFrom%s converts a %s into a %s.\n", info.name, from, from, info.name))
			sb.WriteString("// Both types share the same underlying representation.\n")
			sb.WriteString(fmt.Sprintf("func %sFrom%s(v %s) %s {\n", info.name, from, from, info.name))
			sb.WriteString(fmt.Sprintf("\treturn %s(v)\n", info.name))
			sb.WriteString("}\n")
		}

		if with := info.ordEqWith; with != "" {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Equal%s reports whether %s and other hold the same underlying value.\n", with, info.recv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Equal%s(other %s) bool {\n", info.recv, info.name, with, with))
			sb.WriteString(fmt.Sprintf("\treturn %s == %s(other)\n", info.recv, info.name))
			sb.WriteString("}\n")

			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Compare%s returns -1, 0 or 1 comparing %s with other.\n", with, info.recv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Compare%s(other %s) int {\n", info.recv, info.name, with, with))
			sb.WriteString(fmt.Sprintf("\treturn %s.Compare(%s(other))\n", info.recv, info.name))
			sb.WriteString("}\n")

			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Less%s reports whether %s is less than other.\n", with, info.recv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Less%s(other %s) bool {\n", info.recv, info.name, with, with))
			sb.WriteString(fmt.Sprintf("\treturn %s.Compare(%s(other)) < 0\n", info.recv, info.name))
			sb.WriteString("}\n")

			// 镜像方法，使比较在两个方向上都可用
			withRecv := typeparse.ReceiverName(with)

			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Equal%s reports whether %s and other hold the same underlying value.\n", info.name, withRecv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Equal%s(other %s) bool {\n", withRecv, with, info.name, info.name))
			sb.WriteString(fmt.Sprintf("\treturn %s == %s(other)\n", withRecv, with))
			sb.WriteString("}\n")

			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Compare%s returns -1, 0 or 1 comparing %s with other.\n", info.name, withRecv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Compare%s(other %s) int {\n", withRecv, with, info.name, info.name))
			sb.WriteString(fmt.Sprintf("\treturn %s.Compare(%s(other))\n", withRecv, with))
			sb.WriteString("}\n")

			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("// Less%s reports whether %s is less than other.\n", info.name, withRecv))
			sb.WriteString(fmt.Sprintf("func (%s %s) Less%s(other %s) bool {\n", withRecv, with, info.name, info.name))
			sb.WriteString(fmt.Sprintf("\treturn %s.Compare(%s(other)) < 0\n", withRecv, with))
			sb.WriteString("}\n")
		}
	}

	return []byte(sb.String())
}
