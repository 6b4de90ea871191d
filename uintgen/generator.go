package uintgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/donutnomad/gg"
	"github.com/donutnomad/newtypegen/internal/typeparse"
	"github.com/donutnomad/newtypegen/plugin"
)

const generatorName = "uintgen"

// UintParams 定义 WrapUint 注解支持的参数
type UintParams struct {
	Bits int    `param:"name=bits,required=false,default=0,description=位宽(8/16/32/64/128)，默认按底层类型推断；[16]byte 必须显式声明 128"`
	Ops  string `param:"name=ops,required=false,default=,description=启用的算术能力，逗号分隔（目前支持: add）"`
}

// UintGenerator 为无符号整数 newtype 生成包装代码
// 注解目标是命名类型声明: type UserID uint64
type UintGenerator struct {
	plugin.BaseGenerator
}

func NewUintGenerator() *UintGenerator {
	gen := &UintGenerator{
		BaseGenerator: *plugin.NewBaseGeneratorWithParamsStruct(
			generatorName,
			[]string{"WrapUint"},
			[]plugin.TargetKind{plugin.TargetType},
			UintParams{},
		),
	}
	gen.SetPriority(50)
	return gen
}

// Generate 执行代码生成
func (g *UintGenerator) Generate(ctx *plugin.GenerateContext) (*plugin.GenerateResult, error) {
	result := plugin.NewGenerateResult()

	if len(ctx.Targets) == 0 {
		return result, nil
	}

	// 按输出路径分组
	fileTargets := make(map[string][]*uintInfo)

	// 包级重复检测: 同名类型重复注解直接报错，而不是生成冲突代码留给编译器
	pkgTypeNames := make(map[string]map[string]bool)

	for _, at := range ctx.Targets {
		ann := plugin.GetAnnotation(at.Annotations, "WrapUint")
		if ann == nil {
			result.Skipped++
			continue
		}

		var params UintParams
		if at.ParsedParams != nil {
			var ok bool
			params, ok = at.ParsedParams.(UintParams)
			if !ok {
				result.AddError(fmt.Errorf("ParsedParams 类型断言失败: %T", at.ParsedParams))
				continue
			}
		}

		if err := typeparse.ValidateWrapperName(at.Target.Name); err != nil {
			result.AddError(fmt.Errorf("类型 %s: %w", at.Target.Name, err))
			continue
		}

		// 解析底层类型并校验位宽
		kind, err := typeparse.ResolveUint(at.Target.Underlying, params.Bits)
		if err != nil {
			result.AddError(fmt.Errorf("类型 %s: %w", at.Target.Name, err))
			continue
		}

		withAdd, err := parseOps(params.Ops)
		if err != nil {
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

		fileTargets[outputPath] = append(fileTargets[outputPath], &uintInfo{
			name:    at.Target.Name,
			recv:    typeparse.ReceiverName(at.Target.Name),
			kind:    kind,
			withAdd: withAdd,
			pkgName: at.Target.PackageName,
		})

		if ctx.Verbose {
			fmt.Printf("[uintgen] 处理 type %s (%s) -> %s\n", at.Target.Name, kind, outputPath)
			fmt.Printf("[uintgen] 参数: %s", spew.Sdump(params))
		}
	}

	// 为每个输出文件生成代码
	for outputPath, infos := range fileTargets {
		gen, err := g.generateDefinition(infos)
		if err != nil {
			result.AddError(fmt.Errorf("生成 %s 失败: %w", outputPath, err))
			continue
		}
		result.AddDefinition(outputPath, gen)

		if ctx.Verbose {
			fmt.Printf("[uintgen] 生成定义 %s\n", outputPath)
		}
	}

	return result, nil
}

type uintInfo struct {
	name    string
	recv    string
	kind    typeparse.Kind
	withAdd bool
	pkgName string
}

// parseOps 解析 ops 参数，返回是否启用 add
func parseOps(ops string) (bool, error) {
	withAdd := false
	for _, op := range strings.Split(ops, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		switch op {
		case "add":
			withAdd = true
		default:
			return false, fmt.Errorf("不支持的 ops 值 %q（支持: add）", op)
		}
	}
	return withAdd, nil
}

// generateDefinition 生成 gg 定义
func (g *UintGenerator) generateDefinition(infos []*uintInfo) (*gg.Generator, error) {
	if len(infos) == 0 {
		return nil, fmt.Errorf("没有类型需要生成")
	}

	gen := gg.New()
	gen.SetPackage(infos[0].pkgName)

	// 按需注册导入
	needFmt, needStrconv, needBytes, needBinary, needBig, needBits := false, false, false, false, false, false
	for _, info := range infos {
		needFmt = true
		if info.kind == typeparse.KindUint128 {
			needBytes = true
			needBinary = true
			needBig = true
			if info.withAdd {
				needBits = true
			}
		} else {
			needStrconv = true
		}
	}
	if needFmt {
		gen.P("fmt")
	}
	if needStrconv {
		gen.P("strconv")
	}
	if needBytes {
		gen.P("bytes")
	}
	if needBinary {
		gen.P("encoding/binary")
	}
	if needBig {
		gen.P("math/big")
	}
	if needBits {
		gen.P("math/bits")
	}

	body := gen.Body()

	for _, info := range infos {
		if info.kind == typeparse.KindUint128 {
			emitUint128(body, info)
		} else {
			emitScalar(body, info)
		}
	}

	return gen, nil
}

// emitScalar 生成 8/16/32/64 位包装代码
func emitScalar(body *gg.Group, info *uintInfo) {
	name := info.name
	recv := info.recv
	under := info.kind.GoType()
	bits := info.kind.Bits()

	// 构造与取值
	body.AddLine()
	body.AddString(fmt.Sprintf("// New%s wraps a raw %s value.", name, under))
	body.AddString(fmt.Sprintf("func New%s(v %s) %s {", name, under, name))
	body.AddString(fmt.Sprintf("\treturn %s(v)", name))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// %s returns the underlying %s value.", info.kind.Suffix(), under))
	body.AddString(fmt.Sprintf("func (%s %s) %s() %s {", recv, name, info.kind.Suffix(), under))
	body.AddString(fmt.Sprintf("\treturn %s(%s)", under, recv))
	body.AddString("}")

	// 零值
	body.AddLine()
	body.AddString(fmt.Sprintf("// Zero%s returns the zero value.", name))
	body.AddString(fmt.Sprintf("func Zero%s() %s {", name, name))
	body.AddString(fmt.Sprintf("\treturn %s(0)", name))
	body.AddString("}")

	body.AddLine()
	body.AddString("// IsZero reports whether the value is zero.")
	body.AddString(fmt.Sprintf("func (%s %s) IsZero() bool {", recv, name))
	body.AddString(fmt.Sprintf("\treturn %s == 0", recv))
	body.AddString("}")

	// 字符串转换
	body.AddLine()
	body.AddString(fmt.Sprintf("// Parse%s parses a base-10 string into a %s.", name, name))
	body.AddString(fmt.Sprintf("// Valid range is 0 to %s.", info.kind.MaxDecimal()))
	body.AddString(fmt.Sprintf("func Parse%s(s string) (%s, error) {", name, name))
	body.AddString(fmt.Sprintf("\tv, err := strconv.ParseUint(s, 10, %d)", bits))
	body.AddString("\tif err != nil {")
	body.AddString(fmt.Sprintf("\t\treturn %s(0), fmt.Errorf(\"parse %s: %%w\", err)", name, name))
	body.AddString("\t}")
	body.AddString(fmt.Sprintf("\treturn %s(v), nil", name))
	body.AddString("}")

	body.AddLine()
	body.AddString("// String returns the base-10 representation.")
	body.AddString(fmt.Sprintf("func (%s %s) String() string {", recv, name))
	body.AddString(fmt.Sprintf("\treturn strconv.FormatUint(uint64(%s), 10)", recv))
	body.AddString("}")

	// 相等与排序
	body.AddLine()
	body.AddString("// Equal reports whether two values are equal.")
	body.AddString(fmt.Sprintf("func (%s %s) Equal(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s == other", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Compare returns -1, 0 or 1 comparing %s with other.", recv))
	body.AddString(fmt.Sprintf("func (%s %s) Compare(other %s) int {", recv, name, name))
	body.AddString("\tswitch {")
	body.AddString(fmt.Sprintf("\tcase %s < other:", recv))
	body.AddString("\t\treturn -1")
	body.AddString(fmt.Sprintf("\tcase %s > other:", recv))
	body.AddString("\t\treturn 1")
	body.AddString("\tdefault:")
	body.AddString("\t\treturn 0")
	body.AddString("\t}")
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Less reports whether %s is less than other.", recv))
	body.AddString(fmt.Sprintf("func (%s %s) Less(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s < other", recv))
	body.AddString("}")

	if info.withAdd {
		body.AddLine()
		body.AddString(fmt.Sprintf("// Add returns the sum of %s and other. Overflow wraps around.", recv))
		body.AddString(fmt.Sprintf("func (%s %s) Add(other %s) %s {", recv, name, name, name))
		body.AddString(fmt.Sprintf("\treturn %s + other", recv))
		body.AddString("}")

		body.AddLine()
		body.AddString("// Sum" + name + " returns the sum of all values. Overflow wraps around.")
		body.AddString(fmt.Sprintf("func Sum%s(vs ...%s) %s {", name, name, name))
		body.AddString(fmt.Sprintf("\tvar total %s", name))
		body.AddString("\tfor _, v := range vs {")
		body.AddString("\t\ttotal += v")
		body.AddString("\t}")
		body.AddString("\treturn total")
		body.AddString("}")
	}
}

// emitUint128 生成 128 位包装代码
// 底层表示是大端 [16]byte: 数组可比较（可作 map key），
// 字节序比较与数值比较一致，十进制转换走 math/big
func emitUint128(body *gg.Group, info *uintInfo) {
	name := info.name
	recv := info.recv

	// 构造与取值
	body.AddLine()
	body.AddString(fmt.Sprintf("// New%s builds a %s from two 64-bit halves.", name, name))
	body.AddString(fmt.Sprintf("func New%s(hi, lo uint64) %s {", name, name))
	body.AddString(fmt.Sprintf("\tvar %s %s", recv, name))
	body.AddString(fmt.Sprintf("\tbinary.BigEndian.PutUint64(%s[:8], hi)", recv))
	body.AddString(fmt.Sprintf("\tbinary.BigEndian.PutUint64(%s[8:], lo)", recv))
	body.AddString(fmt.Sprintf("\treturn %s", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString("// Uint128 returns the two 64-bit halves.")
	body.AddString(fmt.Sprintf("func (%s %s) Uint128() (hi, lo uint64) {", recv, name))
	body.AddString(fmt.Sprintf("\treturn binary.BigEndian.Uint64(%s[:8]), binary.BigEndian.Uint64(%s[8:])", recv, recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// %sFromBytes wraps a big-endian 16-byte array.", name))
	body.AddString(fmt.Sprintf("func %sFromBytes(b [16]byte) %s {", name, name))
	body.AddString(fmt.Sprintf("\treturn %s(b)", name))
	body.AddString("}")

	body.AddLine()
	body.AddString("// Bytes returns the big-endian 16-byte representation.")
	body.AddString(fmt.Sprintf("func (%s %s) Bytes() [16]byte {", recv, name))
	body.AddString(fmt.Sprintf("\treturn [16]byte(%s)", recv))
	body.AddString("}")

	// 零值
	body.AddLine()
	body.AddString(fmt.Sprintf("// Zero%s returns the zero value.", name))
	body.AddString(fmt.Sprintf("func Zero%s() %s {", name, name))
	body.AddString(fmt.Sprintf("\treturn %s{}", name))
	body.AddString("}")

	body.AddLine()
	body.AddString("// IsZero reports whether the value is zero.")
	body.AddString(fmt.Sprintf("func (%s %s) IsZero() bool {", recv, name))
	body.AddString(fmt.Sprintf("\treturn %s == %s{}", recv, name))
	body.AddString("}")

	// 字符串转换
	body.AddLine()
	body.AddString(fmt.Sprintf("// Parse%s parses a base-10 string into a %s.", name, name))
	body.AddString(fmt.Sprintf("// Valid range is 0 to %s.", info.kind.MaxDecimal()))
	body.AddString(fmt.Sprintf("func Parse%s(s string) (%s, error) {", name, name))
	body.AddString("\tn, ok := new(big.Int).SetString(s, 10)")
	body.AddString("\tif !ok {")
	body.AddString(fmt.Sprintf("\t\treturn %s{}, fmt.Errorf(\"parse %s: invalid decimal %%q\", s)", name, name))
	body.AddString("\t}")
	body.AddString("\tif n.Sign() < 0 || n.BitLen() > 128 {")
	body.AddString(fmt.Sprintf("\t\treturn %s{}, fmt.Errorf(\"parse %s: value %%s out of range\", s)", name, name))
	body.AddString("\t}")
	body.AddString(fmt.Sprintf("\tvar %s %s", recv, name))
	body.AddString(fmt.Sprintf("\tn.FillBytes(%s[:])", recv))
	body.AddString(fmt.Sprintf("\treturn %s, nil", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString("// String returns the base-10 representation.")
	body.AddString(fmt.Sprintf("func (%s %s) String() string {", recv, name))
	body.AddString(fmt.Sprintf("\treturn new(big.Int).SetBytes(%s[:]).String()", recv))
	body.AddString("}")

	// 相等与排序
	body.AddLine()
	body.AddString("// Equal reports whether two values are equal.")
	body.AddString(fmt.Sprintf("func (%s %s) Equal(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s == other", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Compare returns -1, 0 or 1 comparing %s with other.", recv))
	body.AddString("// Byte order is big-endian, so byte comparison matches numeric comparison.")
	body.AddString(fmt.Sprintf("func (%s %s) Compare(other %s) int {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn bytes.Compare(%s[:], other[:])", recv))
	body.AddString("}")

	body.AddLine()
	body.AddString(fmt.Sprintf("// Less reports whether %s is less than other.", recv))
	body.AddString(fmt.Sprintf("func (%s %s) Less(other %s) bool {", recv, name, name))
	body.AddString(fmt.Sprintf("\treturn %s.Compare(other) < 0", recv))
	body.AddString("}")

	if info.withAdd {
		body.AddLine()
		body.AddString(fmt.Sprintf("// Add returns the sum of %s and other. Overflow wraps around.", recv))
		body.AddString(fmt.Sprintf("func (%s %s) Add(other %s) %s {", recv, name, name, name))
		body.AddString(fmt.Sprintf("\thiA, loA := %s.Uint128()", recv))
		body.AddString("\thiB, loB := other.Uint128()")
		body.AddString("\tlo, carry := bits.Add64(loA, loB, 0)")
		body.AddString("\thi, _ := bits.Add64(hiA, hiB, carry)")
		body.AddString(fmt.Sprintf("\treturn New%s(hi, lo)", name))
		body.AddString("}")

		body.AddLine()
		body.AddString("// Sum" + name + " returns the sum of all values. Overflow wraps around.")
		body.AddString(fmt.Sprintf("func Sum%s(vs ...%s) %s {", name, name, name))
		body.AddString(fmt.Sprintf("\tvar total %s", name))
		body.AddString("\tfor _, v := range vs {")
		body.AddString("\t\ttotal = total.Add(v)")
		body.AddString("\t}")
		body.AddString("\treturn total")
		body.AddString("}")
	}
}
