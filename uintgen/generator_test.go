package uintgen_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donutnomad/newtypegen/plugin"
	"github.com/donutnomad/newtypegen/uintgen"
)

func TestUintgenBasic(t *testing.T) {
	// 测试 8/32/64 位基本功能
	genResult := testUintgen(t, "testdata/basic.go", 0)

	if len(genResult.Definitions) != 1 {
		t.Fatalf("应该生成 1 个文件，实际: %d", len(genResult.Definitions))
	}

	for path, def := range genResult.Definitions {
		t.Logf("生成文件: %s", path)
		code := def.String()

		// 构造、取值、零值、字符串、比较
		for _, want := range []string{
			"func NewUserID(v uint64) UserID",
			"func (u UserID) Uint64() uint64",
			"func ZeroUserID() UserID",
			"func (u UserID) IsZero() bool",
			"func ParseUserID(s string) (UserID, error)",
			"func (u UserID) String() string",
			"func (u UserID) Equal(other UserID) bool",
			"func (u UserID) Compare(other UserID) int",
			"func (u UserID) Less(other UserID) bool",
			"func NewPort(v uint32) Port",
			"func (p Port) Uint32() uint32",
			"strconv.ParseUint(s, 10, 32)",
			"func NewDeviceClass(v uint8) DeviceClass",
		} {
			if !strings.Contains(code, want) {
				t.Errorf("生成的代码缺少: %s", want)
			}
		}

		// ops=add 只对 Amount 生效
		if !strings.Contains(code, "func (a Amount) Add(other Amount) Amount") {
			t.Error("生成的代码缺少 Amount.Add")
		}
		if !strings.Contains(code, "func SumAmount(vs ...Amount) Amount") {
			t.Error("生成的代码缺少 SumAmount")
		}
		if strings.Contains(code, "func SumUserID") {
			t.Error("UserID 未声明 ops=add，不应该生成 SumUserID")
		}
	}
}

func TestUintgen128(t *testing.T) {
	// 测试 128 位（大端 [16]byte）
	genResult := testUintgen(t, "testdata/u128.go", 0)

	for path, def := range genResult.Definitions {
		t.Logf("生成文件: %s", path)
		code := def.String()

		for _, want := range []string{
			"func NewTxID(hi, lo uint64) TxID",
			"func (t TxID) Uint128() (hi, lo uint64)",
			"func TxIDFromBytes(b [16]byte) TxID",
			"func (t TxID) Bytes() [16]byte",
			"func ZeroTxID() TxID",
			"func (t TxID) IsZero() bool",
			"func ParseTxID(s string) (TxID, error)",
			"new(big.Int).SetBytes(t[:]).String()",
			"bytes.Compare(t[:], other[:])",
			"func (t TxID) Less(other TxID) bool",
		} {
			if !strings.Contains(code, want) {
				t.Errorf("生成的代码缺少: %s", want)
			}
		}

		// ops=add 只对 Balance 生效，进位用 bits.Add64
		if !strings.Contains(code, "func (b Balance) Add(other Balance) Balance") {
			t.Error("生成的代码缺少 Balance.Add")
		}
		if !strings.Contains(code, "bits.Add64") {
			t.Error("128 位加法应该使用 bits.Add64")
		}
		if strings.Contains(code, "func SumTxID") {
			t.Error("TxID 未声明 ops=add，不应该生成 SumTxID")
		}
	}
}

func TestUintgenInvalid(t *testing.T) {
	// 非法输入：全部 4 个目标都应该报错
	genResult := testUintgen(t, "testdata/invalid.go", 4)

	if len(genResult.Definitions) != 0 {
		t.Errorf("非法输入不应该生成定义，实际: %d", len(genResult.Definitions))
	}
}

func TestUintgenDuplicate(t *testing.T) {
	// 同一个包内同名类型重复注解应该报错
	genResult := testUintgen(t, "testdata/dup", 1)

	for _, e := range genResult.Errors {
		if !strings.Contains(e.Error(), "重复注解") {
			t.Errorf("期望重复注解错误，实际: %v", e)
		}
	}
}

func testUintgen(t *testing.T, file string, expectedErrors int) *plugin.GenerateResult {
	t.Helper()

	ctx := context.Background()
	gen := uintgen.NewUintGenerator()
	scanner := plugin.NewScanner(plugin.WithAnnotationFilter("WrapUint"))

	absPath, err := filepath.Abs(file)
	if err != nil {
		t.Fatalf("获取绝对路径失败: %v", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		t.Skipf("测试文件不存在: %s", absPath)
		return nil
	}

	result, err := scanner.Scan(ctx, absPath)
	if err != nil {
		t.Fatalf("扫描失败: %v", err)
	}

	if len(result.All()) == 0 {
		t.Fatalf("没有找到带注解的目标: %s", file)
	}

	t.Logf("找到 %d 个带注解的目标", len(result.All()))

	// 解析参数
	parseParams(t, result.All())

	genCtx := &plugin.GenerateContext{
		Targets:        result.All(),
		PackageConfigs: result.PackageConfigs,
		DefaultOutput:  "",
		Verbose:        testing.Verbose(),
	}

	genResult, err := gen.Generate(genCtx)
	if err != nil {
		t.Fatalf("生成代码失败: %v", err)
	}

	if len(genResult.Errors) != expectedErrors {
		t.Errorf("期望 %d 个错误，实际: %d", expectedErrors, len(genResult.Errors))
		for _, e := range genResult.Errors {
			t.Logf("  错误: %v", e)
		}
	}

	return genResult
}

func parseParams(t *testing.T, targets []*plugin.AnnotatedTarget) {
	t.Helper()

	paramDefs := plugin.ParseParamsFromStruct(uintgen.UintParams{})

	for _, at := range targets {
		ann := plugin.GetAnnotation(at.Annotations, "WrapUint")
		if ann != nil {
			paramsProto := uintgen.UintParams{}
			if err := plugin.ParseAnnotationParams(ann, &paramsProto, paramDefs); err != nil {
				t.Logf("解析参数失败 (可能预期): %v", err)
				continue
			}
			at.ParsedParams = paramsProto
		}
	}
}
