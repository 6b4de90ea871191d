package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donutnomad/gg"
)

func TestParseAnnotations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "simple annotation",
			input:    "// @WrapUint",
			expected: 1,
		},
		{
			name:     "annotation with params",
			input:    "// @WrapUint(bits=`128`, ops=`add`)",
			expected: 1,
		},
		{
			name:     "multiple annotations",
			input:    "// @WrapUint @WrapFrom",
			expected: 2,
		},
		{
			name:     "multiline annotations",
			input:    "// @WrapUint\n// @WrapOrdEq(with=`ViewCount`)",
			expected: 2,
		},
		{
			name:     "no annotation",
			input:    "// This is a comment",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotations := ParseAnnotations(tt.input)
			if len(annotations) != tt.expected {
				t.Errorf("expected %d annotations, got %d", tt.expected, len(annotations))
			}
		})
	}
}

func TestAnnotationParams(t *testing.T) {
	input := "// @WrapFrom(types=`ViewCount,ClickCount`, output=`counts_wrap`)"
	annotations := ParseAnnotations(input)

	if len(annotations) != 1 {
		t.Fatalf("expected 1 annotation, got %d", len(annotations))
	}

	ann := annotations[0]
	if ann.Name != "WrapFrom" {
		t.Errorf("expected name 'WrapFrom', got '%s'", ann.Name)
	}

	if ann.GetParam("types") != "ViewCount,ClickCount" {
		t.Errorf("expected types 'ViewCount,ClickCount', got '%s'", ann.GetParam("types"))
	}

	if ann.GetParam("output") != "counts_wrap" {
		t.Errorf("expected output 'counts_wrap', got '%s'", ann.GetParam("output"))
	}
}

func TestAnnotationParamsWithoutQuotes(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedParams map[string]string
	}{
		{
			name:  "普通格式多参数（逗号分隔）",
			input: "// @WrapUint(bits=128, ops=add)",
			expectedParams: map[string]string{
				"bits": "128",
				"ops":  "add",
			},
		},
		{
			name:  "普通格式无空格",
			input: "// @WrapUint(bits=128,ops=add)",
			expectedParams: map[string]string{
				"bits": "128",
				"ops":  "add",
			},
		},
		{
			name:  "混合格式（反引号和普通）",
			input: "// @WrapUint(bits=`128`, ops=add)",
			expectedParams: map[string]string{
				"bits": "128",
				"ops":  "add",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotations := ParseAnnotations(tt.input)
			if len(annotations) != 1 {
				t.Fatalf("expected 1 annotation, got %d", len(annotations))
			}

			ann := annotations[0]
			for key, expected := range tt.expectedParams {
				actual := ann.GetParam(key)
				if actual != expected {
					t.Errorf("param %s: expected '%s', got '%s'", key, expected, actual)
				}
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	// 创建测试生成器
	gen1 := &testGenerator{
		BaseGenerator: *NewBaseGenerator("gen1", []string{"WrapUint"}, []TargetKind{TargetType}),
	}
	gen2 := &testGenerator{
		BaseGenerator: *NewBaseGenerator("gen2", []string{"WrapStr"}, []TargetKind{TargetType}),
	}

	// 注册
	if err := registry.Register(gen1); err != nil {
		t.Fatalf("failed to register gen1: %v", err)
	}
	if err := registry.Register(gen2); err != nil {
		t.Fatalf("failed to register gen2: %v", err)
	}

	// 检查注册
	if !registry.IsRegistered("WrapUint") {
		t.Error("WrapUint should be registered")
	}
	if !registry.IsRegistered("WrapStr") {
		t.Error("WrapStr should be registered")
	}

	// 测试重复注册
	gen3 := &testGenerator{
		BaseGenerator: *NewBaseGenerator("gen3", []string{"WrapUint"}, []TargetKind{TargetType}),
	}
	if err := registry.Register(gen3); err == nil {
		t.Error("should fail when registering duplicate annotation")
	}

	// 测试获取
	if gen, ok := registry.GetByAnnotation("WrapUint"); !ok || gen.Name() != "gen1" {
		t.Error("should get gen1 by annotation WrapUint")
	}
}

// TestDispatchTargetsDeduplicates 同一目标携带同一生成器的多个注解时只分发一次
func TestDispatchTargetsDeduplicates(t *testing.T) {
	registry := NewRegistry()
	gen := &testGenerator{
		BaseGenerator: *NewBaseGenerator("conv", []string{"WrapFrom", "WrapOrdEq"}, []TargetKind{TargetType}),
	}
	if err := registry.Register(gen); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	result := &ScanResult{
		Types: []*AnnotatedTarget{
			{
				Target: &Target{Kind: TargetType, Name: "ClickCount", PackageName: "counts", Underlying: "uint64"},
				Annotations: []*Annotation{
					{Name: "WrapFrom", Params: map[string]string{"types": "ViewCount"}},
					{Name: "WrapOrdEq", Params: map[string]string{"with": "ViewCount"}},
				},
			},
		},
	}

	dispatch := registry.DispatchTargets(result)
	if len(dispatch["conv"]) != 1 {
		t.Errorf("expected 1 dispatched target, got %d", len(dispatch["conv"]))
	}
}

func TestScanner(t *testing.T) {
	// 创建临时测试目录
	tmpDir := t.TempDir()

	// 创建测试文件
	testFile := filepath.Join(tmpDir, "test.go")
	content := `package test

// @WrapUint
type UserID uint64

// @WrapUint(bits=` + "`128`" + `)
type TxID [16]byte

// @WrapStr
type Email string

// @WrapUint
type Config struct {
	Name string
}
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// 扫描
	scanner := NewScanner()
	result, err := scanner.Scan(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	// 命名类型声明和结构体分开收集
	if len(result.Types) != 3 {
		t.Errorf("expected 3 types, got %d", len(result.Types))
	}
	if len(result.Structs) != 1 {
		t.Errorf("expected 1 struct, got %d", len(result.Structs))
	}

	// 验证底层类型文本
	underlyings := make(map[string]string)
	for _, at := range result.Types {
		underlyings[at.Target.Name] = at.Target.Underlying
		if at.Target.Kind != TargetType {
			t.Errorf("expected kind TargetType for %s, got %v", at.Target.Name, at.Target.Kind)
		}
	}
	if underlyings["UserID"] != "uint64" {
		t.Errorf("expected underlying 'uint64', got '%s'", underlyings["UserID"])
	}
	if underlyings["TxID"] != "[16]byte" {
		t.Errorf("expected underlying '[16]byte', got '%s'", underlyings["TxID"])
	}
	if underlyings["Email"] != "string" {
		t.Errorf("expected underlying 'string', got '%s'", underlyings["Email"])
	}

	// 验证注解参数
	for _, at := range result.Types {
		if at.Target.Name != "TxID" {
			continue
		}
		ann := GetAnnotation(at.Annotations, "WrapUint")
		if ann == nil {
			t.Fatal("expected WrapUint annotation on TxID")
		}
		if ann.GetParam("bits") != "128" {
			t.Errorf("expected bits '128', got '%s'", ann.GetParam("bits"))
		}
	}
}

func TestScannerWithFilter(t *testing.T) {
	// 创建临时测试目录
	tmpDir := t.TempDir()

	// 创建测试文件
	testFile := filepath.Join(tmpDir, "test.go")
	content := `package test

// @WrapUint
type UserID uint64

// @WrapStr
type Email string

// @Other
type Skipped uint32
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// 带过滤器扫描
	scanner := NewScanner(WithAnnotationFilter("WrapUint"))
	result, err := scanner.Scan(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	// 应该只有 WrapUint 注解的类型
	if len(result.Types) != 1 {
		t.Errorf("expected 1 type with WrapUint annotation, got %d", len(result.Types))
	}
	if len(result.Types) > 0 && result.Types[0].Target.Name != "UserID" {
		t.Errorf("expected UserID, got %s", result.Types[0].Target.Name)
	}
}

func TestScannerRecursive(t *testing.T) {
	// 创建临时测试目录
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	// 创建根目录文件
	rootFile := filepath.Join(tmpDir, "root.go")
	rootContent := `package root
// @WrapUint
type RootID uint64
`
	if err := os.WriteFile(rootFile, []byte(rootContent), 0644); err != nil {
		t.Fatalf("failed to write root file: %v", err)
	}

	// 创建子目录文件
	subFile := filepath.Join(subDir, "sub.go")
	subContent := `package sub
// @WrapUint
type SubID uint64
`
	if err := os.WriteFile(subFile, []byte(subContent), 0644); err != nil {
		t.Fatalf("failed to write sub file: %v", err)
	}

	// 使用 ./... 语法递归扫描
	scanner := NewScanner()
	result, err := scanner.Scan(context.Background(), tmpDir+"/...")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	// 应该找到两个类型
	if len(result.Types) != 2 {
		t.Errorf("expected 2 types, got %d", len(result.Types))
	}
}

func TestScannerPackageConfig(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "ids.go")
	content := "package test\n\n" +
		"// go:newtypegen: plugin:uintgen -output `ids_wrap`\n\n" +
		"// @WrapUint\ntype UserID uint64\n"
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	scanner := NewScanner()
	result, err := scanner.Scan(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	config := result.PackageConfigs[tmpDir]
	if config == nil {
		t.Fatalf("expected package config for %s", tmpDir)
	}
	if config.GetPluginOutput("uintgen") != "ids_wrap" {
		t.Errorf("expected plugin output 'ids_wrap', got '%s'", config.GetPluginOutput("uintgen"))
	}
	// 未配置的插件回退到默认输出（此处为空）
	if config.GetPluginOutput("strgen") != "" {
		t.Errorf("expected empty output for strgen, got '%s'", config.GetPluginOutput("strgen"))
	}
}

// testGenerator 测试用生成器
type testGenerator struct {
	BaseGenerator
}

func (g *testGenerator) Generate(ctx *GenerateContext) (*GenerateResult, error) {
	return NewGenerateResult(), nil
}

// ggTestGenerator 测试 gg 定义返回的生成器
type ggTestGenerator struct {
	BaseGenerator
}

func (g *ggTestGenerator) Generate(ctx *GenerateContext) (*GenerateResult, error) {
	result := NewGenerateResult()

	for _, target := range ctx.Targets {
		// 为每个目标创建一个 gg 定义
		gen := gg.New()
		gen.SetPackage(target.Target.PackageName)

		// 生成一个简单的包装函数
		gen.Body().NewFunction("Wrap"+target.Target.Name).
			AddResult("", "string").
			AddBody(gg.Return(gg.Lit("wrapping " + target.Target.Name)))

		// 输出到同一目录下的 _wrap.go 文件
		dir := filepath.Dir(target.Target.FilePath)
		outputPath := filepath.Join(dir, strings.ToLower(target.Target.Name)+"_wrap.go")
		result.AddDefinition(outputPath, gen)
	}

	return result, nil
}

func TestGeneratorWithGGDefinition(t *testing.T) {
	// 创建临时测试目录
	tmpDir := t.TempDir()

	// 创建测试文件
	testFile := filepath.Join(tmpDir, "model.go")
	content := `package test

// @TestGen
type UserID uint64

// @TestGen
type OrderID uint64
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// 创建注册表并注册生成器
	registry := NewRegistry()
	gen := &ggTestGenerator{
		BaseGenerator: *NewBaseGenerator("testgen", []string{"TestGen"}, []TargetKind{TargetType}),
	}
	if err := registry.Register(gen); err != nil {
		t.Fatalf("failed to register generator: %v", err)
	}

	// 运行生成
	_, err := RunWithOptionsAndStats(context.Background(), &RunOptions{Registry: registry, Patterns: []string{tmpDir}})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// 验证生成的文件
	userWrapFile := filepath.Join(tmpDir, "userid_wrap.go")
	if _, err := os.Stat(userWrapFile); os.IsNotExist(err) {
		t.Errorf("expected file %s to exist", userWrapFile)
	} else {
		content, _ := os.ReadFile(userWrapFile)
		if !strings.Contains(string(content), "WrapUserID") {
			t.Errorf("expected WrapUserID function in generated file")
		}
		if !strings.Contains(string(content), "Code generated by newtypegen") {
			t.Errorf("expected header comment in generated file")
		}
	}

	orderWrapFile := filepath.Join(tmpDir, "orderid_wrap.go")
	if _, err := os.Stat(orderWrapFile); os.IsNotExist(err) {
		t.Errorf("expected file %s to exist", orderWrapFile)
	}
}

// failingGenerator 总是报错的生成器
type failingGenerator struct {
	BaseGenerator
}

func (g *failingGenerator) Generate(ctx *GenerateContext) (*GenerateResult, error) {
	result := NewGenerateResult()
	for _, target := range ctx.Targets {
		result.AddError(fmt.Errorf("类型 %s: 模拟错误", target.Target.Name))
	}
	return result, nil
}

func TestRunFailFast(t *testing.T) {
	// 任何生成器报错都应该使整次运行失败，且不写出任何文件
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "model.go")
	content := `package test

// @TestGen
type GoodID uint64

// @FailGen
type BadID uint64
`
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	registry := NewRegistry()
	okGen := &ggTestGenerator{
		BaseGenerator: *NewBaseGenerator("testgen", []string{"TestGen"}, []TargetKind{TargetType}),
	}
	failGen := &failingGenerator{
		BaseGenerator: *NewBaseGenerator("failgen", []string{"FailGen"}, []TargetKind{TargetType}),
	}
	if err := registry.Register(okGen); err != nil {
		t.Fatalf("failed to register okGen: %v", err)
	}
	if err := registry.Register(failGen); err != nil {
		t.Fatalf("failed to register failGen: %v", err)
	}

	_, err := RunWithOptionsAndStats(context.Background(), &RunOptions{Registry: registry, Patterns: []string{tmpDir}})
	if err == nil {
		t.Fatal("expected run to fail")
	}

	// 没报错的生成器的输出也不应该落盘
	goodFile := filepath.Join(tmpDir, "goodid_wrap.go")
	if _, err := os.Stat(goodFile); !os.IsNotExist(err) {
		t.Errorf("expected no output file on failure, but %s exists", goodFile)
	}
}
