package convgen_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/donutnomad/newtypegen/convgen"
	"github.com/donutnomad/newtypegen/plugin"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// 原始源码输出是确定性的字符串拼接，可以做精确比对
const goldenCounts = `package counts

// ClickCountFromViewCount converts a ViewCount into a ClickCount.
// Both types share the same underlying representation.
func ClickCountFromViewCount(v ViewCount) ClickCount {
	return ClickCount(v)
}

// EqualViewCount reports whether c and other hold the same underlying value.
func (c ClickCount) EqualViewCount(other ViewCount) bool {
	return c == ClickCount(other)
}

// CompareViewCount returns -1, 0 or 1 comparing c with other.
func (c ClickCount) CompareViewCount(other ViewCount) int {
	return c.Compare(ClickCount(other))
}

// LessViewCount reports whether c is less than other.
func (c ClickCount) LessViewCount(other ViewCount) bool {
	return c.Compare(ClickCount(other)) < 0
}

// EqualClickCount reports whether v and other hold the same underlying value.
func (v ViewCount) EqualClickCount(other ClickCount) bool {
	return v == ViewCount(other)
}

// CompareClickCount returns -1, 0 or 1 comparing v with other.
func (v ViewCount) CompareClickCount(other ClickCount) int {
	return v.Compare(ViewCount(other))
}

// LessClickCount reports whether v is less than other.
func (v ViewCount) LessClickCount(other ClickCount) bool {
	return v.Compare(ViewCount(other)) < 0
}
`

func TestConvgenGolden(t *testing.T) {
	ctx := context.Background()
	gen := convgen.NewConvGenerator()
	scanner := plugin.NewScanner(plugin.WithAnnotationFilter("WrapFrom", "WrapOrdEq", "WrapUint", "WrapStr"))

	absPath, err := filepath.Abs("testdata/counts.go")
	require.NoError(t, err)

	result, err := scanner.Scan(ctx, absPath)
	require.NoError(t, err)
	require.NotEmpty(t, result.All())

	genCtx := &plugin.GenerateContext{
		Targets:        result.All(),
		AllTargets:     result.All(),
		PackageConfigs: result.PackageConfigs,
	}

	genResult, err := gen.Generate(genCtx)
	require.NoError(t, err)
	require.Empty(t, genResult.Errors)
	require.Len(t, genResult.RawOutputs, 1)

	for _, source := range genResult.RawOutputs {
		actual := string(source)
		if actual != goldenCounts {
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(goldenCounts),
				B:        difflib.SplitLines(actual),
				FromFile: "expected",
				ToFile:   "actual",
				Context:  3,
			})
			t.Errorf("生成的源码与预期不一致:\n%s", diff)
		}
	}
}
