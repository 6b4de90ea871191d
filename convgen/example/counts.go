package example

// 两个计数类型共享 uint64 底层表示，可以互相转换与比较

// @WrapUint
type ViewCount uint64

// 示例 0: 生成 ClickCountFromViewCount 转换函数
// 以及 EqualViewCount/CompareViewCount/LessViewCount 跨类型比较方法
// @WrapUint
// @WrapFrom(types=`ViewCount`)
// @WrapOrdEq(with=`ViewCount`)
type ClickCount uint64
