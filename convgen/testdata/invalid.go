package invalid

// 缺少必填参数 types
// @WrapFrom
type NoTypes uint64

// 不能引用自身
// @WrapOrdEq(with=`SelfRef`)
type SelfRef uint64
