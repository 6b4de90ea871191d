package mismatch

// @WrapUint
type Count uint64

// @WrapStr
type Label string

// 底层表示不一致: uint32 vs string
// @WrapUint(bits=32)
// @WrapFrom(types=`Label`)
type Tag uint32

// 引用的类型没有注解声明
// @WrapUint
// @WrapOrdEq(with=`Missing`)
type Total uint64
