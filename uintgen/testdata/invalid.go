package invalid

// 不支持的底层类型
// @WrapUint
type Signed int

// bits 与底层类型不一致
// @WrapUint(bits=16)
type Mismatch uint32

// [16]byte 必须显式声明 bits=128
// @WrapUint
type Raw [16]byte

// 不支持的 ops 值
// @WrapUint(ops=`sub`)
type BadOps uint64
