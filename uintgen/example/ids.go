package example

// 示例 0: 默认模式 - 位宽按底层类型推断
// @WrapUint
type UserID uint64

// 示例 1: 显式声明位宽（必须与底层类型一致）
// @WrapUint(bits=32)
type Port uint32

// 示例 2: 启用算术能力
// @WrapUint(ops=`add`)
type Amount uint64

// 示例 3: 128 位，底层为大端 [16]byte，必须显式声明 bits=128
// @WrapUint(bits=128, ops=`add`)
type TxID [16]byte

// 示例 4: 自定义输出文件（$TYPE 会替换为蛇形命名的类型名）
// @WrapUint(output=`$TYPE_wrap`)
type DeviceClass uint8
