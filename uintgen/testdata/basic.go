package basic

// @WrapUint
type UserID uint64

// @WrapUint(bits=32)
type Port uint32

// @WrapUint(ops=`add`)
type Amount uint64

// @WrapUint
type DeviceClass uint8
