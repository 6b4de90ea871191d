package u128

// @WrapUint(bits=128)
type TxID [16]byte

// @WrapUint(bits=128, ops=`add`)
type Balance [16]byte
