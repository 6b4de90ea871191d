package uintgen_test

//go:generate bash -c "cd ../../ && go build -o newtypegen && ./newtypegen gen ./uintgen/uintgen_test && go test ./uintgen/uintgen_test/..."

// @WrapUint
type Quota uint8

// @WrapUint
type Channel uint16

// @WrapUint(bits=32)
type Port uint32

// @WrapUint
type UserID uint64

// @WrapUint(ops=`add`)
type Amount uint64

// @WrapUint(bits=128,ops=`add`)
type TxID [16]byte
