package dup

// @WrapUint
type ID uint64
