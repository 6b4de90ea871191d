package basic

// @WrapStr
type Email string

// @WrapStr
type Username string
