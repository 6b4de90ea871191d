package strgen_test

//go:generate bash -c "cd ../../ && go build -o newtypegen && ./newtypegen gen ./strgen/strgen_test && go test ./strgen/strgen_test/..."

// @WrapStr
type Email string

// @WrapStr
type Username string
