package convgen_test

//go:generate bash -c "cd ../../ && go build -o newtypegen && ./newtypegen gen ./convgen/convgen_test && go test ./convgen/convgen_test/..."

// @WrapUint
type ViewCount uint64

// @WrapUint
// @WrapFrom(types=`ViewCount`)
// @WrapOrdEq(with=`ViewCount`)
type ClickCount uint64
