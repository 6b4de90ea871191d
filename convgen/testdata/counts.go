package counts

// @WrapUint
type ViewCount uint64

// @WrapUint
// @WrapFrom(types=`ViewCount`)
// @WrapOrdEq(with=`ViewCount`)
type ClickCount uint64
