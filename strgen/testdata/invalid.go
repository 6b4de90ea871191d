package invalid

// 文本 newtype 仅支持 string 底层类型
// @WrapStr
type Num uint64

// @WrapStr
type Bytes []byte
