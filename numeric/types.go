package numeric

// Integer is any built-in signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any built-in floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is any type that supports + and - with a meaningful zero value.
type Number interface {
	Integer | Float
}
