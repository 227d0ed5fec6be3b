package program

// Both instructions wrap around on overflow like any int64 arithmetic.

func instADD(src1 int64, src2 int64) int64 {
	return src1 + src2
}

func instMUL(src1 int64, src2 int64) int64 {
	return src1 * src2
}
