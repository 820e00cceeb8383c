package util

// Ptr 返回值的指针
func Ptr[T any](v T) *T {
	return &v
}

// Deref 解引用，nil 时返回零值
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
