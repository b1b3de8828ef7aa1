package vars

// FirstNonZero picks the first configured value, flags usually come first.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
