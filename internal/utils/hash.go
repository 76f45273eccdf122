package utils

import "hash/fnv"

func HashStringToUint64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// PickIndex deterministically chooses an index in [0, n) for key. Distinct
// salts give independent choices for the same key.
func PickIndex(key string, salt uint64, n int) int {
	if n <= 0 {
		return 0
	}
	h := HashStringToUint64(key)
	if salt > 0 {
		h /= salt
	}
	return int(h % uint64(n))
}
