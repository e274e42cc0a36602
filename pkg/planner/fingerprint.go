package planner

import "hash/fnv"

// Fingerprint hashes raw SQL text with FNV-1a for cache lookup.
// Grounded on the teacher's SQLFingerprint, which walks a parsed
// SQLStatement's fields into the same hash; two character-identical
// statements always compile to the same plan here, so hashing the
// source text directly is equivalent and needs no frontend dependency.
func Fingerprint(sql string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(sql))
	return h.Sum64()
}
