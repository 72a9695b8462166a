package forward

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Sum64 returns an order-sensitive SipHash-2-4 digest of the element
// sequence, using marshal to encode each element. Equal lists hash
// equal; a reordering or a length change produces a different digest
// with overwhelming probability, so the sum works as a cheap identity
// for dedup maps and as an equality fast path. Each element's encoding
// is length-prefixed, so variable-length encodings cannot collide by
// concatenation.
func Sum64[T any](l *List[T], marshal func(T) []byte) uint64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)

	h := siphash.New(key[:])
	var lenbuf [8]byte
	for n := l.head.next; n != nil; n = n.next {
		b := marshal(n.value)
		binary.LittleEndian.PutUint64(lenbuf[:], uint64(len(b)))
		_, _ = h.Write(lenbuf[:])
		_, _ = h.Write(b)
	}
	return h.Sum64()
}

// Sum64String is Sum64 for string elements.
func Sum64String(l *List[string]) uint64 {
	return Sum64(l, func(s string) []byte { return []byte(s) })
}
