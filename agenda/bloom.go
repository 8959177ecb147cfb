package agenda

import (
	"github.com/spaolacci/murmur3"
)

type bloomWord uint64

// nameBloom answers "definitely absent" for names never inserted.
// Deleted names stay in the filter, so it only produces extra false positives.
type nameBloom struct {
	bitset    []bloomWord
	numHashes int
}

const (
	bloomWordBits  = 64
	bloomWordShift = 6

	bloomMinExpectedItems = 64

	bloomDefaultBitsPerExpectedItem = 9 // bloom bit count = #expectedItems *  bloomDefaultBitsPerExpectedItem
	bloomDefaultHashes              = 6
	// default false positive rate (FPR) = pow(1 - exp(-bloomDefaultHashes/bloomDefaultBitsPerExpectedItem), bloomDefaultHashes) ~= 0.013
)

func calcBloomParams(expectedItems int) (bits, hashes int) {
	if expectedItems < bloomMinExpectedItems {
		expectedItems = bloomMinExpectedItems
	}
	return expectedItems * bloomDefaultBitsPerExpectedItem, bloomDefaultHashes
}

func newNameBloom(expectedItems int) *nameBloom {
	bits, hashes := calcBloomParams(expectedItems)
	words := (bits + bloomWordBits - 1) >> bloomWordShift
	return &nameBloom{
		bitset:    make([]bloomWord, words),
		numHashes: hashes,
	}
}

func (b *nameBloom) insert(name string) {
	h, h2 := murmur3.Sum128([]byte(name))
	// other hashes are derived from these 2
	n := uint64(b.bits())
	for i := 0; i < b.numHashes; i++ {
		h += h2
		at := h % n
		b.bitset[at>>bloomWordShift] |= 1 << (at & (bloomWordBits - 1))
	}
}

func (b *nameBloom) mayContain(name string) bool {
	h, h2 := murmur3.Sum128([]byte(name))
	n := uint64(b.bits())
	for i := 0; i < b.numHashes; i++ {
		h += h2
		at := h % n
		if b.bitset[at>>bloomWordShift]&(1<<(at&(bloomWordBits-1))) == 0 {
			return false
		}
	}
	return true
}

func (b *nameBloom) bits() int {
	return len(b.bitset) * bloomWordBits
}
