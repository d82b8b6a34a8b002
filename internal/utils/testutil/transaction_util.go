package testutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	SampleTransactionHash = "0xe67071db25331ea3a92a4e28b516c95f2d5b62b68329b70386c19e00807f51d8"
)

// MakeTransactionHash returns a well-formed 32-byte transaction hash derived from seq.
func MakeTransactionHash(seq int64) string {
	return common.BigToHash(big.NewInt(seq + 0xabc)).Hex()
}

func MakeTransactionHashes(size int) []string {
	hashes := make([]string, size)
	for i := 0; i < size; i++ {
		hashes[i] = MakeTransactionHash(int64(i))
	}
	return hashes
}
