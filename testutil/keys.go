package testutil

import (
	"fmt"

	"chain-shielded/crypto/keys"
)

var (
	TestSpendingKey   keys.SpendingKey
	TestPublicAddress keys.PublicAddress
)

func init() {
	TestSpendingKey = keys.RootSpendingKey([]byte("chain-shielded test key"))
	TestPublicAddress = TestSpendingKey.PublicAddress()
}

// TestAddress returns a distinct, deterministic public address for each i.
func TestAddress(i int) keys.PublicAddress {
	return keys.RootSpendingKey([]byte(fmt.Sprintf("chain-shielded test key %d", i))).PublicAddress()
}
