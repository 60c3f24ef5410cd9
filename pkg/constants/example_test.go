package constants_test

import (
	"fmt"

	"github.com/agentstation/lnmap/pkg/constants"
)

// Example shows converting a BTC amount to satoshis.
func Example() {
	btc := 0.5
	fmt.Println(int64(btc * constants.SatsPerBTC))
	fmt.Println(constants.DefaultHTTPTimeout)
	// Output:
	// 50000000
	// 15s
}
