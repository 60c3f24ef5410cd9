package errors_test

import (
	"fmt"

	"github.com/agentstation/lnmap/pkg/errors"
)

// Example demonstrates classifying an upstream response.
func Example() {
	err := errors.NewAPIError("oneml", 404, "Not Found")

	if errors.IsNotFound(err) {
		fmt.Println("node does not exist")
	}
	// Output: node does not exist
}
