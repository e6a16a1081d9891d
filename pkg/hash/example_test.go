package hash_test

import (
	"fmt"

	"github.com/nicdgonzalez/orbit/pkg/hash"
)

func ExampleSuffixed() {
	// A second "api" project gets a name of its own.
	fmt.Println(hash.Suffixed("api", "/work/api"))
	// Output: api-e02ef1f3
}
