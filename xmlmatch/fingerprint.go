package xmlmatch

import "fmt"

// String renders the key as 16 hex digits, zero-padded.
// This is the form meant for logs / de-dup maps / CLI output.
func (k Key) String() string {
	return fmt.Sprintf("%016x", uint64(k))
}
