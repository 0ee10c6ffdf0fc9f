package codec

import "fmt"

// recoverEncode turns an encoder panic (e.g. on an unsupported kind) into
// an error.
func recoverEncode(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("encode %s: %v", Name, r)
	}
}
