package errors_test

import (
	"fmt"

	"chain-shielded/errors"
)

var ErrMalformed = errors.New("malformed input")

func ExampleSub() {
	_, err := decode()
	err = errors.Sub(ErrMalformed, err)
	fmt.Println(errors.Root(err) == ErrMalformed)
	fmt.Println(err)
	// Output:
	// true
	// malformed input: reading name: unexpected EOF
}

func decode() ([]byte, error) {
	return nil, errors.Wrap(fmt.Errorf("unexpected EOF"), "reading name")
}
