package fetch

import "fmt"

// FetchError reports that the source location could not be read.
type FetchError struct {
	Location string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError reports that the source bytes are not valid in the resolved
// encoding.
type DecodeError struct {
	Location string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s as %s: %v", e.Location, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
