package types

import "fmt"

// ErrMissingInput indicates a scoring run was requested without a required input.
type ErrMissingInput struct {
	Input string
}

func (e *ErrMissingInput) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Input)
}
