package response

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for category matching with errors.Is. The concrete error
// types below carry the detail; these exist so callers can switch on the
// kind of failure without inspecting messages.
var (
	ErrInvalidParameter = errors.New("invalid response parameter")
	ErrUnknownName      = errors.New("unknown response function")
	ErrDuplicateName    = errors.New("duplicate response function")
)

// InvalidParameterError reports a missing or unusable parameter in the bag
// passed to a response function.
type InvalidParameterError struct {
	Key    string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid response parameter %q: %s", e.Key, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// UnknownNameError reports a Resolve against a name that was never
// registered. Available lists the registered names to make typos obvious.
type UnknownNameError struct {
	Name      string
	Available []string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown response function %q, available: [%s]", e.Name, strings.Join(e.Available, " "))
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

// DuplicateNameError reports a Register against a name already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("response function %q already registered", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}
