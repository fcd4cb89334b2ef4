package registry

import "fmt"

type Error struct {
	Code        int
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Description)
}

var (
	ErrUnauthorizedAdmin = &Error{Code: 200, Description: "caller is not the administrator"}
	// ErrUnauthorizedAsset covers both a missing asset and a holder
	// mismatch, so a probing caller cannot tell the two apart.
	ErrUnauthorizedAsset  = &Error{Code: 201, Description: "caller does not control the asset"}
	ErrInvalidValue       = &Error{Code: 202, Description: "value out of range"}
	ErrInsufficientValue  = &Error{Code: 203, Description: "asset value too low"}
	ErrAlreadyDeactivated = &Error{Code: 204, Description: "asset lifecycle state mismatch"}
	// ErrValueExists is reserved and never returned.
	ErrValueExists = &Error{Code: 205, Description: "value exists"}
)
