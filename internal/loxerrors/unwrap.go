package loxerrors

// unwrapInterface is satisfied by every error type of this package that
// wraps a cause, so errors.Is and errors.As see the sentinel behind it.
// The errors package matches Unwrap by method set and exports no interface.
type unwrapInterface interface {
	Unwrap() error
}
