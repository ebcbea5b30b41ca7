package services

// ValidationError marks failures of request validation so handlers can map
// them to 400 instead of 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(msg string) error {
	return &ValidationError{msg: msg}
}
