package agent

import (
	"errors"
	"fmt"
)

// sentinel markers so callers can classify an error with errors.Is without
// caring about the identifier/reason it carries.
var (
	errNotFound       = errors.New("object not found")
	errOperation      = errors.New("object operation precondition failed")
	errInvalidArg     = errors.New("invalid argument")
	errNotImplemented = errors.New("not implemented")
	errStorage        = errors.New("storage error")

	errAttributeTypeMismatch = errors.New("attribute value is not a byte slice")
)

// NotFoundError is raised when a lookup exhausts without a matching
// live-writable row, or DN resolution fails (spec.md §7).
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: %s", e.Identifier)
}
func (e *NotFoundError) Unwrap() error { return errNotFound }

// OperationError is raised when a precondition on an object fails: not an
// account, not a security principal, missing userAccountControl.
type OperationError struct {
	Reason     string
	Identifier string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("object operation: %s: %s", e.Reason, e.Identifier)
}
func (e *OperationError) Unwrap() error { return errOperation }

// InvalidArgumentError is raised for boot-key length mismatches and null
// arguments where non-null is required.
type InvalidArgumentError struct {
	Param string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Param)
}
func (e *InvalidArgumentError) Unwrap() error { return errInvalidArg }

// NotImplementedError is raised by the authoritative-restore admin stub.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Op)
}
func (e *NotImplementedError) Unwrap() error { return errNotImplemented }

// StorageError wraps a failure propagated from the cursor/transaction layer.
type StorageError struct {
	Inner error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Inner)
}
func (e *StorageError) Unwrap() error        { return e.Inner }
func (e *StorageError) Is(target error) bool { return target == errStorage }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool { return errors.Is(err, errNotFound) }

// IsOperationError reports whether err is (or wraps) an OperationError.
func IsOperationError(err error) bool { return errors.Is(err, errOperation) }

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool { return errors.Is(err, errInvalidArg) }

// IsNotImplemented reports whether err is (or wraps) a NotImplementedError.
func IsNotImplemented(err error) bool { return errors.Is(err, errNotImplemented) }

func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Inner: err}
}
