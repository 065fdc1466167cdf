package usecase

import "github.com/cockroachdb/errors"

// Sentinels mark the hard-stop failure classes. Services attach them with
// errors.Mark so errors.Is still matches through wrapping.
var (
	// ErrInvalidInput covers bad operator arguments, including self-merge
	// attempts. Raised before any storage access.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound means an id did not resolve to a record; the message
	// names which one.
	ErrNotFound = errors.New("resource not found")
	// ErrTransaction means the merge transaction failed and rolled back.
	// The wrapped cause names the failing step. Callers decide whether to
	// retry; the service never does.
	ErrTransaction = errors.New("merge transaction failed")
)

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsTransaction(err error) bool {
	return errors.Is(err, ErrTransaction)
}
