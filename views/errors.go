package views

import "github.com/pkg/errors"

// Sentinel errors returned by view operations. Failure sites wrap these with
// context; match with errors.Is.
var (
	// ErrPredicateViolated is returned by Filtered.Add (directly or through a
	// transformed view) when the element fails the view's predicate.
	ErrPredicateViolated = errors.New("views: element does not satisfy the view predicate")

	// ErrUnsupportedOperation is returned by Mapped.Add and Mapped.Remove
	// when the view has no inverse installed.
	ErrUnsupportedOperation = errors.New("views: operation not supported by this view")

	// ErrConcurrentModification is the panic value raised when a structural
	// mutation of the backing sequence is detected during an iteration pass.
	ErrConcurrentModification = errors.New("views: backing sequence modified during iteration")

	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("views: index out of range")
)
