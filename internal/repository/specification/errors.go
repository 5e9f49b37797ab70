package specification

import "errors"

var (
	// ErrInvalidMember is returned when a selector does not reference a plain member of its source type.
	ErrInvalidMember = errors.New("expression must be a member expression")

	// ErrNotTranslatable marks a clause the target engine cannot express.
	ErrNotTranslatable = errors.New("clause cannot be translated")

	// ErrIncompatibleProjection is raised when a query is coerced to a result type of a different shape.
	ErrIncompatibleProjection = errors.New("incompatible projection")
)
