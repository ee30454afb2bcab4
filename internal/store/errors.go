package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-store/models"
)

// Sentinel errors returned by [ConfigStore] operations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTypeMismatch is matched by every [*TypeMismatchError]: an incoming
	// value conflicts with the kind of the stored value for the same key and
	// no coercion rule applies.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrParse is returned when the (possibly repaired) payload text is not
	// valid JSON. The underlying decoder error is wrapped as well.
	ErrParse = errors.New("error parsing json")

	// ErrNotObject is returned when a payload parses but its top level is not
	// a JSON object (for example an array or a bare number).
	ErrNotObject = errors.New("json payload is not an object")
)

// TypeMismatchError describes a rejected key.
type TypeMismatchError struct {
	// Store is the name of the store that rejected the payload.
	Store string
	// Key is the dotted path of the offending key, e.g. "server.port".
	Key string
	// Expected is the kind of the stored value.
	Expected models.Kind
	// Actual is the kind of the incoming value.
	Actual models.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s key %s is not of type %s", e.Store, e.Key, e.Expected)
}

// Unwrap lets errors.Is(err, ErrTypeMismatch) match.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
