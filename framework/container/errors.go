package container

import (
	"errors"
	"fmt"
	"strings"
)

// ServiceNotRegisteredError is returned by Resolve when a token has no
// registration in the container or any of its ancestors. It is a wiring
// bug: register the token before resolving it.
type ServiceNotRegisteredError struct {
	Token string
}

func (e *ServiceNotRegisteredError) Error() string {
	return fmt.Sprintf("container: service not registered: %q", e.Token)
}

// CircularDependencyError is returned when resolving a token that is
// already under construction in the same resolution call. Chain holds the
// in-progress path ending with the repeating token.
type CircularDependencyError struct {
	Token string
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("container: circular dependency detected: %s", strings.Join(e.Chain, " -> "))
}

// TypeMismatchError is returned by the generic Resolve helper when the
// resolved instance does not have the requested type.
type TypeMismatchError struct {
	Token    string
	Instance any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: %q resolved to unexpected type %T", e.Token, e.Instance)
}

// Constructor registration failures.
var (
	ErrConstructorNotFunc = errors.New("container: constructor must be a function")
	ErrConstructorArity   = errors.New("container: constructor parameters do not match dependency tokens")
	ErrConstructorReturns = errors.New("container: constructor must return a value, optionally with an error")
)

// IsNotRegistered reports whether err is a ServiceNotRegisteredError.
func IsNotRegistered(err error) bool {
	var e *ServiceNotRegisteredError
	return errors.As(err, &e)
}

// IsCircularDependency reports whether err is a CircularDependencyError.
func IsCircularDependency(err error) bool {
	var e *CircularDependencyError
	return errors.As(err, &e)
}
