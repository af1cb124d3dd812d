package container

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Constructor registers a token built by calling ctor with the resolved
// values of deps, in order. ctor must be a non-variadic function taking
// exactly len(deps) parameters and returning either a single value or a
// value and an error. The shape is validated here, at registration time,
// rather than failing mid-resolution with a reflect panic.
//
// The registration behaves like Singleton: one instance per container.
// Dependency tokens are resolved through the same resolution stack as the
// enclosing call, so cycles through constructor dependencies are detected
// like any other.
//
//	err := c.Constructor("invitations.service",
//	    services.NewInvitationService,
//	    "invitations.repo", "users.repo", "mailer", "config", "logger")
func (c *Container) Constructor(token string, ctor any, deps ...string) error {
	fn := reflect.ValueOf(ctor)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return fmt.Errorf("%w: got %T for %q", ErrConstructorNotFunc, ctor, token)
	}
	ft := fn.Type()

	if ft.IsVariadic() || ft.NumIn() != len(deps) {
		return fmt.Errorf("%w: %q takes %d, given %d tokens",
			ErrConstructorArity, token, ft.NumIn(), len(deps))
	}

	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return fmt.Errorf("%w: %q returns %d values", ErrConstructorReturns, token, ft.NumOut())
	}

	tokens := append([]string(nil), deps...)
	c.Singleton(token, func(r *Resolver) (any, error) {
		args := make([]reflect.Value, len(tokens))
		for i, dep := range tokens {
			v, err := r.Resolve(dep)
			if err != nil {
				return nil, err
			}
			if v == nil {
				args[i] = reflect.Zero(ft.In(i))
				continue
			}
			av := reflect.ValueOf(v)
			if !av.Type().AssignableTo(ft.In(i)) {
				return nil, fmt.Errorf("container: dependency %q of %q resolved to %T, want %s",
					dep, token, v, ft.In(i))
			}
			args[i] = av
		}

		out := fn.Call(args)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	})
	return nil
}
