package outcome

import (
	"fmt"

	"github.com/goutcome/outcome_go/msgkey"
)

// Map applies f to the value of a successful outcome and wraps the result as
// a new success. On failure the original messages propagate unchanged and f
// is never invoked. Panics raised by f propagate to the caller: transform
// functions are assumed not to fail in the outcome sense; use Bind for
// fallible transforms.
func Map[T, U any](o Of[T], f func(T) U) Of[U] {
	if o.IsFailure() {
		return Of[U]{messages: o.messages}
	}
	return OkOf(f(o.value))
}

// Bind applies f to the value of a successful outcome and returns f's
// outcome verbatim, messages and all. On failure it short-circuits without
// invoking f.
func Bind[T, U any](o Of[T], f func(T) Of[U]) Of[U] {
	if o.IsFailure() {
		return Of[U]{messages: o.messages}
	}
	return f(o.value)
}

// Match collapses an outcome into a single result: exactly one of the two
// branches executes. Panics inside either branch propagate to the caller.
func Match[T, R any](o Of[T], onSuccess func(T) R, onFailure func([]msgkey.Message) R) R {
	if o.IsFailure() {
		return onFailure(o.Messages())
	}
	return onSuccess(o.value)
}

// Ensure checks the predicate against a successful outcome's value and
// replaces the outcome with the given error when the predicate fails.
// Failing outcomes pass through without invoking the predicate.
func Ensure[T any](o Of[T], predicate func(T) bool, def *msgkey.Definition, args ...any) Of[T] {
	if o.IsFailure() {
		return o
	}
	if !predicate(o.value) {
		return ErrorOf[T](def, args...)
	}
	return o
}

// Filter is a named alias of Ensure.
func Filter[T any](o Of[T], predicate func(T) bool, def *msgkey.Definition, args ...any) Of[T] {
	return Ensure(o, predicate, def, args...)
}

// Do runs a side effect against a successful outcome's value and always
// returns the receiver unchanged, for chaining logging or telemetry.
func Do[T any](o Of[T], action func(T)) Of[T] {
	if o.IsSuccess() {
		action(o.value)
	}
	return o
}

// OnSuccess runs next only when o succeeded; otherwise o propagates.
func OnSuccess(o Outcome, next func() Outcome) Outcome {
	if o.IsFailure() {
		return o
	}
	return next()
}

// OnSuccessSeq left-folds OnSuccess over outcome-producing steps, stopping
// at the first failure: later steps are never invoked. This is the one
// fail-fast aggregate operator, in deliberate contrast to MergeAll and
// TraverseAll.
func OnSuccessSeq(steps ...func() Outcome) Outcome {
	result := Ok()
	for _, step := range steps {
		result = OnSuccess(result, step)
		if result.IsFailure() {
			break
		}
	}
	return result
}

// Try is the sanctioned panic-to-outcome boundary. It runs op and returns
// its value as a success; a returned error or a panic becomes a failure
// built from def, with the error or panic text appended as the trailing
// message parameter. The definition must therefore declare one trailing
// string parameter beyond params.
func Try[T any](op func() (T, error), def *msgkey.Definition, params ...any) (result Of[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = ErrorOf[T](def, appendReason(params, fmt.Sprintf("%v", r))...)
		}
	}()
	v, err := op()
	if err != nil {
		return ErrorOf[T](def, appendReason(params, err.Error())...)
	}
	return OkOf(v)
}

// TryDo is Try for operations without a value.
func TryDo(op func() error, def *msgkey.Definition, params ...any) (result Outcome) {
	defer func() {
		if r := recover(); r != nil {
			result = Error(def, appendReason(params, fmt.Sprintf("%v", r))...)
		}
	}()
	if err := op(); err != nil {
		return Error(def, appendReason(params, err.Error())...)
	}
	return Ok()
}

func appendReason(params []any, reason string) []any {
	out := make([]any, 0, len(params)+1)
	out = append(out, params...)
	return append(out, reason)
}
