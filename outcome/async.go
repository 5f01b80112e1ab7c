package outcome

import (
	"context"
	"fmt"
	"sync"

	"github.com/goutcome/outcome_go/msgkey"
)

// Async is a pending computation of an outcome. Composition with the *Async
// operators is lazy: nothing runs until the Async is invoked with a context.
// The package spawns no goroutines here; it only composes the computations
// the caller supplies. Context cancellation surfaces as whatever failure the
// caller's own computation produces, not as a library-level concept.
type Async[T any] func(context.Context) Of[T]

// Resolve lifts an already-known outcome into a pending computation.
func Resolve[T any](o Of[T]) Async[T] {
	return func(context.Context) Of[T] { return o }
}

// MapAsync composes a pending outcome with an awaited transform. A failing
// upstream outcome never schedules f; its messages propagate unchanged.
func MapAsync[T, U any](a Async[T], f func(context.Context, T) U) Async[U] {
	return func(ctx context.Context) Of[U] {
		o := a(ctx)
		if o.IsFailure() {
			return Of[U]{messages: o.messages}
		}
		return OkOf(f(ctx, o.value))
	}
}

// BindAsync composes a pending outcome with an awaited fallible transform,
// returning f's outcome verbatim. Short-circuits like Bind.
func BindAsync[T, U any](a Async[T], f func(context.Context, T) Of[U]) Async[U] {
	return func(ctx context.Context) Of[U] {
		o := a(ctx)
		if o.IsFailure() {
			return Of[U]{messages: o.messages}
		}
		return f(ctx, o.value)
	}
}

// DoAsync runs an awaited side effect on success and passes the outcome
// through unchanged.
func DoAsync[T any](a Async[T], action func(context.Context, T)) Async[T] {
	return func(ctx context.Context) Of[T] {
		o := a(ctx)
		if o.IsSuccess() {
			action(ctx, o.value)
		}
		return o
	}
}

// MatchAsync awaits the pending outcome and collapses it: exactly one branch
// executes.
func MatchAsync[T, R any](
	ctx context.Context,
	a Async[T],
	onSuccess func(context.Context, T) R,
	onFailure func(context.Context, []msgkey.Message) R,
) R {
	o := a(ctx)
	if o.IsFailure() {
		return onFailure(ctx, o.Messages())
	}
	return onSuccess(ctx, o.value)
}

// TryAsync is Try over an awaited operation: a returned error or a panic
// becomes a failure built from def with the reason appended as the trailing
// message parameter.
func TryAsync[T any](op func(context.Context) (T, error), def *msgkey.Definition, params ...any) Async[T] {
	return func(ctx context.Context) (result Of[T]) {
		defer func() {
			if r := recover(); r != nil {
				result = ErrorOf[T](def, appendReason(params, fmt.Sprintf("%v", r))...)
			}
		}()
		v, err := op(ctx)
		if err != nil {
			return ErrorOf[T](def, appendReason(params, err.Error())...)
		}
		return OkOf(v)
	}
}

// Go launches the pending computation on its own goroutine and delivers the
// outcome on a buffered channel. The channel is closed after the single
// send; dropping it before the send is the caller's way of cancelling.
func Go[T any](ctx context.Context, a Async[T]) <-chan Of[T] {
	done := make(chan Of[T], 1)
	go func() {
		defer close(done)
		done <- a(ctx)
	}()
	return done
}

// TraverseAllAsync is TraverseAll with an awaited transform. Items are
// evaluated strictly in sequence so message order deterministically matches
// input order.
func TraverseAllAsync[T, U any](ctx context.Context, items []T, f func(context.Context, T) Of[U]) Of[[]U] {
	values := make([]U, 0, len(items))
	var msgs []msgkey.Message
	for _, item := range items {
		o := f(ctx, item)
		if o.IsFailure() {
			msgs = append(msgs, o.messages...)
			continue
		}
		values = append(values, o.value)
	}
	if len(msgs) > 0 {
		return Of[[]U]{messages: msgs}
	}
	return OkOf(values)
}

// TraversePartialAsync is TraversePartial with the transforms evaluated
// concurrently, one goroutine per item. Each result lands in the slot of its
// input index, so the output sequence follows input order rather than
// completion order. It can never itself fail.
func TraversePartialAsync[T, U any](ctx context.Context, items []T, f func(context.Context, T) Of[U]) Of[[]U] {
	slots := make([]Of[U], len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			slots[i] = f(ctx, item)
		}(i, item)
	}
	wg.Wait()

	values := make([]U, 0, len(items))
	for _, o := range slots {
		if o.IsSuccess() {
			values = append(values, o.value)
		}
	}
	return OkOf(values)
}
