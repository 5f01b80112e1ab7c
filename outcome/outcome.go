package outcome

import (
	"strings"

	"github.com/goutcome/outcome_go/msgkey"
)

// Outcome is the non-generic success/failure container: zero messages means
// success, one or more means failure. Outcomes are values; every operation
// returns a new one and never mutates its inputs. Message order is the order
// failures were detected or merged.
type Outcome struct {
	messages []msgkey.Message
}

// Ok returns the zero-message success outcome.
func Ok() Outcome { return Outcome{} }

// Error builds a failure outcome from a message key definition and its
// arguments. Panics with an ArgumentMismatchError when the arguments do not
// match the definition — a broken call site, not a validation failure.
func Error(def *msgkey.Definition, args ...any) Outcome {
	return Outcome{messages: []msgkey.Message{msgkey.MustMessage(def, args...)}}
}

// FromMessage wraps a single already-constructed message as a failure.
func FromMessage(msg msgkey.Message) Outcome {
	return Outcome{messages: []msgkey.Message{msg}}
}

// FromMessages wraps a message sequence. An empty sequence yields Ok().
func FromMessages(msgs []msgkey.Message) Outcome {
	if len(msgs) == 0 {
		return Outcome{}
	}
	owned := make([]msgkey.Message, len(msgs))
	copy(owned, msgs)
	return Outcome{messages: owned}
}

func (o Outcome) IsSuccess() bool { return len(o.messages) == 0 }
func (o Outcome) IsFailure() bool { return !o.IsSuccess() }

// Messages returns a copy of the message sequence, in insertion order.
func (o Outcome) Messages() []msgkey.Message {
	out := make([]msgkey.Message, len(o.messages))
	copy(out, o.messages)
	return out
}

// String renders the comma-joined translation keys, for logs only.
func (o Outcome) String() string {
	keys := make([]string, len(o.messages))
	for i, m := range o.messages {
		keys[i] = m.TranslationKey()
	}
	return strings.Join(keys, ", ")
}

// StringWithParameters renders the comma-joined full diagnostic form of each
// message, with template metacharacters in parameter values escaped.
func (o Outcome) StringWithParameters() string {
	rendered := make([]string, len(o.messages))
	for i, m := range o.messages {
		rendered[i] = m.Render()
	}
	return strings.Join(rendered, ", ")
}

// Merge concatenates two outcomes' message sequences, a's messages first.
func Merge(a, b Outcome) Outcome {
	return Outcome{messages: concatMessages(a.messages, b.messages)}
}

// MergeAll left-folds Merge over the outcomes, seeded with Ok().
func MergeAll(outcomes ...Outcome) Outcome {
	merged := Ok()
	for _, o := range outcomes {
		merged = Merge(merged, o)
	}
	return merged
}

// Of is the generic outcome: a genuine sum type holding either a value with
// zero messages or one or more messages with no value.
type Of[T any] struct {
	value    T
	messages []msgkey.Message
}

// OkOf wraps a value as a success.
func OkOf[T any](value T) Of[T] { return Of[T]{value: value} }

// FromValue is the explicit-constructor spelling of OkOf.
func FromValue[T any](value T) Of[T] { return OkOf(value) }

// ErrorOf builds a failing Of from a definition and arguments. Panics with
// an ArgumentMismatchError on a mismatched argument list, like Error.
func ErrorOf[T any](def *msgkey.Definition, args ...any) Of[T] {
	return Of[T]{messages: []msgkey.Message{msgkey.MustMessage(def, args...)}}
}

// MessagesOf builds a failing Of from an existing message sequence.
// Panics if the sequence is empty: a generic outcome with no messages must
// carry a value.
func MessagesOf[T any](msgs []msgkey.Message) Of[T] {
	if len(msgs) == 0 {
		panic("outcome: MessagesOf requires at least one message")
	}
	owned := make([]msgkey.Message, len(msgs))
	copy(owned, msgs)
	return Of[T]{messages: owned}
}

func (o Of[T]) IsSuccess() bool { return len(o.messages) == 0 }
func (o Of[T]) IsFailure() bool { return !o.IsSuccess() }

// Value returns the carried value and whether it is meaningful. On failure
// the first return is T's zero value and must not be treated as valid.
func (o Of[T]) Value() (T, bool) {
	if o.IsFailure() {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MustValue is the panic-on-failure variant of Value.
func (o Of[T]) MustValue() T {
	if o.IsFailure() {
		panic("outcome: MustValue on a failing outcome: " + o.String())
	}
	return o.value
}

// Messages returns a copy of the message sequence, in insertion order.
func (o Of[T]) Messages() []msgkey.Message {
	out := make([]msgkey.Message, len(o.messages))
	copy(out, o.messages)
	return out
}

// Discard drops the value, keeping only the message sequence. Useful for
// feeding heterogeneous generic outcomes into Merge/MergeAll.
func (o Of[T]) Discard() Outcome {
	return Outcome{messages: o.messages}
}

func (o Of[T]) String() string               { return o.Discard().String() }
func (o Of[T]) StringWithParameters() string { return o.Discard().StringWithParameters() }

// MergeOf concatenates two generic outcomes' messages (a's first). When both
// sides succeed the result is right-biased: it keeps b's value. There is no
// natural way to combine two arbitrary values, so callers merging
// heterogeneous outcomes should Discard and use Merge instead.
func MergeOf[T any](a, b Of[T]) Of[T] {
	if a.IsSuccess() && b.IsSuccess() {
		return OkOf(b.value)
	}
	return Of[T]{messages: concatMessages(a.messages, b.messages)}
}

// MergeAllOf folds a sequence of generic outcomes into one outcome carrying
// every value, in input order. Any failure anywhere forces the result to
// failure carrying all messages from all failing inputs — fail-slow, not
// fail-fast.
func MergeAllOf[T any](outcomes []Of[T]) Of[[]T] {
	values := make([]T, 0, len(outcomes))
	var msgs []msgkey.Message
	for _, o := range outcomes {
		if o.IsFailure() {
			msgs = append(msgs, o.messages...)
			continue
		}
		values = append(values, o.value)
	}
	if len(msgs) > 0 {
		return Of[[]T]{messages: msgs}
	}
	return OkOf(values)
}

func concatMessages(a, b []msgkey.Message) []msgkey.Message {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make([]msgkey.Message, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}
