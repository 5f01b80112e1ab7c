package outcome

import "github.com/goutcome/outcome_go/msgkey"

// TraverseAll applies f to every item — no short-circuit, every item is
// evaluated even after a failure is seen — and collects all values when all
// succeed. Otherwise it collects all messages from all failing items, in
// item order, and the result carries no value.
func TraverseAll[T, U any](items []T, f func(T) Of[U]) Of[[]U] {
	values := make([]U, 0, len(items))
	var msgs []msgkey.Message
	for _, item := range items {
		o := f(item)
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

// TraversePartial applies f to every item, keeps the values of succeeding
// items in input order, and silently drops failing items' messages. It can
// never itself fail: if every item fails the result is a success carrying an
// empty sequence.
func TraversePartial[T, U any](items []T, f func(T) Of[U]) Of[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		if o := f(item); o.IsSuccess() {
			values = append(values, o.value)
		}
	}
	return OkOf(values)
}
