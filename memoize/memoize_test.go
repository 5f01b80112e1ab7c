package memoize_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goutcome/outcome_go/memoize"
)

func TestOnceComputesExactlyOnce(t *testing.T) {
	count := 0
	fn := memoize.Once(func() int {
		count++
		return 42
	})

	assert.Equal(t, 42, fn())
	assert.Equal(t, 42, fn())
	assert.Equal(t, 42, fn())
	assert.Equal(t, 1, count)
}

func TestOnceConcurrentFirstCalls(t *testing.T) {
	count := 0
	fn := memoize.Once(func() int {
		count++
		return 7
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 7, fn())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, count)
}

func TestOnceDoesNotCachePanic(t *testing.T) {
	count := 0
	fn := memoize.Once(func() int {
		count++
		if count == 1 {
			panic("first attempt fails")
		}
		return 42
	})

	assert.Panics(t, func() { fn() })
	assert.Equal(t, 42, fn())
	assert.Equal(t, 42, fn())
	assert.Equal(t, 2, count)
}

func TestMemoize1ExecutesOncePerDistinctKey(t *testing.T) {
	count := 0
	fn := memoize.Memoize1(func(v int) int {
		count++
		return v * 2
	})

	for _, k := range []int{5, 5, 3, 5, 3} {
		assert.Equal(t, k*2, fn(k))
	}
	assert.Equal(t, 2, count)
}

func TestMemoize2TupleKey(t *testing.T) {
	count := 0
	fn := memoize.Memoize2(func(a string, b int) string {
		count++
		return fmt.Sprintf("%s-%d", a, b)
	})

	assert.Equal(t, "x-1", fn("x", 1))
	assert.Equal(t, "x-1", fn("x", 1))
	assert.Equal(t, "x-2", fn("x", 2))
	assert.Equal(t, "y-1", fn("y", 1))
	assert.Equal(t, 3, count)
}

func TestMemoize3TupleKey(t *testing.T) {
	count := 0
	fn := memoize.Memoize3(func(a, b, c int) int {
		count++
		return a + b + c
	})

	assert.Equal(t, 6, fn(1, 2, 3))
	assert.Equal(t, 6, fn(1, 2, 3))
	assert.Equal(t, 7, fn(1, 2, 4))
	assert.Equal(t, 2, count)
}

type part string

func (p part) String() string { return string(p) }

func TestKeyForSeparatesParts(t *testing.T) {
	assert.NotEqual(t,
		memoize.KeyFor(part("ab"), part("c")),
		memoize.KeyFor(part("a"), part("bc")),
	)
	assert.Equal(t,
		memoize.KeyFor(part("a"), part("b")),
		memoize.KeyFor(part("a"), part("b")),
	)
}

type sliceArg struct {
	fields []int
}

func (s sliceArg) String() string { return fmt.Sprintf("sliceArg%v", s.fields) }

func TestMemoizeStringerFallback(t *testing.T) {
	count := 0
	fn := memoize.MemoizeStringer(func(s sliceArg) int {
		count++
		return len(s.fields)
	})

	assert.Equal(t, 3, fn(sliceArg{fields: []int{1, 2, 3}}))
	assert.Equal(t, 3, fn(sliceArg{fields: []int{1, 2, 3}}))
	assert.Equal(t, 1, count)
}
