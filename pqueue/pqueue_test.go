package pqueue_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/waypath/pqueue"
	"github.com/stretchr/testify/require"
)

func drain[T comparable](q *pqueue.Queue[T]) []T {
	var out []T
	for !q.IsEmpty() {
		v, _, ok := q.Dequeue()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestQueue_Empty(t *testing.T) {
	q := pqueue.New[string]()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Len())

	_, _, ok := q.Dequeue()
	require.False(t, ok)
	_, _, ok = q.Peek()
	require.False(t, ok)
}

func TestQueue_AscendingPriority(t *testing.T) {
	q := pqueue.New[string]()
	q.Enqueue("c", 3)
	q.Enqueue("a", 1)
	q.Enqueue("d", math.Inf(1))
	q.Enqueue("b", 2)

	v, p, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Equal(t, 1.0, p)
	require.Equal(t, []string{"a", "b", "c", "d"}, drain(q))
}

func TestQueue_FIFOTies(t *testing.T) {
	q := pqueue.New[string]()
	for _, v := range []string{"x", "y", "z", "w"} {
		q.Enqueue(v, 5)
	}
	q.Enqueue("first", 1)
	require.Equal(t, []string{"first", "x", "y", "z", "w"}, drain(q))
}

func TestQueue_DecreaseKey(t *testing.T) {
	q := pqueue.New[int]()
	q.Enqueue(1, 10)
	q.Enqueue(2, 20)
	q.Enqueue(3, 30)

	q.Enqueue(3, 5) // decrease
	require.Equal(t, 3, q.Len(), "update must not duplicate the value")
	p, ok := q.Priority(3)
	require.True(t, ok)
	require.Equal(t, 5.0, p)

	q.Enqueue(1, 40) // increase
	require.Equal(t, []int{3, 2, 1}, drain(q))
	require.False(t, q.Contains(3))
}

func TestQueue_UpdateResequences(t *testing.T) {
	q := pqueue.New[string]()
	q.Enqueue("a", 2)
	q.Enqueue("b", 7)
	q.Enqueue("b", 2) // tie with "a", but updated later
	require.Equal(t, []string{"a", "b"}, drain(q))
}

func TestQueue_MatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pqueue.New[int]()
	want := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		p := float64(rng.Intn(50))
		q.Enqueue(i, p)
		want = append(want, p)
	}
	sort.Float64s(want)

	for i := 0; i < len(want); i++ {
		_, p, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want[i], p)
	}
}

func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	q := pqueue.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i%1024, rng.Float64())
		if q.Len() > 512 {
			q.Dequeue()
		}
	}
}
