package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxHops(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative hops: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Reachable(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("Reachable: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if path, _ := res.PathTo("A"); !reflect.DeepEqual(path, []string{"A"}) {
		t.Errorf("PathTo(A) = %v", path)
	}
}

// TestBFS_CycleHops checks hop counts around a four-cycle.
func TestBFS_CycleHops(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "A", 1)

	hops, err := bfs.Reachable(g, "A")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, hops)
}

func TestBFS_ParallelEdgesVisitOnce(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 1)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_MaxHopsAndSkipEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("A", "D", 100)

	res, err := bfs.BFS(g, "A", bfs.WithMaxHops(1))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"A", "B", "D"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithSkipEdge(func(_, _ string, w float64) bool { return w >= 50 }))
	require.NoError(t, err)
	require.Equal(t, 3, res.Hops["D"])
	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)

	_, err = res.PathTo("Z")
	require.Error(t, err)
	require.False(t, res.Reached("Z"))
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	stop := errors.New("stop")
	var seen []string
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"A", "B"}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestUnreachable(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("S", "A", 1)
	g.AddVertex("lonely")

	missing, err := bfs.Unreachable(g, "S", []string{"A", "S", "lonely", "ghost"})
	require.NoError(t, err)
	require.Equal(t, []string{"lonely", "ghost"}, missing)

	missing, err = bfs.Unreachable(g, "S", []string{"A"})
	require.NoError(t, err)
	require.Empty(t, missing)
}
