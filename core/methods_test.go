package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/waypath/core"
	"github.com/stretchr/testify/require"
)

// sampleGraph builds the five-vertex graph used across the test suites:
//
//	A–B(4), A–C(2), B–C(5), B–D(10), C–E(3), E–D(4)
func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 5},
		{"B", "D", 10}, {"C", "E", 3}, {"E", "D", 4},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Empty(t, nbs)

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = g.AddEdge("A", "B", w)
		require.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}

	_, err = g.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// failed calls must not leave vertices behind
	require.Equal(t, 0, g.VertexCount())
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	require.True(t, g.HasVertex("X"))
	require.True(t, g.HasVertex("Y"))
	require.Equal(t, []string{"X", "Y"}, g.Vertices())
}

// TestUndirectedNeighbors checks that every added edge is visible from both ends.
func TestUndirectedNeighbors(t *testing.T) {
	g := sampleGraph(t)
	for _, e := range g.Edges() {
		fromU, err := g.Neighbors(e.From)
		require.NoError(t, err)
		require.Contains(t, fromU, core.Neighbor{ID: e.To, Weight: e.Weight, EdgeID: e.ID})

		fromV, err := g.Neighbors(e.To)
		require.NoError(t, err)
		require.Contains(t, fromV, core.Neighbor{ID: e.From, Weight: e.Weight, EdgeID: e.ID})
	}
}

func TestNeighbors_NotFound(t *testing.T) {
	g := sampleGraph(t)
	_, err := g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.NotContains(t, g.Vertices(), "Z")

	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := sampleGraph(t)
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, ids)
}

func TestParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 3)
	require.NoError(t, err)

	require.Equal(t, 2, g.EdgeCount())
	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 2)

	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	require.Equal(t, 3.0, w)

	simple := core.NewGraph(core.WithSimpleEdges())
	_, err = simple.AddEdge("A", "B", 7)
	require.NoError(t, err)
	_, err = simple.AddEdge("B", "A", 3)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 2)
	require.NoError(t, err)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 1)
	require.Equal(t, "A", nbs[0].ID)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 1, deg)
}

func TestRemoveEdge(t *testing.T) {
	g := sampleGraph(t)
	require.True(t, g.HasEdge("D", "B"))

	var bd string
	for _, e := range g.Edges() {
		if e.From == "B" && e.To == "D" {
			bd = e.ID
		}
	}
	require.NotEmpty(t, bd)
	require.NoError(t, g.RemoveEdge(bd))
	require.False(t, g.HasEdge("B", "D"))
	require.False(t, g.HasEdge("D", "B"))
	require.ErrorIs(t, g.RemoveEdge(bd), core.ErrEdgeNotFound)

	_, err := g.GetEdge(bd)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestPathTotal(t *testing.T) {
	g := sampleGraph(t)

	tests := []struct {
		name    string
		path    []string
		want    float64
		wantErr error
	}{
		{name: "empty", path: nil, want: 0},
		{name: "single", path: []string{"A"}, want: 0},
		{name: "single absent", path: []string{"Z"}, want: 0},
		{name: "shortest", path: []string{"A", "C", "E", "D"}, want: 9},
		{name: "direct", path: []string{"A", "B", "D"}, want: 14},
		{name: "reverse", path: []string{"D", "E", "C", "A"}, want: 9},
		{name: "partial", path: []string{"A", "C", "D", "E"}, want: 2, wantErr: core.ErrDisconnectedPath},
		{name: "absent hop", path: []string{"A", "Z"}, want: 0, wantErr: core.ErrDisconnectedPath},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.PathTotal(tc.path)
			require.Equal(t, tc.want, got)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClone_Independent(t *testing.T) {
	g := sampleGraph(t)
	c := g.Clone()

	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	_, err := c.AddEdge("A", "D", 1)
	require.NoError(t, err)
	require.False(t, g.HasEdge("A", "D"))
	require.True(t, c.HasEdge("A", "D"))

	empty := g.CloneEmpty()
	require.Equal(t, g.VertexCount(), empty.VertexCount())
	require.Equal(t, 0, empty.EdgeCount())

	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 5, c.VertexCount())
}
