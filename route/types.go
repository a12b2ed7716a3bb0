package route

import (
	"encoding/json"
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptyEndpoint is returned by New when start or finish is empty.
	ErrEmptyEndpoint = errors.New("route: start and finish must be non-empty")

	// ErrEmptyWaypoint is returned by New for an empty waypoint ID.
	ErrEmptyWaypoint = errors.New("route: waypoint ID is empty")

	// ErrDuplicateWaypoint is returned by New when a waypoint is listed twice.
	ErrDuplicateWaypoint = errors.New("route: duplicate waypoint")

	// ErrInvalidTour marks a best candidate whose node sequence is not
	// start, each waypoint exactly once, finish.
	ErrInvalidTour = errors.New("route: invalid tour")

	// ErrNoValidTour marks a run in which no candidate connected every
	// waypoint (best fitness 0).
	ErrNoValidTour = errors.New("route: no valid tour found")
)

// Problem is the immutable input of an optimisation: visit every waypoint
// exactly once on the way from Start to Finish.
type Problem struct {
	Start     string   `json:"start" yaml:"start"`
	Finish    string   `json:"finish" yaml:"finish"`
	Waypoints []string `json:"waypoints" yaml:"waypoints"`
}

// Solution is the expanded result of a run.
//
// Path is the full node sequence through the graph, with segment junctions
// listed once. Order is the visiting order of start, waypoints and finish.
// On failure Path is empty, Distance is +Inf and Err (and Error) say why.
type Solution struct {
	RunID       string   `json:"run_id" yaml:"run_id"`
	Path        []string `json:"path" yaml:"path"`
	Order       []string `json:"order" yaml:"order"`
	Distance    float64  `json:"distance" yaml:"distance"`
	Fitness     float64  `json:"fitness" yaml:"fitness"`
	Generations int      `json:"generations" yaml:"generations"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
	Err         error    `json:"-" yaml:"-"`
}

// OK reports whether the run produced a valid tour.
func (s Solution) OK() bool { return s.Err == nil }

// MarshalJSON encodes an infinite Distance as null.
func (s Solution) MarshalJSON() ([]byte, error) {
	type plain Solution
	out := struct {
		plain
		Distance *float64 `json:"distance"`
	}{plain: plain(s)}
	if !math.IsInf(s.Distance, 0) && !math.IsNaN(s.Distance) {
		d := s.Distance
		out.Distance = &d
	}
	if out.Path == nil {
		out.Path = []string{}
	}

	return json.Marshal(out)
}

func failed(runID string, order []string, gens int, err error) Solution {
	return Solution{
		RunID:       runID,
		Path:        []string{},
		Order:       order,
		Distance:    math.Inf(1),
		Generations: gens,
		Error:       err.Error(),
		Err:         err,
	}
}
