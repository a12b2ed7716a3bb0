// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Adjacency-list JSON export/import.
// Format:
//
//	{ "A": [ {"node": "B", "weight": 4}, ... ], "B": [ {"node": "A", "weight": 4} ] }
//
// Every undirected edge is listed twice (once per endpoint); self-loops once.
// Import pairs each record with one mirror record from the opposite endpoint, so
// a round trip rebuilds exactly the same multiset of undirected edges.

package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// adjacencyRecord is one entry of a vertex's adjacency list on the wire.
type adjacencyRecord struct {
	Node   string  `json:"node"`
	Weight float64 `json:"weight"`
}

// edgeKey identifies one direction of an adjacency record.
type edgeKey struct {
	from, to string
	weight   float64
}

// MarshalJSON exports the graph as an adjacency list keyed by vertex ID.
// Isolated vertices are exported with an empty list.
func (g *Graph) MarshalJSON() ([]byte, error) {
	g.mu.RLock()
	out := make(map[string][]adjacencyRecord, len(g.order))
	for _, id := range g.order {
		list := g.adjacency[id]
		recs := make([]adjacencyRecord, 0, len(list))
		for _, e := range list {
			recs = append(recs, adjacencyRecord{Node: e.Other(id), Weight: e.Weight})
		}
		out[id] = recs
	}
	g.mu.RUnlock()

	return json.Marshal(out)
}

// UnmarshalJSON replaces the receiver's content with the decoded graph.
// Configuration flags of the receiver are kept; a zero Graph gets NewGraph defaults.
//
// Errors:
//   - decoding errors from encoding/json.
//   - ErrEmptyVertexID / ErrBadWeight / ErrLoopNotAllowed / ErrMultiEdgeNotAllowed,
//     wrapped with the offending record.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var raw map[string][]adjacencyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("core: decode adjacency list: %w", err)
	}

	g.mu.RLock()
	initialized := g.vertices != nil
	multi, loops := g.allowMulti, g.allowLoops
	g.mu.RUnlock()
	if !initialized {
		multi, loops = true, false
	}

	fresh := NewGraph()
	fresh.allowMulti = multi
	fresh.allowLoops = loops
	if err := fresh.load(raw); err != nil {
		return err
	}

	g.mu.Lock()
	g.allowMulti = fresh.allowMulti
	g.allowLoops = fresh.allowLoops
	g.nextEdgeID = fresh.nextEdgeID
	g.order = fresh.order
	g.vertices = fresh.vertices
	g.edges = fresh.edges
	g.adjacency = fresh.adjacency
	g.mu.Unlock()

	return nil
}

// load fills an empty graph from the decoded adjacency map.
func (g *Graph) load(raw map[string][]adjacencyRecord) error {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return err
		}
	}

	// pending counts records whose mirror has not been seen yet.
	// Parallel edges listed on the same side never cancel each other.
	pending := make(map[edgeKey]int)
	for _, u := range ids {
		for _, rec := range raw[u] {
			if u != rec.Node {
				mirror := edgeKey{from: rec.Node, to: u, weight: rec.Weight}
				if pending[mirror] > 0 {
					pending[mirror]--
					continue
				}
				pending[edgeKey{from: u, to: rec.Node, weight: rec.Weight}]++
			}
			if _, err := g.AddEdge(u, rec.Node, rec.Weight); err != nil {
				return fmt.Errorf("%w: record %q -> %q (weight %v)", err, u, rec.Node, rec.Weight)
			}
		}
	}

	return nil
}

// ReadJSON decodes a graph from r. Options configure the new graph before loading.
func ReadJSON(r io.Reader, opts ...GraphOption) (*Graph, error) {
	var raw map[string][]adjacencyRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("core: decode adjacency list: %w", err)
	}
	g := NewGraph(opts...)
	if err := g.load(raw); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteJSON encodes g to w as an indented adjacency list.
func WriteJSON(w io.Writer, g *Graph) error {
	data, err := g.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)

	return err
}
