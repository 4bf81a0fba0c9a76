// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/netgen/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue *arrayqueue.Queue
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: arrayqueue.New(),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks id reached at depth d, calls OnEnqueue and queues it.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unseen neighbour within MaxDepth, in
// neighbour order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, next)
	}

	return nil
}
