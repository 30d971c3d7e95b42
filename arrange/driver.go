package arrange

import (
	"fmt"
	"sync"

	"github.com/go-lar/larcx/core"
	"github.com/go-lar/larcx/matrix"
	"github.com/go-lar/larcx/skel"
)

// Driver holds the external collaborators needed to run a spatial
// arrangement and the worker-pool configuration to fragment faces with.
type Driver struct {
	Index   SpatialIndex
	Frag    FragFace
	Merge   MergeVertices
	Cycles3 Minimal3Cycles
	cfg     *config
}

// NewDriver builds a Driver from its four required collaborators, applying
// any Options over the default worker count and logger.
func NewDriver(index SpatialIndex, frag FragFace, merge MergeVertices, cycles3 Minimal3Cycles, opts ...Option) (*Driver, error) {
	if index == nil || frag == nil || merge == nil || cycles3 == nil {
		return nil, fmt.Errorf("arrange.NewDriver: %w", ErrCollaboratorNil)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Driver{Index: index, Frag: frag, Merge: merge, Cycles3: cycles3, cfg: cfg}, nil
}

// fragResult is one worker's output for a single face, or its error.
type fragResult struct {
	face int
	v    core.Vertices
	ev   *matrix.ChainOp
	fe   *matrix.ChainOp
	err  error
}

// Arrange runs the 5-step spatial arrangement over v, ev, fe: obtain a
// spatial index, fragment every face against its neighbors (fanned across
// Driver's worker pool), merge the accumulated fragments' vertices, and
// call the 3-cycle extractor for copCF.
func (d *Driver) Arrange(v core.Vertices, ev, fe *matrix.ChainOp) (core.Vertices, *matrix.ChainOp, *matrix.ChainOp, *matrix.ChainOp, error) {
	if fe.Rows() == 0 {
		return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: %w", ErrNoFaces)
	}

	// Step 1: spatial index.
	idx, err := d.Index(v, ev, fe)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: index: %w", err)
	}

	// Steps 2-3: fan fragmentation out across a bounded rendezvous channel,
	// sentinel-terminated worker pool, collect every result, then fold them
	// in sequentially in face-index order so accumulation order is
	// deterministic despite nondeterministic worker completion order.
	results, err := d.fragmentAll(v, ev, fe, idx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rV, rEV, rFE := results[0].v, results[0].ev, results[0].fe
	for _, r := range results[1:] {
		rV, rEV, err = skel.Merge(rV, r.v, rEV, r.ev)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: merging fragment %d: %w", r.face, err)
		}
		rFE, err = skel.MergeOps(rFE, r.fe)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: merging fragment %d: %w", r.face, err)
		}
	}

	before, err := ConnectedComponentCount(rEV)
	if err != nil {
		d.cfg.logger.Printf("pre-merge component count unavailable: %v", err)
	}

	// Step 4: merge_vertices.
	mV, mEV, mFE, err := d.Merge(rV, rEV, rFE)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: merge_vertices: %w", err)
	}

	if after, cerr := ConnectedComponentCount(mEV); cerr == nil && after != before {
		d.cfg.logger.Printf("merge_vertices changed 1-skeleton component count: %d -> %d", before, after)
	}

	// Step 5: external 3-cycle extractor.
	copCF, err := d.Cycles3(mV, mEV, mFE)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("arrange.Arrange: minimal_3cycles: %w", err)
	}

	return mV, mEV, mFE, copCF, nil
}

// fragmentAll dispatches every face index 0..fe.Rows()-1 over a capacity-0
// "bounded rendezvous" channel to cfg.workers workers, each calling
// Driver.Frag and sending its fragResult back; -1 is the per-worker
// termination sentinel. Results are returned ordered by face index so
// downstream accumulation is reproducible.
func (d *Driver) fragmentAll(v core.Vertices, ev, fe *matrix.ChainOp, idx [][]int) ([]fragResult, error) {
	n := fe.Rows()
	work := make(chan int) // capacity 0: rendezvous
	out := make(chan fragResult)

	var wg sync.WaitGroup
	for w := 0; w < d.cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for face := range work {
				if face == -1 {
					return
				}
				nv, nev, nfe, err := d.Frag(v, ev, fe, idx, face)
				out <- fragResult{face: face, v: nv, ev: nev, fe: nfe, err: err}
			}
		}()
	}

	go func() {
		for face := 0; face < n; face++ {
			work <- face
		}
		for w := 0; w < d.cfg.workers; w++ {
			work <- -1
		}
		close(work)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]fragResult, n)
	received := 0
	var firstErr error
	for r := range out {
		received++
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("arrange.fragmentAll: face %d: %w", r.face, r.err)
			}
			continue
		}
		results[r.face] = r
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if received != n {
		return nil, fmt.Errorf("arrange.fragmentAll: expected %d fragments, got %d", n, received)
	}
	return results, nil
}
