package model

import "sync"

// SnapshotToPool returns a snapshot to the pool for reuse
func SnapshotToPool(snap *Snapshot, pool *SnapshotPool) {
	if pool == nil || snap == nil {
		return
	}

	pool.Put(snap)
}

// SnapshotPool reuses snapshot buffers across generations
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Get retrieves a snapshot from the pool sized for the given board
func (p *SnapshotPool) Get(width, height int) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	s.reset(width, height)
	return s
}

// Put returns a snapshot to the pool. The caller must not read it afterwards.
func (p *SnapshotPool) Put(s *Snapshot) {
	p.pool.Put(s)
}
