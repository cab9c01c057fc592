package handler

import "sync/atomic"

// SeedSource hands out seeds to requests that omit one. Seeds count up from
// a base, so a server started with the same base answers the same request
// sequence identically. The seed used is always echoed in the response.
type SeedSource struct {
	next atomic.Uint64
}

// NewSeedSource starts the sequence at base
func NewSeedSource(base uint64) *SeedSource {
	s := &SeedSource{}
	s.next.Store(base)
	return s
}

// Resolve returns the requested seed, or the next seed of the sequence when
// the request carried none.
func (s *SeedSource) Resolve(requested *uint64) uint64 {
	if requested != nil {
		return *requested
	}
	return s.next.Add(1) - 1
}
