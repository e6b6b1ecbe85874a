package group

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// hub is the shared state backing an in-process group: one per call to
// NewLocal, referenced by every member's *Member handle. It plays the role
// dist.Node's peer slice and Broadcast func play in dedis/tlc: a single
// place every rank's contribution passes through on its way to every other
// rank.
type hub struct {
	mu     sync.Mutex
	size   int
	rounds map[string]*roundState
}

type roundState struct {
	contributions map[int]any
	ready         chan struct{}
}

// Member is one rank's handle into an in-process Transport. It is not safe
// for concurrent use by multiple goroutines: each rank runs single-threaded
// within a call, so exactly one goroutine per rank should hold a given
// *Member.
type Member struct {
	hub  *hub
	rank int
	seq  int
}

// NewLocal creates an in-process group of size members, returning one
// Member handle per rank in rank order.
func NewLocal(size int) []*Member {
	if size <= 0 {
		panic(fmt.Sprintf("group: invalid group size %d", size))
	}
	h := &hub{size: size, rounds: make(map[string]*roundState)}
	members := make([]*Member, size)
	for r := range members {
		members[r] = &Member{hub: h, rank: r}
	}
	return members
}

// RunLocal spawns one goroutine per member of an in-process group of the
// given size and runs fn on each, supervised by an errgroup.Group the way
// golang.org/x/sync/errgroup supervises any other worker fleet: the first
// non-nil error cancels ctx for the rest and is returned once every
// goroutine has exited. This is the concrete stand-in for "P ranks" used by
// tests and cmd/ansv, since launching real OS processes or network peers is
// out of scope for the core.
func RunLocal(ctx context.Context, size int, fn func(ctx context.Context, m *Member) error) error {
	members := NewLocal(size)
	eg, ctx := errgroup.WithContext(ctx)
	for _, m := range members {
		m := m
		eg.Go(func() error {
			return fn(ctx, m)
		})
	}
	return eg.Wait()
}

func (m *Member) Rank() int { return m.rank }
func (m *Member) Size() int { return m.hub.size }

// Barrier is Exchange with a discarded payload: every rank must call it for
// the group to proceed past this point.
func (m *Member) Barrier(ctx context.Context) error {
	_, err := m.Exchange(ctx, "barrier", struct{}{})
	return err
}

// Exchange implements Transport.Exchange. See hub for the rendezvous
// mechanics: the round name plus a per-member monotonically increasing
// sequence number identifies the rendezvous point, so repeated logical
// rounds (e.g. two AllGatherV calls in the same EXCHANGE_BOUNDARIES phase)
// don't collide as long as every rank issues them in the same order, which
// is the ordering guarantee the group requires of its members.
func (m *Member) Exchange(ctx context.Context, round string, payload any) (map[int]any, error) {
	m.seq++
	key := fmt.Sprintf("%s#%d", round, m.seq)
	h := m.hub

	h.mu.Lock()
	rs, ok := h.rounds[key]
	if !ok {
		rs = &roundState{
			contributions: make(map[int]any, h.size),
			ready:         make(chan struct{}),
		}
		h.rounds[key] = rs
	}
	if _, dup := rs.contributions[m.rank]; dup {
		h.mu.Unlock()
		return nil, fmt.Errorf("%w: rank %d contributed twice to round %q", ErrTransport, m.rank, key)
	}
	rs.contributions[m.rank] = payload
	complete := len(rs.contributions) == h.size
	if complete {
		delete(h.rounds, key) // nothing further will contribute; let the entry be collected once drained
		close(rs.ready)
	}
	h.mu.Unlock()

	select {
	case <-rs.ready:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
	}

	out := make(map[int]any, h.size)
	for rank, v := range rs.contributions {
		out[rank] = v
	}
	return out, nil
}
