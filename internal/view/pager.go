package view

import (
	"sync"

	"go-warehouse/internal/store"
)

type PagerState int

const (
	Idle PagerState = iota
	Loading
	Exhausted
)

func (s PagerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ProductSource is the part of the store the pager drives.
type ProductSource interface {
	FetchProducts(offset, limit int) error
	Products() store.ProductsState
}

// Pager accumulates product pages into the store as the end of the list
// becomes visible. At most one load is in flight; a trigger that arrives
// while loading is dropped, not queued.
type Pager struct {
	src      ProductSource
	pageSize int

	mu       sync.Mutex
	state    PagerState
	offset   int
	observer *Observer
}

func NewPager(src ProductSource, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &Pager{src: src, pageSize: pageSize}
}

func (p *Pager) State() PagerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Offset is the offset the next page will be requested from.
func (p *Pager) Offset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Reset reloads from the first page, replacing the loaded list. It reports
// false when a load is already in flight.
func (p *Pager) Reset() (bool, error) {
	p.mu.Lock()
	if p.state == Loading {
		p.mu.Unlock()
		return false, nil
	}
	p.state = Loading
	p.mu.Unlock()

	return true, p.load(0)
}

// OnSentinelVisible loads the next page when more products exist on the
// server and nothing is loading. It reports whether a load was started.
func (p *Pager) OnSentinelVisible() (bool, error) {
	p.mu.Lock()
	if p.state != Idle {
		p.mu.Unlock()
		return false, nil
	}
	products := p.src.Products()
	if int64(len(products.Products)) >= products.Total {
		p.state = Exhausted
		p.mu.Unlock()
		return false, nil
	}
	offset := p.offset
	p.state = Loading
	p.mu.Unlock()

	return true, p.load(offset)
}

// load runs with the state already set to Loading.
func (p *Pager) load(offset int) error {
	err := p.src.FetchProducts(offset, p.pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		// The offset is kept so the next trigger retries the same page.
		p.state = Idle
		return err
	}

	p.offset = offset + p.pageSize
	products := p.src.Products()
	if int64(len(products.Products)) >= products.Total {
		p.state = Exhausted
	} else {
		p.state = Idle
	}
	return nil
}

// Observer watches one sentinel, normally the last rendered product.
type Observer struct {
	pager    *Pager
	sentinel string

	mu     sync.Mutex
	active bool
}

// Observe installs an observer on sentinel and disconnects the previous
// one, so only one observer is active at a time.
func (p *Pager) Observe(sentinel string) *Observer {
	o := &Observer{pager: p, sentinel: sentinel, active: true}

	p.mu.Lock()
	previous := p.observer
	p.observer = o
	p.mu.Unlock()

	if previous != nil {
		previous.Disconnect()
	}
	return o
}

func (o *Observer) Sentinel() string {
	return o.sentinel
}

func (o *Observer) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

func (o *Observer) Disconnect() {
	o.mu.Lock()
	o.active = false
	o.mu.Unlock()
}

// Intersect reports a visibility change of the sentinel. Only an active
// observer seeing its sentinel become visible triggers a load.
func (o *Observer) Intersect(visible bool) (bool, error) {
	if !visible || !o.Active() {
		return false, nil
	}
	return o.pager.OnSentinelVisible()
}
