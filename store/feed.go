package store

import (
	"sync"

	"github.com/malikdesigner/mobile-sale-store/models"
)

// ProductFeed fans each published product snapshot out to subscribers
// (the catalog engine, the live websocket). Subscribe returns a disposer.
type ProductFeed struct {
	mu     sync.Mutex
	subs   map[int]func([]models.Product)
	nextID int
}

func NewProductFeed() *ProductFeed {
	return &ProductFeed{subs: make(map[int]func([]models.Product))}
}

func (f *ProductFeed) Subscribe(fn func([]models.Product)) (unsubscribe func()) {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

// Publish delivers a fresh snapshot to every subscriber.
func (f *ProductFeed) Publish(products []models.Product) {
	f.mu.Lock()
	fns := make([]func([]models.Product), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(products)
	}
}
