// Package cart implements the dual-mode shopping cart: a device-style
// guest cart held as an expiring blob in the local persistent cache, and
// an authenticated cart persisted on the user record. Callers see one
// abstraction; the backing store follows the identity.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/session"
)

const (
	// GuestCartKey is the fixed cache key for the guest cart blob.
	GuestCartKey = "mobileHubGuestCart"

	// GuestCartTTL is the guest cart lifetime. The window slides: every
	// mutation rewrites the blob with a fresh timestamp.
	GuestCartTTL = 3 * time.Hour
)

var ErrQuantityInvalid = errors.New("cart: quantity must be at least 1")

// ProductResolver batch-fetches products by id ("in" query). Ids that no
// longer resolve are simply absent from the result.
type ProductResolver interface {
	ByIDs(ctx context.Context, ids []string) (map[string]models.Product, error)
}

// CartStore persists the authenticated cart array on the user record.
// SetCart is a full overwrite (last write wins).
type CartStore interface {
	GetCart(ctx context.Context, userID string) ([]models.CartLine, error)
	SetCart(ctx context.Context, userID string, lines []models.CartLine) error
}

// BlobCache is the local persistent cache holding the guest cart blob.
type BlobCache interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Engine owns cart state for one identity. Single-owner: one instance
// per request/session, no concurrent writers.
type Engine struct {
	products ProductResolver
	carts    CartStore
	cache    BlobCache
	now      func() time.Time

	identity *session.Identity
	lines    []models.CartLine
}

func NewEngine(products ProductResolver, carts CartStore, cache BlobCache) *Engine {
	return &Engine{products: products, carts: carts, cache: cache, now: time.Now}
}

// WithClock overrides the engine's clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Bind re-loads the cart whenever the session identity changes. Items do
// not transfer between modes here: a guest cart stays in the cache until
// MergeGuestCart is explicitly requested.
func (e *Engine) Bind(s session.Session) (unsubscribe func()) {
	return s.Subscribe(func(id *session.Identity) {
		_, _ = e.Load(context.Background(), id)
	})
}

// Load reads the cart for the given identity. Guest: the cached blob,
// discarded (and removed) when its timestamp is older than GuestCartTTL.
// Authenticated: the user's cart array joined against the product set;
// lines whose product no longer resolves silently vanish — the returned
// list carries only resolvable products.
func (e *Engine) Load(ctx context.Context, identity *session.Identity) ([]models.CartLine, error) {
	e.identity = identity
	e.lines = nil

	if identity == nil {
		blob, err := e.loadGuestBlob(ctx)
		if err != nil {
			return nil, err
		}
		e.lines = blob
		return e.lines, nil
	}

	stored, err := e.carts.GetCart(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(stored))
	for _, line := range stored {
		ids = append(ids, line.ProductID)
	}
	resolved, err := e.products.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(stored))
	for _, line := range stored {
		product, ok := resolved[line.ProductID]
		if !ok {
			continue // deleted or unavailable product, not an error
		}
		p := product
		line.Product = &p
		lines = append(lines, line)
	}
	e.lines = lines
	return e.lines, nil
}

func (e *Engine) loadGuestBlob(ctx context.Context) ([]models.CartLine, error) {
	raw, ok, err := e.cache.GetItem(ctx, GuestCartKey)
	if err != nil || !ok {
		return nil, err
	}

	var blob models.GuestCartBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		// Unreadable blob, treat like an expired one.
		_ = e.cache.RemoveItem(ctx, GuestCartKey)
		return nil, nil
	}

	age := e.now().UnixMilli() - blob.Timestamp
	if age > GuestCartTTL.Milliseconds() {
		if err := e.cache.RemoveItem(ctx, GuestCartKey); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return blob.Items, nil
}

// Lines returns the current in-memory cart.
func (e *Engine) Lines() []models.CartLine { return e.lines }

// Add puts a product in the cart. Re-adding an existing product bumps its
// quantity instead of appending a duplicate line, whatever the backing
// primitive would allow.
func (e *Engine) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrQuantityInvalid
	}
	found := false
	for i := range e.lines {
		if e.lines[i].ProductID == product.ID {
			e.lines[i].Quantity += quantity
			e.lines[i].AddedAt = e.now()
			found = true
			break
		}
	}
	if !found {
		p := product
		e.lines = append(e.lines, models.CartLine{
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   e.now(),
			Product:   &p,
		})
	}
	return e.writeThrough(ctx)
}

// SetQuantity replaces a line's quantity; zero or negative removes the
// line. The write-through happens immediately, no batching.
func (e *Engine) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return e.Remove(ctx, productID)
	}
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			e.lines[i].Quantity = quantity
		}
	}
	return e.writeThrough(ctx)
}

// Remove filters the line out and writes through.
func (e *Engine) Remove(ctx context.Context, productID string) error {
	kept := e.lines[:0]
	for _, line := range e.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	e.lines = kept
	return e.writeThrough(ctx)
}

// Clear empties the cart. For guests the blob is deleted outright.
func (e *Engine) Clear(ctx context.Context) error {
	e.lines = nil
	if e.identity == nil {
		return e.cache.RemoveItem(ctx, GuestCartKey)
	}
	return e.carts.SetCart(ctx, e.identity.ID, []models.CartLine{})
}

// Total sums price × quantity over the current lines. Pure, no I/O.
func (e *Engine) Total() float64 {
	var total float64
	for _, line := range e.lines {
		if line.Product != nil {
			total += line.Product.Price * float64(line.Quantity)
		}
	}
	return total
}

// Count returns the number of lines.
func (e *Engine) Count() int { return len(e.lines) }

// writeThrough persists the in-memory state. The optimistic update is
// never rolled back on failure; the caller gets the error and the next
// Load reconciles.
func (e *Engine) writeThrough(ctx context.Context) error {
	if e.identity == nil {
		blob := models.GuestCartBlob{
			Items:     e.lines,
			Timestamp: e.now().UnixMilli(),
		}
		raw, err := json.Marshal(blob)
		if err != nil {
			return err
		}
		return e.cache.SetItem(ctx, GuestCartKey, string(raw))
	}

	stripped := make([]models.CartLine, 0, len(e.lines))
	for _, line := range e.lines {
		line.Product = nil
		stripped = append(stripped, line)
	}
	return e.carts.SetCart(ctx, e.identity.ID, stripped)
}

// MergeGuestCart folds a live (non-expired) guest cart into a user's
// persisted cart, summing quantities per product, then deletes the guest
// blob. Never invoked implicitly: login only calls this when the client
// asks for it. Returns false when there was nothing to merge.
func MergeGuestCart(ctx context.Context, cache BlobCache, carts CartStore, userID string) (bool, error) {
	guest := NewEngine(nil, carts, cache)
	guestLines, err := guest.loadGuestBlob(ctx)
	if err != nil {
		return false, err
	}
	if len(guestLines) == 0 {
		return false, nil
	}

	userLines, err := carts.GetCart(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, gl := range guestLines {
		merged := false
		for i := range userLines {
			if userLines[i].ProductID == gl.ProductID {
				userLines[i].Quantity += gl.Quantity
				userLines[i].AddedAt = time.Now()
				merged = true
				break
			}
		}
		if !merged {
			userLines = append(userLines, models.CartLine{
				ProductID: gl.ProductID,
				Quantity:  gl.Quantity,
				AddedAt:   time.Now(),
			})
		}
	}

	if err := carts.SetCart(ctx, userID, userLines); err != nil {
		return false, err
	}
	if err := cache.RemoveItem(ctx, GuestCartKey); err != nil {
		return false, err
	}
	return true, nil
}
