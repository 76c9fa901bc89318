package storefront

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// ErrAuthRequired is returned by wishlist operations while signed out
var ErrAuthRequired = errors.New("sign in to use the wishlist")

// State is the controller's authentication state
type State int

const (
	StateGuest State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "AUTHENTICATED"
	}
	return "GUEST"
}

// Controller is the device's cart and wishlist view. Signed out, the cart
// lives in the local store. Signed in, the remote store is authoritative and
// the controller keeps a cached copy that is updated first and persisted in
// the background.
//
// The mutex only keeps the cache consistent in memory. Background persists
// are not sequenced: the last one to complete decides the remote state, and
// one started before Logout may still land afterwards.
type Controller struct {
	local      *LocalCart
	sessions   *LocalSession
	remote     RemoteStore
	authn      Authenticator
	reconciler *Reconciler
	log        logrus.FieldLogger
	now        func() time.Time

	mu       sync.Mutex
	state    State
	session  *Session
	items    []cart.Line
	wishlist []wishlist.Line
	dirty    bool

	inflight sync.WaitGroup
}

// NewController creates a signed-out controller over the device store kv.
// Call Restore to pick up a session saved by an earlier run.
func NewController(kv KV, remote RemoteStore, authn Authenticator, log logrus.FieldLogger) *Controller {
	local := NewLocalCart(kv)
	return &Controller{
		local:      local,
		sessions:   NewLocalSession(kv),
		remote:     remote,
		authn:      authn,
		reconciler: NewReconciler(local, remote, log),
		log:        log,
		now:        time.Now,
		items:      []cart.Line{},
		wishlist:   []wishlist.Line{},
	}
}

// State returns the current authentication state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the current session, if signed in
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Items returns a copy of the cart
func (c *Controller) Items() []cart.Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]cart.Line{}, c.items...)
}

// TotalItems is the sum of all quantities in the cart
func (c *Controller) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cart.CalculateTotals(c.items).TotalQuantity
}

// Subtotal is the cart value at the snapshotted prices
func (c *Controller) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cart.CalculateTotals(c.items).Subtotal
}

// Dirty reports whether the last background persist failed and the cart was
// written to the local store instead. The cache and the server may disagree
// until a later persist succeeds.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Wishlist returns a copy of the cached wishlist. It is empty while signed out.
func (c *Controller) Wishlist() []wishlist.Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]wishlist.Line{}, c.wishlist...)
}

// InWishlist reports whether productID is in the cached wishlist
func (c *Controller) InWishlist(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range c.wishlist {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}

// Wait blocks until every background persist has completed
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Restore adopts the session saved on the device if its token has not
// expired; otherwise it discards it and loads the guest cart.
func (c *Controller) Restore(ctx context.Context) error {
	session, err := c.sessions.Load()
	switch {
	case err == nil && !session.Expired(c.now()):
		c.adopt(ctx, session, nil)
		return nil
	case err == nil:
		c.log.WithField("user_id", session.UserID).Info("Stored session expired")
	case errors.Is(err, ErrMalformedPayload):
		c.log.WithError(err).Warn("Discarding unreadable stored session")
	case !errors.Is(err, ErrKeyNotFound):
		return err
	}

	if session != nil || errors.Is(err, ErrMalformedPayload) {
		if err := c.sessions.Clear(); err != nil {
			return err
		}
	}
	c.loadGuest()
	return nil
}

// Login signs in, merges the guest cart into the account once and loads the
// merged cart and the wishlist. Credential errors are returned as is.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	session, err := c.authn.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return c.signIn(ctx, session)
}

// Register creates an account and signs in like Login
func (c *Controller) Register(ctx context.Context, name, email, password string) error {
	session, err := c.authn.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return c.signIn(ctx, session)
}

func (c *Controller) signIn(ctx context.Context, session *Session) error {
	if err := c.sessions.Save(session); err != nil {
		c.log.WithError(err).Warn("Failed to store session on device")
	}

	result, err := c.reconciler.Reconcile(ctx, session)
	if err != nil {
		c.log.WithError(err).WithField("user_id", session.UserID).Error("Guest cart reconciliation failed")
	}

	var fallback []cart.Line
	if result.Persisted {
		fallback = result.Merged
	}
	c.adopt(ctx, session, fallback)
	return nil
}

// adopt switches to the authenticated state and fills the cache from the
// remote store. If the fetch fails the cart comes from fallback, or when
// there is none from the copy kept on the device by a failed save.
func (c *Controller) adopt(ctx context.Context, session *Session, fallback []cart.Line) {
	log := c.log.WithField("user_id", session.UserID)

	dirty := false
	items, err := c.remote.FetchCart(ctx, session.Token)
	if err != nil {
		log.WithError(err).Warn("Failed to load cart")
		items = fallback
		if items == nil {
			items = c.deviceCopy(log)
			dirty = len(items) > 0
		}
	}
	saved, err := c.remote.FetchWishlist(ctx, session.Token)
	if err != nil {
		log.WithError(err).Warn("Failed to load wishlist")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateAuthenticated
	c.session = session
	c.items = append([]cart.Line{}, items...)
	c.wishlist = append([]wishlist.Line{}, saved...)
	c.dirty = dirty
}

// deviceCopy reads the cart kept on the device. An unreadable copy is empty.
func (c *Controller) deviceCopy(log logrus.FieldLogger) []cart.Line {
	items, err := c.local.Get()
	if err != nil && !errors.Is(err, ErrMalformedPayload) {
		log.WithError(err).Warn("Failed to read local cart copy")
	}
	return cart.Normalize(ToLines(items))
}

// Logout drops the cached view and the session. The cached cart is not
// written to the local store; the guest view shows whatever the device held.
func (c *Controller) Logout() error {
	c.mu.Lock()
	c.state = StateGuest
	c.session = nil
	c.items = []cart.Line{}
	c.wishlist = []wishlist.Line{}
	c.dirty = false
	c.mu.Unlock()

	if err := c.sessions.Clear(); err != nil {
		return err
	}
	c.loadGuest()
	return nil
}

func (c *Controller) loadGuest() {
	items, err := c.local.Get()
	if err != nil {
		c.log.WithError(err).Warn("Failed to read guest cart")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cart.Normalize(ToLines(items))
}

// Add puts quantity of item in the cart. An item already in the cart has its
// quantity replaced, not increased. quantity < 1 counts as 1.
func (c *Controller) Add(item Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	item.Quantity = quantity

	c.mutate(func(lines []cart.Line) []cart.Line {
		return cart.Upsert(lines, item.Line())
	}, false)
}

// Remove drops productID from the cart; removing an absent product is a no-op
func (c *Controller) Remove(productID string) {
	c.mutate(func(lines []cart.Line) []cart.Line {
		return cart.Remove(lines, productID)
	}, false)
}

// UpdateQuantity sets the quantity of productID; quantity <= 0 removes it
func (c *Controller) UpdateQuantity(productID string, quantity int) {
	c.mutate(func(lines []cart.Line) []cart.Line {
		return cart.SetQuantity(lines, productID, quantity)
	}, false)
}

// Clear empties the cart
func (c *Controller) Clear() {
	c.mutate(func([]cart.Line) []cart.Line {
		return []cart.Line{}
	}, true)
}

// mutate applies fn to the cache, then persists the result: synchronously to
// the local store when signed out, in the background to the remote store
// when signed in.
func (c *Controller) mutate(fn func([]cart.Line) []cart.Line, clear bool) {
	c.mu.Lock()
	c.items = fn(c.items)
	snapshot := append([]cart.Line{}, c.items...)
	session := c.session
	c.mu.Unlock()

	if session == nil {
		if err := c.local.Set(FromLines(snapshot)); err != nil {
			c.log.WithError(err).Error("Failed to save guest cart")
		}
		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.persist(session, snapshot, clear)
	}()
}

func (c *Controller) persist(session *Session, snapshot []cart.Line, clear bool) {
	ctx := context.Background()

	var err error
	if clear {
		err = c.remote.ClearCart(ctx, session.Token)
	} else {
		_, err = c.remote.ReplaceCart(ctx, session.Token, snapshot)
	}

	if err == nil {
		c.mu.Lock()
		if c.session == session {
			c.dirty = false
		}
		c.mu.Unlock()
		return
	}

	c.log.WithError(err).WithField("user_id", session.UserID).Warn("Failed to save cart, keeping a local copy")
	if err := c.local.Set(FromLines(snapshot)); err != nil {
		c.log.WithError(err).Error("Failed to save local cart copy")
	}

	c.mu.Lock()
	if c.session == session {
		c.dirty = true
	}
	c.mu.Unlock()
}

// AddToWishlist saves item to the wishlist. It reports false if the product
// was already saved.
func (c *Controller) AddToWishlist(ctx context.Context, item Item) (bool, error) {
	session, ok := c.Session()
	if !ok {
		return false, ErrAuthRequired
	}

	lines, added, err := c.remote.AddWishlistItem(ctx, session.Token, item)
	if err != nil {
		return false, err
	}

	c.setWishlist(session.Token, lines)
	return added, nil
}

// RemoveFromWishlist drops productID from the wishlist
func (c *Controller) RemoveFromWishlist(ctx context.Context, productID string) error {
	session, ok := c.Session()
	if !ok {
		return ErrAuthRequired
	}

	lines, err := c.remote.RemoveWishlistItem(ctx, session.Token, productID)
	if err != nil {
		return err
	}

	c.setWishlist(session.Token, lines)
	return nil
}

func (c *Controller) setWishlist(token string, lines []wishlist.Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// signed out or switched accounts while the call was in flight
	if c.session == nil || c.session.Token != token {
		return
	}
	c.wishlist = append([]wishlist.Line{}, lines...)
}
