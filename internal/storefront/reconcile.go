package storefront

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
)

// Result describes one reconciliation pass
type Result struct {
	GuestLines int         // lines read from the device cart
	Merged     []cart.Line // cart the user should now have
	Persisted  bool        // Merged was written to the remote store
	Skipped    bool        // nothing to merge; remote cart left untouched
}

// Reconciler folds the guest cart on this device into a user's remote cart
// when the device signs in. Wishlists are not reconciled: there is no guest
// wishlist.
type Reconciler struct {
	local  *LocalCart
	remote RemoteStore
	log    logrus.FieldLogger
}

// NewReconciler creates a reconciler
func NewReconciler(local *LocalCart, remote RemoteStore, log logrus.FieldLogger) *Reconciler {
	return &Reconciler{
		local:  local,
		remote: remote,
		log:    log,
	}
}

// Reconcile merges the device cart into the session user's remote cart with
// the max-quantity rule and then clears the device cart.
//
// The device cart is cleared whatever happens to the merge. A remote failure
// is returned for logging only; nothing retries it. A device cart that is
// malformed or cannot be read counts as empty. Reconcile holds no lock, so
// two concurrent calls for the same device may both merge the same guest
// lines.
func (r *Reconciler) Reconcile(ctx context.Context, session *Session) (Result, error) {
	log := r.log.WithField("user_id", session.UserID)

	guest, err := r.local.Get()
	if err != nil {
		log.WithError(err).Warn("Discarding unreadable guest cart")
		guest = []Item{}
	}

	result, mergeErr := r.merge(ctx, session, ToLines(guest))

	if err := r.local.Clear(); err != nil {
		log.WithError(err).Error("Failed to clear guest cart after reconciliation")
		if mergeErr == nil {
			mergeErr = err
		}
	}

	return result, mergeErr
}

func (r *Reconciler) merge(ctx context.Context, session *Session, guest []cart.Line) (Result, error) {
	guest = cart.Normalize(guest)
	result := Result{GuestLines: len(guest)}

	if len(guest) == 0 {
		result.Skipped = true
		return result, nil
	}

	userLines, err := r.remote.FetchCart(ctx, session.Token)
	if err != nil {
		// merging against an unknown cart would overwrite it
		return result, fmt.Errorf("failed to fetch user cart: %w", err)
	}

	result.Merged = cart.Merge(guest, userLines)

	stored, err := r.remote.ReplaceCart(ctx, session.Token, result.Merged)
	if err != nil {
		return result, fmt.Errorf("failed to persist merged cart: %w", err)
	}
	result.Merged = stored
	result.Persisted = true

	r.log.WithFields(logrus.Fields{
		"user_id":     session.UserID,
		"guest_lines": len(guest),
		"lines":       len(stored),
	}).Info("Guest cart reconciled")

	return result, nil
}
