// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// MergeOutcome says which branch of Merge applied
type MergeOutcome string

const (
	MergeNoop    MergeOutcome = "noop"    // guest cart was empty
	MergeAdopted MergeOutcome = "adopted" // user cart was empty
	MergeMerged  MergeOutcome = "merged"
)

// Service handles cart business logic
type Service struct {
	repo Repository
	log  logrus.FieldLogger
}

// NewService creates a new cart service
func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Get returns the user's cart. A user without a cart document gets an empty
// cart, never ErrNotFound.
func (s *Service) Get(ctx context.Context, userID string) (*Cart, error) {
	doc, err := s.repo.Fetch(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &Cart{UserID: userID, Items: []Line{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Replace validates lines, enforces the collection invariants and overwrites
// the stored item list.
func (s *Service) Replace(ctx context.Context, userID string, lines []Line) (*Cart, error) {
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	doc, err := s.repo.Replace(ctx, userID, Normalize(lines))
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"lines":   len(doc.Items),
	}).Debug("cart replaced")

	return doc, nil
}

// Clear empties the user's cart
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

// Merge folds guest lines into the stored cart with the max-quantity rule and
// persists the result. An empty guest list writes nothing.
func (s *Service) Merge(ctx context.Context, userID string, guest []Line) (*Cart, MergeOutcome, error) {
	if err := ValidateLines(guest); err != nil {
		return nil, "", err
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	guest = Normalize(guest)
	if len(guest) == 0 {
		return current, MergeNoop, nil
	}

	outcome := MergeMerged
	if len(current.Items) == 0 {
		outcome = MergeAdopted
	}

	doc, err := s.repo.Replace(ctx, userID, Merge(guest, current.Items))
	if err != nil {
		return nil, "", err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":     userID,
		"guest_lines": len(guest),
		"lines":       len(doc.Items),
		"outcome":     outcome,
	}).Info("guest cart merged")

	return doc, outcome, nil
}
