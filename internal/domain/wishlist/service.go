package wishlist

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/pkg/validation"
)

// Service handles wishlist business logic. Wishlists only exist for
// authenticated users; there is no guest wishlist and nothing to merge.
type Service struct {
	repo Repository
	log  logrus.FieldLogger
	now  func() time.Time
}

// NewService creates a new wishlist service
func NewService(repo Repository, log logrus.FieldLogger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// AddRequest is the product snapshot posted to add a single item
type AddRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Image string  `json:"image" binding:"required"`
}

// Get returns the user's wishlist, empty when none is stored
func (s *Service) Get(ctx context.Context, userID string) (*Wishlist, error) {
	doc, err := s.repo.Fetch(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &Wishlist{UserID: userID, Items: []Line{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Replace overwrites the wishlist. Products already stored keep their
// original AddedAt; new products are stamped now unless the caller supplied
// a time. Repeated products collapse to their last occurrence.
func (s *Service) Replace(ctx context.Context, userID string, lines []Line) (*Wishlist, error) {
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	addedAt := make(map[string]time.Time, len(current.Items))
	for _, line := range current.Items {
		addedAt[line.ProductID] = line.AddedAt
	}

	now := s.now()
	next := make([]Line, 0, len(lines))
	for _, line := range lines {
		if stamp, ok := addedAt[line.ProductID]; ok {
			line.AddedAt = stamp
		} else if line.AddedAt.IsZero() {
			line.AddedAt = now
		}
		next = upsert(next, line)
	}

	return s.repo.Replace(ctx, userID, next)
}

// Add saves one product. Adding a product that is already saved changes
// nothing and reports added=false.
func (s *Service) Add(ctx context.Context, userID string, req AddRequest) (*Wishlist, bool, error) {
	var errs validation.Errors
	if req.ID == "" || req.Name == "" || req.Image == "" || !validPrice(req.Price) {
		errs.Add("product", "Invalid product data")
		return nil, false, errs
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if current.Contains(req.ID) {
		return current, false, nil
	}

	items := append(append([]Line{}, current.Items...), Line{
		ProductID: req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		AddedAt:   s.now(),
	})

	doc, err := s.repo.Replace(ctx, userID, items)
	if err != nil {
		return nil, false, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": req.ID,
	}).Debug("product added to wishlist")

	return doc, true, nil
}

// Remove drops one product. Removing an absent product is not an error and
// writes nothing.
func (s *Service) Remove(ctx context.Context, userID, productID string) (*Wishlist, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !current.Contains(productID) {
		return current, nil
	}

	items := make([]Line, 0, len(current.Items))
	for _, line := range current.Items {
		if line.ProductID != productID {
			items = append(items, line)
		}
	}
	return s.repo.Replace(ctx, userID, items)
}

// Clear empties the wishlist
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

func upsert(lines []Line, line Line) []Line {
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			stamp := lines[i].AddedAt
			lines[i] = line
			lines[i].AddedAt = stamp
			return lines
		}
	}
	return append(lines, line)
}

func validateLines(lines []Line) error {
	var errs validation.Errors
	for i, line := range lines {
		if line.ProductID == "" {
			errs.Add("items["+strconv.Itoa(i)+"].productId", "Wishlist item must have a product ID")
		}
		if !validPrice(line.Price) {
			errs.Add("items["+strconv.Itoa(i)+"].price", "Wishlist item price must be a non-negative number")
		}
	}
	return errs.Err()
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}
