package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/pkg/validation"
)

type fakeRepo struct {
	docs     map[string][]Line
	replaces int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string][]Line{}}
}

func (r *fakeRepo) Fetch(_ context.Context, userID string) (*Wishlist, error) {
	items, ok := r.docs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &Wishlist{UserID: userID, Items: append([]Line{}, items...)}, nil
}

func (r *fakeRepo) Replace(_ context.Context, userID string, lines []Line) (*Wishlist, error) {
	r.replaces++
	r.docs[userID] = append([]Line{}, lines...)
	return &Wishlist{UserID: userID, Items: append([]Line{}, lines...)}, nil
}

func (r *fakeRepo) Clear(_ context.Context, userID string) error {
	if _, ok := r.docs[userID]; ok {
		r.docs[userID] = []Line{}
	}
	return nil
}

var (
	t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func newTestService(repo Repository, now time.Time) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := NewService(repo, log)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_GetMissingIsEmpty(t *testing.T) {
	svc := newTestService(newFakeRepo(), t0)

	doc, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, doc.Items)
	assert.Empty(t, doc.Items)
}

func TestService_Add(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, t0)
	ctx := context.Background()
	req := AddRequest{ID: "p1", Name: "Lamp", Price: 40, Image: "/lamp.jpg"}

	doc, added, err := svc.Add(ctx, "u1", req)
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, t0, doc.Items[0].AddedAt)

	doc, added, err = svc.Add(ctx, "u1", req)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, doc.Items, 1)
	assert.Equal(t, 1, repo.replaces)
}

func TestService_AddRejectsIncompleteProduct(t *testing.T) {
	svc := newTestService(newFakeRepo(), t0)

	_, _, err := svc.Add(context.Background(), "u1", AddRequest{ID: "p1", Name: "Lamp"})

	fields, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Invalid product data"}, fields.Messages())
}

func TestService_ReplaceKeepsOriginalAddedAt(t *testing.T) {
	repo := newFakeRepo()
	repo.docs["u1"] = []Line{{ProductID: "p1", Name: "Lamp", AddedAt: t0}}
	svc := newTestService(repo, t1)

	doc, err := svc.Replace(context.Background(), "u1", []Line{
		{ProductID: "p1", Name: "Lamp v2"},
		{ProductID: "p2", Name: "Rug"},
		{ProductID: "p2", Name: "Rug v2"},
	})

	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Lamp v2", doc.Items[0].Name)
	assert.Equal(t, t0, doc.Items[0].AddedAt)
	assert.Equal(t, "Rug v2", doc.Items[1].Name)
	assert.Equal(t, t1, doc.Items[1].AddedAt)
}

func TestService_ReplaceRejectsMissingProductID(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, t0)

	_, err := svc.Replace(context.Background(), "u1", []Line{{Name: "nameless"}})

	require.Error(t, err)
	assert.Zero(t, repo.replaces)
}

func TestService_RemoveIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.docs["u1"] = []Line{{ProductID: "p1"}, {ProductID: "p2"}}
	svc := newTestService(repo, t0)
	ctx := context.Background()

	doc, err := svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []Line{{ProductID: "p2"}}, doc.Items)

	doc, err = svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []Line{{ProductID: "p2"}}, doc.Items)
	assert.Equal(t, 1, repo.replaces)
}

func TestService_Clear(t *testing.T) {
	repo := newFakeRepo()
	repo.docs["u1"] = []Line{{ProductID: "p1"}}
	svc := newTestService(repo, t0)

	require.NoError(t, svc.Clear(context.Background(), "u1"))
	assert.Empty(t, repo.docs["u1"])
}
