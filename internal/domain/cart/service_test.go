package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/pkg/validation"
)

type fakeRepo struct {
	docs     map[string][]Line
	replaces int
	fetchErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string][]Line{}}
}

func (r *fakeRepo) Fetch(_ context.Context, userID string) (*Cart, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	items, ok := r.docs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &Cart{UserID: userID, Items: append([]Line{}, items...)}, nil
}

func (r *fakeRepo) Replace(_ context.Context, userID string, lines []Line) (*Cart, error) {
	r.replaces++
	r.docs[userID] = append([]Line{}, lines...)
	return &Cart{UserID: userID, Items: append([]Line{}, lines...)}, nil
}

func (r *fakeRepo) Clear(_ context.Context, userID string) error {
	if _, ok := r.docs[userID]; ok {
		r.docs[userID] = []Line{}
	}
	return nil
}

func newTestService(repo Repository) (*Service, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewService(repo, log), hook
}

func TestService_GetMissingCartIsEmpty(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	doc, err := svc.Get(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", doc.UserID)
	assert.NotNil(t, doc.Items)
	assert.Empty(t, doc.Items)
}

func TestService_GetPropagatesStoreErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.fetchErr = errors.New("connection reset")
	svc, _ := newTestService(repo)

	_, err := svc.Get(context.Background(), "u1")

	assert.EqualError(t, err, "connection reset")
}

func TestService_ReplaceNormalizes(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	doc, err := svc.Replace(context.Background(), "u1", []Line{line("a", 1), line("b", 0), line("a", 2)})

	require.NoError(t, err)
	assert.Equal(t, []Line{line("a", 2)}, doc.Items)
	assert.Equal(t, []Line{line("a", 2)}, repo.docs["u1"])
}

func TestService_ReplaceRejectsInvalidLines(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Replace(context.Background(), "u1", []Line{{ProductID: "", Quantity: 1}})

	_, ok := validation.As(err)
	assert.True(t, ok)
	assert.Zero(t, repo.replaces)
}

func TestService_Merge(t *testing.T) {
	ctx := context.Background()

	t.Run("empty guest writes nothing", func(t *testing.T) {
		repo := newFakeRepo()
		repo.docs["u1"] = []Line{line("a", 2)}
		svc, _ := newTestService(repo)

		doc, outcome, err := svc.Merge(ctx, "u1", nil)

		require.NoError(t, err)
		assert.Equal(t, MergeNoop, outcome)
		assert.Equal(t, []Line{line("a", 2)}, doc.Items)
		assert.Zero(t, repo.replaces)
	})

	t.Run("missing user cart adopts guest lines", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _ := newTestService(repo)

		doc, outcome, err := svc.Merge(ctx, "u1", []Line{line("a", 1)})

		require.NoError(t, err)
		assert.Equal(t, MergeAdopted, outcome)
		assert.Equal(t, []Line{line("a", 1)}, doc.Items)
		assert.Equal(t, 1, repo.replaces)
	})

	t.Run("both non-empty use the max rule", func(t *testing.T) {
		repo := newFakeRepo()
		repo.docs["u1"] = []Line{line("a", 2)}
		svc, hook := newTestService(repo)

		doc, outcome, err := svc.Merge(ctx, "u1", []Line{line("a", 5), line("b", 1)})

		require.NoError(t, err)
		assert.Equal(t, MergeMerged, outcome)
		assert.Equal(t, []Line{line("a", 5), line("b", 1)}, doc.Items)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "guest cart merged", entry.Message)
		assert.Equal(t, MergeMerged, entry.Data["outcome"])
	})
}

func TestService_Clear(t *testing.T) {
	repo := newFakeRepo()
	repo.docs["u1"] = []Line{line("a", 1)}
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Clear(context.Background(), "u1"))

	doc, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
}
