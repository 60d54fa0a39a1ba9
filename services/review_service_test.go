package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/repository"
)

func TestReviewUpsert(t *testing.T) {
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewReviewService(repository.NewReviewRepository(db))

	_, err := svc.Upsert(1, rest.ID, 0, "")
	assert.Error(t, err)
	_, err = svc.Upsert(1, rest.ID, 6, "")
	assert.Error(t, err)

	first, err := svc.Upsert(1, rest.ID, 5, "great")
	require.NoError(t, err)

	// second write from the same user replaces, not duplicates
	updated, err := svc.Upsert(1, rest.ID, 3, "meh")
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	_, err = svc.Upsert(2, rest.ID, 4, "nice")
	require.NoError(t, err)

	reviews, err := svc.ListByRestaurant(rest.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	avg, count, err := svc.Rating(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.InDelta(t, 3.5, avg, 0.001)
}

func TestReviewDelete(t *testing.T) {
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewReviewService(repository.NewReviewRepository(db))

	_, err := svc.Upsert(1, rest.ID, 4, "good")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, rest.ID))

	reviews, err := svc.ListByRestaurant(rest.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// deleting a review that does not exist reports the lookup failure
	assert.Error(t, svc.Delete(1, rest.ID))
}
