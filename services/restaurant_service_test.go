package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/repository"
)

func TestCreateRestaurantSlugs(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	first := &entity.Restaurant{Name: "Café del Mar", Capacity: 20}
	require.NoError(t, svc.Create(first))
	assert.Equal(t, "caf-del-mar", first.Slug)

	second := &entity.Restaurant{Name: "Café del Mar", Capacity: 40}
	require.NoError(t, svc.Create(second))
	assert.Equal(t, "caf-del-mar-2", second.Slug)

	third := &entity.Restaurant{Name: "Café del Mar", Capacity: 10}
	require.NoError(t, svc.Create(third))
	assert.Equal(t, "caf-del-mar-3", third.Slug)
}

func TestCreateRestaurantRequiresName(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	assert.Error(t, svc.Create(&entity.Restaurant{Capacity: 20}))
	assert.Error(t, svc.Create(&entity.Restaurant{Name: "???", Capacity: 20}))
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	require.NoError(t, svc.UpdateProfile(rest, "", "1-2-3 Ginza", "", "03-0000-0000", 0, 0))

	got, err := svc.GetBySlug("sakura-tei")
	require.NoError(t, err)
	assert.Equal(t, "sakura-tei", got.Name)
	assert.Equal(t, "1-2-3 Ginza", got.Address)
	assert.Equal(t, 30, got.Capacity)
}
