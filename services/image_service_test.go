package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksankarkee/restosaas-sub000/repository"
)

func newImageService(t *testing.T) (*ImageService, uint) {
	t.Helper()
	db := newTestDB(t)
	rest := newTestRestaurant(t, db, "sakura-tei", 30)
	svc := NewImageService(repository.NewImageRepository(db), t.TempDir())
	return svc, rest.ID
}

var testPayload = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a real png"))

func TestFirstImageBecomesMain(t *testing.T) {
	svc, restID := newImageService(t)

	first, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)
	assert.True(t, first.IsMain)
	assert.Equal(t, 0, first.Position)

	second, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)
	assert.False(t, second.IsMain)
	assert.Equal(t, 1, second.Position)
}

func TestRemovingMainPromotesNext(t *testing.T) {
	svc, restID := newImageService(t)

	first, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)
	second, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)
	third, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(restID, first.ID))

	images, err := svc.List(restID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, second.ID, images[0].ID)
	assert.True(t, images[0].IsMain)
	assert.False(t, images[1].IsMain)

	// removing a non-main image changes nothing else
	require.NoError(t, svc.Remove(restID, third.ID))
	images, err = svc.List(restID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.True(t, images[0].IsMain)
}

func TestSetMain(t *testing.T) {
	svc, restID := newImageService(t)

	first, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)
	second, err := svc.AddBase64(restID, testPayload)
	require.NoError(t, err)

	require.NoError(t, svc.SetMain(restID, second.ID))

	images, err := svc.List(restID)
	require.NoError(t, err)
	for _, img := range images {
		assert.Equal(t, img.ID == second.ID, img.IsMain)
	}

	// cannot touch another restaurant's image
	err = svc.SetMain(restID+1, first.ID)
	assert.Error(t, err)
}

func TestAddBase64RejectsGarbage(t *testing.T) {
	svc, restID := newImageService(t)

	_, err := svc.AddBase64(restID, "%%% not base64 %%%")
	assert.Error(t, err)
}
