package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamal-hamza/gallery/internal/core/domain"
	"github.com/kamal-hamza/gallery/internal/core/ports/mocks"
)

func TestLoader_StartsPending(t *testing.T) {
	l := NewLoader(&mocks.MockCatalogSource{})
	snap := l.Snapshot()

	assert.Equal(t, StatePending, snap.State)
	assert.Nil(t, snap.Assets)
	assert.NoError(t, snap.Err)
}

func TestLoader_Success(t *testing.T) {
	source := &mocks.MockCatalogSource{Assets: []domain.Asset{
		domain.NewAsset(domain.CategoryItems, "a.png", 1, time.Time{}),
	}}
	l := NewLoader(source)

	snap := l.Load(context.Background())
	assert.Equal(t, StateSuccess, snap.State)
	assert.Len(t, snap.Assets, 1)
	assert.NoError(t, snap.Err)
	assert.Equal(t, snap, l.Snapshot())
}

func TestLoader_FailureKeepsNoCatalog(t *testing.T) {
	source := &mocks.MockCatalogSource{Assets: []domain.Asset{
		domain.NewAsset(domain.CategoryItems, "a.png", 1, time.Time{}),
	}}
	l := NewLoader(source)
	require.Equal(t, StateSuccess, l.Load(context.Background()).State)

	source.Err = &FetchFailedError{StatusCode: 500, Message: "Failed to fetch images"}
	snap := l.Load(context.Background())

	assert.Equal(t, StateFailure, snap.State)
	assert.Nil(t, snap.Assets)

	var fetchErr *FetchFailedError
	assert.True(t, errors.As(snap.Err, &fetchErr))

	// stays failed until the next explicit Load
	assert.Equal(t, StateFailure, l.Snapshot().State)
	assert.Equal(t, 2, source.Calls())
}

func TestLoader_Reload(t *testing.T) {
	source := &mocks.MockCatalogSource{Err: errors.New("down")}
	l := NewLoader(source)
	require.Equal(t, StateFailure, l.Load(context.Background()).State)

	source.Err = nil
	source.Assets = []domain.Asset{}
	snap := l.Load(context.Background())

	assert.Equal(t, StateSuccess, snap.State)
	assert.NoError(t, snap.Err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failure", StateFailure.String())
}
