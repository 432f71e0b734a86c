package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenkas/internal/store"
	"agenkas/internal/store/storetest"
)

func TestOwnerCRUD(t *testing.T) {
	svc := NewService(storetest.New())

	_, err := svc.Owner.Create(OwnerInput{Name: "   ", Amount: 1000})
	require.Error(t, err, "name is required")

	budi, err := svc.Owner.Create(OwnerInput{Name: "Budi", Amount: 500_000, Note: "modal awal"})
	require.NoError(t, err)

	_, err = svc.Owner.Create(OwnerInput{Name: "Ani", Amount: 250_000})
	require.NoError(t, err)

	owners, err := svc.Owner.List()
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "Ani", owners[0].Name, "sorted by name")

	updated, err := svc.Owner.Update(budi.ID, OwnerInput{Name: "Budi", Amount: 750_000})
	require.NoError(t, err)
	assert.Equal(t, int64(750_000), updated.Amount)
	assert.Equal(t, budi.CreatedAt, updated.CreatedAt)

	require.NoError(t, svc.Owner.Delete(budi.ID))

	_, err = svc.Owner.Get(budi.ID)
	assert.ErrorIs(t, err, store.ErrOwnerNotFound)
}

func TestOwnersDoNotAffectLedger(t *testing.T) {
	svc := newTestService(t, 10_000, 0)

	_, err := svc.Owner.Create(OwnerInput{Name: "Budi", Amount: 9_000_000})
	require.NoError(t, err)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), snap.Total)
}
