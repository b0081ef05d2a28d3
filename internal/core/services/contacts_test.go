package services

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/memory"
	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

func TestContactService_NilStore(t *testing.T) {
	svc := NewContactService(nil)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "Jane", domain.ContactFields{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Get(ctx, "Jane")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = svc.Find(ctx, "jane")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	assert.ErrorIs(t, svc.Remove(ctx, "Jane"), domain.ErrNotImplemented)
	assert.Empty(t, svc.StorePath())
}

func TestContactService_UpsertAndGet(t *testing.T) {
	svc := NewContactService(memory.NewContactStore())
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "Jane Doe", domain.ContactFields{
		Role:    "CTO",
		Company: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", created.Name)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "CTO", got.Role)
}

func TestContactService_UpsertRejectsBlankName(t *testing.T) {
	svc := NewContactService(memory.NewContactStore())

	_, err := svc.Upsert(context.Background(), "   ", domain.ContactFields{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactService_FindAndList(t *testing.T) {
	svc := NewContactService(memory.NewContactStore())
	ctx := context.Background()

	for _, name := range []string{"Zed Chan", "Jane Doe", "Amir Khan"} {
		_, err := svc.Upsert(ctx, name, domain.ContactFields{Company: "Acme"})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amir Khan", all[0].Name)
	assert.Equal(t, "Zed Chan", all[2].Name)

	seq, err := svc.Find(ctx, "khan")
	require.NoError(t, err)
	matches := slices.Collect(seq)
	require.Len(t, matches, 1)
	assert.Equal(t, "Amir Khan", matches[0].Name)
}

func TestContactService_Remove(t *testing.T) {
	svc := NewContactService(memory.NewContactStore())
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "Jane Doe", domain.ContactFields{})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "Jane Doe"))

	_, err = svc.Get(ctx, "Jane Doe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Removing an absent contact is a no-op.
	assert.NoError(t, svc.Remove(ctx, "Jane Doe"))
}
