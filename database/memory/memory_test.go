package memory

import (
	"context"
	"testing"

	"luxesalon/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Load(ctx, database.KeyReservations)
	assert.ErrorIs(t, err, database.ErrKeyNotFound)

	require.NoError(t, s.Save(ctx, database.KeyReservations, []byte(`[{"id":"r1"}]`)))
	blob, err := s.Load(ctx, database.KeyReservations)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"r1"}]`, string(blob))

	// Save replaces the whole blob.
	require.NoError(t, s.Save(ctx, database.KeyReservations, []byte(`[]`)))
	blob, err = s.Load(ctx, database.KeyReservations)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(blob))

	require.NoError(t, s.Delete(ctx, database.KeyReservations))
	_, err = s.Load(ctx, database.KeyReservations)
	assert.ErrorIs(t, err, database.ErrKeyNotFound)

	// Deleting a missing key is fine.
	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestStoreCopiesBlobs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Save(ctx, database.KeyUser, in))
	in[0] = 'x'

	out, err := s.Load(ctx, database.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, err := s.Load(ctx, database.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
