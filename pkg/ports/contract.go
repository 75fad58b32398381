package ports

import (
	"context"
	"testing"
	"time"

	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore
// implementation adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		state := domain.NewState()
		state.Cursor = 2
		state.Transcript = []domain.Turn{
			{Role: domain.RoleUser, Content: "hello"},
			{Role: domain.RoleAssistant, Content: "hi there"},
		}

		err := store.Save(ctx, sessionID, state)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, state.Cursor, loaded.Cursor)
		assert.Equal(t, state.Status, loaded.Status)
		require.Len(t, loaded.Transcript, 2)
		assert.Equal(t, "hello", loaded.Transcript[0].Content)
		assert.Equal(t, domain.RoleAssistant, loaded.Transcript[1].Role)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		// Mutating a loaded state must not leak back into the store.
		require.NoError(t, store.Save(ctx, sessionID, domain.NewState()))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Cursor = 99
		loaded.Transcript = append(loaded.Transcript, domain.Turn{Role: domain.RoleUser, Content: "rogue"})

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Cursor)
		assert.Empty(t, again.Transcript)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewState())
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewState())
		_ = store.Save(ctx, id2, domain.NewState())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
