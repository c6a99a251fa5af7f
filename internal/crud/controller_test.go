package crud_test

import (
	"context"
	"testing"

	"shelter/internal/crud"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_ListEmpty(t *testing.T) {
	ctrl, _ := newNoteController()

	out := ctrl.List(context.Background())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestController_CreateIgnoresClientID(t *testing.T) {
	ctx := context.Background()
	ctrl, store := newNoteController()

	existing := store.Store(ctx, note{Text: "original"})

	created, id := ctrl.Create(ctx, noteView{ID: existing.ID, Text: "echo"})

	assert.NotEmpty(t, id)
	assert.NotEqual(t, existing.ID, id)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "echo", created.Text)

	// el original sigue intacto
	got, ok := store.Get(ctx, existing.ID)
	require.True(t, ok)
	assert.Equal(t, "original", got.Text)
	assert.Len(t, ctrl.List(ctx), 2)
}

func TestController_Get(t *testing.T) {
	ctx := context.Background()
	ctrl, _ := newNoteController()

	created, id := ctrl.Create(ctx, noteView{Text: "hello", Tags: []string{"a"}})

	got, err := ctrl.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = ctrl.Get(ctx, "missing")
	assert.ErrorIs(t, err, crud.ErrNotFound)
}

func TestController_ModifyReplacesAndForcesPathID(t *testing.T) {
	ctx := context.Background()
	ctrl, store := newNoteController()

	_, id := ctrl.Create(ctx, noteView{Text: "before", Tags: []string{"old"}})

	modified, err := ctrl.Modify(ctx, id, noteView{ID: "someone-else", Text: "after"})
	require.NoError(t, err)

	assert.Equal(t, id, modified.ID)
	assert.Equal(t, "after", modified.Text)
	assert.Nil(t, modified.Tags, "modify replaces the whole record")

	_, ok := store.Get(ctx, "someone-else")
	assert.False(t, ok, "body id must not be used")
	assert.Len(t, store.List(ctx), 1)
}

func TestController_ModifyMissingNeverCreates(t *testing.T) {
	ctx := context.Background()
	ctrl, store := newNoteController()

	_, err := ctrl.Modify(ctx, "0123456789abcdef0123456789abcdef", noteView{Text: "x"})
	assert.ErrorIs(t, err, crud.ErrNotFound)
	assert.Empty(t, store.List(ctx))
}

func TestController_CreateEchoAfterModify(t *testing.T) {
	ctx := context.Background()
	ctrl, _ := newNoteController()

	_, originalID := ctrl.Create(ctx, noteView{Text: "original"})
	original, err := ctrl.Get(ctx, originalID)
	require.NoError(t, err)

	modified, err := ctrl.Modify(ctx, originalID, noteView{Text: "modified"})
	require.NoError(t, err)

	echo, echoID := ctrl.Create(ctx, original)
	assert.Equal(t, original.Text, echo.Text)
	assert.NotEqual(t, originalID, echoID)
	assert.NotEqual(t, modified.ID, echoID)
}
