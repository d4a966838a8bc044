package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/memory"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
)

type world struct {
	session *Session
	book    *entity.Book
	chapter *entity.Chapter
	other   *entity.Book
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	book := entity.NewBook("Les contes", "", nil)
	require.NoError(t, store.Books().Create(ctx, book))
	chapter := entity.NewChapter(book.ID, "Un", 1)
	require.NoError(t, store.Chapters().Create(ctx, chapter))
	other := entity.NewBook("Autre livre", "", nil)
	require.NoError(t, store.Books().Create(ctx, other))

	return &world{
		session: NewSession(store.Books(), store.Chapters()),
		book:    book,
		chapter: chapter,
		other:   other,
	}
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("starts at the book list", func(t *testing.T) {
		w := newWorld(t)
		snap := w.session.Current()
		assert.Equal(t, StateBrowsingBooks, snap.State)
		assert.Empty(t, snap.BookID)
		assert.Empty(t, snap.ChapterID)
	})

	t.Run("select book then write then back then back", func(t *testing.T) {
		w := newWorld(t)

		snap, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		assert.Equal(t, StateBrowsingChapters, snap.State)
		assert.Equal(t, w.book.ID, snap.BookID)

		snap, err = w.session.Write(ctx, w.chapter.ID)
		require.NoError(t, err)
		assert.Equal(t, StateEditing, snap.State)
		assert.Equal(t, w.chapter.ID, snap.ChapterID)

		snap, err = w.session.Back(ctx)
		require.NoError(t, err)
		assert.Equal(t, StateBrowsingChapters, snap.State)
		assert.Equal(t, w.book.ID, snap.BookID)
		assert.Empty(t, snap.ChapterID)

		snap, err = w.session.Back(ctx)
		require.NoError(t, err)
		assert.Equal(t, StateBrowsingBooks, snap.State)
		assert.Empty(t, snap.BookID)
	})

	t.Run("read opens the read-only view", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		snap, err := w.session.Read(ctx, w.chapter.ID)
		require.NoError(t, err)
		assert.Equal(t, StateReading, snap.State)
	})

	t.Run("selecting another book while editing resets downstream", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		_, err = w.session.Write(ctx, w.chapter.ID)
		require.NoError(t, err)

		snap, err := w.session.SelectBook(ctx, w.other.ID)
		require.NoError(t, err)
		assert.Equal(t, StateBrowsingChapters, snap.State)
		assert.Equal(t, w.other.ID, snap.BookID)
		assert.Empty(t, snap.ChapterID)
	})

	t.Run("back at the book list is invalid", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.Back(ctx)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
	})

	t.Run("write from the book list is invalid", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.Write(ctx, w.chapter.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
	})

	t.Run("write from the editor is invalid", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		_, err = w.session.Write(ctx, w.chapter.ID)
		require.NoError(t, err)
		_, err = w.session.Write(ctx, w.chapter.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
	})

	t.Run("write on a chapter of another book is invalid", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.other.ID)
		require.NoError(t, err)
		_, err = w.session.Write(ctx, w.chapter.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidTransition))
	})

	t.Run("selecting an unknown book", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
		assert.Equal(t, StateBrowsingBooks, w.session.Current().State)
	})

	t.Run("opening an unknown chapter", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		_, err = w.session.Read(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeChapterNotFound))
	})

	t.Run("reset returns to the book list from anywhere", func(t *testing.T) {
		w := newWorld(t)
		_, err := w.session.SelectBook(ctx, w.book.ID)
		require.NoError(t, err)
		_, err = w.session.Write(ctx, w.chapter.ID)
		require.NoError(t, err)

		snap := w.session.Reset()
		assert.Equal(t, StateBrowsingBooks, snap.State)
		assert.Empty(t, snap.BookID)
		assert.Empty(t, snap.ChapterID)
	})
}
