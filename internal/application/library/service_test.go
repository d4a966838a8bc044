package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/memory"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
)

type services struct {
	store    *memory.Store
	books    *BookService
	chapters *ChapterService
	contents *ContentService
	styles   *StyleService
}

func newServices(t *testing.T) *services {
	t.Helper()
	store := memory.NewStore()
	return &services{
		store:    store,
		books:    NewBookService(store.Books(), store.Chapters(), store.Contents(), store.Styles(), store),
		chapters: NewChapterService(store.Books(), store.Chapters(), store.Contents(), store),
		contents: NewContentService(store.Chapters(), store.Contents()),
		styles:   NewStyleService(store.Styles(), store.Books(), store),
	}
}

func TestBookService(t *testing.T) {
	ctx := context.Background()

	t.Run("create trims and validates the title", func(t *testing.T) {
		s := newServices(t)
		book, err := s.books.Create(ctx, "  Les contes  ", "", nil)
		require.NoError(t, err)
		assert.Equal(t, "Les contes", book.Title)

		_, err = s.books.Create(ctx, "   ", "", nil)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
	})

	t.Run("create rejects an unknown style reference", func(t *testing.T) {
		s := newServices(t)
		missing := "no-such-style"
		_, err := s.books.Create(ctx, "Titre", "", &missing)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidReference))
	})

	t.Run("create resolves the style on the returned book", func(t *testing.T) {
		s := newServices(t)
		style, err := s.styles.Create(ctx, "Gothique", "sombre")
		require.NoError(t, err)

		book, err := s.books.Create(ctx, "Titre", "", &style.ID)
		require.NoError(t, err)
		require.NotNil(t, book.Style)
		assert.Equal(t, "Gothique", book.Style.Name)
	})

	t.Run("list resolves styles across books", func(t *testing.T) {
		s := newServices(t)
		style, err := s.styles.Create(ctx, "Epique", "grandiose")
		require.NoError(t, err)
		_, err = s.books.Create(ctx, "Avec style", "", &style.ID)
		require.NoError(t, err)
		_, err = s.books.Create(ctx, "Sans style", "", nil)
		require.NoError(t, err)

		books, err := s.books.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 2)
		require.NotNil(t, books[0].Style)
		assert.Equal(t, "Epique", books[0].Style.Name)
		assert.Nil(t, books[1].Style)
	})

	t.Run("get unknown book", func(t *testing.T) {
		s := newServices(t)
		_, err := s.books.Get(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
	})

	t.Run("delete cascades to chapters and content units", func(t *testing.T) {
		s := newServices(t)
		book, err := s.books.Create(ctx, "Titre", "", nil)
		require.NoError(t, err)
		chapter, err := s.chapters.Create(ctx, book.ID, "Chapitre")
		require.NoError(t, err)
		unit := entity.NewContentUnit(chapter.ID, "p", "texte", "", entity.DefaultStrictness)
		require.NoError(t, s.store.Contents().Create(ctx, unit))

		require.NoError(t, s.books.Delete(ctx, book.ID))

		_, err = s.books.Get(ctx, book.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
		_, err = s.chapters.Get(ctx, chapter.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeChapterNotFound))
		_, err = s.contents.Get(ctx, unit.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeContentNotFound))
	})

	t.Run("delete unknown book", func(t *testing.T) {
		s := newServices(t)
		err := s.books.Delete(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
	})
}

func TestChapterService(t *testing.T) {
	ctx := context.Background()

	t.Run("positions are sequential and never reused", func(t *testing.T) {
		s := newServices(t)
		book, err := s.books.Create(ctx, "Titre", "", nil)
		require.NoError(t, err)

		first, err := s.chapters.Create(ctx, book.ID, "Un")
		require.NoError(t, err)
		second, err := s.chapters.Create(ctx, book.ID, "Deux")
		require.NoError(t, err)
		third, err := s.chapters.Create(ctx, book.ID, "Trois")
		require.NoError(t, err)
		assert.Equal(t, 1, first.Position)
		assert.Equal(t, 2, second.Position)
		assert.Equal(t, 3, third.Position)

		require.NoError(t, s.chapters.Delete(ctx, second.ID))

		fourth, err := s.chapters.Create(ctx, book.ID, "Quatre")
		require.NoError(t, err)
		assert.Equal(t, 4, fourth.Position)

		chapters, err := s.chapters.ListByBook(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, chapters, 3)
		assert.Equal(t, []int{1, 3, 4}, []int{chapters[0].Position, chapters[1].Position, chapters[2].Position})
	})

	t.Run("positions are independent per book", func(t *testing.T) {
		s := newServices(t)
		one, err := s.books.Create(ctx, "Un", "", nil)
		require.NoError(t, err)
		two, err := s.books.Create(ctx, "Deux", "", nil)
		require.NoError(t, err)

		_, err = s.chapters.Create(ctx, one.ID, "a")
		require.NoError(t, err)
		chapter, err := s.chapters.Create(ctx, two.ID, "b")
		require.NoError(t, err)
		assert.Equal(t, 1, chapter.Position)
	})

	t.Run("create against a missing book", func(t *testing.T) {
		s := newServices(t)
		_, err := s.chapters.Create(ctx, "missing", "Titre")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
	})

	t.Run("list against a missing book is not an empty list", func(t *testing.T) {
		s := newServices(t)
		_, err := s.chapters.ListByBook(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeBookNotFound))
	})

	t.Run("delete removes the chapter's content units", func(t *testing.T) {
		s := newServices(t)
		book, err := s.books.Create(ctx, "Titre", "", nil)
		require.NoError(t, err)
		chapter, err := s.chapters.Create(ctx, book.ID, "Chapitre")
		require.NoError(t, err)
		unit := entity.NewContentUnit(chapter.ID, "p", "texte", "", entity.DefaultStrictness)
		require.NoError(t, s.store.Contents().Create(ctx, unit))

		require.NoError(t, s.chapters.Delete(ctx, chapter.ID))
		_, err = s.contents.Get(ctx, unit.ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeContentNotFound))
	})
}

func TestContentService(t *testing.T) {
	ctx := context.Background()

	t.Run("list against a missing chapter is not an empty list", func(t *testing.T) {
		s := newServices(t)
		_, err := s.contents.ListByChapter(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeChapterNotFound))
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		s := newServices(t)
		book, err := s.books.Create(ctx, "Titre", "", nil)
		require.NoError(t, err)
		chapter, err := s.chapters.Create(ctx, book.ID, "Chapitre")
		require.NoError(t, err)

		first := entity.NewContentUnit(chapter.ID, "p1", "t1", "", entity.DefaultStrictness)
		second := entity.NewContentUnit(chapter.ID, "p2", "t2", "", entity.DefaultStrictness)
		require.NoError(t, s.store.Contents().Create(ctx, first))
		require.NoError(t, s.store.Contents().Create(ctx, second))

		units, err := s.contents.ListByChapter(ctx, chapter.ID)
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, first.ID, units[0].ID)
		assert.Equal(t, second.ID, units[1].ID)
	})

	t.Run("delete unknown unit", func(t *testing.T) {
		s := newServices(t)
		err := s.contents.Delete(ctx, "missing")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeContentNotFound))
	})
}

func TestStyleService(t *testing.T) {
	ctx := context.Background()

	t.Run("seed is idempotent", func(t *testing.T) {
		s := newServices(t)
		require.NoError(t, s.styles.Seed(ctx))
		require.NoError(t, s.styles.Seed(ctx))

		styles, err := s.styles.List(ctx)
		require.NoError(t, err)
		assert.Len(t, styles, 8)
		for _, style := range styles {
			assert.True(t, style.Predefined, style.Name)
		}
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		s := newServices(t)
		_, err := s.styles.Create(ctx, "Gothique", "sombre")
		require.NoError(t, err)
		_, err = s.styles.Create(ctx, "Gothique", "autre description")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
	})

	t.Run("name shadowing a predefined style is a conflict", func(t *testing.T) {
		s := newServices(t)
		require.NoError(t, s.styles.Seed(ctx))
		_, err := s.styles.Create(ctx, "Narratif", "autre")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
	})

	t.Run("predefined styles cannot be deleted", func(t *testing.T) {
		s := newServices(t)
		require.NoError(t, s.styles.Seed(ctx))
		styles, err := s.styles.List(ctx)
		require.NoError(t, err)
		err = s.styles.Delete(ctx, styles[0].ID)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeStylePredefined))
	})

	t.Run("delete detaches referencing books", func(t *testing.T) {
		s := newServices(t)
		style, err := s.styles.Create(ctx, "Gothique", "sombre")
		require.NoError(t, err)
		book, err := s.books.Create(ctx, "Titre", "", &style.ID)
		require.NoError(t, err)

		require.NoError(t, s.styles.Delete(ctx, style.ID))

		got, err := s.books.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Nil(t, got.StyleID)
		assert.Nil(t, got.Style)
	})

	t.Run("list puts predefined styles first then sorts by name", func(t *testing.T) {
		s := newServices(t)
		require.NoError(t, s.styles.Seed(ctx))
		_, err := s.styles.Create(ctx, "Aventure", "voyages")
		require.NoError(t, err)

		styles, err := s.styles.List(ctx)
		require.NoError(t, err)
		require.Len(t, styles, 9)
		assert.True(t, styles[0].Predefined)
		assert.Equal(t, "Aventure", styles[8].Name)
	})

	t.Run("validation", func(t *testing.T) {
		s := newServices(t)
		_, err := s.styles.Create(ctx, "", "desc")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
		_, err = s.styles.Create(ctx, "Nom", "  ")
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
	})
}
