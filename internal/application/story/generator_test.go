package story

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/infrastructure/persistence/memory"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
)

type fakeCompleter struct {
	response   string
	err        error
	lastPrompt string
	onCall     func()
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return "", f.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.response, nil
}

type fixture struct {
	store     *memory.Store
	completer *fakeCompleter
	gen       *Generator
	book      *entity.Book
	chapter   *entity.Chapter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	completer := &fakeCompleter{response: "Il était une fois.\n---RESUME---\nUn début."}
	gen := NewGenerator(store.Books(), store.Chapters(), store.Contents(), store.Styles(),
		completer, memory.NewGenerationLock())

	book := entity.NewBook("Les contes", "", nil)
	require.NoError(t, store.Books().Create(context.Background(), book))
	chapter := entity.NewChapter(book.ID, "Le départ", 1)
	require.NoError(t, store.Chapters().Create(context.Background(), chapter))

	return &fixture{store: store, completer: completer, gen: gen, book: book, chapter: chapter}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists text and summary split on the separator", func(t *testing.T) {
		f := newFixture(t)
		unit, err := f.gen.Generate(ctx, GenerateRequest{
			ChapterID:  f.chapter.ID,
			UserPrompt: "une forêt enchantée",
			Strictness: entity.StrictnessFree,
		})
		require.NoError(t, err)
		assert.Equal(t, "Il était une fois.", unit.GeneratedText)
		assert.Equal(t, "Un début.", unit.Summary)
		assert.Equal(t, entity.StrictnessFree, unit.Strictness)
		assert.Equal(t, "une forêt enchantée", unit.UserPrompt)

		stored, err := f.store.Contents().ListByChapter(ctx, f.chapter.ID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, unit.ID, stored[0].ID)
	})

	t.Run("missing separator keeps the whole output as text", func(t *testing.T) {
		f := newFixture(t)
		f.completer.response = "Texte sans résumé."
		unit, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Equal(t, "Texte sans résumé.", unit.GeneratedText)
		assert.Empty(t, unit.Summary)
	})

	t.Run("defaults to moderate strictness", func(t *testing.T) {
		f := newFixture(t)
		unit, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Equal(t, entity.StrictnessModerate, unit.Strictness)
	})

	t.Run("rejects a blank prompt", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "   "})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
	})

	t.Run("rejects an unknown strictness level", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Generate(ctx, GenerateRequest{
			ChapterID:  f.chapter.ID,
			UserPrompt: "thème",
			Strictness: "maximal",
		})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
	})

	t.Run("unknown chapter", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: "missing", UserPrompt: "thème"})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeChapterNotFound))
	})

	t.Run("refuses a second generation on a held chapter", func(t *testing.T) {
		f := newFixture(t)
		lock := memory.NewGenerationLock()
		gen := NewGenerator(f.store.Books(), f.store.Chapters(), f.store.Contents(), f.store.Styles(),
			f.completer, lock)

		held, err := lock.TryAcquire(ctx, f.chapter.ID)
		require.NoError(t, err)
		require.True(t, held)

		_, err = gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeGenerationInFlight))

		require.NoError(t, lock.Release(f.chapter.ID))
		_, err = gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		assert.NoError(t, err)
	})

	t.Run("releases the lock after a backend failure", func(t *testing.T) {
		f := newFixture(t)
		f.completer.err = apperrors.ErrGenerationUnavailable
		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeGenerationUnavailable))

		f.completer.err = nil
		_, err = f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		assert.NoError(t, err)
	})

	t.Run("backend failure persists nothing", func(t *testing.T) {
		f := newFixture(t)
		f.completer.err = apperrors.ErrGenerationUnavailable
		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		require.Error(t, err)

		stored, err := f.store.Contents().ListByChapter(ctx, f.chapter.ID)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("cancellation discards the result without persisting", func(t *testing.T) {
		f := newFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		f.completer.err = nil
		f.completer.onCall = cancel

		_, err := f.gen.Generate(cctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		assert.True(t, errors.Is(err, context.Canceled))

		stored, err := f.store.Contents().ListByChapter(ctx, f.chapter.ID)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestGeneratePromptAssembly(t *testing.T) {
	ctx := context.Background()

	t.Run("includes the book's style description", func(t *testing.T) {
		f := newFixture(t)
		style := entity.NewStyleProfile("Gothique", "Un style sombre et gothique")
		require.NoError(t, f.store.Styles().Create(ctx, style))
		f.book.StyleID = &style.ID
		require.NoError(t, f.store.Books().Create(ctx, f.book))

		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Contains(t, f.completer.lastPrompt, "Un style sombre et gothique")
	})

	t.Run("includes every generated text of earlier chapters in order", func(t *testing.T) {
		f := newFixture(t)
		next := entity.NewChapter(f.book.ID, "La suite", 2)
		require.NoError(t, f.store.Chapters().Create(ctx, next))
		first := entity.NewContentUnit(f.chapter.ID, "p1", "premier texte", "résumé un", entity.StrictnessModerate)
		second := entity.NewContentUnit(f.chapter.ID, "p2", "second texte", "résumé deux", entity.StrictnessModerate)
		require.NoError(t, f.store.Contents().Create(ctx, first))
		require.NoError(t, f.store.Contents().Create(ctx, second))

		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: next.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Contains(t, f.completer.lastPrompt, "CHAPITRES PRÉCÉDENTS")
		assert.Contains(t, f.completer.lastPrompt, "Le départ")
		assert.Contains(t, f.completer.lastPrompt, "premier texte\n\nsecond texte")
	})

	t.Run("summaries are not part of the context", func(t *testing.T) {
		f := newFixture(t)
		next := entity.NewChapter(f.book.ID, "La suite", 2)
		require.NoError(t, f.store.Chapters().Create(ctx, next))
		unit := entity.NewContentUnit(f.chapter.ID, "p", "texte intégral", "résumé du premier chapitre", entity.StrictnessModerate)
		require.NoError(t, f.store.Contents().Create(ctx, unit))

		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: next.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Contains(t, f.completer.lastPrompt, "texte intégral")
		assert.NotContains(t, f.completer.lastPrompt, "résumé du premier chapitre")
	})

	t.Run("earlier chapters without text are skipped", func(t *testing.T) {
		f := newFixture(t)
		next := entity.NewChapter(f.book.ID, "La suite", 2)
		require.NoError(t, f.store.Chapters().Create(ctx, next))

		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: next.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.NotContains(t, f.completer.lastPrompt, "CHAPITRES PRÉCÉDENTS")
	})

	t.Run("first chapter carries no context block", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Generate(ctx, GenerateRequest{ChapterID: f.chapter.ID, UserPrompt: "thème"})
		require.NoError(t, err)
		assert.NotContains(t, f.completer.lastPrompt, "CHAPITRES PRÉCÉDENTS")
	})

	t.Run("strictness pins the matching instruction block", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Generate(ctx, GenerateRequest{
			ChapterID:  f.chapter.ID,
			UserPrompt: "thème",
			Strictness: entity.StrictnessStrict,
		})
		require.NoError(t, err)
		assert.Contains(t, f.completer.lastPrompt, "STRICTESSE MAXIMALE")
		assert.NotContains(t, f.completer.lastPrompt, "LIBERTÉ CRÉATIVE")
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("returns text without persisting", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.gen.Preview(ctx, PreviewRequest{UserPrompt: "thème"})
		require.NoError(t, err)
		assert.Equal(t, "Il était une fois.", result.Text)
		assert.Equal(t, "Un début.", result.Summary)

		stored, err := f.store.Contents().ListByChapter(ctx, f.chapter.ID)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("resolves an explicit style", func(t *testing.T) {
		f := newFixture(t)
		style := entity.NewStyleProfile("Epique", "Un style épique")
		require.NoError(t, f.store.Styles().Create(ctx, style))

		_, err := f.gen.Preview(ctx, PreviewRequest{UserPrompt: "thème", StyleID: style.ID})
		require.NoError(t, err)
		assert.Contains(t, f.completer.lastPrompt, "Un style épique")
	})

	t.Run("unknown style is an invalid reference", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Preview(ctx, PreviewRequest{UserPrompt: "thème", StyleID: "missing"})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidReference))
	})

	t.Run("rejects a blank prompt", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.gen.Preview(ctx, PreviewRequest{UserPrompt: ""})
		assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationError))
	})
}

func TestSplitOutput(t *testing.T) {
	text, summary := splitOutput("  corps  \n---RESUME---\n  résumé  ")
	assert.Equal(t, "corps", text)
	assert.Equal(t, "résumé", summary)

	text, summary = splitOutput("corps seul")
	assert.Equal(t, "corps seul", text)
	assert.Empty(t, summary)
}
