package story

import (
	"context"
	"strings"
	"time"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/logger"
	"github.com/evausesgit/les-histoires-de-rebecca/pkg/metrics"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("story")

// Completer produces story text from a fully assembled prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Locker guards against concurrent generations on the same chapter.
type Locker interface {
	TryAcquire(ctx context.Context, chapterID string) (bool, error)
	Release(chapterID string) error
}

// GenerateRequest carries the inputs of a persisting generation.
type GenerateRequest struct {
	ChapterID  string
	UserPrompt string
	Strictness entity.Strictness
}

// PreviewRequest carries the inputs of a non-persisting generation.
type PreviewRequest struct {
	UserPrompt string
	StyleID    string
	Strictness entity.Strictness
}

// PreviewResult is the outcome of a preview generation, never stored.
type PreviewResult struct {
	Text    string
	Summary string
}

// Generator orchestrates story generation: it gathers the book, style and
// previous-chapter context, calls the completion backend and persists the
// resulting content unit.
type Generator struct {
	bookRepo    repository.BookRepository
	chapterRepo repository.ChapterRepository
	contentRepo repository.ContentRepository
	styleRepo   repository.StyleRepository
	completer   Completer
	locker      Locker
}

func NewGenerator(
	bookRepo repository.BookRepository,
	chapterRepo repository.ChapterRepository,
	contentRepo repository.ContentRepository,
	styleRepo repository.StyleRepository,
	completer Completer,
	locker Locker,
) *Generator {
	return &Generator{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		contentRepo: contentRepo,
		styleRepo:   styleRepo,
		completer:   completer,
		locker:      locker,
	}
}

// Generate produces the next content unit of a chapter. Only one generation
// may run per chapter at a time; a second caller gets ErrGenerationInFlight.
// If ctx is cancelled before the result is persisted, nothing is stored.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*entity.ContentUnit, error) {
	ctx, span := tracer.Start(ctx, "story.Generator.Generate")
	defer span.End()

	prompt := strings.TrimSpace(req.UserPrompt)
	if prompt == "" {
		return nil, apperrors.ErrValidation.WithDetail("prompt must not be empty")
	}
	level := req.Strictness
	if level == "" {
		level = entity.DefaultStrictness
	}
	if !level.Valid() {
		return nil, apperrors.ErrValidation.WithDetail("unknown strictness level: " + string(level))
	}

	chapter, err := g.chapterRepo.GetByID(ctx, req.ChapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperrors.ErrChapterNotFound
	}

	acquired, err := g.locker.TryAcquire(ctx, chapter.ID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperrors.ErrGenerationInFlight
	}
	defer func() {
		if err := g.locker.Release(chapter.ID); err != nil {
			logger.Warn(ctx, "failed to release generation lock", "chapter_id", chapter.ID, "error", err)
		}
	}()

	book, err := g.bookRepo.GetByID(ctx, chapter.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.ErrBookNotFound
	}

	styleDescription, err := g.styleDescription(ctx, book.StyleID)
	if err != nil {
		return nil, err
	}

	previous, err := g.previousChapters(ctx, chapter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := g.completer.Complete(ctx, buildPrompt(prompt, styleDescription, previous, level))
	metrics.GenerationDuration.WithLabelValues(string(level)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(string(level), "error").Inc()
		return nil, err
	}

	// The caller may have gone away while the backend was producing text.
	// Discard the result rather than persist a unit nobody asked to keep.
	if err := ctx.Err(); err != nil {
		metrics.GenerationTotal.WithLabelValues(string(level), "cancelled").Inc()
		return nil, err
	}

	text, summary := splitOutput(raw)
	unit := entity.NewContentUnit(chapter.ID, prompt, text, summary, level)
	if err := g.contentRepo.Create(ctx, unit); err != nil {
		metrics.GenerationTotal.WithLabelValues(string(level), "error").Inc()
		return nil, err
	}

	metrics.GenerationTotal.WithLabelValues(string(level), "success").Inc()
	metrics.GeneratedWordCount.Observe(float64(wordCount(text)))
	logger.Info(ctx, "generated content unit",
		"chapter_id", chapter.ID,
		"content_id", unit.ID,
		"strictness", string(level),
		"words", wordCount(text))
	return unit, nil
}

// Preview runs a generation without a chapter, a lock or any persistence.
func (g *Generator) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	ctx, span := tracer.Start(ctx, "story.Generator.Preview")
	defer span.End()

	prompt := strings.TrimSpace(req.UserPrompt)
	if prompt == "" {
		return nil, apperrors.ErrValidation.WithDetail("prompt must not be empty")
	}
	level := req.Strictness
	if level == "" {
		level = entity.DefaultStrictness
	}
	if !level.Valid() {
		return nil, apperrors.ErrValidation.WithDetail("unknown strictness level: " + string(level))
	}

	var styleID *string
	if req.StyleID != "" {
		styleID = &req.StyleID
	}
	styleDescription, err := g.styleDescription(ctx, styleID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := g.completer.Complete(ctx, buildPrompt(prompt, styleDescription, nil, level))
	metrics.GenerationDuration.WithLabelValues(string(level)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(string(level), "error").Inc()
		return nil, err
	}

	metrics.GenerationTotal.WithLabelValues(string(level), "success").Inc()
	text, summary := splitOutput(raw)
	return &PreviewResult{Text: text, Summary: summary}, nil
}

func (g *Generator) styleDescription(ctx context.Context, styleID *string) (string, error) {
	if styleID == nil || *styleID == "" {
		return "", nil
	}
	style, err := g.styleRepo.GetByID(ctx, *styleID)
	if err != nil {
		return "", err
	}
	if style == nil {
		return "", apperrors.ErrInvalidReference.WithDetail("style not found: " + *styleID)
	}
	return style.Description, nil
}

// previousChapters collects the story so far: for every chapter preceding
// the target one, oldest first, the generated texts of all its content units
// concatenated in creation order. Chapters with no generated text yet are
// skipped.
func (g *Generator) previousChapters(ctx context.Context, chapter *entity.Chapter) ([]PreviousChapter, error) {
	chapters, err := g.chapterRepo.ListBefore(ctx, chapter.BookID, chapter.Position)
	if err != nil {
		return nil, err
	}
	var previous []PreviousChapter
	for _, prev := range chapters {
		units, err := g.contentRepo.ListByChapter(ctx, prev.ID)
		if err != nil {
			return nil, err
		}
		texts := make([]string, 0, len(units))
		for _, unit := range units {
			if unit.GeneratedText != "" {
				texts = append(texts, unit.GeneratedText)
			}
		}
		if len(texts) == 0 {
			continue
		}
		previous = append(previous, PreviousChapter{
			Title: prev.Title,
			Text:  strings.Join(texts, "\n\n"),
		})
	}
	return previous, nil
}
