// Package navigation implements the session state machine that tracks which
// view is active: the book list, a book's chapter list, or a chapter open in
// the editor or the reader.
package navigation

import (
	"context"
	"sync"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
	apperrors "github.com/evausesgit/les-histoires-de-rebecca/pkg/errors"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("navigation")

// State names the active view.
type State string

const (
	StateBrowsingBooks    State = "browsing_books"
	StateBrowsingChapters State = "browsing_chapters"
	StateEditing          State = "editing"
	StateReading          State = "reading"
)

// Snapshot is the externally visible session state. BookID is set in every
// state but BrowsingBooks; ChapterID only while editing or reading.
type Snapshot struct {
	State     State  `json:"state"`
	BookID    string `json:"book_id,omitempty"`
	ChapterID string `json:"chapter_id,omitempty"`
}

// Session is the single-user navigation state machine. The app serves one
// author, so one session guarded by a mutex is enough.
type Session struct {
	mu        sync.Mutex
	state     State
	bookID    string
	chapterID string

	bookRepo    repository.BookRepository
	chapterRepo repository.ChapterRepository
}

func NewSession(bookRepo repository.BookRepository, chapterRepo repository.ChapterRepository) *Session {
	return &Session{
		state:       StateBrowsingBooks,
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
	}
}

// Current returns the session state.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{State: s.state, BookID: s.bookID, ChapterID: s.chapterID}
}

// SelectBook moves to the chapter list of a book. It is legal from every
// state; any open chapter view is dropped so no stale reference to the
// previous book survives the switch.
func (s *Session) SelectBook(ctx context.Context, bookID string) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "navigation.Session.SelectBook")
	defer span.End()

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return Snapshot{}, err
	}
	if book == nil {
		return Snapshot{}, apperrors.ErrBookNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateBrowsingChapters
	s.bookID = bookID
	s.chapterID = ""
	return s.snapshot(), nil
}

// Write opens a chapter of the current book in the editor. Only legal while
// browsing that book's chapters.
func (s *Session) Write(ctx context.Context, chapterID string) (Snapshot, error) {
	return s.openChapter(ctx, chapterID, StateEditing, "navigation.Session.Write")
}

// Read opens a chapter of the current book in the read-only view.
func (s *Session) Read(ctx context.Context, chapterID string) (Snapshot, error) {
	return s.openChapter(ctx, chapterID, StateReading, "navigation.Session.Read")
}

func (s *Session) openChapter(ctx context.Context, chapterID string, target State, spanName string) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	s.mu.Lock()
	state, bookID := s.state, s.bookID
	s.mu.Unlock()

	if state != StateBrowsingChapters {
		return Snapshot{}, apperrors.ErrInvalidTransition.WithDetail(
			"chapter can only be opened from the chapter list, current state: " + string(state))
	}

	chapter, err := s.chapterRepo.GetByID(ctx, chapterID)
	if err != nil {
		return Snapshot{}, err
	}
	if chapter == nil {
		return Snapshot{}, apperrors.ErrChapterNotFound
	}
	if chapter.BookID != bookID {
		return Snapshot{}, apperrors.ErrInvalidTransition.WithDetail("chapter belongs to another book")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The session may have moved while the chapter was being checked.
	if s.state != StateBrowsingChapters || s.bookID != bookID {
		return Snapshot{}, apperrors.ErrInvalidTransition.WithDetail("session state changed during transition")
	}
	s.state = target
	s.chapterID = chapterID
	return s.snapshot(), nil
}

// Back steps one level up: editor or reader to the chapter list, chapter
// list to the book list. At the book list there is nowhere further to go.
func (s *Session) Back(ctx context.Context) (Snapshot, error) {
	_, span := tracer.Start(ctx, "navigation.Session.Back")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateEditing, StateReading:
		s.state = StateBrowsingChapters
		s.chapterID = ""
	case StateBrowsingChapters:
		s.state = StateBrowsingBooks
		s.bookID = ""
	default:
		return Snapshot{}, apperrors.ErrInvalidTransition.WithDetail("already at the book list")
	}
	return s.snapshot(), nil
}

// Reset returns the session to the book list unconditionally.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateBrowsingBooks
	s.bookID = ""
	s.chapterID = ""
	return s.snapshot()
}
