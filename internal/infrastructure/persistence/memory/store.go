// Package memory provides in-memory implementations of the domain
// repositories. They back the application-layer tests and keep the service
// logic exercisable without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/entity"
	"github.com/evausesgit/les-histoires-de-rebecca/internal/domain/repository"
)

// Store holds every entity table behind one mutex. The repositories returned
// by its accessors share the store, mirroring a single database.
type Store struct {
	mu       sync.Mutex
	books    map[string]*entity.Book
	chapters map[string]*entity.Chapter
	contents map[string]*entity.ContentUnit
	styles   map[string]*entity.StyleProfile
	seq      int64
	order    map[string]int64
}

func NewStore() *Store {
	return &Store{
		books:    make(map[string]*entity.Book),
		chapters: make(map[string]*entity.Chapter),
		contents: make(map[string]*entity.ContentUnit),
		styles:   make(map[string]*entity.StyleProfile),
		order:    make(map[string]int64),
	}
}

func (s *Store) next(id string) {
	s.seq++
	s.order[id] = s.seq
}

func (s *Store) Books() repository.BookRepository       { return &bookRepo{s} }
func (s *Store) Chapters() repository.ChapterRepository { return &chapterRepo{s} }
func (s *Store) Contents() repository.ContentRepository { return &contentRepo{s} }
func (s *Store) Styles() repository.StyleRepository     { return &styleRepo{s} }

// WithTransaction satisfies repository.Transactor. The store has no real
// transactions; the callback simply runs against the shared maps.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type bookRepo struct{ s *Store }

func (r *bookRepo) Create(ctx context.Context, book *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *book
	r.s.books[book.ID] = &cp
	r.s.next(book.ID)
	return nil
}

func (r *bookRepo) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	book, ok := r.s.books[id]
	if !ok {
		return nil, nil
	}
	cp := *book
	return &cp, nil
}

func (r *bookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Book, 0, len(r.s.books))
	for _, book := range r.s.books {
		cp := *book
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.order[out[i].ID] < r.s.order[out[j].ID]
	})
	return out, nil
}

func (r *bookRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.books, id)
	return nil
}

func (r *bookRepo) DetachStyle(ctx context.Context, styleID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, book := range r.s.books {
		if book.StyleID != nil && *book.StyleID == styleID {
			book.StyleID = nil
		}
	}
	return nil
}

type chapterRepo struct{ s *Store }

func (r *chapterRepo) Create(ctx context.Context, chapter *entity.Chapter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *chapter
	r.s.chapters[chapter.ID] = &cp
	r.s.next(chapter.ID)
	return nil
}

func (r *chapterRepo) GetByID(ctx context.Context, id string) (*entity.Chapter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	chapter, ok := r.s.chapters[id]
	if !ok {
		return nil, nil
	}
	cp := *chapter
	return &cp, nil
}

func (r *chapterRepo) ListByBook(ctx context.Context, bookID string) ([]*entity.Chapter, error) {
	return r.listWhere(bookID, -1)
}

func (r *chapterRepo) ListBefore(ctx context.Context, bookID string, position int) ([]*entity.Chapter, error) {
	return r.listWhere(bookID, position)
}

func (r *chapterRepo) listWhere(bookID string, below int) ([]*entity.Chapter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Chapter
	for _, chapter := range r.s.chapters {
		if chapter.BookID != bookID {
			continue
		}
		if below >= 0 && chapter.Position >= below {
			continue
		}
		cp := *chapter
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *chapterRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.chapters, id)
	return nil
}

func (r *chapterRepo) DeleteByBook(ctx context.Context, bookID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, chapter := range r.s.chapters {
		if chapter.BookID == bookID {
			delete(r.s.chapters, id)
		}
	}
	return nil
}

func (r *chapterRepo) NextPosition(ctx context.Context, bookID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	max := 0
	for _, chapter := range r.s.chapters {
		if chapter.BookID == bookID && chapter.Position > max {
			max = chapter.Position
		}
	}
	return max + 1, nil
}

type contentRepo struct{ s *Store }

func (r *contentRepo) Create(ctx context.Context, content *entity.ContentUnit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *content
	r.s.contents[content.ID] = &cp
	r.s.next(content.ID)
	return nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*entity.ContentUnit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	content, ok := r.s.contents[id]
	if !ok {
		return nil, nil
	}
	cp := *content
	return &cp, nil
}

func (r *contentRepo) ListByChapter(ctx context.Context, chapterID string) ([]*entity.ContentUnit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ContentUnit
	for _, content := range r.s.contents {
		if content.ChapterID != chapterID {
			continue
		}
		cp := *content
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.order[out[i].ID] < r.s.order[out[j].ID]
	})
	return out, nil
}

func (r *contentRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.contents, id)
	return nil
}

func (r *contentRepo) DeleteByChapter(ctx context.Context, chapterID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, content := range r.s.contents {
		if content.ChapterID == chapterID {
			delete(r.s.contents, id)
		}
	}
	return nil
}

func (r *contentRepo) DeleteByBook(ctx context.Context, bookID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	chapterIDs := make(map[string]bool)
	for id, chapter := range r.s.chapters {
		if chapter.BookID == bookID {
			chapterIDs[id] = true
		}
	}
	for id, content := range r.s.contents {
		if chapterIDs[content.ChapterID] {
			delete(r.s.contents, id)
		}
	}
	return nil
}

type styleRepo struct{ s *Store }

func (r *styleRepo) Create(ctx context.Context, style *entity.StyleProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *style
	r.s.styles[style.ID] = &cp
	r.s.next(style.ID)
	return nil
}

func (r *styleRepo) GetByID(ctx context.Context, id string) (*entity.StyleProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	style, ok := r.s.styles[id]
	if !ok {
		return nil, nil
	}
	cp := *style
	return &cp, nil
}

func (r *styleRepo) GetByName(ctx context.Context, name string) (*entity.StyleProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, style := range r.s.styles {
		if style.Name == name {
			cp := *style
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *styleRepo) List(ctx context.Context) ([]*entity.StyleProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StyleProfile, 0, len(r.s.styles))
	for _, style := range r.s.styles {
		cp := *style
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Predefined != out[j].Predefined {
			return out[i].Predefined
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *styleRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.styles, id)
	return nil
}
