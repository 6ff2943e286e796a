package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	tagRepo   repository.TagRepository
	logger    *slog.Logger
	now       func() time.Time
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	TagRepo   repository.TagRepository
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		tagRepo:   params.TagRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *bookService) List(ctx context.Context, userID uuid.UUID, filter repository.BookFilter) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	if books == nil {
		books = []*entity.Book{}
	}

	return books, nil
}

func (srv *bookService) Get(ctx context.Context, userID, bookID uuid.UUID) (*entity.Book, error) {
	return srv.bookRepo.FindByID(ctx, userID, bookID)
}

// Create stores the book, applying the initial status transition, and links the
// named tags, creating any the user does not have yet.
func (srv *bookService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateBookInput) (*entity.Book, error) {
	status := input.Status
	if status == "" {
		status = entity.StatusToRead
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown reading status " + string(status))
	}

	book := &entity.Book{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		ISBN:        strings.TrimSpace(input.ISBN),
		Description: input.Description,
		CoverImage:  input.CoverImage,
		TotalPages:  input.TotalPages,
		CurrentPage: input.CurrentPage,
		Rating:      input.Rating,
		CategoryID:  input.CategoryID,
	}
	book.TransitionTo(status, srv.now())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if book.CategoryID != nil {
			if _, err := repoFactory.NewCategoryRepository().FindByID(ctx, userID, *book.CategoryID); err != nil {
				return err
			}
		}

		bookRepo := repoFactory.NewBookRepository()
		if err := bookRepo.Create(ctx, book); err != nil {
			return err
		}

		tagRepo := repoFactory.NewTagRepository()
		for _, name := range uniqueTagNames(input.Tags) {
			tag, err := findOrCreateTag(ctx, tagRepo, userID, name)
			if err != nil {
				return err
			}

			if err := bookRepo.AddTag(ctx, book.ID, tag.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Book created",
		slog.String("userID", userID.String()),
		slog.String("bookID", book.ID.String()),
	)

	return srv.bookRepo.FindByID(ctx, userID, book.ID)
}

// Update applies the provided fields. Explicit dates are applied before the status
// transition so the transition never overwrites them.
func (srv *bookService) Update(ctx context.Context, userID, bookID uuid.UUID, input *usecase.UpdateBookInput) (*entity.Book, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown reading status " + string(*input.Status))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		book, err := bookRepo.FindByID(ctx, userID, bookID)
		if err != nil {
			return err
		}

		applyBookUpdate(book, input)

		if input.Status != nil {
			book.TransitionTo(*input.Status, srv.now())
		}

		switch {
		case input.ClearCategory:
			book.CategoryID = nil
			book.Category = nil
		case input.CategoryID != nil:
			category, err := repoFactory.NewCategoryRepository().FindByID(ctx, userID, *input.CategoryID)
			if err != nil {
				return err
			}
			book.CategoryID = &category.ID
			book.Category = category
		}

		return bookRepo.Update(ctx, book)
	})
	if err != nil {
		return nil, err
	}

	return srv.bookRepo.FindByID(ctx, userID, bookID)
}

func (srv *bookService) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	if err := srv.bookRepo.Delete(ctx, userID, bookID); err != nil {
		return err
	}

	srv.log(ctx).Info("Book deleted",
		slog.String("userID", userID.String()),
		slog.String("bookID", bookID.String()),
	)

	return nil
}

// AddTag links one of the user's tags to one of the user's books.
func (srv *bookService) AddTag(ctx context.Context, userID, bookID, tagID uuid.UUID) (*entity.Tag, error) {
	var tag *entity.Tag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()
		if _, err := bookRepo.FindByID(ctx, userID, bookID); err != nil {
			return err
		}

		found, err := repoFactory.NewTagRepository().FindByID(ctx, userID, tagID)
		if err != nil {
			return err
		}
		tag = found

		return bookRepo.AddTag(ctx, bookID, tagID)
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

func (srv *bookService) RemoveTag(ctx context.Context, userID, bookID, tagID uuid.UUID) error {
	if _, err := srv.bookRepo.FindByID(ctx, userID, bookID); err != nil {
		return err
	}

	return srv.bookRepo.RemoveTag(ctx, bookID, tagID)
}

func applyBookUpdate(book *entity.Book, input *usecase.UpdateBookInput) {
	if input.Title != nil {
		book.Title = strings.TrimSpace(*input.Title)
	}
	if input.Author != nil {
		book.Author = strings.TrimSpace(*input.Author)
	}
	if input.ISBN != nil {
		book.ISBN = strings.TrimSpace(*input.ISBN)
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.CoverImage != nil {
		book.CoverImage = *input.CoverImage
	}
	if input.TotalPages != nil {
		book.TotalPages = input.TotalPages
	}
	if input.CurrentPage != nil {
		book.CurrentPage = *input.CurrentPage
	}
	if input.Rating != nil {
		book.Rating = input.Rating
	}
	if input.StartDate != nil {
		book.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		book.EndDate = input.EndDate
	}
}

func findOrCreateTag(ctx context.Context, tagRepo repository.TagRepository, userID uuid.UUID, name string) (*entity.Tag, error) {
	tag, err := tagRepo.FindByName(ctx, userID, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, domainerrors.ErrTagNotFound) {
		return nil, err
	}

	tag = &entity.Tag{UserID: userID, Name: name}
	if err := tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// uniqueTagNames trims names, drops blanks and keeps the first spelling of each.
func uniqueTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}
