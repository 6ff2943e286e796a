package impl

import (
	"context"
	"log/slog"
	"strings"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	quoteRepo repository.QuoteRepository
	bookRepo  repository.BookRepository
	logger    *slog.Logger
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	QuoteRepo repository.QuoteRepository
	BookRepo  repository.BookRepository
	Logger    *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		quoteRepo: params.QuoteRepo,
		bookRepo:  params.BookRepo,
		logger:    params.Logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *quoteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error) {
	quotes, err := srv.quoteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return nonNilQuotes(quotes), nil
}

func (srv *quoteService) ListByBook(ctx context.Context, userID, bookID uuid.UUID) ([]*entity.Quote, error) {
	if _, err := srv.bookRepo.FindByID(ctx, userID, bookID); err != nil {
		return nil, err
	}

	quotes, err := srv.quoteRepo.FindByBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	return nonNilQuotes(quotes), nil
}

func (srv *quoteService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateQuoteInput) (*entity.Quote, error) {
	book, err := srv.bookRepo.FindByID(ctx, userID, input.BookID)
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		UserID: userID,
		BookID: book.ID,
		Text:   strings.TrimSpace(input.Text),
		Page:   input.Page,
		Note:   input.Note,
	}

	if err := srv.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	quote.Book = &entity.BookSummary{
		ID:         book.ID,
		Title:      book.Title,
		Author:     book.Author,
		CoverImage: book.CoverImage,
	}

	srv.log(ctx).Info("Quote created",
		slog.String("userID", userID.String()),
		slog.String("quoteID", quote.ID.String()),
	)

	return quote, nil
}

func (srv *quoteService) Update(ctx context.Context, userID, quoteID uuid.UUID, input *usecase.UpdateQuoteInput) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindByID(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		quote.Text = strings.TrimSpace(*input.Text)
	}
	if input.Page != nil {
		quote.Page = input.Page
	}
	if input.Note != nil {
		quote.Note = *input.Note
	}

	if err := srv.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	return quote, nil
}

func (srv *quoteService) Delete(ctx context.Context, userID, quoteID uuid.UUID) error {
	return srv.quoteRepo.Delete(ctx, userID, quoteID)
}

func nonNilQuotes(quotes []*entity.Quote) []*entity.Quote {
	if quotes == nil {
		return []*entity.Quote{}
	}

	return quotes
}
