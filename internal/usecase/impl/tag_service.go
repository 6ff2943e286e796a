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

// tagService implements the TagUsecase interface.
type tagService struct {
	txManager repository.TransactionManager
	tagRepo   repository.TagRepository
	logger    *slog.Logger
}

// TagServiceParams holds dependencies for TagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TagRepo   repository.TagRepository
	Logger    *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		txManager: params.TxManager,
		tagRepo:   params.TagRepo,
		logger:    params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *tagService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []*entity.Tag{}
	}

	return tags, nil
}

func (srv *tagService) Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Tag, error) {
	tag := &entity.Tag{UserID: userID, Name: strings.TrimSpace(name)}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (srv *tagService) Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (*entity.Tag, error) {
	tag, err := srv.tagRepo.FindByID(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}

	tag.Name = strings.TrimSpace(name)
	if err := srv.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// Delete detaches the tag from every book before removing it.
func (srv *tagService) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.NewTagRepository()
		if _, err := tagRepo.FindByID(ctx, userID, tagID); err != nil {
			return err
		}

		if err := tagRepo.DetachAll(ctx, tagID); err != nil {
			return err
		}

		return tagRepo.Delete(ctx, userID, tagID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Tag deleted",
		slog.String("userID", userID.String()),
		slog.String("tagID", tagID.String()),
	)

	return nil
}
