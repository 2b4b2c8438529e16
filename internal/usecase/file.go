package usecase

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/infra/storage"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/usecase/readmodel"
)

type FileRepository interface {
	Create(ctx context.Context, data repository.FileData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, data repository.FileData) error
	Destroy(ctx context.Context, id primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.FileView, error)
}

type FileUploadInput struct {
	Title          string
	Name           string
	SizeInBytes    int64
	PrivateURL     string
	PublicRead     bool
	MaxSizeInBytes int64
}

type FileUsecase struct {
	tx      mongodb.TxRunner
	files   FileRepository
	storage storage.FileStorage
}

func NewFileUsecase(tx mongodb.TxRunner, files FileRepository, fs storage.FileStorage) *FileUsecase {
	return &FileUsecase{tx: tx, files: files, storage: fs}
}

// Upload streams the content to the storage backend and records the file
// metadata. The storage write happens outside the transaction; only the
// metadata insert is transactional.
func (u *FileUsecase) Upload(ctx context.Context, r io.Reader, input FileUploadInput) (*readmodel.FileView, error) {
	downloadURL, err := u.storage.Upload(ctx, r, input.PrivateURL, input.Name, input.PublicRead, input.MaxSizeInBytes)
	if err != nil {
		return nil, err
	}

	data := repository.FileData{
		Title:       input.Title,
		Name:        input.Name,
		SizeInBytes: input.SizeInBytes,
		PrivateURL:  input.PrivateURL,
	}
	if input.PublicRead {
		data.PublicURL = downloadURL
	}

	var id primitive.ObjectID
	err = u.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		id, err = u.files.Create(ctx, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

func (u *FileUsecase) Update(ctx context.Context, id primitive.ObjectID, data repository.FileData) (*readmodel.FileView, error) {
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.files.Update(ctx, id, data)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrFileNotFound)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u.FindByID(ctx, id)
}

func (u *FileUsecase) Destroy(ctx context.Context, id primitive.ObjectID) error {
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.files.Destroy(ctx, id)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrFileNotFound)
		}
		return err
	})
}

func (u *FileUsecase) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.FileView, error) {
	view, err := u.files.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrFileNotFound)
	}
	return view, err
}
