package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/storage"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase/readmodel"
)

type fileDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title,omitempty"`
	Name        string             `bson:"name"`
	SizeInBytes int64              `bson:"sizeInBytes"`
	PrivateURL  string             `bson:"privateUrl,omitempty"`
	PublicURL   string             `bson:"publicUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type FileData struct {
	Title       string
	Name        string
	SizeInBytes int64
	PrivateURL  string
	PublicURL   string
}

type FileRepository struct {
	col     *mongo.Collection
	storage storage.FileStorage
	clk     clock.Clock
}

func NewFileRepository(db *mongo.Database, fs storage.FileStorage, clk clock.Clock) *FileRepository {
	return &FileRepository{col: db.Collection("files"), storage: fs, clk: clk}
}

func (r *FileRepository) Create(ctx context.Context, data FileData) (primitive.ObjectID, error) {
	now := r.clk.Now()
	doc := fileDoc{
		ID:          primitive.NewObjectID(),
		Title:       data.Title,
		Name:        data.Name,
		SizeInBytes: data.SizeInBytes,
		PrivateURL:  data.PrivateURL,
		PublicURL:   data.PublicURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, infra.WrapRepoErr("failed to create file", err)
	}
	return doc.ID, nil
}

func (r *FileRepository) Update(ctx context.Context, id primitive.ObjectID, data FileData) error {
	set := bson.M{
		"title":     data.Title,
		"name":      data.Name,
		"updatedAt": r.clk.Now(),
	}
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return infra.WrapRepoErr("failed to update file", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("file not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FileRepository) Destroy(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to destroy file", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("file not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.FileView, error) {
	var doc fileDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("file not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find file", err)
	}
	view, err := r.toView(ctx, doc)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// FilterIDs keeps only the ids that reference an existing file. Reference
// lists submitted by clients pass through here before being stored.
func (r *FileRepository) FilterIDs(ctx context.Context, ids []primitive.ObjectID) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to filter file ids", err)
	}
	var docs []fileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode file ids", err)
	}
	existing := make(map[primitive.ObjectID]bool, len(docs))
	for _, d := range docs {
		existing[d.ID] = true
	}
	kept := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if existing[id] {
			kept = append(kept, id)
		}
	}
	return kept, nil
}

// ViewsByIDs resolves a reference list into file views with fresh download
// URLs, in one multi-get. Missing references are skipped, input order is
// preserved.
func (r *FileRepository) ViewsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]readmodel.FileView, error) {
	if len(ids) == 0 {
		return []readmodel.FileView{}, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find files", err)
	}
	var docs []fileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode files", err)
	}

	byID := make(map[primitive.ObjectID]fileDoc, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	views := make([]readmodel.FileView, 0, len(ids))
	for _, id := range ids {
		doc, ok := byID[id]
		if !ok {
			continue
		}
		view, err := r.toView(ctx, doc)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (r *FileRepository) toView(ctx context.Context, doc fileDoc) (*readmodel.FileView, error) {
	var view readmodel.FileView
	if err := copier.Copy(&view, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to map file", err)
	}

	if doc.PublicURL != "" {
		view.DownloadURL = doc.PublicURL
		return &view, nil
	}
	url, err := r.storage.DownloadURL(ctx, doc.Name, doc.PrivateURL, false)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve download url", err)
	}
	view.DownloadURL = url
	return &view, nil
}
