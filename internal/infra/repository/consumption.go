package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase/readmodel"
)

type consumptionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type ConsumptionData struct {
	Name        string
	Description string
	Price       float64
}

type ConsumptionPatch struct {
	Name        *string
	Description *string
	Price       *float64
}

type ConsumptionFilter struct {
	ID              *string
	Name            *string
	PriceRangeStart *float64
	PriceRangeEnd   *float64
}

type ConsumptionRepository struct {
	col *mongo.Collection
	clk clock.Clock
}

func NewConsumptionRepository(db *mongo.Database, clk clock.Clock) *ConsumptionRepository {
	return &ConsumptionRepository{col: db.Collection("consumptions"), clk: clk}
}

func (r *ConsumptionRepository) Create(ctx context.Context, data ConsumptionData) (primitive.ObjectID, error) {
	now := r.clk.Now()
	doc := consumptionDoc{
		ID:          primitive.NewObjectID(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, infra.WrapRepoErr("failed to create consumption", err)
	}
	return doc.ID, nil
}

func (r *ConsumptionRepository) Update(ctx context.Context, id primitive.ObjectID, patch ConsumptionPatch) error {
	set := bson.M{"updatedAt": r.clk.Now()}
	setString(set, "name", patch.Name)
	setString(set, "description", patch.Description)
	if patch.Price != nil {
		set["price"] = *patch.Price
	}

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return infra.WrapRepoErr("failed to update consumption", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("consumption not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConsumptionRepository) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return infra.WrapRepoErr("failed to destroy consumptions", err)
	}
	if res.DeletedCount < int64(len(ids)) {
		return infra.WrapRepoErr("consumption not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ConsumptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ConsumptionView, error) {
	var doc consumptionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("consumption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find consumption", err)
	}
	return toConsumptionView(doc)
}

// ViewsByIDs resolves a reference list in one multi-get, keyed by id.
// Missing references are simply absent from the result.
func (r *ConsumptionRepository) ViewsByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]readmodel.ConsumptionView, error) {
	if len(ids) == 0 {
		return map[primitive.ObjectID]readmodel.ConsumptionView{}, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find consumptions", err)
	}
	var docs []consumptionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode consumptions", err)
	}

	views := make(map[primitive.ObjectID]readmodel.ConsumptionView, len(docs))
	for _, d := range docs {
		view, err := toConsumptionView(d)
		if err != nil {
			return nil, err
		}
		views[d.ID] = *view
	}
	return views, nil
}

func (r *ConsumptionRepository) FindAndCountAll(ctx context.Context, filter ConsumptionFilter, page Pagination) ([]readmodel.ConsumptionView, int64, error) {
	var criteria []bson.M
	if filter.ID != nil {
		criteria = append(criteria, bson.M{"_id": mongodb.CoerceID(*filter.ID)})
	}
	if filter.Name != nil {
		criteria = append(criteria, mongodb.ContainsPattern("name", *filter.Name))
	}
	criteria = mongodb.AppendRangeCriteria(criteria, "price", filter.PriceRangeStart, filter.PriceRangeEnd)
	query := mongodb.And(criteria)

	cursor, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list consumptions", err)
	}
	var docs []consumptionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode consumptions", err)
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count consumptions", err)
	}

	views := make([]readmodel.ConsumptionView, 0, len(docs))
	for _, d := range docs {
		view, err := toConsumptionView(d)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, count, nil
}

func (r *ConsumptionRepository) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	var criteria []bson.M
	if search != "" {
		criteria = append(criteria, bson.M{"$or": []bson.M{
			{"_id": mongodb.CoerceID(search)},
			mongodb.ContainsPattern("name", search),
		}})
	}

	cursor, err := r.col.Find(ctx, mongodb.And(criteria), autocompleteOptions("name_ASC", limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to autocomplete consumptions", err)
	}
	var docs []consumptionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode consumptions", err)
	}

	items := make([]readmodel.AutocompleteItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, readmodel.AutocompleteItem{ID: d.ID, Label: d.Name})
	}
	return items, nil
}

func toConsumptionView(doc consumptionDoc) (*readmodel.ConsumptionView, error) {
	var view readmodel.ConsumptionView
	if err := copier.Copy(&view, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to map consumption", err)
	}
	return &view, nil
}
