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
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase/readmodel"
)

type userDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Name        string              `bson:"name"`
	Email       string              `bson:"email"`
	Password    string              `bson:"password,omitempty"`
	PhoneNumber string              `bson:"phoneNumber,omitempty"`
	Avatar      *primitive.ObjectID `bson:"avatar,omitempty"`
	Birthday    string              `bson:"birthday,omitempty"`
	CPF         string              `bson:"cpf,omitempty"`
	Status      string              `bson:"status"`
	Role        string              `bson:"role"`
	Province    string              `bson:"province,omitempty"`
	City        string              `bson:"city,omitempty"`
	Street      string              `bson:"street,omitempty"`
	ZipCode     string              `bson:"zipCode,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

// noPassword excludes the password hash from read projections. Only
// FindPassword ever reads it back.
var noPassword = options.FindOne().SetProjection(bson.M{"password": 0})

type UserData struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Avatar      *primitive.ObjectID
	Birthday    string
	CPF         string
	Status      string
	Role        string
	Province    string
	City        string
	Street      string
	ZipCode     string
}

// UserPatch carries the fields of a partial update; nil fields are left
// untouched.
type UserPatch struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Avatar      *primitive.ObjectID
	Birthday    *string
	CPF         *string
	Status      *string
	Role        *string
	Province    *string
	City        *string
	Street      *string
	ZipCode     *string
}

type UserFilter struct {
	ID     *string
	Name   *string
	Email  *string
	Role   *string
	Status *string
}

type UserRepository struct {
	col   *mongo.Collection
	files *FileRepository
	clk   clock.Clock
}

func NewUserRepository(db *mongo.Database, files *FileRepository, clk clock.Clock) *UserRepository {
	return &UserRepository{col: db.Collection("users"), files: files, clk: clk}
}

func (r *UserRepository) Create(ctx context.Context, data UserData) (primitive.ObjectID, error) {
	now := r.clk.Now()
	doc := userDoc{
		ID:          primitive.NewObjectID(),
		Name:        data.Name,
		Email:       data.Email,
		Password:    data.Password,
		PhoneNumber: data.PhoneNumber,
		Avatar:      data.Avatar,
		Birthday:    data.Birthday,
		CPF:         data.CPF,
		Status:      data.Status,
		Role:        data.Role,
		Province:    data.Province,
		City:        data.City,
		Street:      data.Street,
		ZipCode:     data.ZipCode,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, infra.WrapRepoErr("email already in use", err, infra.KindDuplicateKey)
		}
		return primitive.NilObjectID, infra.WrapRepoErr("failed to create user", err)
	}
	return doc.ID, nil
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, patch UserPatch) error {
	set := bson.M{"updatedAt": r.clk.Now()}
	setString(set, "name", patch.Name)
	setString(set, "email", patch.Email)
	setString(set, "password", patch.Password)
	setString(set, "phoneNumber", patch.PhoneNumber)
	setString(set, "birthday", patch.Birthday)
	setString(set, "cpf", patch.CPF)
	setString(set, "status", patch.Status)
	setString(set, "role", patch.Role)
	setString(set, "province", patch.Province)
	setString(set, "city", patch.City)
	setString(set, "street", patch.Street)
	setString(set, "zipCode", patch.ZipCode)
	if patch.Avatar != nil {
		set["avatar"] = *patch.Avatar
	}

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("email already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// ClearAvatar removes the avatar reference. A separate operation because a
// nil patch field means "leave untouched", not "unset".
func (r *UserRepository) ClearAvatar(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$unset": bson.M{"avatar": ""},
		"$set":   bson.M{"updatedAt": r.clk.Now()},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to clear avatar", err)
	}
	return nil
}

func (r *UserRepository) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return infra.WrapRepoErr("failed to destroy users", err)
	}
	if res.DeletedCount < int64(len(ids)) {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.UserView, error) {
	var doc userDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}, noPassword).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	views, err := r.hydrate(ctx, []userDoc{doc})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// FindByEmail matches the whole email case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserView, error) {
	var doc userDoc
	filter := mongodb.EqualsPattern("email", email)
	if err := r.col.FindOne(ctx, filter, noPassword).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	views, err := r.hydrate(ctx, []userDoc{doc})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// FindPassword reads the stored password hash for credential checks.
func (r *UserRepository) FindPassword(ctx context.Context, id primitive.ObjectID) (string, error) {
	var doc userDoc
	opts := options.FindOne().SetProjection(bson.M{"password": 1})
	if err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find user password", err)
	}
	return doc.Password, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return count, nil
}

func (r *UserRepository) FindAndCountAll(ctx context.Context, filter UserFilter, page Pagination) ([]readmodel.UserView, int64, error) {
	var criteria []bson.M
	if filter.ID != nil {
		criteria = append(criteria, bson.M{"_id": mongodb.CoerceID(*filter.ID)})
	}
	if filter.Name != nil {
		criteria = append(criteria, mongodb.ContainsPattern("name", *filter.Name))
	}
	if filter.Email != nil {
		criteria = append(criteria, mongodb.ContainsPattern("email", *filter.Email))
	}
	if filter.Role != nil {
		criteria = append(criteria, bson.M{"role": *filter.Role})
	}
	if filter.Status != nil {
		criteria = append(criteria, bson.M{"status": *filter.Status})
	}
	query := mongodb.And(criteria)

	opts := findOptions(page).SetProjection(bson.M{"password": 0})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list users", err)
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode users", err)
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count users", err)
	}

	views, err := r.hydrate(ctx, docs)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

func (r *UserRepository) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	var criteria []bson.M
	if search != "" {
		criteria = append(criteria, bson.M{"$or": []bson.M{
			{"_id": mongodb.CoerceID(search)},
			mongodb.ContainsPattern("name", search),
		}})
	}

	cursor, err := r.col.Find(ctx, mongodb.And(criteria), autocompleteOptions("name_ASC", limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to autocomplete users", err)
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode users", err)
	}

	views, err := r.hydrate(ctx, docs)
	if err != nil {
		return nil, err
	}

	items := make([]readmodel.AutocompleteItem, 0, len(views))
	for _, v := range views {
		item := readmodel.AutocompleteItem{ID: v.ID, Label: v.Name}
		if v.Avatar != nil {
			url := v.Avatar.DownloadURL
			item.Avatar = &url
		}
		items = append(items, item)
	}
	return items, nil
}

// ViewsByIDs resolves a set of user references (password excluded, avatars
// hydrated) in one multi-get. Missing references are simply absent.
func (r *UserRepository) ViewsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]readmodel.UserView, error) {
	if len(ids) == 0 {
		return []readmodel.UserView{}, nil
	}
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users", err)
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode users", err)
	}
	return r.hydrate(ctx, docs)
}

// hydrate resolves avatar references in one multi-get across the batch.
func (r *UserRepository) hydrate(ctx context.Context, docs []userDoc) ([]readmodel.UserView, error) {
	var avatarIDs []primitive.ObjectID
	for _, d := range docs {
		if d.Avatar != nil {
			avatarIDs = append(avatarIDs, *d.Avatar)
		}
	}
	avatars, err := r.files.ViewsByIDs(ctx, avatarIDs)
	if err != nil {
		return nil, err
	}
	avatarByID := make(map[primitive.ObjectID]readmodel.FileView, len(avatars))
	for _, a := range avatars {
		avatarByID[a.ID] = a
	}

	views := make([]readmodel.UserView, 0, len(docs))
	for _, d := range docs {
		var view readmodel.UserView
		if err := copier.Copy(&view, &d); err != nil {
			return nil, infra.WrapRepoErr("failed to map user", err)
		}
		view.Avatar = nil
		if d.Avatar != nil {
			if a, ok := avatarByID[*d.Avatar]; ok {
				view.Avatar = &a
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func setString(set bson.M, field string, value *string) {
	if value != nil {
		set[field] = *value
	}
}
