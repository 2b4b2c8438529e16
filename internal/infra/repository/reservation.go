package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pousada-api/internal/domain/reservation"
	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase/readmodel"
)

type reservationLine struct {
	Consumption primitive.ObjectID `bson:"consumption"`
	Quantity    int64              `bson:"quantity"`
}

type reservationDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Email        string               `bson:"email"`
	CPF          string               `bson:"cpf,omitempty"`
	Province     string               `bson:"province,omitempty"`
	City         string               `bson:"city,omitempty"`
	Street       string               `bson:"street,omitempty"`
	ZipCode      string               `bson:"zipCode,omitempty"`
	Consumptions []reservationLine    `bson:"consumptions"`
	Documents    []primitive.ObjectID `bson:"documents,omitempty"`
	CreatedBy    *primitive.ObjectID  `bson:"createdBy,omitempty"`
	Status       string               `bson:"status"`
	Cost         float64              `bson:"cost"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

type ReservationLine struct {
	Consumption primitive.ObjectID
	Quantity    int64
}

type ReservationData struct {
	Name         string
	Email        string
	CPF          string
	Province     string
	City         string
	Street       string
	ZipCode      string
	Consumptions []ReservationLine
	Documents    []primitive.ObjectID
	CreatedBy    *primitive.ObjectID
	Status       string
}

type ReservationPatch struct {
	Name         *string
	Email        *string
	CPF          *string
	Province     *string
	City         *string
	Street       *string
	ZipCode      *string
	Consumptions []ReservationLine
	Documents    []primitive.ObjectID
	Status       *string
}

type ReservationFilter struct {
	ID             *string
	Name           *string
	Email          *string
	CPF            *string
	Status         *string
	CreatedBy      *primitive.ObjectID
	CostRangeStart *float64
	CostRangeEnd   *float64
}

type ReservationRepository struct {
	col          *mongo.Collection
	files        *FileRepository
	users        *UserRepository
	consumptions *ConsumptionRepository
	clk          clock.Clock
}

func NewReservationRepository(db *mongo.Database, files *FileRepository, users *UserRepository, consumptions *ConsumptionRepository, clk clock.Clock) *ReservationRepository {
	return &ReservationRepository{
		col:          db.Collection("reservations"),
		files:        files,
		users:        users,
		consumptions: consumptions,
		clk:          clk,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, data ReservationData) (primitive.ObjectID, error) {
	now := r.clk.Now()
	status := data.Status
	if status == "" {
		status = reservation.StatusCheckin.String()
	}
	lines := make([]reservationLine, 0, len(data.Consumptions))
	for _, l := range data.Consumptions {
		lines = append(lines, reservationLine{Consumption: l.Consumption, Quantity: l.Quantity})
	}
	doc := reservationDoc{
		ID:           primitive.NewObjectID(),
		Name:         data.Name,
		Email:        data.Email,
		CPF:          data.CPF,
		Province:     data.Province,
		City:         data.City,
		Street:       data.Street,
		ZipCode:      data.ZipCode,
		Consumptions: lines,
		Documents:    data.Documents,
		CreatedBy:    data.CreatedBy,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, infra.WrapRepoErr("failed to create reservation", err)
	}
	return doc.ID, nil
}

func (r *ReservationRepository) Update(ctx context.Context, id primitive.ObjectID, patch ReservationPatch) error {
	set := bson.M{"updatedAt": r.clk.Now()}
	setString(set, "name", patch.Name)
	setString(set, "email", patch.Email)
	setString(set, "cpf", patch.CPF)
	setString(set, "province", patch.Province)
	setString(set, "city", patch.City)
	setString(set, "street", patch.Street)
	setString(set, "zipCode", patch.ZipCode)
	setString(set, "status", patch.Status)
	if patch.Consumptions != nil {
		lines := make([]reservationLine, 0, len(patch.Consumptions))
		for _, l := range patch.Consumptions {
			lines = append(lines, reservationLine{Consumption: l.Consumption, Quantity: l.Quantity})
		}
		set["consumptions"] = lines
	}
	if patch.Documents != nil {
		set["documents"] = patch.Documents
	}

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpdateTotalCost recomputes the reservation cost from the live catalog
// prices of its line items and writes it back directly. Callers run it after
// every create and update; cost is never client-supplied truth.
func (r *ReservationRepository) UpdateTotalCost(ctx context.Context, id primitive.ObjectID) error {
	cost, err := r.TotalCost(ctx, id)
	if err != nil {
		return err
	}
	if _, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"cost": cost}}); err != nil {
		return infra.WrapRepoErr("failed to update reservation cost", err)
	}
	return nil
}

// TotalCost sums live price times quantity over the reservation's line
// items. Lines whose referenced consumption no longer exists contribute
// zero.
func (r *ReservationRepository) TotalCost(ctx context.Context, id primitive.ObjectID) (float64, error) {
	var doc reservationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find reservation", err)
	}

	ids := make([]primitive.ObjectID, 0, len(doc.Consumptions))
	for _, line := range doc.Consumptions {
		ids = append(ids, line.Consumption)
	}
	prices, err := r.consumptions.ViewsByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	priceByID := make(map[primitive.ObjectID]float64, len(prices))
	for id, view := range prices {
		priceByID[id] = view.Price
	}
	return totalCost(doc.Consumptions, priceByID), nil
}

func (r *ReservationRepository) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return infra.WrapRepoErr("failed to destroy reservations", err)
	}
	if res.DeletedCount < int64(len(ids)) {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.ReservationView, error) {
	var doc reservationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	views, err := r.hydrate(ctx, []reservationDoc{doc})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// FindLatestCheckin returns the caller's most recent active reservation as a
// summary, the join point of the payment flow.
func (r *ReservationRepository) FindLatestCheckin(ctx context.Context, createdBy primitive.ObjectID) (*readmodel.ReservationSummary, error) {
	filter := bson.M{"createdBy": createdBy, "status": reservation.StatusCheckin.String()}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var doc reservationDoc
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("no active reservation", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest reservation", err)
	}
	return &readmodel.ReservationSummary{ID: doc.ID, Name: doc.Name, Status: doc.Status, Cost: doc.Cost}, nil
}

func (r *ReservationRepository) FindAndCountAll(ctx context.Context, filter ReservationFilter, page Pagination) ([]readmodel.ReservationView, int64, error) {
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
	if filter.CPF != nil {
		criteria = append(criteria, mongodb.ContainsPattern("cpf", *filter.CPF))
	}
	if filter.Status != nil {
		criteria = append(criteria, bson.M{"status": *filter.Status})
	}
	if filter.CreatedBy != nil {
		criteria = append(criteria, bson.M{"createdBy": *filter.CreatedBy})
	}
	criteria = mongodb.AppendRangeCriteria(criteria, "cost", filter.CostRangeStart, filter.CostRangeEnd)
	query := mongodb.And(criteria)

	cursor, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	var docs []reservationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode reservations", err)
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	views, err := r.hydrate(ctx, docs)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

func (r *ReservationRepository) FindAllAutocomplete(ctx context.Context, search string, limit int64) ([]readmodel.AutocompleteItem, error) {
	var criteria []bson.M
	if search != "" {
		criteria = append(criteria, bson.M{"$or": []bson.M{
			{"_id": mongodb.CoerceID(search)},
			mongodb.ContainsPattern("name", search),
		}})
	}

	cursor, err := r.col.Find(ctx, mongodb.And(criteria), autocompleteOptions("name_ASC", limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to autocomplete reservations", err)
	}
	var docs []reservationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservations", err)
	}

	items := make([]readmodel.AutocompleteItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, readmodel.AutocompleteItem{ID: d.ID, Label: d.Name})
	}
	return items, nil
}

// hydrate denormalizes a batch of reservations with one multi-get per
// referenced type, in fixed order: documents, consumption lines, createdBy
// (which resolves its own avatar).
func (r *ReservationRepository) hydrate(ctx context.Context, docs []reservationDoc) ([]readmodel.ReservationView, error) {
	var consumptionIDs []primitive.ObjectID
	var creatorIDs []primitive.ObjectID
	for _, d := range docs {
		for _, line := range d.Consumptions {
			consumptionIDs = append(consumptionIDs, line.Consumption)
		}
		if d.CreatedBy != nil {
			creatorIDs = append(creatorIDs, *d.CreatedBy)
		}
	}

	consumptionByID, err := r.consumptions.ViewsByIDs(ctx, consumptionIDs)
	if err != nil {
		return nil, err
	}

	creators, err := r.users.ViewsByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}
	creatorByID := make(map[primitive.ObjectID]readmodel.UserView, len(creators))
	for _, u := range creators {
		creatorByID[u.ID] = u
	}

	views := make([]readmodel.ReservationView, 0, len(docs))
	for _, d := range docs {
		documents, err := r.files.ViewsByIDs(ctx, d.Documents)
		if err != nil {
			return nil, err
		}

		lines := make([]readmodel.ReservationLineView, 0, len(d.Consumptions))
		for _, line := range d.Consumptions {
			lv := readmodel.ReservationLineView{Quantity: line.Quantity}
			if c, ok := consumptionByID[line.Consumption]; ok {
				lv.Consumption = &c
			}
			lines = append(lines, lv)
		}

		view := readmodel.ReservationView{
			ID:           d.ID,
			Name:         d.Name,
			Email:        d.Email,
			CPF:          d.CPF,
			Province:     d.Province,
			City:         d.City,
			Street:       d.Street,
			ZipCode:      d.ZipCode,
			Consumptions: lines,
			Documents:    documents,
			Status:       d.Status,
			Cost:         d.Cost,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		}
		if d.CreatedBy != nil {
			if u, ok := creatorByID[*d.CreatedBy]; ok {
				view.CreatedBy = &u
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// totalCost is the pure accumulation step: price times quantity per line,
// missing prices count as zero.
func totalCost(lines []reservationLine, priceByID map[primitive.ObjectID]float64) float64 {
	var sum float64
	for _, line := range lines {
		sum += priceByID[line.Consumption] * float64(line.Quantity)
	}
	return sum
}
