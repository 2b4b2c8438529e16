package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pousada-api/internal/domain/payment"
	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/usecase/readmodel"
)

type paymentDoc struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	ConfirmationID string              `bson:"confirmationId,omitempty"`
	Reservation    primitive.ObjectID  `bson:"reservation"`
	CreatedBy      primitive.ObjectID  `bson:"createdBy"`
	Amount         float64             `bson:"amount"`
	Status         string              `bson:"status"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}

type PaymentData struct {
	ConfirmationID string
	Reservation    primitive.ObjectID
	CreatedBy      primitive.ObjectID
	Amount         float64
	Status         string
}

type PaymentPatch struct {
	ConfirmationID *string
	Amount         *float64
	Status         *string
}

type PaymentFilter struct {
	ID               *string
	ConfirmationID   *string
	Reservation      *string
	CreatedBy        *string
	Status           *string
	AmountRangeStart *float64
	AmountRangeEnd   *float64
}

type PaymentRepository struct {
	col          *mongo.Collection
	reservations *ReservationRepository
	clk          clock.Clock
}

func NewPaymentRepository(db *mongo.Database, reservations *ReservationRepository, clk clock.Clock) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments"), reservations: reservations, clk: clk}
}

func (r *PaymentRepository) Create(ctx context.Context, data PaymentData) (primitive.ObjectID, error) {
	now := r.clk.Now()
	status := data.Status
	if status == "" {
		status = payment.StatusPending.String()
	}
	doc := paymentDoc{
		ID:             primitive.NewObjectID(),
		ConfirmationID: data.ConfirmationID,
		Reservation:    data.Reservation,
		CreatedBy:      data.CreatedBy,
		Amount:         data.Amount,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, infra.WrapRepoErr("pending payment already exists", err, infra.KindDuplicateKey)
		}
		return primitive.NilObjectID, infra.WrapRepoErr("failed to create payment", err)
	}
	return doc.ID, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id primitive.ObjectID, patch PaymentPatch) error {
	set := bson.M{"updatedAt": r.clk.Now()}
	setString(set, "confirmationId", patch.ConfirmationID)
	setString(set, "status", patch.Status)
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("pending payment already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return infra.WrapRepoErr("failed to destroy payments", err)
	}
	if res.DeletedCount < int64(len(ids)) {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.PaymentView, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByConfirmationID is the join point for processor webhook events: exact
// token match, linked reservation resolved one level.
func (r *PaymentRepository) FindByConfirmationID(ctx context.Context, confirmationID string) (*readmodel.PaymentView, error) {
	return r.findOne(ctx, bson.M{"confirmationId": confirmationID})
}

// FindLatestByStatus returns the caller's most recent payment for a
// reservation in the given status.
func (r *PaymentRepository) FindLatestByStatus(ctx context.Context, createdBy, reservationID primitive.ObjectID, status payment.Status) (*readmodel.PaymentView, error) {
	filter := bson.M{
		"createdBy":   createdBy,
		"reservation": reservationID,
		"status":      status.String(),
	}
	return r.findOne(ctx, filter)
}

func (r *PaymentRepository) findOne(ctx context.Context, filter bson.M) (*readmodel.PaymentView, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var doc paymentDoc
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	views, err := r.hydrate(ctx, []paymentDoc{doc})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *PaymentRepository) FindAndCountAll(ctx context.Context, filter PaymentFilter, page Pagination) ([]readmodel.PaymentView, int64, error) {
	var criteria []bson.M
	if filter.ID != nil {
		criteria = append(criteria, bson.M{"_id": mongodb.CoerceID(*filter.ID)})
	}
	if filter.ConfirmationID != nil {
		criteria = append(criteria, mongodb.ContainsPattern("confirmationId", *filter.ConfirmationID))
	}
	if filter.Reservation != nil {
		criteria = append(criteria, bson.M{"reservation": mongodb.CoerceID(*filter.Reservation)})
	}
	if filter.CreatedBy != nil {
		criteria = append(criteria, bson.M{"createdBy": mongodb.CoerceID(*filter.CreatedBy)})
	}
	if filter.Status != nil {
		criteria = append(criteria, bson.M{"status": *filter.Status})
	}
	criteria = mongodb.AppendRangeCriteria(criteria, "amount", filter.AmountRangeStart, filter.AmountRangeEnd)
	query := mongodb.And(criteria)

	cursor, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list payments", err)
	}
	var docs []paymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to decode payments", err)
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count payments", err)
	}

	views, err := r.hydrate(ctx, docs)
	if err != nil {
		return nil, 0, err
	}
	return views, count, nil
}

// hydrate resolves linked reservations to summaries in one multi-get; no
// recursive hydration beyond that level.
func (r *PaymentRepository) hydrate(ctx context.Context, docs []paymentDoc) ([]readmodel.PaymentView, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.Reservation)
	}

	summaryByID := make(map[primitive.ObjectID]readmodel.ReservationSummary, len(ids))
	if len(ids) > 0 {
		cursor, err := r.reservations.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to find linked reservations", err)
		}
		var linked []reservationDoc
		if err := cursor.All(ctx, &linked); err != nil {
			return nil, infra.WrapRepoErr("failed to decode linked reservations", err)
		}
		for _, l := range linked {
			summaryByID[l.ID] = readmodel.ReservationSummary{ID: l.ID, Name: l.Name, Status: l.Status, Cost: l.Cost}
		}
	}

	views := make([]readmodel.PaymentView, 0, len(docs))
	for _, d := range docs {
		view := readmodel.PaymentView{
			ID:             d.ID,
			ConfirmationID: d.ConfirmationID,
			CreatedBy:      d.CreatedBy,
			Amount:         d.Amount,
			Status:         d.Status,
			CreatedAt:      d.CreatedAt,
			UpdatedAt:      d.UpdatedAt,
		}
		if s, ok := summaryByID[d.Reservation]; ok {
			view.Reservation = &s
		}
		views = append(views, view)
	}
	return views, nil
}
