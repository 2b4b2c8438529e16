package usecase

import (
	"context"
	"log/slog"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	dompayment "pousada-api/internal/domain/payment"
	"pousada-api/internal/domain/reservation"
	"pousada-api/internal/infra"
	"pousada-api/internal/infra/mongodb"
	gateway "pousada-api/internal/infra/payment"
	"pousada-api/internal/infra/repository"
	"pousada-api/internal/pkg/errs"
	"pousada-api/internal/pkg/random"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase/readmodel"
)

type PaymentRepository interface {
	Create(ctx context.Context, data repository.PaymentData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, patch repository.PaymentPatch) error
	DestroyAll(ctx context.Context, ids []primitive.ObjectID) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.PaymentView, error)
	FindByConfirmationID(ctx context.Context, confirmationID string) (*readmodel.PaymentView, error)
	FindLatestByStatus(ctx context.Context, createdBy, reservationID primitive.ObjectID, status dompayment.Status) (*readmodel.PaymentView, error)
	FindAndCountAll(ctx context.Context, filter repository.PaymentFilter, page repository.Pagination) ([]readmodel.PaymentView, int64, error)
}

// Webhook event types delivered by the payment processor.
const (
	EventChargeSucceeded       = "charge.succeeded"
	EventPaymentIntentFailed   = "payment_intent.payment_failed"
	EventPaymentMethodAttached = "payment_method.attached"
)

// WebhookEvent is the processor callback payload reduced to what the flow
// needs: the event type and the correlation token from the intent metadata.
type WebhookEvent struct {
	Type           string
	ConfirmationID string
}

// PaymentIntent is what the client needs to confirm a payment: the
// processor-side secret plus the pending payment it settles.
type PaymentIntent struct {
	ClientSecret string
	Payment      *readmodel.PaymentView
}

type PaymentUsecase struct {
	tx           mongodb.TxRunner
	payments     PaymentRepository
	reservations ReservationRepository
	gateway      gateway.IntentGateway
	currency     string
	logger       *slog.Logger
}

func NewPaymentUsecase(tx mongodb.TxRunner, payments PaymentRepository, reservations ReservationRepository, gw gateway.IntentGateway, currency string, logger *slog.Logger) *PaymentUsecase {
	return &PaymentUsecase{
		tx:           tx,
		payments:     payments,
		reservations: reservations,
		gateway:      gw,
		currency:     currency,
		logger:       logger,
	}
}

// FindLatestReservation ensures the caller has a payable intent for their
// active reservation. The branches, in order:
//
//  1. no checkin reservation: nothing to pay
//  2. a success payment already settled this reservation: already paid
//  3. no pending payment: create one with a fresh token and a live amount
//  4. a pending payment without a token: re-arm it with a fresh token
//  5. hand the pending payment to the processor and return the client secret
//
// The amount is always recomputed from current catalog prices, never read
// back from a stored payment.
func (u *PaymentUsecase) FindLatestReservation(ctx context.Context, principal security.Principal) (*PaymentIntent, error) {
	if principal.IsZero() {
		return nil, errs.ErrCurrentUserMissing
	}

	res, err := u.reservations.FindLatestCheckin(ctx, principal.ID)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrNoActiveReservation)
	}
	if err != nil {
		return nil, err
	}

	if _, err := u.payments.FindLatestByStatus(ctx, principal.ID, res.ID, dompayment.StatusSuccess); err == nil {
		return nil, errs.Mark(errs.New("reservation already paid"), errs.ErrPaymentAlreadyDone)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	var pending *readmodel.PaymentView
	var amount float64
	err = u.tx.Run(ctx, func(ctx context.Context) error {
		var err error
		amount, err = u.reservations.TotalCost(ctx, res.ID)
		if err != nil {
			return err
		}

		existing, err := u.payments.FindLatestByStatus(ctx, principal.ID, res.ID, dompayment.StatusPending)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			token := random.AlphanumericToken(dompayment.ConfirmationIDLength)
			id, err := u.payments.Create(ctx, repository.PaymentData{
				ConfirmationID: token,
				Reservation:    res.ID,
				CreatedBy:      principal.ID,
				Amount:         amount,
			})
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrPaymentAlreadyPending)
			}
			if err != nil {
				return err
			}
			pending, err = u.payments.FindByID(ctx, id)
			return err
		case err != nil:
			return err
		case existing.ConfirmationID == "":
			token := random.AlphanumericToken(dompayment.ConfirmationIDLength)
			patch := repository.PaymentPatch{ConfirmationID: &token, Amount: &amount}
			if err := u.payments.Update(ctx, existing.ID, patch); err != nil {
				return err
			}
			pending, err = u.payments.FindByID(ctx, existing.ID)
			return err
		default:
			pending = existing
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	intent, err := u.gateway.CreateIntent(ctx, minorUnits(amount), u.currency, map[string]string{
		"confirmationId": pending.ConfirmationID,
	})
	if err != nil {
		return nil, err
	}

	return &PaymentIntent{ClientSecret: intent.ClientSecret, Payment: pending}, nil
}

// HandleWebhook applies a processor event. Unrecognized event types and
// unmatched confirmation ids are deliberately a no-op: the processor may
// deliver duplicates or events for intents this system never issued.
func (u *PaymentUsecase) HandleWebhook(ctx context.Context, event WebhookEvent) error {
	switch event.Type {
	case EventChargeSucceeded:
		return u.completeIntent(ctx, event.ConfirmationID, true)
	case EventPaymentIntentFailed:
		return u.completeIntent(ctx, event.ConfirmationID, false)
	case EventPaymentMethodAttached:
		return nil
	default:
		u.logger.InfoContext(ctx, "unhandled payment event", slog.String("type", event.Type))
		return nil
	}
}

func (u *PaymentUsecase) completeIntent(ctx context.Context, confirmationID string, succeeded bool) error {
	if confirmationID == "" {
		return nil
	}

	return u.tx.Run(ctx, func(ctx context.Context) error {
		view, err := u.payments.FindByConfirmationID(ctx, confirmationID)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		status := dompayment.StatusFailed.String()
		if succeeded {
			status = dompayment.StatusSuccess.String()
		}
		if err := u.payments.Update(ctx, view.ID, repository.PaymentPatch{Status: &status}); err != nil {
			return err
		}

		if succeeded && view.Reservation != nil {
			checkout := reservation.StatusCheckout.String()
			err := u.reservations.Update(ctx, view.Reservation.ID, repository.ReservationPatch{Status: &checkout})
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			// Every reservation write re-derives the stored cost from the
			// current catalog prices, the checkout transition included.
			if err := u.reservations.UpdateTotalCost(ctx, view.Reservation.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *PaymentUsecase) Create(ctx context.Context, principal security.Principal, reservationID primitive.ObjectID) (*readmodel.PaymentView, error) {
	if principal.IsZero() {
		return nil, errs.ErrCurrentUserMissing
	}

	var id primitive.ObjectID
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		amount, err := u.reservations.TotalCost(ctx, reservationID)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		if err != nil {
			return err
		}

		token := random.AlphanumericToken(dompayment.ConfirmationIDLength)
		id, err = u.payments.Create(ctx, repository.PaymentData{
			ConfirmationID: token,
			Reservation:    reservationID,
			CreatedBy:      principal.ID,
			Amount:         amount,
		})
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrPaymentAlreadyPending)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return u.FindByID(ctx, id)
}

func (u *PaymentUsecase) Update(ctx context.Context, id primitive.ObjectID, patch repository.PaymentPatch) (*readmodel.PaymentView, error) {
	err := u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.payments.Update(ctx, id, patch)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrPaymentNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, errs.ErrPaymentAlreadyPending)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u.FindByID(ctx, id)
}

func (u *PaymentUsecase) DestroyAll(ctx context.Context, ids []primitive.ObjectID) error {
	return u.tx.Run(ctx, func(ctx context.Context) error {
		err := u.payments.DestroyAll(ctx, ids)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return err
	})
}

func (u *PaymentUsecase) FindByID(ctx context.Context, id primitive.ObjectID) (*readmodel.PaymentView, error) {
	view, err := u.payments.FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrPaymentNotFound)
	}
	return view, err
}

func (u *PaymentUsecase) FindAndCountAll(ctx context.Context, filter repository.PaymentFilter, page repository.Pagination) ([]readmodel.PaymentView, int64, error) {
	return u.payments.FindAndCountAll(ctx, filter, page)
}

// minorUnits converts a currency amount to the processor's integer minor
// units.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
