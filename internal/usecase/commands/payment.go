package commands

import (
	"context"
	"fmt"
	"time"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"
	"eventure/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCheckoutInProgress = errs.New("checkout already in progress")
	ErrPaymentInitFailed  = errs.New("payment initialization failed")
	ErrQuoteNotPayable    = errs.New("quote amount must be positive")
)

// Currency is fixed: the gateway contract is INR minor units (paise).
const paymentCurrency = "inr"

type CheckoutParams struct {
	UserID          uuid.UUID
	ScooterID       uuid.UUID
	PickupDate      string
	PickupTime      string
	DropoffDate     string
	DropoffTime     string
	PickupLocation  string
	DropoffLocation string
}

type CheckoutResult struct {
	IntentID     string
	ClientSecret string
	AmountPaise  int64
	TotalHours   float64
}

type PaymentCommands interface {
	// Checkout opens the single per-user-per-scooter session and creates the
	// gateway payment intent the hosted widget is driven by.
	Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error)
	// Dismiss is the user abandoning the widget: the session clears, no error.
	Dismiss(ctx context.Context, userID, scooterID uuid.UUID) error
}

type paymentCommandsImpl struct {
	scooterRepo ScooterRepository
	gateway     PaymentGateway
	sessions    CheckoutSessions
	sessionTTL  time.Duration
}

func NewPaymentCommands(
	scooterRepo ScooterRepository,
	gateway PaymentGateway,
	sessions CheckoutSessions,
	sessionTTL time.Duration,
) PaymentCommands {
	return &paymentCommandsImpl{
		scooterRepo: scooterRepo,
		gateway:     gateway,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

func (p *paymentCommandsImpl) Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	draft := booking.NewDraft(
		params.PickupDate, params.PickupTime,
		params.DropoffDate, params.DropoffTime,
		params.PickupLocation, params.DropoffLocation,
	)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	snap, err := p.scooterRepo.FindByID(ctx, params.ScooterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScooterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.Available <= 0 {
		return nil, ErrSoldOut
	}

	quote, err := booking.ComputeQuote(draft.Period, booking.NewMoney(snap.HourlyRatePaise))
	if err != nil {
		return nil, err
	}
	if !quote.IsPayable() {
		return nil, ErrQuoteNotPayable
	}

	acquired, err := p.sessions.Open(ctx, params.UserID, params.ScooterID, p.sessionTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentInitFailed)
	}
	if !acquired {
		return nil, ErrCheckoutInProgress
	}

	intent, err := p.gateway.CreateIntent(ctx, IntentRequest{
		AmountPaise: quote.Amount().Paise(),
		Currency:    paymentCurrency,
		Description: fmt.Sprintf("EVenture rental: %s", snap.Name),
	})
	if err != nil {
		// The widget never opened; the session must not stay stuck as submitting.
		if closeErr := p.sessions.Close(ctx, params.UserID, params.ScooterID); closeErr != nil {
			err = errs.Wrap(err, closeErr.Error())
		}
		return nil, errs.Mark(err, ErrPaymentInitFailed)
	}

	return &CheckoutResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountPaise:  quote.Amount().Paise(),
		TotalHours:   quote.Hours(),
	}, nil
}

func (p *paymentCommandsImpl) Dismiss(ctx context.Context, userID, scooterID uuid.UUID) error {
	return p.sessions.Close(ctx, userID, scooterID)
}
