//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"
	"eventure/internal/usecase/commands"
	"eventure/tests/common/builder"
	commandsmock "eventure/tests/mock/commands"
	dbmock "eventure/tests/mock/db"
	queriesmock "eventure/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookingRepo *commandsmock.MockBookingRepository
	mockScooterRepo *commandsmock.MockScooterRepository
	mockSessions    *commandsmock.MockCheckoutSessions
	mockCache       *commandsmock.MockCatalogCache
	mockQueries     *queriesmock.MockBookingQueries
	txStarter       *dbmock.StubTxStarter
	commands        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockScooterRepo = commandsmock.NewMockScooterRepository(s.mockCtrl)
	s.mockSessions = commandsmock.NewMockCheckoutSessions(s.mockCtrl)
	s.mockCache = commandsmock.NewMockCatalogCache(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.txStarter = dbmock.NewStubTxStarter()

	s.commands = commands.NewBookingCommands(
		s.mockBookingRepo,
		s.mockScooterRepo,
		s.mockSessions,
		s.mockCache,
		s.mockQueries,
		s.txStarter,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *BookingCommandsTestSuite) TestConfirmBookingSuccess() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()
	bookingID := uuid.New()
	view := b.BuildView()

	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(uuid.Nil, notFoundErr())
	s.mockScooterRepo.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildSnapshot(), nil)
	s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookingID, nil)
	s.mockScooterRepo.EXPECT().DecrementAvailable(gomock.Any(), gomock.Any(), b.ScooterID).
		Return(nil)
	s.mockSessions.EXPECT().Close(gomock.Any(), b.UserID, b.ScooterID).Return(nil)
	s.mockCache.EXPECT().ApplyBookingDecrement(b.ScooterID)
	s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil)

	result, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.False(result.IsReplayed)
	s.Equal(view, result.Booking)
	s.True(s.txStarter.Tx.Committed())
}

func (s *BookingCommandsTestSuite) TestConfirmBookingReplaysSamePaymentRef() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()
	existingID := uuid.New()
	view := b.BuildView()

	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(existingID, nil)
	s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), existingID).Return(view, nil)

	result, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(view, result.Booking)
}

func (s *BookingCommandsTestSuite) TestConfirmBookingSoldOut() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()

	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(uuid.Nil, notFoundErr())
	s.mockScooterRepo.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildSnapshot(), nil)
	s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.New(), nil)
	s.mockScooterRepo.EXPECT().DecrementAvailable(gomock.Any(), gomock.Any(), b.ScooterID).
		Return(infra.WrapRepoErr("availability exhausted", errors.New("no rows affected"), infra.KindConflict))

	result, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().ErrorIs(err, commands.ErrSoldOut)
	s.Nil(result)
	s.False(s.txStarter.Tx.Committed())
}

func (s *BookingCommandsTestSuite) TestConfirmBookingDuplicateKeyRaceServesWinner() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()
	winnerID := uuid.New()
	view := b.BuildView()

	// Not yet present at the pre-check, but a concurrent confirmation lands
	// between the check and the insert.
	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(uuid.Nil, notFoundErr())
	s.mockScooterRepo.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildSnapshot(), nil)
	s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("duplicate payment_ref", errors.New("23505"), infra.KindDuplicateKey))
	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(winnerID, nil)
	s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), winnerID).Return(view, nil)

	result, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().NoError(err)
	s.True(result.IsReplayed)
	s.Equal(view, result.Booking)
}

func (s *BookingCommandsTestSuite) TestConfirmBookingScooterNotFound() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()

	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(uuid.Nil, notFoundErr())
	s.mockScooterRepo.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(nil, notFoundErr())

	_, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().ErrorIs(err, commands.ErrScooterNotFound)
}

func (s *BookingCommandsTestSuite) TestConfirmBookingInvalidDraft() {
	params := builder.NewBookingBuilder().
		WithPeriod("2026-09-01", "12:00", "2026-09-01", "10:00").
		BuildConfirmParams()

	_, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().ErrorIs(err, booking.ErrInvalidRange)
}

func (s *BookingCommandsTestSuite) TestConfirmBookingSessionCloseFailureDoesNotFail() {
	b := builder.NewBookingBuilder()
	params := b.BuildConfirmParams()
	bookingID := uuid.New()
	view := b.BuildView()

	s.mockBookingRepo.EXPECT().FindIDByPaymentRef(gomock.Any(), b.PaymentRef).
		Return(uuid.Nil, notFoundErr())
	s.mockScooterRepo.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildSnapshot(), nil)
	s.mockBookingRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookingID, nil)
	s.mockScooterRepo.EXPECT().DecrementAvailable(gomock.Any(), gomock.Any(), b.ScooterID).
		Return(nil)
	s.mockSessions.EXPECT().Close(gomock.Any(), b.UserID, b.ScooterID).
		Return(errors.New("redis unavailable"))
	s.mockCache.EXPECT().ApplyBookingDecrement(b.ScooterID)
	s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil)

	result, err := s.commands.ConfirmBooking(s.T().Context(), params)
	s.Require().NoError(err)
	s.False(result.IsReplayed)
}
