//go:build unit

package queries_test

import (
	"testing"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"
	"eventure/internal/usecase/queries"
	"eventure/tests/common/builder"
	queriesmock "eventure/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockStore        *queriesmock.MockBookingReadStore
	mockScooterStore *queriesmock.MockScooterReadStore
	queries          queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockScooterStore = queriesmock.NewMockScooterReadStore(s.mockCtrl)
	s.queries = queries.NewBookingQueries(s.mockStore, s.mockScooterStore)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) notFound() error {
	return infra.WrapRepoErr("no rows", pgx.ErrNoRows, infra.KindNotFound)
}

func (s *BookingQueriesTestSuite) TestGetByIDOwned() {
	view := builder.NewBookingBuilder().BuildView()

	s.mockStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := s.queries.GetByID(s.T().Context(), view.UserID, view.ID)
	s.Require().NoError(err)
	s.Equal(view, got)
}

func (s *BookingQueriesTestSuite) TestGetByIDForeignBookingLooksMissing() {
	view := builder.NewBookingBuilder().BuildView()

	s.mockStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	_, err := s.queries.GetByID(s.T().Context(), uuid.New(), view.ID)
	s.Require().ErrorIs(err, queries.ErrBookingNotFound)
}

func (s *BookingQueriesTestSuite) TestGetByIDSystemSkipsOwnership() {
	view := builder.NewBookingBuilder().BuildView()

	s.mockStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := s.queries.GetByIDSystem(s.T().Context(), view.ID)
	s.Require().NoError(err)
	s.Equal(view, got)
}

func (s *BookingQueriesTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	s.mockStore.EXPECT().FindByID(gomock.Any(), id).Return(nil, s.notFound())

	_, err := s.queries.GetByID(s.T().Context(), uuid.New(), id)
	s.Require().ErrorIs(err, queries.ErrBookingNotFound)
}

func (s *BookingQueriesTestSuite) TestQuote() {
	b := builder.NewBookingBuilder()

	s.mockScooterStore.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildView(), nil)

	quote, err := s.queries.Quote(s.T().Context(), b.ScooterID, b.BuildDraft())
	s.Require().NoError(err)
	s.Equal(2.0, quote.TotalHours)
	s.Equal(int64(24000), quote.TotalAmountPaise)
	s.Equal(240.0, quote.TotalAmountRupees)
}

func (s *BookingQueriesTestSuite) TestQuoteRoundsUpToHalfHour() {
	b := builder.NewBookingBuilder().WithPeriod("2026-09-01", "10:00", "2026-09-01", "12:01")

	s.mockScooterStore.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(builder.NewScooterBuilder().WithID(b.ScooterID).BuildView(), nil)

	quote, err := s.queries.Quote(s.T().Context(), b.ScooterID, b.BuildDraft())
	s.Require().NoError(err)
	s.Equal(2.5, quote.TotalHours)
	s.Equal(int64(30000), quote.TotalAmountPaise)
}

func (s *BookingQueriesTestSuite) TestQuoteInvalidDraftSkipsLookup() {
	b := builder.NewBookingBuilder().WithPeriod("2026-09-01", "12:00", "2026-09-01", "10:00")

	_, err := s.queries.Quote(s.T().Context(), b.ScooterID, b.BuildDraft())
	s.Require().ErrorIs(err, booking.ErrInvalidRange)
}

func (s *BookingQueriesTestSuite) TestQuoteScooterNotFound() {
	b := builder.NewBookingBuilder()

	s.mockScooterStore.EXPECT().FindByID(gomock.Any(), b.ScooterID).
		Return(nil, s.notFound())

	_, err := s.queries.Quote(s.T().Context(), b.ScooterID, b.BuildDraft())
	s.Require().ErrorIs(err, queries.ErrScooterNotFound)
}
