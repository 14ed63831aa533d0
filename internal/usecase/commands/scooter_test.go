//go:build unit

package commands_test

import (
	"testing"

	"eventure/internal/domain/scooter"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"
	"eventure/tests/common/builder"
	commandsmock "eventure/tests/mock/commands"
	queriesmock "eventure/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScooterCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockScooterRepository
	mockQueries *queriesmock.MockScooterQueries
	mockCache   *commandsmock.MockCatalogCache
	commands    commands.ScooterCommands
}

func (s *ScooterCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockScooterRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScooterQueries(s.mockCtrl)
	s.mockCache = commandsmock.NewMockCatalogCache(s.mockCtrl)

	s.commands = commands.NewScooterCommands(s.mockRepo, s.mockQueries, s.mockCache)
}

func (s *ScooterCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScooterCommandsSuite(t *testing.T) {
	suite.Run(t, new(ScooterCommandsTestSuite))
}

func (s *ScooterCommandsTestSuite) TestCreateSuccess() {
	b := builder.NewScooterBuilder()
	attrs := b.BuildAttributes()
	view := b.BuildView()

	s.mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(b.ID, nil)
	s.mockCache.EXPECT().Invalidate(gomock.Any())
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

	result, err := s.commands.Create(s.T().Context(), attrs)
	s.Require().NoError(err)
	s.Equal(view, result)
}

func (s *ScooterCommandsTestSuite) TestCreateValidationFailure() {
	attrs := builder.NewScooterBuilder().WithName("").BuildAttributes()

	result, err := s.commands.Create(s.T().Context(), attrs)
	s.Require().True(errs.Is(err, commands.ErrScooterValidation))
	s.Require().ErrorIs(err, scooter.ErrEmptyName)
	s.Nil(result)
}

func (s *ScooterCommandsTestSuite) TestUpdateSuccess() {
	b := builder.NewScooterBuilder()
	entity, err := b.BuildDomain()
	s.Require().NoError(err)
	attrs := b.WithHourlyRatePaise(15000).BuildAttributes()
	view := b.BuildView()

	s.mockRepo.EXPECT().LoadForUpdate(gomock.Any(), b.ID).Return(entity, nil)
	s.mockRepo.EXPECT().Update(gomock.Any(), entity).Return(nil)
	s.mockCache.EXPECT().Invalidate(gomock.Any())
	s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(view, nil)

	result, err := s.commands.Update(s.T().Context(), b.ID, attrs)
	s.Require().NoError(err)
	s.Equal(view, result)
	s.Equal(int64(15000), entity.HourlyRatePaise())
}

func (s *ScooterCommandsTestSuite) TestUpdateNotFound() {
	id := uuid.New()

	s.mockRepo.EXPECT().LoadForUpdate(gomock.Any(), id).Return(nil, notFoundErr())

	_, err := s.commands.Update(s.T().Context(), id, builder.NewScooterBuilder().BuildAttributes())
	s.Require().ErrorIs(err, commands.ErrScooterNotFound)
}

func (s *ScooterCommandsTestSuite) TestUpdateRejectsInvalidAttributes() {
	b := builder.NewScooterBuilder()
	entity, err := b.BuildDomain()
	s.Require().NoError(err)

	s.mockRepo.EXPECT().LoadForUpdate(gomock.Any(), b.ID).Return(entity, nil)

	_, err = s.commands.Update(s.T().Context(), b.ID, b.WithRating(9.9).BuildAttributes())
	s.Require().True(errs.Is(err, commands.ErrScooterValidation))
}

func (s *ScooterCommandsTestSuite) TestDeleteSuccess() {
	id := uuid.New()

	s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	s.mockCache.EXPECT().Invalidate(gomock.Any())

	s.Require().NoError(s.commands.Delete(s.T().Context(), id))
}

func (s *ScooterCommandsTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	s.mockRepo.EXPECT().Delete(gomock.Any(), id).Return(notFoundErr())

	s.Require().ErrorIs(s.commands.Delete(s.T().Context(), id), commands.ErrScooterNotFound)
}
