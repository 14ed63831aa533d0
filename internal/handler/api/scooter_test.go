//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"eventure/internal/domain/scooter"
	"eventure/internal/handler/api"
	resdto "eventure/internal/handler/dto/response"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"
	"eventure/tests/common/builder"
	"eventure/tests/common/httptest"
	"eventure/tests/common/testutil"
	commandsmock "eventure/tests/mock/commands"
	queriesmock "eventure/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScooterHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScooterCommands
	mockQueries  *queriesmock.MockScooterQueries
	handler      *api.ScooterHandler
}

func (s *ScooterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScooterCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScooterQueries(s.mockCtrl)
	s.handler = api.NewScooterHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/scooters", s.handler.ListScooters)
	s.router.GET("/scooters/:id", s.handler.GetScooter)
	s.router.POST("/scooters", s.handler.CreateScooter)
	s.router.PUT("/scooters/:id", s.handler.UpdateScooter)
	s.router.DELETE("/scooters/:id", s.handler.DeleteScooter)
}

func (s *ScooterHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScooterHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScooterHandlerTestSuite))
}

func (s *ScooterHandlerTestSuite) TestListScooters() {
	url := "/scooters"

	s.Run("success: returns the catalog snapshot", func() {
		listing := &queries.CatalogListing{
			Scooters: []*queries.ScooterView{
				builder.NewScooterBuilder().BuildView(),
				builder.NewScooterBuilder().WithName("Ola S1 Pro").BuildView(),
			},
			FetchedAt: time.Now(),
			Stale:     false,
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(listing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Scooters, 2)
		s.False(response.Stale)
	})

	s.Run("success: stale snapshot is flagged", func() {
		listing := &queries.CatalogListing{
			Scooters:  []*queries.ScooterView{builder.NewScooterBuilder().BuildView()},
			FetchedAt: time.Now().Add(-time.Minute),
			Stale:     true,
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(listing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CatalogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Stale)
	})
}

func (s *ScooterHandlerTestSuite) TestGetScooter() {
	view := builder.NewScooterBuilder().BuildView()
	url := fmt.Sprintf("/scooters/%s", view.ID)

	s.Run("success: returns the scooter", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ScooterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Name, response.Name)
		s.Equal(view.HourlyRatePaise, response.HourlyRatePaise)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/scooters/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid scooter ID format")
	})

	s.Run("error: 404 when scooter does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, queries.ErrScooterNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scooter not found")
	})
}

func (s *ScooterHandlerTestSuite) TestCreateScooter() {
	url := "/scooters"
	scooterBuilder := builder.NewScooterBuilder()
	reqBody := scooterBuilder.BuildCreateRequestDTO()
	view := scooterBuilder.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), scooterBuilder.BuildAttributes()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ScooterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "negative hourly rate", mutate: testutil.Field("hourly_rate_paise", -1)},
			{name: "rating above five", mutate: testutil.Field("rating", 5.5)},
			{name: "negative availability", mutate: testutil.Field("available", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 when domain validation rejects the attributes", func() {
		validationErr := errs.Mark(scooter.ErrEmptyName, commands.ErrScooterValidation)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, validationErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Scooter validation failed")
	})
}

func (s *ScooterHandlerTestSuite) TestUpdateScooter() {
	scooterBuilder := builder.NewScooterBuilder()
	view := scooterBuilder.BuildView()
	url := fmt.Sprintf("/scooters/%s", view.ID)
	reqBody := scooterBuilder.BuildCreateRequestDTO()

	s.Run("success: returns the updated scooter", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, scooterBuilder.BuildAttributes()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.ScooterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 404 when scooter does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, commands.ErrScooterNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scooter not found")
	})
}

func (s *ScooterHandlerTestSuite) TestDeleteScooter() {
	id := uuid.New()
	url := fmt.Sprintf("/scooters/%s", id)

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when scooter does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrScooterNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Scooter not found")
	})
}
