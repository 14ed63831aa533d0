//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"eventure/internal/handler/api"
	reqdto "eventure/internal/handler/dto/request"
	resdto "eventure/internal/handler/dto/response"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/commands"
	"eventure/tests/common/builder"
	"eventure/tests/common/httptest"
	commandsmock "eventure/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)
	s.userID = uuid.New()

	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.POST("/payments/checkout", s.handler.Checkout)
	authed.POST("/payments/dismiss", s.handler.Dismiss)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	url := "/payments/checkout"
	b := builder.NewBookingBuilder().WithUserID(s.userID)
	reqBody := reqdto.CheckoutRequest{
		ScooterID:       b.ScooterID,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		RentalPeriodRequest: reqdto.RentalPeriodRequest{
			PickupDate:  b.PickupDate,
			PickupTime:  b.PickupTime,
			DropoffDate: b.DropoffDate,
			DropoffTime: b.DropoffTime,
		},
	}

	s.Run("success: returns 201 with the intent client secret", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), b.BuildCheckoutParams()).
			Return(&commands.CheckoutResult{
				IntentID:     "pi_test_12345",
				ClientSecret: "pi_test_12345_secret",
				AmountPaise:  24000,
				TotalHours:   2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("pi_test_12345", response.IntentID)
		s.Equal("pi_test_12345_secret", response.ClientSecret)
		s.Equal(int64(24000), response.AmountPaise)
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "zero amount quote",
				commandError:   commands.ErrQuoteNotPayable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Quote amount must be positive",
			},
			{
				name:           "scooter not found",
				commandError:   commands.ErrScooterNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Scooter not found",
			},
			{
				name:           "sold out",
				commandError:   commands.ErrSoldOut,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Scooter is sold out",
			},
			{
				name:           "checkout already in progress",
				commandError:   commands.ErrCheckoutInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "A checkout for this scooter is already in progress",
			},
			{
				// Marked the way the command layer reports it, so this arm
				// proves the handler resolves mark identities.
				name:           "gateway failure",
				commandError:   errs.Mark(errs.New("stripe: api error"), commands.ErrPaymentInitFailed),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Payment initialization failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestDismiss() {
	url := "/payments/dismiss"
	scooterID := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Dismiss(gomock.Any(), s.userID, scooterID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.DismissCheckoutRequest{ScooterID: scooterID}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"scooter_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
