//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"multimart/internal/domain/cart"
	"multimart/internal/domain/checkout"
	"multimart/internal/domain/discount"
	"multimart/internal/domain/user"
	"multimart/internal/handler/api"
	reqdto "multimart/internal/handler/dto/request"
	resdto "multimart/internal/handler/dto/response"
	"multimart/internal/usecase"
	"multimart/tests/common/httptest"
	usecasemock "multimart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *usecasemock.MockCheckoutUseCase
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("actor", usecase.Actor{UserID: s.userID, Role: user.RoleCustomer})
		c.Next()
	}

	s.router.POST("/checkout", authMiddleware, s.handler.ComputeCheckout)
	s.router.POST("/checkout/confirm", authMiddleware, s.handler.ConfirmCheckout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestComputeCheckout
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestComputeCheckout() {
	url := "/checkout"
	shopID := uuid.New()

	reqBody := reqdto.CheckoutRequest{
		ShopDiscounts: []reqdto.ShopDiscountSelection{
			{ShopID: shopID, Code: "TENOFF26"},
		},
	}

	returnSummary := checkout.Assemble(s.userID, []checkout.ShopSummary{
		{
			ShopID:   shopID,
			ShopName: "Shop A",
			Items: []cart.LineItem{
				{SkuID: uuid.New(), Name: "sku-1", UnitPrice: 50000, Quantity: 2},
			},
			Subtotal:       100000,
			ShippingFee:    3000,
			DiscountAmount: 10000,
			DiscountCode:   "TENOFF26",
		},
	}, 0, "")

	s.Run("success: returns 200 OK with CheckoutSummaryResponse", func() {
		s.mockCheckout.EXPECT().ComputeCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(returnSummary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CheckoutSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.UserID)
		s.Len(response.Shops, 1)
		s.Equal("TENOFF26", response.Shops[0].DiscountCode)
		s.Equal(int64(93000), response.Shops[0].Total)
		s.Equal(int64(93000), response.GrandTotal)
	})

	s.Run("success: selection passed through to usecase", func() {
		platformCode := "PLAT5000"
		body := reqdto.CheckoutRequest{
			PlatformCode:  &platformCode,
			ShopDiscounts: []reqdto.ShopDiscountSelection{{ShopID: shopID, Code: " TENOFF26 "}},
		}
		expected := usecase.CheckoutSelection{
			PlatformCode: &platformCode,
			ShopCodes:    map[uuid.UUID]string{shopID: "TENOFF26"},
		}

		s.mockCheckout.EXPECT().ComputeCheckout(gomock.Any(), s.userID, expected).
			Return(returnSummary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed shop selection", func() {
		body := map[string]any{
			"shop_discounts": []map[string]any{{"shop_id": "not-a-uuid", "code": "X"}},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty cart",
				usecaseError:   usecase.ErrEmptyCart,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "invalid discount code",
				usecaseError:   &usecase.InvalidDiscountError{Code: "NOSUCH1", ShopID: &shopID},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid discount code",
			},
			{
				name:           "discount not applicable",
				usecaseError:   &usecase.NotApplicableError{Code: "EXPIRED1", Reason: discount.ReasonExpired},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Discount not applicable",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().ComputeCheckout(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: not-applicable response includes code and reason", func() {
		s.mockCheckout.EXPECT().ComputeCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &usecase.NotApplicableError{Code: "LOWCART1", Reason: discount.ReasonBelowMinimum}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		s.Equal(http.StatusBadRequest, rec.Code)
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("LOWCART1", body["code"])
		s.Equal(discount.ReasonBelowMinimum.String(), body["reason"])
	})
}

// ================================================================================
// TestConfirmCheckout
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestConfirmCheckout() {
	url := "/checkout/confirm"
	discountIDs := []uuid.UUID{uuid.New(), uuid.New()}
	reqBody := reqdto.ConfirmCheckoutRequest{DiscountIDs: discountIDs}

	s.Run("success: returns 204 No Content", func() {
		s.mockCheckout.EXPECT().ConfirmCheckout(gomock.Any(), s.userID, discountIDs).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when discount_ids is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "usage limit reached by a concurrent checkout",
				usecaseError:   usecase.ErrConcurrentLimitExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Discount usage limit reached",
			},
			{
				name:           "dependency failure",
				usecaseError:   usecase.ErrDependencyFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().ConfirmCheckout(gomock.Any(), s.userID, discountIDs).
					Return(tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
