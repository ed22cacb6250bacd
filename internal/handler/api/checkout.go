package api

import (
	"errors"
	"net/http"

	reqdto "multimart/internal/handler/dto/request"
	resdto "multimart/internal/handler/dto/response"
	"multimart/internal/handler/middleware"
	"multimart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Compute checkout
// @Description Compute a per-shop checkout summary with the selected discount codes applied
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Discount code selection"
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) ComputeCheckout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	summary, err := h.checkoutUseCase.ComputeCheckout(c.Request.Context(), actor.UserID, req.ToSelection())
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutSummary(summary))
}

// @Summary Confirm checkout
// @Description Record usage of the applied discounts after payment succeeds
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmCheckoutRequest true "Applied discount IDs"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) ConfirmCheckout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConfirmCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.checkoutUseCase.ConfirmCheckout(c.Request.Context(), actor.UserID, req.DiscountIDs); err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error) {
	var notApplicable *usecase.NotApplicableError
	var invalid *usecase.InvalidDiscountError

	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart is empty",
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid discount code",
			"code":  invalid.Code,
		})
	case errors.As(err, &notApplicable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Discount not applicable",
			"code":   notApplicable.Code,
			"reason": notApplicable.Reason.String(),
		})
	case errors.Is(err, usecase.ErrConcurrentLimitExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Discount usage limit reached",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
