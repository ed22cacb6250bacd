package api

import (
	"errors"
	"net/http"

	"multimart/internal/domain/discount"
	reqdto "multimart/internal/handler/dto/request"
	resdto "multimart/internal/handler/dto/response"
	"multimart/internal/handler/middleware"
	"multimart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountUseCase usecase.DiscountUseCase
}

func NewDiscountHandler(discountUseCase usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{
		discountUseCase: discountUseCase,
	}
}

// @Summary Create discount
// @Description Create a new discount in the actor's ownership scope
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount definition"
// @Success 201 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	d, err := h.discountUseCase.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDiscount(d))
}

// @Summary Update discount
// @Description Partially update a discount; omitted fields are unchanged
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Fields to update"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts/{id} [patch]
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	d, err := h.discountUseCase.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscount(d))
}

// @Summary Publish discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id}/publish [post]
func (h *DiscountHandler) PublishDiscount(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	d, err := h.discountUseCase.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscount(d))
}

// @Summary Unpublish discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id}/unpublish [post]
func (h *DiscountHandler) UnpublishDiscount(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	d, err := h.discountUseCase.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscount(d))
}

// @Summary Set discount availability
// @Description Toggle whether a discount can currently be redeemed
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.DiscountAvailabilityRequest true "Availability flag"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id}/availability [patch]
func (h *DiscountHandler) SetAvailability(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.DiscountAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	d, err := h.discountUseCase.SetAvailability(c.Request.Context(), actor, id, *req.Available)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscount(d))
}

// @Summary Delete discount
// @Tags discounts
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.discountUseCase.Delete(c.Request.Context(), actor, id); err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [get]
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	actor, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	d, err := h.discountUseCase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscount(d))
}

// @Summary List shop discounts
// @Description List all discounts owned by one shop
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param shop_id query string true "Shop ID"
// @Success 200 {array} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /discounts [get]
func (h *DiscountHandler) ListShopDiscounts(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	shopID, err := uuid.Parse(c.Query("shop_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shop ID format",
		})
		return
	}

	discounts, err := h.discountUseCase.ListByShop(c.Request.Context(), actor, shopID)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscounts(discounts))
}

// @Summary List published discounts
// @Description List discounts currently visible to shoppers
// @Tags discounts
// @Produce json
// @Success 200 {array} resdto.DiscountResponse
// @Router /discounts/published [get]
func (h *DiscountHandler) ListPublishedDiscounts(c *gin.Context) {
	discounts, err := h.discountUseCase.ListPublished(c.Request.Context())
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscounts(discounts))
}

func (h *DiscountHandler) actorAndID(c *gin.Context) (usecase.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return usecase.Actor{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid discount ID format",
		})
		return usecase.Actor{}, uuid.Nil, false
	}

	return actor, id, true
}

func (h *DiscountHandler) respondDiscountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDiscountNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Discount not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errors.Is(err, usecase.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Discount code already in use",
		})
	case errors.Is(err, usecase.ErrDiscountValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Domain validation failed",
			"detail": validationDetail(err),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func validationDetail(err error) []string {
	var verr *discount.ValidationErrors
	if !errors.As(err, &verr) {
		return nil
	}
	msgs := make([]string, 0, len(verr.Errors))
	for _, e := range verr.Errors {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
