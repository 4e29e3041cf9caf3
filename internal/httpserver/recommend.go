package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/service"
)

type RecommendHandler struct {
	Svc *service.RecommendService
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "recommend")

	p, err := principal(c)
	if err != nil {
		return err
	}

	products, err := h.Svc.Recommend(ctx, p)
	if err != nil {
		// No order history is an empty recommendation, not a failure.
		if errors.Is(err, service.ErrNoOrders) {
			return c.JSON(http.StatusOK, []models.Product{})
		}
		return httpError(l, "recommend", err)
	}
	return c.JSON(http.StatusOK, products)
}
