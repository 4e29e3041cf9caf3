package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopapi/internal/logging"
	"shopapi/internal/service"
	"shopapi/internal/transport"
	"shopapi/internal/util"
)

type OrderHandler struct {
	Svc *service.OrderService
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	p, err := principal(c)
	if err != nil {
		return err
	}

	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultLimit)
	offset := util.ParseIntDefault(c.QueryParam("offset"), 0)
	limit, offset = util.Pagination(limit, offset)

	total, orders, err := h.Svc.ListOrders(ctx, p, limit, offset)
	if err != nil {
		return httpError(l, "list_orders", err)
	}

	data := make([]transport.OrderPublic, len(orders))
	for i, o := range orders {
		data[i] = transport.OrderToPublic(o)
	}
	return c.JSON(http.StatusOK, transport.OrderList{Data: data, Count: total})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_order_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	order, products, err := h.Svc.GetOrder(ctx, p, id)
	if err != nil {
		return httpError(l, "get_order", err)
	}
	return c.JSON(http.StatusOK, transport.OrderToDetail(*order, products))
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	p, err := principal(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, products, err := h.Svc.CreateOrder(ctx, p, req)
	if err != nil {
		return httpError(l, "create_order", err)
	}

	l.Info("create_order_success", "order_id", order.ID, "user_id", order.UserID)
	return c.JSON(http.StatusCreated, transport.OrderToDetail(*order, products))
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_order_failed", "status", 400, "reason", "id is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteOrder(ctx, p, id); err != nil {
		return httpError(l, "delete_order", err)
	}

	l.Info("delete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, transport.Message{Message: "Order deleted successfully"})
}
