package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/houseoffoodsin/HOFBusiness/internal/application/order"
	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/export"
)

type OrderHandler struct {
	svc    *app.Service
	writer *export.Writer
	loc    *time.Location
	now    func() time.Time
}

func NewOrderHandler(svc *app.Service, writer *export.Writer, loc *time.Location) *OrderHandler {
	return &OrderHandler{svc: svc, writer: writer, loc: loc, now: time.Now}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var cmd app.CreateOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.SubmitOrder(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type milestoneRequest struct {
	Field string `json:"field" binding:"required"`
	Value bool   `json:"value"`
}

func (h *OrderHandler) SetMilestone(c *gin.Context) {
	var req milestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.SetMilestone(c.Request.Context(), c.Param("id"), domain.MilestoneField(req.Field), req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.svc.CancelOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	order, err := h.svc.CompleteOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.svc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ListMenu(c *gin.Context) {
	items, err := h.svc.MenuCatalog(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *OrderHandler) ListCustomers(c *gin.Context) {
	customers, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

func (h *OrderHandler) ExportCustomers(c *gin.Context) {
	customers, err := h.svc.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	path, err := h.writer.WriteCustomers(customers, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, "customers.csv")
}

func (h *OrderHandler) ExportMenu(c *gin.Context) {
	items, err := h.svc.MenuCatalog(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	path, err := h.writer.WriteMenu(items, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, "menu.csv")
}

// parseFilter builds the compound order filter from query parameters:
// q (substring), status, start and end (YYYY-MM-DD, inclusive).
func (h *OrderHandler) parseFilter(c *gin.Context) (domain.Filter, error) {
	filter := domain.Filter{Query: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			return filter, &invalidParamError{param: "status", value: raw}
		}
		filter.Status = &status
	}

	if raw := c.Query("start"); raw != "" {
		start, err := time.ParseInLocation(domain.DayKeyLayout, raw, h.loc)
		if err != nil {
			return filter, &invalidParamError{param: "start", value: raw}
		}
		filter.StartDate = &start
	}

	if raw := c.Query("end"); raw != "" {
		end, err := time.ParseInLocation(domain.DayKeyLayout, raw, h.loc)
		if err != nil {
			return filter, &invalidParamError{param: "end", value: raw}
		}
		// End of the named day, inclusive.
		endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &endOfDay
	}

	return filter, nil
}

type invalidParamError struct {
	param string
	value string
}

func (e *invalidParamError) Error() string {
	return "invalid " + e.param + " parameter: " + e.value
}
