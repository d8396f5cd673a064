package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/houseoffoodsin/HOFBusiness/internal/application/analytics"
	domain "github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/export"
)

type AnalyticsHandler struct {
	svc    *app.Service
	writer *export.Writer
	loc    *time.Location
	now    func() time.Time
}

func NewAnalyticsHandler(svc *app.Service, writer *export.Writer, loc *time.Location) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, writer: writer, loc: loc, now: time.Now}
}

// Daily serves the daily analytics record for ?date=YYYY-MM-DD (default
// today), recomputing it when none is stored yet.
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	date, err := h.parseDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.DailyFor(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics, err := h.svc.Dashboard(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) ExportOrders(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.svc.OrdersForPeriod(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}

	path, err := h.writer.WriteOrders(orders, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, "orders.csv")
}

func (h *AnalyticsHandler) ExportAnalytics(c *gin.Context) {
	period, err := domain.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.svc.AnalyticsForPeriod(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}

	path, err := h.writer.WriteDailyAnalytics(records, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, "analytics.csv")
}

func (h *AnalyticsHandler) parseDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return h.now().In(h.loc), nil
	}

	date, err := time.ParseInLocation(order.DayKeyLayout, raw, h.loc)
	if err != nil {
		return time.Time{}, &invalidParamError{param: "date", value: raw}
	}
	return date, nil
}
