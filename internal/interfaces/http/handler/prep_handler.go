package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/houseoffoodsin/HOFBusiness/internal/application/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/order"
)

type PrepHandler struct {
	svc *app.Service
	loc *time.Location
	now func() time.Time
}

func NewPrepHandler(svc *app.Service, loc *time.Location) *PrepHandler {
	return &PrepHandler{svc: svc, loc: loc, now: time.Now}
}

// Sheet serves the kitchen prep sheet for ?date=YYYY-MM-DD (default today).
func (h *PrepHandler) Sheet(c *gin.Context) {
	date, err := h.parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sheet, err := h.svc.PrepSheet(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": order.DayKey(date, h.loc), "items": sheet})
}

type toggleRequest struct {
	Date         string `json:"date"`
	MenuItemName string `json:"menu_item_name" binding:"required"`
	Size         string `json:"size" binding:"required"`
	Prepared     bool   `json:"prepared"`
}

func (h *PrepHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.SetItemPrepared(c.Request.Context(), date, req.MenuItemName, req.Size, req.Prepared); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type dayRequest struct {
	Date string `json:"date"`
}

func (h *PrepHandler) MarkAll(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.MarkAllPrepared(c.Request.Context(), date); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PrepHandler) Reset(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ResetPreparation(c.Request.Context(), date); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PrepHandler) parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return h.now().In(h.loc), nil
	}

	date, err := time.ParseInLocation(order.DayKeyLayout, raw, h.loc)
	if err != nil {
		return time.Time{}, &invalidParamError{param: "date", value: raw}
	}
	return date, nil
}
