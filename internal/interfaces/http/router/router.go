package router

import (
	"github.com/gin-gonic/gin"

	"github.com/houseoffoodsin/HOFBusiness/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	orders *handler.OrderHandler,
	analytics *handler.AnalyticsHandler,
	prep *handler.PrepHandler,
) {
	api := r.Group("/api")
	{
		api.POST("/orders", orders.CreateOrder)
		api.GET("/orders", orders.ListOrders)
		api.GET("/orders/:id", orders.GetOrder)
		api.PATCH("/orders/:id/milestones", orders.SetMilestone)
		api.POST("/orders/:id/cancel", orders.CancelOrder)
		api.POST("/orders/:id/complete", orders.CompleteOrder)
		api.DELETE("/orders/:id", orders.DeleteOrder)

		api.GET("/menu", orders.ListMenu)
		api.GET("/customers", orders.ListCustomers)

		api.GET("/prep", prep.Sheet)
		api.PUT("/prep/toggle", prep.Toggle)
		api.POST("/prep/mark-all", prep.MarkAll)
		api.POST("/prep/reset", prep.Reset)

		api.GET("/analytics/daily", analytics.Daily)
		api.GET("/dashboard", analytics.Dashboard)

		api.GET("/export/orders", analytics.ExportOrders)
		api.GET("/export/analytics", analytics.ExportAnalytics)
		api.GET("/export/customers", orders.ExportCustomers)
		api.GET("/export/menu", orders.ExportMenu)
	}
}
