package routes

import (
	"github.com/aduportal/portal-go/internal/api/handlers"
	"github.com/aduportal/portal-go/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the engine. Public routes
// carry a per-IP rate limit; everything else sits behind JWT auth, with
// clerk and admin groups gated by role.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	auth := middleware.NewAuth()

	authLimit := middleware.RateLimit(1, 5)
	r.POST("/register", authLimit, h.User.Register)
	r.POST("/login", authLimit, h.User.Login)
	r.POST("/logout", h.User.Logout)

	r.GET("/metrics", middleware.MetricsHandler())

	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("/users/me", h.User.Me)
		api.PUT("/users/me", h.User.UpdateMe)

		api.GET("/requests/my", h.Request.GetMyRequests)
		api.POST("/requests", h.Request.CreateRequest)
		api.GET("/requests/:id", h.Request.GetRequestByID)
		api.DELETE("/requests/:id", h.Request.CancelRequest)

		api.GET("/requests/:id/documents", h.Document.ListByRequest)
		api.POST("/requests/:id/documents", h.Document.Upload)

		api.GET("/chat/messages", h.Chat.History)
		api.POST("/chat/messages", h.Chat.Send)
		api.DELETE("/chat/messages", h.Chat.Clear)
		api.GET("/ws/chat", h.Chat.Stream)

		clerk := api.Group("/")
		clerk.Use(auth.Clerk())
		{
			clerk.GET("/requests", h.Request.GetRequests)
			clerk.GET("/requests/statistics", h.Request.GetStatistics)
			clerk.GET("/requests/urgent", h.Request.GetUrgent)
			clerk.GET("/requests/clerk-stats", h.Request.GetClerkStats)
			clerk.POST("/requests/auto-assign", h.Request.AutoAssign)
			clerk.POST("/requests/:id/claim", h.Request.Claim)
			clerk.POST("/requests/:id/unassign", h.Request.Unassign)
			clerk.POST("/requests/:id/approve", h.Request.Approve)
			clerk.POST("/requests/:id/reject", h.Request.Reject)
			clerk.PUT("/requests/:id/priority", h.Request.SetPriority)
		}

		admin := api.Group("/")
		admin.Use(auth.Admin())
		{
			admin.POST("/documents/:id/approve", h.Document.Approve)
			admin.POST("/documents/:id/reject", h.Document.Reject)
			admin.GET("/documents/rejected", h.Document.ListRejected)
			admin.DELETE("/users", h.User.DeleteUser)
		}
	}
}
