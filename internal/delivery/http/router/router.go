// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campustrace/internal/delivery/http/middleware"
	"campustrace/internal/delivery/http/router/handler"
	"campustrace/internal/domain/constants"
	"campustrace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SessionHandler      *handler.SessionHandler
	ItemHandler         *handler.ItemHandler
	ClaimHandler        *handler.ClaimHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	AdminHandler        *handler.AdminHandler
	PageHandler         *handler.PageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	GuardMiddleware     *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", p.AuthHandler.SignUp)
		authGroup.POST("/signin", p.AuthHandler.SignIn)
		authGroup.POST("/magic-link", p.AuthHandler.RequestMagicLink)
		authGroup.GET("/callback", p.SessionHandler.MagicLinkCallback)
		authGroup.POST("/signout-all", p.AuthHandler.SignOutAll, p.AuthMiddleware.Authenticate)
	}

	// Session bootstrap routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/bootstrap", p.SessionHandler.Bootstrap)
		sessionGroup.GET("", p.SessionHandler.Snapshot)
		sessionGroup.POST("/refresh", p.SessionHandler.Refresh)
		sessionGroup.POST("/signout", p.SessionHandler.SignOut)
	}

	// App shell pages sit behind the bootstrap-driven route guards.
	e.GET(constants.RouteSignIn, p.PageHandler.SignInPage, p.GuardMiddleware.PublicOnly)
	e.GET(constants.RouteMemberDashboard, p.PageHandler.MemberDashboard, p.GuardMiddleware.Protected)
	e.GET(constants.RouteAdminDashboard, p.PageHandler.AdminDashboard, p.GuardMiddleware.RoleGated(entity.RoleAdmin))

	// Item routes. Reads are public within a university, writes need auth.
	itemGroup := e.Group("/items")
	{
		itemGroup.GET("", p.ItemHandler.ListItems)
		itemGroup.GET("/nearby", p.ItemHandler.NearbyItems)
		itemGroup.GET("/mine", p.ItemHandler.ListMyItems, p.AuthMiddleware.Authenticate)
		itemGroup.GET("/:id", p.ItemHandler.GetItem)
		itemGroup.GET("/:id/qr", p.ItemHandler.PosterQR)

		itemGroup.POST("", p.ItemHandler.CreateItem, p.AuthMiddleware.Authenticate)
		itemGroup.PUT("/:id", p.ItemHandler.UpdateItem, p.AuthMiddleware.Authenticate)
		itemGroup.DELETE("/:id", p.ItemHandler.DeleteItem, p.AuthMiddleware.Authenticate)
		itemGroup.POST("/:id/images", p.ItemHandler.AttachImage, p.AuthMiddleware.Authenticate)
		itemGroup.POST("/:id/recover", p.ItemHandler.MarkRecovered, p.AuthMiddleware.Authenticate)

		itemGroup.POST("/:id/claims", p.ClaimHandler.FileClaim, p.AuthMiddleware.Authenticate)
		itemGroup.GET("/:id/claims", p.ClaimHandler.ListClaimsForItem, p.AuthMiddleware.Authenticate)
	}

	// Claim routes
	claimGroup := e.Group("/claims")
	claimGroup.Use(p.AuthMiddleware.Authenticate)
	{
		claimGroup.GET("/mine", p.ClaimHandler.ListMyClaims)
		claimGroup.POST("/:id/decision", p.ClaimHandler.DecideClaim)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(p.AuthMiddleware.Authenticate)
	{
		notificationGroup.GET("", p.NotificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", p.NotificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", p.NotificationHandler.MarkRead)
		notificationGroup.POST("/read-all", p.NotificationHandler.MarkAllRead)
	}
	e.POST("/devices", p.NotificationHandler.RegisterDevice, p.AuthMiddleware.Authenticate)

	// Profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(p.AuthMiddleware.Authenticate)
	{
		profileGroup.GET("", p.ProfileHandler.GetProfile)
		profileGroup.PUT("", p.ProfileHandler.UpdateProfile)
	}
	e.GET("/universities/:id", p.ProfileHandler.GetUniversity)

	// Moderation routes require authentication and at least the moderator role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleModerator))
	{
		adminGroup.GET("/items/pending", p.AdminHandler.ListPendingItems)
		adminGroup.POST("/items/:id/review", p.AdminHandler.ReviewItem)
		adminGroup.GET("/members", p.AdminHandler.ListMembers)
	}

	// Tenant administration requires the admin role.
	tenantGroup := e.Group("/admin")
	tenantGroup.Use(p.AuthMiddleware.Authenticate)
	tenantGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		tenantGroup.POST("/users/:id/ban", p.AdminHandler.SetUserBanned)
		tenantGroup.POST("/users/:id/role", p.AdminHandler.SetUserRole)
		tenantGroup.PUT("/university", p.AdminHandler.UpdateUniversity)
	}
}
