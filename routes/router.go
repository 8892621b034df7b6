package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/adanilkinca/techcockbar/handlers"
	"github.com/adanilkinca/techcockbar/middleware"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/websocket"
)

func RegisterRoutes(r *gin.Engine, hub *websocket.Hub) {

	// init
	repos := repositories.New()
	svc := services.New(repos, hub)
	h := handlers.New(svc, hub)
	authMiddleware := middleware.NewAuth(repos)

	// public
	r.GET("/healthz", handlers.Healthz)
	r.POST("/auth/login", h.Auth.Login)
	r.GET("/cocktails", h.Menu.ListMenu)
	r.GET("/cocktails/:slug", h.Menu.GetMenuItem)
	r.GET("/ws/menu", h.MenuFeed.Subscribe)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)

		admin := auth.Group("/admin")
		{
			cocktails := admin.Group("/cocktails")
			{
				cocktails.GET("", authMiddleware.Admin(), h.Cocktail.ListCocktails)
				cocktails.GET("/:id", authMiddleware.Admin(), h.Cocktail.GetCocktail)
				cocktails.POST("", authMiddleware.Admin(), h.Cocktail.CreateCocktail)
				cocktails.PUT("/:id", authMiddleware.Admin(), h.Cocktail.UpdateCocktail)
				cocktails.DELETE("/:id", authMiddleware.Admin(), h.Cocktail.DeleteCocktail)
				cocktails.POST("/:id/status", authMiddleware.Admin(), h.Cocktail.UpdateStatus)
				cocktails.PUT("/:id/ingredients", authMiddleware.Admin(), h.Cocktail.ReplaceIngredients)
			}
			ingredients := admin.Group("/ingredients")
			{
				ingredients.GET("", authMiddleware.Admin(), h.Ingredient.ListIngredients)
				ingredients.GET("/:id", authMiddleware.Admin(), h.Ingredient.GetIngredient)
				ingredients.POST("", authMiddleware.Admin(), h.Ingredient.CreateIngredient)
				ingredients.PUT("/:id", authMiddleware.Admin(), h.Ingredient.UpdateIngredient)
				ingredients.DELETE("/:id", authMiddleware.Admin(), h.Ingredient.DeleteIngredient)
			}
			tags := admin.Group("/tags")
			{
				tags.GET("", authMiddleware.Admin(), h.Tag.ListTags)
				tags.POST("", authMiddleware.Admin(), h.Tag.CreateTag)
				tags.PUT("/:id", authMiddleware.Admin(), h.Tag.UpdateTag)
				tags.DELETE("/:id", authMiddleware.Admin(), h.Tag.DeleteTag)
			}
			admin.GET("/units", authMiddleware.Admin(), h.Unit.ListUnits)
			admin.GET("/settings", authMiddleware.Admin(), h.Settings.GetSettings)
			admin.PUT("/settings", authMiddleware.Admin(), h.Settings.UpdateSettings)
			users := admin.Group("/users")
			{
				users.GET("", authMiddleware.Admin(), h.User.ListUsers)
				users.GET("/:id", authMiddleware.UserOrAdmin(), h.User.GetUser)
				users.POST("", authMiddleware.Admin(), h.User.CreateUser)
				users.PUT("/:id", authMiddleware.UserOrAdmin(), h.User.UpdateUser)
				users.DELETE("/:id", authMiddleware.Admin(), h.User.DeleteUser)
			}
			audit := admin.Group("/audit/logs")
			{
				audit.GET("", authMiddleware.Admin(), h.Audit.GetAuditLogs)
			}
			uploads := admin.Group("/uploads")
			{
				uploads.POST("", authMiddleware.Admin(), h.Upload.UploadMedia)
				uploads.DELETE("/:object", authMiddleware.Admin(), h.Upload.DeleteMedia)
			}
		}
	}
}
