package routes

import (
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/controllers"
	"github.com/artcocktail/artcocktail/app/repositories"
	"github.com/artcocktail/artcocktail/app/services"
	"github.com/artcocktail/artcocktail/pkg/middleware"
	"github.com/artcocktail/artcocktail/pkg/rbac"
	"github.com/artcocktail/artcocktail/pkg/router"
	"github.com/artcocktail/artcocktail/pkg/storage"
)

// RegisterAPI wires the storefront under /api.
func RegisterAPI(r *router.Router, db *gorm.DB, disk storage.Disk) {
	users := repositories.NewUserRepository(db)
	artworks := repositories.NewArtworkRepository(db)
	orders := repositories.NewOrderRepository(db)

	authController := controllers.NewAuthController(services.NewAuthService(users))
	artworkController := controllers.NewArtworkController(services.NewCatalogService(artworks, disk))
	orderController := controllers.NewOrderController(services.NewOrderService(orders, users, artworks))
	healthController := controllers.NewHealthController(db)

	api := r.Group("/api")
	api.Get("/health", "health.check", healthController.Check)

	api.Post("/auth/register", "auth.register", authController.Register)
	api.Post("/auth/login", "auth.login", authController.Login)

	api.Get("/artworks", "artworks.index", artworkController.List)
	api.Get("/artworks/{id}", "artworks.show", artworkController.Get)

	auth := middleware.Auth(func(id uint) (middleware.AuthUser, error) {
		user, err := users.FindByID(id)
		if err != nil {
			return middleware.AuthUser{}, err
		}
		return middleware.AuthUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
	})

	protected := api.Group("", auth)
	protected.Get("/auth/profile", "auth.profile", authController.Profile)
	protected.Post("/orders", "orders.place", orderController.Place)
	protected.Get("/orders/my", "orders.mine", orderController.My)

	admin := api.Group("", auth, rbac.RequireAdmin)
	admin.Post("/artworks", "artworks.store", artworkController.Create)
	admin.Put("/artworks/{id}", "artworks.update", artworkController.Update)
	admin.Delete("/artworks/{id}", "artworks.destroy", artworkController.Delete)
	admin.Get("/orders", "orders.index", orderController.All)
	admin.Put("/orders/{id}/status", "orders.status", orderController.SetStatus)
	admin.Delete("/orders/{id}", "orders.destroy", orderController.Delete)
}
