package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swisstravel/cmd/fx/assistant_fx"
	"swisstravel/cmd/fx/catalog_fx"
	"swisstravel/cmd/fx/db_fx"
	"swisstravel/cmd/fx/wishlist_fx"
	"swisstravel/internal/api/controllers"
	"swisstravel/internal/infra"
	"swisstravel/internal/services"
	"swisstravel/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		wishlist_fx.Module,
		assistant_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RegisterDBClose),
		fx.Invoke(StartBackfill),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RegisterDBClose(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

// StartBackfill fills missing catalog embeddings in the background so a slow
// embedding provider cannot hold up serving traffic.
func StartBackfill(lc fx.Lifecycle, backfill services.BackfillServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go backfill.EnsureEmbeddings(context.Background())
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	chatController *controllers.ChatController,
	wishlistController *controllers.WishlistController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController, wishlistController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	wishlistController *controllers.WishlistController) {

	api := r.Group("/api")
	api.POST("/chat", chatController.Chat)
	api.GET("/chat", chatController.ChatQuery)
	api.GET("/wishlist", wishlistController.GetWishlist)
	api.GET("/wishlist/details", wishlistController.GetWishlistDetails)
	api.DELETE("/wishlist", wishlistController.ClearWishlist)
}
