package server

import (
	"time"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/lukpoex/next-commerce/internal/auth"
	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/infra/mq"
	"github.com/lukpoex/next-commerce/internal/infra/redis"
	"github.com/lukpoex/next-commerce/internal/repository/mysql"
	"github.com/lukpoex/next-commerce/internal/service"
	"github.com/lukpoex/next-commerce/internal/storage"
)

// RegisterRoutes mounts the storefront API.
func RegisterRoutes(app *iris.Application, cfg *config.Config, logger *zap.Logger) {
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)

	store := storage.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxFileSizeBytes)
	events := mq.NewPublisher(mqConn, logger)

	userSvc := service.NewUserService(userRepo, &cfg.JWT)
	productSvc := service.NewProductService(productRepo, store, events, logger)

	ring := auth.NewConsistentHashRing(cfg.Auth.Nodes, cfg.Auth.HashReplicas)
	tokenCache := auth.NewTokenCache(redisClient, ring, time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	api := app.Party("/api")

	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "msg": "ok"})
	})

	api.Post("/register", func(ctx iris.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		u, err := userSvc.Register(ctx.Request().Context(), req.Email, req.Password)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(u)
	})

	api.Post("/login", func(ctx iris.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		token, err := userSvc.Login(ctx.Request().Context(), req.Email, req.Password)
		if err != nil {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"token": token})
	})

	authAPI := api.Party("/", requireAuth(&cfg.JWT, tokenCache))

	// Product listing: filters are parsed leniently, composed as a logical
	// AND, and paginated at a fixed page size of 20.
	authAPI.Get("/products", func(ctx iris.Context) {
		f := product.ParseFilter(ctx.Request().URL.Query())
		list, total := productSvc.List(ctx.Request().Context(), f)
		ctx.JSON(iris.Map{
			"totalProducts": total,
			"pageSize":      product.PageSize,
			"pageNumber":    f.Page,
			"products":      list,
		})
	})

	authAPI.Get("/products/{slug}", func(ctx iris.Context) {
		p, err := productSvc.GetBySlug(ctx.Request().Context(), ctx.Params().Get("slug"))
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(p)
	})

	// Filter metadata for the storefront sidebar.
	authAPI.Get("/categories", func(ctx iris.Context) {
		reqCtx := ctx.Request().Context()
		categories, err := categoryRepo.ListCategories(reqCtx)
		if err != nil {
			logger.Error("category list failed", zap.Error(err))
		}
		subcategories, err := categoryRepo.ListSubcategories(reqCtx)
		if err != nil {
			logger.Error("subcategory list failed", zap.Error(err))
		}
		ctx.JSON(iris.Map{
			"categories":    categories,
			"subcategories": subcategories,
		})
	})

	authAPI.Post("/favorites/add/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		if err := productSvc.AddFavorite(ctx.Request().Context(), id, currentUserID(ctx)); err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"message": "Product added to favorites."})
	})

	authAPI.Post("/favorites/delete/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		if err := productSvc.RemoveFavorite(ctx.Request().Context(), id, currentUserID(ctx)); err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"message": "Product removed from favorites."})
	})
}
