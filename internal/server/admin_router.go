package server

import (
	"strconv"
	"time"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/lukpoex/next-commerce/internal/auth"
	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/datamodels/category"
	"github.com/lukpoex/next-commerce/internal/datamodels/order"
	"github.com/lukpoex/next-commerce/internal/datamodels/product"
	"github.com/lukpoex/next-commerce/internal/datamodels/user"
	"github.com/lukpoex/next-commerce/internal/infra/mq"
	"github.com/lukpoex/next-commerce/internal/infra/redis"
	"github.com/lukpoex/next-commerce/internal/middleware"
	"github.com/lukpoex/next-commerce/internal/repository/mysql"
	"github.com/lukpoex/next-commerce/internal/service"
	"github.com/lukpoex/next-commerce/internal/storage"
)

// productRequest is the admin create payload.
type productRequest struct {
	Brand         string `json:"brand"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Desc          string `json:"desc"`
	Color         string `json:"color"`
	Price         int64  `json:"price"`
	DiscountPrice *int64 `json:"discountPrice"`
	Quantity      int    `json:"quantity"`
	CategoryID    int64  `json:"categoryId"`
	SubcategoryID int64  `json:"subcategoryId"`
	Variants      []struct {
		Name     string `json:"name"`
		Value    string `json:"value"`
		Quantity int    `json:"quantity"`
	} `json:"variants"`
}

func (r *productRequest) toProduct() *product.Product {
	p := &product.Product{
		Brand:         r.Brand,
		Name:          r.Name,
		Slug:          r.Slug,
		Desc:          r.Desc,
		Color:         r.Color,
		CurrentPrice:  r.Price,
		DiscountPrice: r.DiscountPrice,
		TotalQuantity: r.Quantity,
		CategoryID:    r.CategoryID,
		SubcategoryID: r.SubcategoryID,
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, product.Variant{
			Name:     v.Name,
			Value:    v.Value,
			Quantity: v.Quantity,
		})
	}
	return p
}

// orderSummary is the dashboard order row. The total keeps its historical
// text shape on the wire.
type orderSummary struct {
	OrderID         int64        `json:"orderId"`
	OrderDate       time.Time    `json:"orderDate"`
	OrderStatus     order.Status `json:"orderStatus"`
	OrderTotal      string       `json:"orderTotal"`
	DeliveryAddress string       `json:"deliveryAddress"`
	DeliveryContact string       `json:"deliveryContact"`
}

func toOrderSummaries(list []*order.Order) []orderSummary {
	out := make([]orderSummary, 0, len(list))
	for _, o := range list {
		out = append(out, orderSummary{
			OrderID:         o.ID,
			OrderDate:       o.Date,
			OrderStatus:     o.Status,
			OrderTotal:      o.TotalString(),
			DeliveryAddress: o.DeliveryAddress,
			DeliveryContact: o.DeliveryContact,
		})
	}
	return out
}

// RegisterAdminRoutes mounts the dashboard API, usually on its own port.
// Every endpoint requires an ADMIN bearer token.
func RegisterAdminRoutes(app *iris.Application, cfg *config.Config, logger *zap.Logger) {
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)

	store := storage.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxFileSizeBytes)
	events := mq.NewPublisher(mqConn, logger)

	productSvc := service.NewProductService(productRepo, store, events, logger)
	dashboardSvc := service.NewDashboardService(userRepo, productRepo, orderRepo, nil, logger)

	ring := auth.NewConsistentHashRing(cfg.Auth.Nodes, cfg.Auth.HashReplicas)
	tokenCache := auth.NewTokenCache(redisClient, ring, time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	api := app.Party("/api", requireAuth(&cfg.JWT, tokenCache), requireRole(user.RoleAdmin))

	// ---------- dashboard reads ----------

	api.Get("/dashboard/statistics", func(ctx iris.Context) {
		ctx.JSON(dashboardSvc.Statistics(ctx.Request().Context()))
	})

	api.Get("/dashboard/orders", func(ctx iris.Context) {
		f := order.ParseFilter(ctx.Request().URL.Query())
		list, total := dashboardSvc.Orders(ctx.Request().Context(), f)
		ctx.JSON(iris.Map{
			"totalOrders": total,
			"pageSize":    order.PageSize,
			"pageNumber":  f.Page,
			"orders":      toOrderSummaries(list),
		})
	})

	// ---------- product management ----------

	api.Post("/products/create", func(ctx iris.Context) {
		var req productRequest
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p := req.toProduct()
		if err := productSvc.Create(ctx.Request().Context(), p); err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(p)
	})

	api.Post("/products/delete", func(ctx iris.Context) {
		var req struct {
			ProductID int64 `json:"productId"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := productSvc.Delete(ctx.Request().Context(), req.ProductID); err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{"message": "Product successfully deleted."})
	})

	api.Post("/products/image/upload", middleware.UploadRateLimit(), func(ctx iris.Context) {
		if err := ctx.Request().ParseMultipartForm(32 << 20); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		productID, err := strconv.ParseInt(ctx.FormValue("productId"), 10, 64)
		if err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": "invalid productId"})
			return
		}
		files := ctx.Request().MultipartForm.File["images"]
		images, err := productSvc.UploadImages(ctx.Request().Context(), productID, ctx.FormValue("productName"), files)
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(iris.Map{
			"message": "Product images uploaded successfully.",
			"images":  images,
		})
	})

	// ---------- categories ----------

	api.Post("/categories/create", func(ctx iris.Context) {
		var req struct {
			Name        string `json:"name"`
			Subcategory bool   `json:"subcategory"`
		}
		if err := ctx.ReadJSON(&req); err != nil || req.Name == "" {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": "name is required"})
			return
		}
		reqCtx := ctx.Request().Context()
		if req.Subcategory {
			s := &category.Subcategory{Name: req.Name}
			if err := categoryRepo.CreateSubcategory(reqCtx, s); err != nil {
				writeError(ctx, err)
				return
			}
			ctx.JSON(s)
			return
		}
		c := &category.Category{Name: req.Name}
		if err := categoryRepo.CreateCategory(reqCtx, c); err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(c)
	})
}
