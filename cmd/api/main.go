package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/eshop/internal/application/catalog"
	appcustomer "github.com/xiebiao/eshop/internal/application/customer"
	apporder "github.com/xiebiao/eshop/internal/application/order"
	"github.com/xiebiao/eshop/internal/infrastructure/config"
	"github.com/xiebiao/eshop/internal/infrastructure/gateway"
	"github.com/xiebiao/eshop/internal/infrastructure/notify"
	"github.com/xiebiao/eshop/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/eshop/internal/interface/http/handler"
	"github.com/xiebiao/eshop/internal/interface/http/middleware"
	"github.com/xiebiao/eshop/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire自动组装）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)

	// 2. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository/Gateway/Notifier ← UseCase ← Handler

	// 基础设施层
	productRepo := memory.NewProductRepository()
	customerRepo := memory.NewCustomerRepository()
	orderRepo := memory.NewOrderRepository()
	payGateway := gateway.NewMockGateway(cfg.Order.GatewayDelay)
	notifier := notify.NewLogNotifier()

	// 应用层
	publishProductUseCase := appcatalog.NewPublishProductUseCase(productRepo)
	listProductsUseCase := appcatalog.NewListProductsUseCase(productRepo)
	getProductUseCase := appcatalog.NewGetProductUseCase(productRepo)
	registerCustomerUseCase := appcustomer.NewRegisterCustomerUseCase(customerRepo)
	getCustomerUseCase := appcustomer.NewGetCustomerUseCase(customerRepo)
	placeOrderUseCase := apporder.NewPlaceOrderUseCase(orderRepo, customerRepo, productRepo, payGateway, notifier)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	lifecycleUseCase := apporder.NewLifecycleUseCase(orderRepo, notifier)
	listOrdersUseCase := apporder.NewListCustomerOrdersUseCase(orderRepo, customerRepo)

	// 接口层
	productHandler := handler.NewProductHandler(publishProductUseCase, listProductsUseCase, getProductUseCase)
	customerHandler := handler.NewCustomerHandler(registerCustomerUseCase, getCustomerUseCase)
	orderHandler := handler.NewOrderHandler(placeOrderUseCase, getOrderUseCase, lifecycleUseCase, listOrdersUseCase)

	// 3. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// 4. 注册路由
	registerRoutes(r, productHandler, customerHandler, orderHandler)

	// 5. 启动服务
	addr := cfg.Server.Addr()
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   商品上架: POST http://localhost%s/api/v1/products\n", addr)
	fmt.Printf("   客户登记: POST http://localhost%s/api/v1/customers\n", addr)
	fmt.Printf("   下单:     POST http://localhost%s/api/v1/orders\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 商品模块
		products := v1.Group("/products")
		{
			products.POST("", productHandler.Publish)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
		}

		// 客户模块
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Register)
			customers.GET("/:id", customerHandler.Get)
			customers.GET("/:id/orders", orderHandler.ListByCustomer)
		}

		// 订单模块
		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("/:order_no", orderHandler.Get)
			orders.POST("/:order_no/pay", orderHandler.Pay)
			orders.POST("/:order_no/ship", orderHandler.Ship)
			orders.POST("/:order_no/deliver", orderHandler.Deliver)
			orders.POST("/:order_no/cancel", orderHandler.Cancel)
		}
	}
}
