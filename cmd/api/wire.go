//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcatalog "github.com/xiebiao/eshop/internal/application/catalog"
	appcustomer "github.com/xiebiao/eshop/internal/application/customer"
	apporder "github.com/xiebiao/eshop/internal/application/order"
	"github.com/xiebiao/eshop/internal/domain/payment"
	"github.com/xiebiao/eshop/internal/infrastructure/config"
	"github.com/xiebiao/eshop/internal/infrastructure/gateway"
	"github.com/xiebiao/eshop/internal/infrastructure/notify"
	"github.com/xiebiao/eshop/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/eshop/internal/interface/http/handler"
	"github.com/xiebiao/eshop/internal/interface/http/middleware"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、仓储、支付网关、通知器
var infrastructureSet = wire.NewSet(
	config.Load,                  // 加载配置文件
	memory.NewProductRepository,  // 商品仓储
	memory.NewCustomerRepository, // 客户仓储
	memory.NewOrderRepository,    // 订单仓储
	provideGateway,               // Mock支付网关（需要从config提取参数）
	notify.NewLogNotifier,        // 日志通知器
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appcatalog.NewPublishProductUseCase,     // 商品上架用例
	appcatalog.NewListProductsUseCase,       // 商品列表用例
	appcatalog.NewGetProductUseCase,         // 商品详情用例
	appcustomer.NewRegisterCustomerUseCase,  // 客户登记用例
	appcustomer.NewGetCustomerUseCase,       // 客户详情用例
	apporder.NewPlaceOrderUseCase,           // 下单用例
	apporder.NewGetOrderUseCase,             // 订单详情用例
	apporder.NewLifecycleUseCase,            // 订单状态流转用例
	apporder.NewListCustomerOrdersUseCase,   // 客户订单列表用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewProductHandler,  // 商品处理器
	handler.NewCustomerHandler, // 客户处理器
	handler.NewOrderHandler,    // 订单处理器
)

// provideGateway 从配置创建Mock支付网关
// 教学要点：config.Config包含多个字段，Wire无法自动知道
// 如何提取GatewayDelay参数，所以需要手动编写Provider
func provideGateway(cfg *config.Config) payment.Gateway {
	return gateway.NewMockGateway(cfg.Order.GatewayDelay)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册需要所有Handler，Wire会自动注入这些依赖
func provideGinEngine(
	cfg *config.Config,
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 业务路由与main.go共用同一份注册函数(含/ping健康检查)
	registerRoutes(r, productHandler, customerHandler, orderHandler)
	return r
}

// InitializeApp 初始化整个应用
//
// wire.Build告诉Wire需要哪些Provider来构建*gin.Engine，
// Wire会在编译期分析依赖关系，生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
