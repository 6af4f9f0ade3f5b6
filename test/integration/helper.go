package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/xiebiao/eshop/internal/application/catalog"
	appcustomer "github.com/xiebiao/eshop/internal/application/customer"
	apporder "github.com/xiebiao/eshop/internal/application/order"
	"github.com/xiebiao/eshop/internal/infrastructure/gateway"
	"github.com/xiebiao/eshop/internal/infrastructure/notify"
	"github.com/xiebiao/eshop/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/eshop/internal/interface/http/handler"
	"github.com/xiebiao/eshop/pkg/response"
)

// 教学说明：测试辅助工具
// 集成测试在进程内组装完整应用(与cmd/api相同的依赖链),
// 通过httptest走真实的HTTP编解码路径,不依赖外部服务

const (
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Weight        float64 `json:"weight"`
	Description   string  `json:"description"`
	UnitPrice     int64   `json:"unit_price"`
	UnitPriceYuan string  `json:"unit_price_yuan"`
}

// CustomerData 客户响应数据
type CustomerData struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	DeliveryAddress string   `json:"delivery_address"`
	Active          bool     `json:"active"`
	OrderNos        []string `json:"order_nos"`
}

// OrderData 订单响应数据
type OrderData struct {
	OrderNo       string          `json:"order_no"`
	CustomerID    uint            `json:"customer_id"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Amount        int64           `json:"amount"`
	AmountYuan    string          `json:"amount_yuan"`
	Total         int64           `json:"total"`
	TotalYuan     string          `json:"total_yuan"`
	TotalWeight   float64         `json:"total_weight"`
	Items         []OrderItemData `json:"items"`
}

// OrderItemData 订单明细响应数据
type OrderItemData struct {
	ProductID    uint    `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	Subtotal     int64   `json:"subtotal"`
	SubtotalYuan string  `json:"subtotal_yuan"`
	Weight       float64 `json:"weight"`
}

// ListData 分页列表响应数据
type ListData struct {
	List  json.RawMessage `json:"list"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
}

// NewTestServer 进程内组装完整应用并启动测试服务器
// 依赖链与cmd/api/main.go一致:内存仓储 + Mock网关 + 日志通知器
func NewTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := memory.NewProductRepository()
	customerRepo := memory.NewCustomerRepository()
	orderRepo := memory.NewOrderRepository()
	payGateway := gateway.NewMockGateway(0)
	notifier := notify.NewLogNotifier()

	productHandler := handler.NewProductHandler(
		appcatalog.NewPublishProductUseCase(productRepo),
		appcatalog.NewListProductsUseCase(productRepo),
		appcatalog.NewGetProductUseCase(productRepo),
	)
	customerHandler := handler.NewCustomerHandler(
		appcustomer.NewRegisterCustomerUseCase(customerRepo),
		appcustomer.NewGetCustomerUseCase(customerRepo),
	)
	orderHandler := handler.NewOrderHandler(
		apporder.NewPlaceOrderUseCase(orderRepo, customerRepo, productRepo, payGateway, notifier),
		apporder.NewGetOrderUseCase(orderRepo),
		apporder.NewLifecycleUseCase(orderRepo, notifier),
		apporder.NewListCustomerOrdersUseCase(orderRepo, customerRepo),
	)

	r := gin.New()
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.POST("", productHandler.Publish)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
		}
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Register)
			customers.GET("/:id", customerHandler.Get)
			customers.GET("/:id/orders", orderHandler.ListByCustomer)
		}
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

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

// PostJSON 发送POST请求并解析统一响应
func PostJSON(t *testing.T, url string, body interface{}) Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "编码请求体失败")
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Post(url, "application/json", &buf)
	require.NoError(t, err, "发送POST请求失败")
	defer resp.Body.Close()

	return parseResponse(t, resp.Body)
}

// GetJSON 发送GET请求并解析统一响应
func GetJSON(t *testing.T, url string) Response {
	t.Helper()

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Get(url)
	require.NoError(t, err, "发送GET请求失败")
	defer resp.Body.Close()

	return parseResponse(t, resp.Body)
}

func parseResponse(t *testing.T, body io.Reader) Response {
	t.Helper()

	raw, err := io.ReadAll(body)
	require.NoError(t, err, "读取响应体失败")

	var r Response
	require.NoError(t, json.Unmarshal(raw, &r), "解析响应失败: %s", string(raw))
	return r
}

// PublishTestProduct 上架一件测试商品
func PublishTestProduct(t *testing.T, baseURL, title string, weight float64, unitPrice int64) ProductData {
	t.Helper()

	resp := PostJSON(t, baseURL+"/api/v1/products", map[string]interface{}{
		"title":      title,
		"weight":     weight,
		"unit_price": unitPrice,
	})
	require.Equal(t, 0, resp.Code, "上架应该成功: %s", resp.Message)

	var data ProductData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析商品数据失败")
	return data
}

// RegisterTestCustomer 登记一名测试客户
func RegisterTestCustomer(t *testing.T, baseURL, name string) CustomerData {
	t.Helper()

	resp := PostJSON(t, baseURL+"/api/v1/customers", map[string]interface{}{
		"name":             name,
		"contact":          "13800138000",
		"delivery_address": "北京市海淀区中关村大街1号",
	})
	require.Equal(t, 0, resp.Code, "登记应该成功: %s", resp.Message)

	var data CustomerData
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析客户数据失败")
	return data
}
