package order

import (
	"fmt"

	"github.com/xiebiao/eshop/internal/domain/order"
)

// OrderResponse 订单响应DTO
type OrderResponse struct {
	OrderNo       string              `json:"order_no"`
	CustomerID    uint                `json:"customer_id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Amount        int64               `json:"amount"`
	AmountYuan    string              `json:"amount_yuan"`
	Total         int64               `json:"total"`
	TotalYuan     string              `json:"total_yuan"`
	TotalWeight   float64             `json:"total_weight"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     string              `json:"created_at"`
}

// OrderItemResponse 订单明细响应DTO
type OrderItemResponse struct {
	ProductID    uint    `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	Subtotal     int64   `json:"subtotal"`
	SubtotalYuan string  `json:"subtotal_yuan"`
	Weight       float64 `json:"weight"`
}

// ToOrderResponse 领域聚合 → 响应DTO
func ToOrderResponse(o *order.Order) *OrderResponse {
	domainItems := o.Items()
	items := make([]OrderItemResponse, len(domainItems))
	for i, item := range domainItems {
		items[i] = OrderItemResponse{
			ProductID:    item.Product().ID,
			ProductTitle: item.Product().Title(),
			Quantity:     item.Quantity(),
			Subtotal:     item.Subtotal(),
			SubtotalYuan: formatPrice(item.Subtotal()),
			Weight:       item.Weight(),
		}
	}

	return &OrderResponse{
		OrderNo:       o.OrderNo(),
		CustomerID:    o.Customer().ID,
		Status:        o.Status().String(),
		PaymentMethod: o.Payment().Method().Code(),
		Amount:        o.Payment().Amount(),
		AmountYuan:    formatPrice(o.Payment().Amount()),
		Total:         o.TotalPrice(),
		TotalYuan:     formatPrice(o.TotalPrice()),
		TotalWeight:   o.TotalWeight(),
		Items:         items,
		CreatedAt:     o.CreatedAt().Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
