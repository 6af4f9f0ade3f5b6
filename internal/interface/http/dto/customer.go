package dto

// RegisterCustomerRequest HTTP客户登记请求
type RegisterCustomerRequest struct {
	Name            string `json:"name" binding:"required,max=100" example:"张三"`
	Contact         string `json:"contact" binding:"max=50" example:"13800138000"`
	DeliveryAddress string `json:"delivery_address" binding:"max=500" example:"北京市海淀区中关村大街1号"`
	Active          *bool  `json:"active" binding:"omitempty" example:"true"` // 缺省为激活
}

// CustomerResponse HTTP客户响应
type CustomerResponse struct {
	ID              uint     `json:"id" example:"1"`
	Name            string   `json:"name" example:"张三"`
	Contact         string   `json:"contact" example:"13800138000"`
	DeliveryAddress string   `json:"delivery_address" example:"北京市海淀区中关村大街1号"`
	Active          bool     `json:"active" example:"true"`
	OrderNos        []string `json:"order_nos"` // 历史订单号(下单顺序)
	CreatedAt       string   `json:"created_at" example:"2026-01-15 10:30:00"`
}
