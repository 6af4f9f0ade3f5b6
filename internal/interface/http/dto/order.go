package dto

// PlaceOrderRequest HTTP下单请求
type PlaceOrderRequest struct {
	CustomerID uint                  `json:"customer_id" binding:"required" example:"1"`
	Payment    PaymentRequest        `json:"payment" binding:"required"`
	Items      []PlaceOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrderItemInput 订单明细项
type PlaceOrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required" example:"1"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=999" example:"2"`
}

// PaymentRequest 支付方式描述
// method决定哪些字段生效:
// - credit: card_number / card_type / expire_date
// - cash: cash_tendered
// - wire_transfer: bank_id / bank_name
// - alipay / weixin: account_number
type PaymentRequest struct {
	Method        string `json:"method" binding:"required,oneof=credit cash wire_transfer alipay weixin" example:"alipay"`
	CardNumber    string `json:"card_number" binding:"omitempty,max=32" example:"6222021234567890"`
	CardType      string `json:"card_type" binding:"omitempty,max=32" example:"VISA"`
	ExpireDate    string `json:"expire_date" binding:"omitempty,max=16" example:"2028-06"`
	CashTendered  int64  `json:"cash_tendered" binding:"omitempty,min=0" example:"10000"` // 实收现金(分)
	BankID        string `json:"bank_id" binding:"omitempty,max=32" example:"ICBC"`
	BankName      string `json:"bank_name" binding:"omitempty,max=100" example:"中国工商银行"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=64" example:"alice@example.com"`
}

// OrderResponse HTTP订单响应
type OrderResponse struct {
	OrderNo       string              `json:"order_no" example:"ORD1768468200123456"`
	CustomerID    uint                `json:"customer_id" example:"1"`
	Status        string              `json:"status" example:"已创建"`
	PaymentMethod string              `json:"payment_method" example:"支付宝"`
	Amount        int64               `json:"amount" example:"11800"`     // 结算金额(分)
	AmountYuan    string              `json:"amount_yuan" example:"118.00"`
	Total         int64               `json:"total" example:"11800"`      // 明细合计(分)
	TotalYuan     string              `json:"total_yuan" example:"118.00"`
	TotalWeight   float64             `json:"total_weight" example:"0.7"` // 总重量(千克)
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     string              `json:"created_at" example:"2026-01-15 10:30:00"`
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	ProductID    uint    `json:"product_id" example:"1"`
	ProductTitle string  `json:"product_title" example:"保温杯"`
	Quantity     int     `json:"quantity" example:"2"`
	Subtotal     int64   `json:"subtotal" example:"11800"`
	SubtotalYuan string  `json:"subtotal_yuan" example:"118.00"`
	Weight       float64 `json:"weight" example:"0.7"`
}

// ListOrdersRequest HTTP订单列表请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// ListOrdersResponse HTTP订单列表响应
type ListOrdersResponse struct {
	List  []OrderResponse `json:"list"`
	Total int64           `json:"total" example:"3"`
	Page  int             `json:"page" example:"1"`
	Size  int             `json:"size" example:"20"`
}
