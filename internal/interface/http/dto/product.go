package dto

import "fmt"

// PublishProductRequest HTTP上架请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type PublishProductRequest struct {
	Title       string  `json:"title" binding:"required,max=200" example:"保温杯"`
	Weight      float64 `json:"weight" binding:"min=0" example:"0.35"` // 单件重量(千克)
	Description string  `json:"description" binding:"max=5000" example:"316不锈钢保温杯500ml"`
	UnitPrice   int64   `json:"unit_price" binding:"required,min=1,max=99999999" example:"5900"` // 单价(分),59.00元
}

// ProductResponse HTTP商品响应
type ProductResponse struct {
	ID            uint    `json:"id" example:"1"`
	Title         string  `json:"title" example:"保温杯"`
	Weight        float64 `json:"weight" example:"0.35"`
	Description   string  `json:"description" example:"316不锈钢保温杯500ml"`
	UnitPrice     int64   `json:"unit_price" example:"5900"`       // 单价(分)
	UnitPriceYuan string  `json:"unit_price_yuan" example:"59.00"` // 单价(元),方便前端显示
}

// ListProductsRequest HTTP商品列表请求
type ListProductsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// ListProductsResponse HTTP商品列表响应
type ListProductsResponse struct {
	List  []ProductResponse `json:"list"`
	Total int64             `json:"total" example:"100"`
	Page  int               `json:"page" example:"1"`
	Size  int               `json:"size" example:"20"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
