package catalog

import (
	"context"
	"fmt"

	"github.com/xiebiao/eshop/internal/domain/product"
)

// PublishProductUseCase 商品上架用例
type PublishProductUseCase struct {
	productRepo product.Repository
}

// NewPublishProductUseCase 创建商品上架用例
func NewPublishProductUseCase(productRepo product.Repository) *PublishProductUseCase {
	return &PublishProductUseCase{productRepo: productRepo}
}

// PublishProductRequest 上架请求DTO
type PublishProductRequest struct {
	Title       string  // 名称
	Weight      float64 // 单件重量(千克)
	Description string  // 描述
	UnitPrice   int64   // 单价(分)
}

// ProductResponse 商品响应DTO
type ProductResponse struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Weight        float64 `json:"weight"`
	Description   string  `json:"description"`
	UnitPrice     int64   `json:"unit_price"`
	UnitPriceYuan string  `json:"unit_price_yuan"`
}

// Execute 执行上架用例
// 负数校验由领域工厂完成,这里只负责持久化和DTO转换
func (uc *PublishProductUseCase) Execute(ctx context.Context, req PublishProductRequest) (*ProductResponse, error) {
	p, err := product.New(req.Title, req.Weight, req.Description, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return ToProductResponse(p), nil
}

// ToProductResponse 领域实体 → 响应DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Title:         p.Title(),
		Weight:        p.Weight(),
		Description:   p.Description(),
		UnitPrice:     p.UnitPrice(),
		UnitPriceYuan: FormatPriceYuan(p.UnitPrice()),
	}
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
