package catalog

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/product"
)

// GetProductUseCase 商品详情用例
type GetProductUseCase struct {
	productRepo product.Repository
}

// NewGetProductUseCase 创建商品详情用例
func NewGetProductUseCase(productRepo product.Repository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute 根据ID查询商品
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*ProductResponse, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}
