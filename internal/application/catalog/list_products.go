package catalog

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/product"
)

// 分页默认值与上限
const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListProductsUseCase 商品列表用例
type ListProductsUseCase struct {
	productRepo product.Repository
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(productRepo product.Repository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// ListProductsRequest 列表请求DTO
type ListProductsRequest struct {
	Page     int
	PageSize int
}

// ListProductsResponse 列表响应DTO
type ListProductsResponse struct {
	List  []*ProductResponse `json:"list"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// Execute 执行列表查询
// 分页参数规范化:页码<1取1,页大小越界取默认/上限
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	products, total, err := uc.productRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*ProductResponse, len(products))
	for i, p := range products {
		list[i] = ToProductResponse(p)
	}

	return &ListProductsResponse{
		List:  list,
		Total: total,
		Page:  page,
		Size:  pageSize,
	}, nil
}
