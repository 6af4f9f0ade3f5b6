package order

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/customer"
	"github.com/xiebiao/eshop/internal/domain/order"
)

// 分页默认值与上限
const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListCustomerOrdersUseCase 客户订单列表用例
type ListCustomerOrdersUseCase struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
}

// NewListCustomerOrdersUseCase 创建客户订单列表用例
func NewListCustomerOrdersUseCase(
	orderRepo order.Repository,
	customerRepo customer.Repository,
) *ListCustomerOrdersUseCase {
	return &ListCustomerOrdersUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// ListCustomerOrdersRequest 列表请求DTO
type ListCustomerOrdersRequest struct {
	CustomerID uint
	Page       int
	PageSize   int
}

// ListCustomerOrdersResponse 列表响应DTO
type ListCustomerOrdersResponse struct {
	List  []*OrderResponse `json:"list"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

// Execute 查询客户的订单列表(按下单顺序)
func (uc *ListCustomerOrdersUseCase) Execute(ctx context.Context, req ListCustomerOrdersRequest) (*ListCustomerOrdersResponse, error) {
	// 客户必须存在(不存在返回ErrCustomerNotFound而非空列表)
	if _, err := uc.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

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

	orders, total, err := uc.orderRepo.ListByCustomerID(ctx, req.CustomerID, page, pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = ToOrderResponse(o)
	}

	return &ListCustomerOrdersResponse{
		List:  list,
		Total: total,
		Page:  page,
		Size:  pageSize,
	}, nil
}
