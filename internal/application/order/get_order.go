package order

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/order"
)

// GetOrderUseCase 订单查询用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 根据订单号查询订单
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderNo string) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}
