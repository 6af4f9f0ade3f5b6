package order

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/order"
)

// LifecycleUseCase 订单生命周期用例
// 支付/发货/送达/取消共用同一套流程:
// 按订单号加载 → 驱动领域状态机 → 回写 → 通知
type LifecycleUseCase struct {
	orderRepo order.Repository
	notifier  order.Notifier
}

// NewLifecycleUseCase 创建生命周期用例
func NewLifecycleUseCase(orderRepo order.Repository, notifier order.Notifier) *LifecycleUseCase {
	return &LifecycleUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

// Pay 支付订单
func (uc *LifecycleUseCase) Pay(ctx context.Context, orderNo string) (*OrderResponse, error) {
	return uc.transition(ctx, orderNo, (*order.Order).Pay)
}

// Ship 发货
func (uc *LifecycleUseCase) Ship(ctx context.Context, orderNo string) (*OrderResponse, error) {
	return uc.transition(ctx, orderNo, (*order.Order).Ship)
}

// Deliver 确认送达
func (uc *LifecycleUseCase) Deliver(ctx context.Context, orderNo string) (*OrderResponse, error) {
	return uc.transition(ctx, orderNo, (*order.Order).Deliver)
}

// Cancel 取消订单
func (uc *LifecycleUseCase) Cancel(ctx context.Context, orderNo string) (*OrderResponse, error) {
	return uc.transition(ctx, orderNo, (*order.Order).Cancel)
}

// transition 统一的状态驱动流程
// 教学要点:
// 1. 状态规则全部在领域层,这里不出现任何if status判断
// 2. 非法转换由状态机拒绝并原样返回给调用方,订单保持原状态
func (uc *LifecycleUseCase) transition(
	ctx context.Context,
	orderNo string,
	action func(*order.Order) error,
) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	from := o.Status()
	if err := action(o); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.notifier.OrderStatusChanged(ctx, o, from, o.Status())

	return ToOrderResponse(o), nil
}
