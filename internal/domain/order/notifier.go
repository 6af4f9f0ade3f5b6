package order

import (
	"context"
)

// Notifier 通知服务协作方接口
// 设计说明:
// 1. 通知(短信/邮件/站内信)发生在核心之外,这里只定义边界
// 2. 通知失败不影响订单操作本身——实现方自行记录,不回传错误
type Notifier interface {
	// OrderPlaced 下单成功后通知
	OrderPlaced(ctx context.Context, o *Order)

	// OrderStatusChanged 状态变更后通知
	OrderStatusChanged(ctx context.Context, o *Order, from, to OrderStatus)
}
