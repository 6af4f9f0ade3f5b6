package notify

import (
	"context"
	"log"

	"github.com/xiebiao/eshop/internal/domain/order"
)

// logNotifier 订单通知器的日志实现
// 设计说明:下单成功、状态流转属于领域事件,
// 真实系统会接消息队列/短信通道,这里先打日志占位
type logNotifier struct{}

// NewLogNotifier 创建日志通知器
func NewLogNotifier() order.Notifier {
	return &logNotifier{}
}

// OrderPlaced 下单成功通知
func (n *logNotifier) OrderPlaced(ctx context.Context, o *order.Order) {
	log.Printf("[通知] 订单创建成功 orderNo=%s customer=%s total=%d分 items=%d",
		o.OrderNo(), o.Customer().Name, o.TotalPrice(), len(o.Items()))
}

// OrderStatusChanged 订单状态变更通知
func (n *logNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, from, to order.OrderStatus) {
	log.Printf("[通知] 订单状态变更 orderNo=%s %s→%s", o.OrderNo(), from, to)
}
