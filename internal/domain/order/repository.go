package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 订单和明细是聚合关系,必须作为整体保存
type Repository interface {
	// Create 保存订单(包含明细和支付方式)
	Create(ctx context.Context, o *Order) error

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单(主要用于状态变更后的回写)
	Update(ctx context.Context, o *Order) error

	// ListByCustomerID 查询客户的订单列表(按下单顺序分页)
	ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*Order, int64, error)
}
