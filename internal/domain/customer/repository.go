package customer

import (
	"context"
)

// Repository 客户仓储接口(依赖倒置原则)
type Repository interface {
	// Create 保存客户并分配ID
	Create(ctx context.Context, c *Customer) error

	// FindByID 根据ID查找客户
	FindByID(ctx context.Context, id uint) (*Customer, error)
}
