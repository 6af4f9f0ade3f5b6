package product

import (
	"context"
)

// Repository 商品仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体存储实现
type Repository interface {
	// Create 保存商品并分配ID
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品
	FindByID(ctx context.Context, id uint) (*Product, error)

	// List 分页查询商品列表(按上架顺序)
	List(ctx context.Context, page, pageSize int) ([]*Product, int64, error)
}
