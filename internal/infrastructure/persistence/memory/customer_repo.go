package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/eshop/internal/domain/customer"
)

// customerRepository 客户仓储实现(内存)
type customerRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]*customer.Customer
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository() customer.Repository {
	return &customerRepository{
		nextID: 1,
		byID:   make(map[uint]*customer.Customer),
	}
}

// Create 保存客户并分配ID
func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return nil
}

// FindByID 根据ID查找客户
// 返回聚合实例本身:客户的订单号列表由订单工厂追加,
// 仓储不做快照拷贝(进程内单一事实源)
func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return c, nil
}
