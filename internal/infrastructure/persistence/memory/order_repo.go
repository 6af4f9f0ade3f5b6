package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/eshop/internal/domain/order"
)

// orderRepository 订单仓储实现(内存)
// 教学要点:
// 1. 订单和明细是聚合关系,作为整体保存(明细不单独建索引)
// 2. 订单号是业务主键,客户维度维护下单顺序索引
type orderRepository struct {
	mu         sync.RWMutex
	byOrderNo  map[string]*order.Order
	byCustomer map[uint][]string // 客户ID → 订单号(下单顺序)
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository() order.Repository {
	return &orderRepository{
		byOrderNo:  make(map[string]*order.Order),
		byCustomer: make(map[uint][]string),
	}
}

// Create 保存订单(包含明细和支付方式)
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	no := o.OrderNo()
	r.byOrderNo[no] = o

	custID := o.Customer().ID
	r.byCustomer[custID] = append(r.byCustomer[custID], no)
	return nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byOrderNo[orderNo]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

// Update 更新订单
// 进程内实现持有聚合实例,状态变更已生效;
// 这里只校验订单仍然存在(保持与数据库实现相同的契约)
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOrderNo[o.OrderNo()]; !ok {
		return order.ErrOrderNotFound
	}
	r.byOrderNo[o.OrderNo()] = o
	return nil
}

// ListByCustomerID 查询客户的订单列表(按下单顺序分页)
func (r *orderRepository) ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nos := r.byCustomer[customerID]
	total := int64(len(nos))

	start := (page - 1) * pageSize
	if start >= len(nos) {
		return []*order.Order{}, total, nil
	}
	end := start + pageSize
	if end > len(nos) {
		end = len(nos)
	}

	list := make([]*order.Order, 0, end-start)
	for _, no := range nos[start:end] {
		list = append(list, r.byOrderNo[no])
	}
	return list, total, nil
}
