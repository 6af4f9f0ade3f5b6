package memory

import (
	"context"
	"sync"

	"github.com/xiebiao/eshop/internal/domain/product"
)

// productRepository 商品仓储实现(内存)
// 设计说明:
// 1. 领域模型本身是纯内存的,真正的持久化属于外部协作方——
//    仓储接口即边界,这里提供进程内实现
// 2. 读写锁保证并发宿主(多请求服务)下的独占访问,
//    领域实体自身不加锁
// 3. ID按插入顺序自增分配(业务主键语义与数据库自增一致)
type productRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]*product.Product
	order  []uint // 上架顺序
}

// NewProductRepository 创建商品仓储
func NewProductRepository() product.Repository {
	return &productRepository{
		nextID: 1,
		byID:   make(map[uint]*product.Product),
	}
}

// Create 保存商品并分配ID
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// FindByID 根据ID查找商品
// 商品不可变,直接返回实例(不存在拷贝被篡改的风险)
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

// List 分页查询商品列表(按上架顺序)
func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.order))
	start := (page - 1) * pageSize
	if start >= len(r.order) {
		return []*product.Product{}, total, nil
	}
	end := start + pageSize
	if end > len(r.order) {
		end = len(r.order)
	}

	list := make([]*product.Product, 0, end-start)
	for _, id := range r.order[start:end] {
		list = append(list, r.byID[id])
	}
	return list, total, nil
}
