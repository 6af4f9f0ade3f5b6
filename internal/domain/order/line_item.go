package order

import (
	"github.com/xiebiao/eshop/internal/domain/product"
)

// LineItem 订单明细(值对象)
// 教学要点:
// 1. 不是独立聚合根,必须通过Order访问,不能脱离订单存在
// 2. 对商品是非拥有引用:商品目录独立于订单生命周期
// 3. 小计/重量按商品单价实时推导,不做冗余存储——
//    商品不可变,推导结果天然稳定
type LineItem struct {
	quantity int
	product  *product.Product
}

// NewLineItem 创建订单明细
// 业务规则:商品引用不允许缺失
// 注意:quantity > 0不在这里强制(与历史模型一致),
// 数量校验属于应用层下单边界,见application/order
func NewLineItem(quantity int, p *product.Product) (LineItem, error) {
	if p == nil {
		return LineItem{}, ErrNilProduct
	}
	return LineItem{quantity: quantity, product: p}, nil
}

// Quantity 购买数量
func (li LineItem) Quantity() int { return li.quantity }

// Product 关联商品(非拥有引用)
func (li LineItem) Product() *product.Product { return li.product }

// Subtotal 明细小计(分)
func (li LineItem) Subtotal() int64 {
	return li.product.PriceFor(li.quantity)
}

// Weight 明细总重量(千克)
func (li LineItem) Weight() float64 {
	return li.product.WeightFor(li.quantity)
}
