package customer

import (
	"time"
)

// Customer 客户实体(聚合根)
// DDD设计说明:
// 1. 客户独立于任何订单创建,被订单引用但不拥有订单生命周期
// 2. 客户对订单只持有"订单号"反向引用,不持有订单对象:
//    跨聚合引用只存业务主键,避免悬垂引用和包级循环依赖
// 3. orderNos私有:追加只能经过RecordOrder,保证"登记过的订单
//    确实属于该客户"这一不变量(由订单工厂调用)
type Customer struct {
	ID              uint   // 客户ID(仓储分配)
	Name            string // 姓名
	Contact         string // 联系电话
	DeliveryAddress string // 邮寄地址
	Active          bool   // 是否激活
	CreatedAt       time.Time

	orderNos []string // 已下订单的订单号(按下单顺序)
}

// New 创建客户(工厂方法)
// 业务规则:无(姓名/联系方式/地址不做格式校验,与历史模型一致)
func New(name, contact, deliveryAddress string, active bool) *Customer {
	return &Customer{
		Name:            name,
		Contact:         contact,
		DeliveryAddress: deliveryAddress,
		Active:          active,
		CreatedAt:       time.Now(),
	}
}

// RecordOrder 登记一笔订单的订单号
// 说明:仅供订单工厂在创建成功后调用,不作为任意调用方的公开变更入口;
// 空订单号直接忽略(历史模型对nil订单的处理方式)
func (c *Customer) RecordOrder(orderNo string) {
	if orderNo == "" {
		return
	}
	c.orderNos = append(c.orderNos, orderNo)
}

// OrderNos 已下订单的订单号(只读副本,保持下单顺序)
func (c *Customer) OrderNos() []string {
	nos := make([]string, len(c.orderNos))
	copy(nos, c.orderNos)
	return nos
}

// OrderCount 已下订单数
func (c *Customer) OrderCount() int {
	return len(c.orderNos)
}
