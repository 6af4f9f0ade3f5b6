package order

import (
	"time"

	"github.com/xiebiao/eshop/internal/domain/customer"
	"github.com/xiebiao/eshop/internal/domain/payment"
)

// OrderStatus 订单状态
// 教学要点:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 从1开始而非0:0是Go的零值,容易与"未设置"混淆
// 3. 状态值1-5递增,便于理解流转方向
type OrderStatus int

const (
	OrderStatusCreated   OrderStatus = 1 // 已创建
	OrderStatusPaid      OrderStatus = 2 // 已支付
	OrderStatusShipping  OrderStatus = 3 // 配送中
	OrderStatusDelivered OrderStatus = 4 // 已送达
	OrderStatusCancelled OrderStatus = 5 // 已取消
)

// String 实现Stringer接口(方便日志输出)
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "已创建"
	case OrderStatusPaid:
		return "已支付"
	case OrderStatusShipping:
		return "配送中"
	case OrderStatusDelivered:
		return "已送达"
	case OrderStatusCancelled:
		return "已取消"
	default:
		return "未知状态"
	}
}

// Order 订单实体(聚合根)
// DDD设计说明:
// 1. Order是聚合根:独占拥有订单明细和支付方式,所有变更经过聚合根
// 2. 对客户是非拥有引用(客户生命周期独立于订单)
// 3. 字段全部私有:状态只能经过状态机方法变更,明细只能经过AddLineItem
//    追加,不存在可观察的半初始化状态
//
// 所有权关系:
// - Order → LineItem: 组合(明细不能脱离订单存在,不能跨订单共享)
// - Order → Payment:  组合(每单一个支付方式,创建后不可替换)
// - Order → Customer: 聚合(引用,不拥有)
// - Customer → Order: 订单号反向引用(见customer包)
type Order struct {
	orderNo   string
	createdAt time.Time
	status    OrderStatus
	customer  *customer.Customer
	payment   payment.Payment
	items     []LineItem
}

// New 创建订单(工厂方法)
// 业务规则:
// 1. 客户和支付方式都不允许缺失,缺失则订单根本不会产生
// 2. 初始状态为"已创建",创建时间取当前时间
// 3. 创建成功后在工厂内登记到客户的订单号列表——
//    校验全部通过后才登记,失败的构造不会触碰客户对象
func New(cust *customer.Customer, pay payment.Payment) (*Order, error) {
	if cust == nil {
		return nil, ErrNilCustomer
	}
	if pay == nil {
		return nil, ErrNilPayment
	}

	o := &Order{
		orderNo:   GenerateOrderNo(),
		createdAt: time.Now(),
		status:    OrderStatusCreated,
		customer:  cust,
		payment:   pay,
	}
	cust.RecordOrder(o.orderNo)
	return o, nil
}

// OrderNo 订单号(业务主键,全局唯一)
func (o *Order) OrderNo() string { return o.orderNo }

// CreatedAt 创建时间
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Status 当前状态
func (o *Order) Status() OrderStatus { return o.status }

// Customer 下单客户(非拥有引用)
func (o *Order) Customer() *customer.Customer { return o.customer }

// Payment 支付方式(订单独占)
func (o *Order) Payment() payment.Payment { return o.payment }

// AddLineItem 追加订单明细
// 明细数量不设上限(上限属于应用层策略,见application/order)
func (o *Order) AddLineItem(item LineItem) {
	o.items = append(o.items, item)
}

// Items 订单明细(只读副本,保持追加顺序)
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice 订单总金额(分)
// 按明细小计实时累加
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// TotalWeight 订单总重量(千克)
func (o *Order) TotalWeight() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Weight()
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定客户
func (o *Order) IsOwnedBy(customerID uint) bool {
	return o.customer != nil && o.customer.ID == customerID
}

// =========================================
// 状态机
// =========================================

// transitions 合法的状态转换规则
// 教学要点:状态机设计,防止非法状态跳转
// 已创建→已支付/已取消,已支付→配送中/已取消(退款),
// 配送中→已送达;已送达和已取消是终态
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:  {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// CanTransitionTo 检查是否可以转换到目标状态
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	allowed, exists := transitions[o.status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
// 教学要点:
// 1. 先校验再修改,失败时订单保持原状态
// 2. 错误信息携带当前状态和目标状态,便于调用方定位
// 3. 没有绕过状态机的SetStatus——非法跳转在编译期就找不到入口
func (o *Order) TransitionTo(target OrderStatus) error {
	if !o.CanTransitionTo(target) {
		return errInvalidTransition(o.status, target)
	}
	o.status = target
	return nil
}

// Pay 支付订单(领域行为)
func (o *Order) Pay() error {
	return o.TransitionTo(OrderStatusPaid)
}

// Ship 发货(领域行为)
func (o *Order) Ship() error {
	return o.TransitionTo(OrderStatusShipping)
}

// Deliver 确认送达(领域行为)
func (o *Order) Deliver() error {
	return o.TransitionTo(OrderStatusDelivered)
}

// Cancel 取消订单(领域行为)
// 业务规则:只有已创建和已支付的订单可以取消
func (o *Order) Cancel() error {
	return o.TransitionTo(OrderStatusCancelled)
}

// IsTerminal 是否处于终态
func (o *Order) IsTerminal() bool {
	return o.status == OrderStatusDelivered || o.status == OrderStatusCancelled
}
