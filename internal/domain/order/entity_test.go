package order

import (
	"strings"
	"testing"

	"github.com/xiebiao/eshop/internal/domain/customer"
	"github.com/xiebiao/eshop/internal/domain/payment"
	"github.com/xiebiao/eshop/internal/domain/product"
	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// 测试辅助:构造合法的客户和支付方式
func newTestCustomer() *customer.Customer {
	return customer.New("Alice", "555-1111", "1 Main St", true)
}

func newTestPayment(t *testing.T, amount int64) payment.Payment {
	t.Helper()
	p, err := payment.NewCash(amount, amount+1000)
	if err != nil {
		t.Fatalf("创建支付方式失败: %v", err)
	}
	return p
}

func newTestProduct(t *testing.T, unitPrice int64, weight float64) *product.Product {
	t.Helper()
	p, err := product.New("Widget", weight, "x", unitPrice)
	if err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	return p
}

// TestNew 测试订单创建与客户登记
func TestNew(t *testing.T) {
	cust := newTestCustomer()
	pay := newTestPayment(t, 3000)

	o, err := New(cust, pay)
	if err != nil {
		t.Fatalf("期望创建成功,实际失败: %v", err)
	}

	// 初始状态为已创建
	if o.Status() != OrderStatusCreated {
		t.Errorf("期望初始状态为已创建,实际%s", o.Status())
	}
	if o.CreatedAt().IsZero() {
		t.Error("创建时间不应该为零值")
	}
	if !strings.HasPrefix(o.OrderNo(), "ORD") {
		t.Errorf("订单号格式不符: %s", o.OrderNo())
	}

	// 双向关联:订单→客户引用,客户→订单号反向引用(恰好一次)
	if o.Customer() != cust {
		t.Error("订单应该引用下单客户")
	}
	count := 0
	for _, no := range cust.OrderNos() {
		if no == o.OrderNo() {
			count++
		}
	}
	if count != 1 {
		t.Errorf("客户的订单号列表应该恰好包含该订单1次,实际%d次", count)
	}

	// 支付方式归属订单
	if o.Payment().Amount() != 3000 {
		t.Errorf("期望支付金额3000,实际%d", o.Payment().Amount())
	}
}

// TestNew_MissingReferences 测试缺失引用时构造失败
func TestNew_MissingReferences(t *testing.T) {
	cust := newTestCustomer()
	pay := newTestPayment(t, 1000)

	t.Run("缺少客户", func(t *testing.T) {
		o, err := New(nil, pay)
		if err != ErrNilCustomer {
			t.Errorf("期望ErrNilCustomer,实际%v", err)
		}
		if o != nil {
			t.Error("构造失败时不应该返回订单实例")
		}
	})

	t.Run("缺少支付方式", func(t *testing.T) {
		o, err := New(cust, nil)
		if err != ErrNilPayment {
			t.Errorf("期望ErrNilPayment,实际%v", err)
		}
		if o != nil {
			t.Error("构造失败时不应该返回订单实例")
		}
		// 失败的构造不触碰客户:订单号列表保持为空
		if cust.OrderCount() != 0 {
			t.Errorf("构造失败不应该登记到客户,实际登记了%d笔", cust.OrderCount())
		}
	})
}

// TestNewLineItem 测试订单明细
func TestNewLineItem(t *testing.T) {
	prod := newTestProduct(t, 1000, 2.0) // 单价10元,重2kg

	t.Run("正常创建", func(t *testing.T) {
		item, err := NewLineItem(3, prod)
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		// 数量3:小计30元,总重6kg
		if item.Subtotal() != 3000 {
			t.Errorf("期望小计3000,实际%d", item.Subtotal())
		}
		if item.Weight() != 6.0 {
			t.Errorf("期望总重6.0,实际%v", item.Weight())
		}
	})

	t.Run("缺少商品", func(t *testing.T) {
		_, err := NewLineItem(1, nil)
		if err != ErrNilProduct {
			t.Errorf("期望ErrNilProduct,实际%v", err)
		}
	})
}

// TestTotals 测试订单总金额与总重量
func TestTotals(t *testing.T) {
	o, err := New(newTestCustomer(), newTestPayment(t, 5000))
	if err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	p1 := newTestProduct(t, 1000, 2.0)
	p2 := newTestProduct(t, 500, 0.5)

	item1, _ := NewLineItem(3, p1) // 3000分, 6.0kg
	item2, _ := NewLineItem(4, p2) // 2000分, 2.0kg
	o.AddLineItem(item1)
	o.AddLineItem(item2)

	if got := o.TotalPrice(); got != 5000 {
		t.Errorf("期望总金额5000,实际%d", got)
	}
	if got := o.TotalWeight(); got != 8.0 {
		t.Errorf("期望总重量8.0,实际%v", got)
	}
	if len(o.Items()) != 2 {
		t.Errorf("期望2条明细,实际%d", len(o.Items()))
	}
}

// TestStateMachine 测试状态机转换规则
// 设计决策说明:历史模型的setStatus不限制转换,这里采用加固方案——
// 状态只能沿生命周期图流转,非法跳转返回错误(决策记录见DESIGN.md)
func TestStateMachine(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"已创建→已支付", OrderStatusCreated, OrderStatusPaid, true},
		{"已创建→已取消", OrderStatusCreated, OrderStatusCancelled, true},
		{"已支付→配送中", OrderStatusPaid, OrderStatusShipping, true},
		{"已支付→已取消", OrderStatusPaid, OrderStatusCancelled, true},
		{"配送中→已送达", OrderStatusShipping, OrderStatusDelivered, true},
		{"已创建→配送中", OrderStatusCreated, OrderStatusShipping, false},
		{"已创建→已送达", OrderStatusCreated, OrderStatusDelivered, false},
		{"配送中→已取消", OrderStatusShipping, OrderStatusCancelled, false},
		{"已送达→已支付", OrderStatusDelivered, OrderStatusPaid, false},
		{"已送达→已取消", OrderStatusDelivered, OrderStatusCancelled, false},
		{"已取消→配送中", OrderStatusCancelled, OrderStatusShipping, false},
		{"已取消→已支付", OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{status: tt.from}
			err := o.TransitionTo(tt.to)

			if tt.allowed {
				if err != nil {
					t.Fatalf("期望转换成功,实际失败: %v", err)
				}
				if o.Status() != tt.to {
					t.Errorf("期望状态%s,实际%s", tt.to, o.Status())
				}
				return
			}

			if err == nil {
				t.Fatal("期望转换失败,实际成功")
			}
			// 错误码为状态转换非法,消息携带当前和目标状态
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidTransition) {
				t.Errorf("期望错误码%d,实际%v", apperrors.ErrCodeInvalidTransition, err)
			}
			msg := err.Error()
			if !strings.Contains(msg, tt.from.String()) || !strings.Contains(msg, tt.to.String()) {
				t.Errorf("错误信息应该包含当前状态和目标状态: %s", msg)
			}
			// 失败时状态保持不变
			if o.Status() != tt.from {
				t.Errorf("转换失败后状态应该保持%s,实际%s", tt.from, o.Status())
			}
		})
	}
}

// TestLifecycle 测试完整生命周期(领域行为)
func TestLifecycle(t *testing.T) {
	t.Run("正常流转到送达", func(t *testing.T) {
		o, _ := New(newTestCustomer(), newTestPayment(t, 100))

		if err := o.Pay(); err != nil {
			t.Fatalf("支付失败: %v", err)
		}
		if err := o.Ship(); err != nil {
			t.Fatalf("发货失败: %v", err)
		}
		if err := o.Deliver(); err != nil {
			t.Fatalf("送达失败: %v", err)
		}
		if !o.IsTerminal() {
			t.Error("已送达应该是终态")
		}
	})

	t.Run("已取消订单不能再发货", func(t *testing.T) {
		o, _ := New(newTestCustomer(), newTestPayment(t, 100))

		if err := o.Cancel(); err != nil {
			t.Fatalf("取消失败: %v", err)
		}
		if err := o.Ship(); err == nil {
			t.Error("已取消的订单发货应该失败")
		}
		if o.Status() != OrderStatusCancelled {
			t.Errorf("状态应该保持已取消,实际%s", o.Status())
		}
	})
}
