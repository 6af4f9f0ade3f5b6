package customer

import (
	"testing"
)

// TestNew 测试客户创建
func TestNew(t *testing.T) {
	c := New("Alice", "555-1111", "1 Main St", true)

	if c.Name != "Alice" {
		t.Errorf("期望姓名Alice,实际%s", c.Name)
	}
	if !c.Active {
		t.Error("期望客户处于激活状态")
	}
	if c.OrderCount() != 0 {
		t.Errorf("新客户期望0笔订单,实际%d", c.OrderCount())
	}
}

// TestRecordOrder 测试订单号登记
func TestRecordOrder(t *testing.T) {
	c := New("Bob", "555-2222", "2 Main St", true)

	c.RecordOrder("ORD1001")
	c.RecordOrder("ORD1002")
	c.RecordOrder("") // 空订单号忽略

	nos := c.OrderNos()
	if len(nos) != 2 {
		t.Fatalf("期望2笔订单,实际%d", len(nos))
	}
	// 下单顺序保持
	if nos[0] != "ORD1001" || nos[1] != "ORD1002" {
		t.Errorf("订单号顺序不符: %v", nos)
	}
}

// TestOrderNos_ReadOnly 测试只读副本与幂等性
func TestOrderNos_ReadOnly(t *testing.T) {
	c := New("Carol", "555-3333", "3 Main St", false)
	c.RecordOrder("ORD2001")

	// 两次读取结果一致(无变更时幂等)
	first := c.OrderNos()
	second := c.OrderNos()
	if len(first) != len(second) || first[0] != second[0] {
		t.Errorf("两次读取结果不一致: %v vs %v", first, second)
	}

	// 修改副本不影响实体内部状态
	first[0] = "HACKED"
	if c.OrderNos()[0] != "ORD2001" {
		t.Error("外部修改副本不应该影响客户内部的订单号列表")
	}
}
