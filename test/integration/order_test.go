package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：订单模块集成测试
//
// 测试场景覆盖：
// 1. 下单（金额按商品当前价计算）
// 2. 客户历史订单号登记
// 3. 订单状态机（支付/发货/送达/取消）
// 4. 非法流转被拒绝且状态不变

// placeOrder 下单辅助函数
func placeOrder(t *testing.T, baseURL string, customerID uint, payment map[string]interface{}, items []map[string]interface{}) Response {
	t.Helper()
	return PostJSON(t, baseURL+"/api/v1/orders", map[string]interface{}{
		"customer_id": customerID,
		"payment":     payment,
		"items":       items,
	})
}

// TestPlaceOrder 测试下单流程
func TestPlaceOrder(t *testing.T) {
	ts := NewTestServer(t)

	product := PublishTestProduct(t, ts.URL, "保温杯", 2.0, 1000) // 10.00元/件,2kg/件
	cust := RegisterTestCustomer(t, ts.URL, "张三")

	t.Run("正常下单", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "cash", "cash_tendered": 4000},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 3}},
		)
		require.Equal(t, 0, resp.Code, "下单应该成功: %s", resp.Message)

		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data), "解析订单数据失败")

		assert.NotEmpty(t, data.OrderNo, "应生成订单号")
		assert.Equal(t, cust.ID, data.CustomerID)
		assert.Equal(t, int64(3000), data.Total, "3件×10.00元")
		assert.Equal(t, "30.00", data.TotalYuan)
		assert.Equal(t, int64(3000), data.Amount, "结算金额与订单金额一致")
		assert.Equal(t, 6.0, data.TotalWeight, "3件×2kg")
		assert.Equal(t, "已创建", data.Status, "新订单处于已创建状态")
		assert.Equal(t, "cash", data.PaymentMethod)
		require.Len(t, data.Items, 1)
		assert.Equal(t, 3, data.Items[0].Quantity)
		assert.Equal(t, int64(3000), data.Items[0].Subtotal)

		// 客户的历史订单号被登记
		custResp := GetJSON(t, fmt.Sprintf("%s/api/v1/customers/%d", ts.URL, cust.ID))
		require.Equal(t, 0, custResp.Code)
		var custData CustomerData
		require.NoError(t, json.Unmarshal(custResp.Data, &custData))
		assert.Contains(t, custData.OrderNos, data.OrderNo, "客户应登记该订单号")

		t.Logf("✓ 下单成功，订单号: %s", data.OrderNo)
	})

	t.Run("空明细应失败", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "cash"},
			[]map[string]interface{}{},
		)
		assert.NotEqual(t, 0, resp.Code, "空明细应该失败")
	})

	t.Run("数量为零应失败", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "cash"},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 0}},
		)
		assert.NotEqual(t, 0, resp.Code, "数量为零应该失败")
	})

	t.Run("不支持的支付方式应失败", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "bitcoin"},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 1}},
		)
		assert.NotEqual(t, 0, resp.Code, "不支持的支付方式应该失败")
	})

	t.Run("客户不存在应失败", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, 9999,
			map[string]interface{}{"method": "cash"},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 1}},
		)
		assert.Equal(t, 40402, resp.Code, "应返回客户不存在错误码")
	})

	t.Run("商品不存在应失败", func(t *testing.T) {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "cash"},
			[]map[string]interface{}{{"product_id": 9999, "quantity": 1}},
		)
		assert.Equal(t, 40401, resp.Code, "应返回商品不存在错误码")
	})
}

// TestOrderLifecycle 测试订单状态机
func TestOrderLifecycle(t *testing.T) {
	ts := NewTestServer(t)

	product := PublishTestProduct(t, ts.URL, "机械键盘", 1.2, 39900)
	cust := RegisterTestCustomer(t, ts.URL, "李四")

	newOrder := func(t *testing.T) string {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "alipay", "account_number": "alice@example.com"},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 1}},
		)
		require.Equal(t, 0, resp.Code, "下单应该成功: %s", resp.Message)
		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		return data.OrderNo
	}

	transition := func(t *testing.T, orderNo, action string) Response {
		return PostJSON(t, fmt.Sprintf("%s/api/v1/orders/%s/%s", ts.URL, orderNo, action), nil)
	}

	t.Run("完整生命周期", func(t *testing.T) {
		no := newOrder(t)

		steps := []struct {
			action string
			want   string
		}{
			{"pay", "已支付"},
			{"ship", "配送中"},
			{"deliver", "已送达"},
		}
		for _, step := range steps {
			resp := transition(t, no, step.action)
			require.Equal(t, 0, resp.Code, "%s应该成功: %s", step.action, resp.Message)

			var data OrderData
			require.NoError(t, json.Unmarshal(resp.Data, &data))
			assert.Equal(t, step.want, data.Status)
		}

		// 已送达是终态
		resp := transition(t, no, "cancel")
		assert.Equal(t, 40001, resp.Code, "终态取消应被状态机拒绝")
	})

	t.Run("跳步流转被拒绝", func(t *testing.T) {
		no := newOrder(t)

		// 未支付不能发货
		resp := transition(t, no, "ship")
		assert.Equal(t, 40001, resp.Code, "未支付发货应被拒绝")

		// 订单保持原状态,仍可正常支付
		resp = transition(t, no, "pay")
		require.Equal(t, 0, resp.Code, "失败流转后支付仍应成功: %s", resp.Message)
	})

	t.Run("已取消订单不能发货", func(t *testing.T) {
		no := newOrder(t)

		resp := transition(t, no, "cancel")
		require.Equal(t, 0, resp.Code, "取消应该成功: %s", resp.Message)

		resp = transition(t, no, "ship")
		assert.Equal(t, 40001, resp.Code, "已取消订单发货应被拒绝")

		// 状态保持已取消
		detail := GetJSON(t, fmt.Sprintf("%s/api/v1/orders/%s", ts.URL, no))
		require.Equal(t, 0, detail.Code)
		var data OrderData
		require.NoError(t, json.Unmarshal(detail.Data, &data))
		assert.Equal(t, "已取消", data.Status)
	})

	t.Run("已支付订单可以取消", func(t *testing.T) {
		no := newOrder(t)

		require.Equal(t, 0, transition(t, no, "pay").Code)
		resp := transition(t, no, "cancel")
		assert.Equal(t, 0, resp.Code, "已支付订单应可取消: %s", resp.Message)
	})

	t.Run("订单不存在", func(t *testing.T) {
		resp := transition(t, "ORD000000", "pay")
		assert.Equal(t, 40403, resp.Code, "应返回订单不存在错误码")
	})
}

// TestCustomerOrderList 测试客户订单列表
func TestCustomerOrderList(t *testing.T) {
	ts := NewTestServer(t)

	product := PublishTestProduct(t, ts.URL, "保温杯", 0.35, 5900)
	cust := RegisterTestCustomer(t, ts.URL, "王五")

	var nos []string
	for i := 0; i < 3; i++ {
		resp := placeOrder(t, ts.URL, cust.ID,
			map[string]interface{}{"method": "weixin", "account_number": "wx_test"},
			[]map[string]interface{}{{"product_id": product.ID, "quantity": 1}},
		)
		require.Equal(t, 0, resp.Code, "下单应该成功: %s", resp.Message)
		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		nos = append(nos, data.OrderNo)
	}

	t.Run("按下单顺序分页", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/api/v1/customers/%d/orders?page=1&page_size=2", ts.URL, cust.ID))
		require.Equal(t, 0, resp.Code, "查询应该成功: %s", resp.Message)

		var list ListData
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		assert.Equal(t, int64(3), list.Total)

		var orders []OrderData
		require.NoError(t, json.Unmarshal(list.List, &orders))
		require.Len(t, orders, 2, "第一页2笔")
		assert.Equal(t, nos[0], orders[0].OrderNo, "按下单顺序返回")
		assert.Equal(t, nos[1], orders[1].OrderNo)
	})

	t.Run("客户不存在返回错误码", func(t *testing.T) {
		resp := GetJSON(t, ts.URL+"/api/v1/customers/9999/orders")
		assert.Equal(t, 40402, resp.Code)
	})
}
