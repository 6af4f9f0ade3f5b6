package payment

import (
	"testing"
)

// TestVariants 测试各支付方式的构造与共享访问器
func TestVariants(t *testing.T) {
	t.Run("信用卡", func(t *testing.T) {
		p, err := NewCredit(9900, "6222021234567890", "Visa", "2027-08")
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		if p.Amount() != 9900 {
			t.Errorf("期望金额9900,实际%d", p.Amount())
		}
		if p.Method() != MethodCredit {
			t.Errorf("期望方式为信用卡,实际%s", p.Method())
		}
		if p.CardType() != "Visa" {
			t.Errorf("期望卡类型Visa,实际%s", p.CardType())
		}
	})

	t.Run("现金", func(t *testing.T) {
		p, err := NewCash(3000, 4000)
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		if p.CashTendered() != 4000 {
			t.Errorf("期望实收4000,实际%d", p.CashTendered())
		}
	})

	t.Run("现金不校验实收大于应收", func(t *testing.T) {
		// 历史模型不做该检查,找零规则属于收银台
		if _, err := NewCash(3000, 1000); err != nil {
			t.Errorf("实收小于应收也应该创建成功,实际失败: %v", err)
		}
	})

	t.Run("银行转账", func(t *testing.T) {
		p, err := NewWireTransfer(50000, "102", "中国工商银行")
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		if p.BankID() != "102" || p.BankName() != "中国工商银行" {
			t.Errorf("银行信息不符: %s/%s", p.BankID(), p.BankName())
		}
	})

	t.Run("支付宝", func(t *testing.T) {
		p, err := NewAliPay(1500, "alice@example.com")
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		if p.Method() != MethodAliPay {
			t.Errorf("期望方式为支付宝,实际%s", p.Method())
		}
	})

	t.Run("微信支付", func(t *testing.T) {
		p, err := NewWeixinPay(1500, "wx_alice")
		if err != nil {
			t.Fatalf("期望创建成功,实际失败: %v", err)
		}
		if p.AccountNumber() != "wx_alice" {
			t.Errorf("期望账号wx_alice,实际%s", p.AccountNumber())
		}
	})
}

// TestNegativeAmount 测试负金额在所有变体上都被拒绝
func TestNegativeAmount(t *testing.T) {
	tests := []struct {
		name string
		make func() (Payment, error)
	}{
		{"信用卡", func() (Payment, error) { return NewCredit(-1, "n", "t", "e") }},
		{"现金", func() (Payment, error) { return NewCash(-1, 100) }},
		{"银行转账", func() (Payment, error) { return NewWireTransfer(-1, "id", "name") }},
		{"支付宝", func() (Payment, error) { return NewAliPay(-1, "acc") }},
		{"微信支付", func() (Payment, error) { return NewWeixinPay(-1, "acc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.make(); err != ErrInvalidAmount {
				t.Errorf("期望ErrInvalidAmount,实际%v", err)
			}
		})
	}
}

// TestParseMethod 测试支付方式解析
func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodCredit, MethodCash, MethodWireTransfer, MethodAliPay, MethodWeixinPay} {
		got, err := ParseMethod(m.Code())
		if err != nil {
			t.Fatalf("解析%s失败: %v", m.Code(), err)
		}
		if got != m {
			t.Errorf("期望%v,实际%v", m, got)
		}
	}

	if _, err := ParseMethod("bitcoin"); err != ErrUnknownMethod {
		t.Errorf("未知方式期望ErrUnknownMethod,实际%v", err)
	}
}
