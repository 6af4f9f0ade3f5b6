package product

import (
	"testing"

	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// TestNew 测试商品创建
func TestNew(t *testing.T) {
	p, err := New("Go语言实战", 0.6, "一本关于Go的书", 5900)
	if err != nil {
		t.Fatalf("期望创建成功,实际失败: %v", err)
	}

	if p.Title() != "Go语言实战" {
		t.Errorf("期望标题为Go语言实战,实际%s", p.Title())
	}
	if p.Weight() != 0.6 {
		t.Errorf("期望重量为0.6,实际%v", p.Weight())
	}
	if p.UnitPrice() != 5900 {
		t.Errorf("期望单价为5900,实际%d", p.UnitPrice())
	}
}

// TestNew_NegativeValues 测试负数校验
func TestNew_NegativeValues(t *testing.T) {
	tests := []struct {
		name      string
		weight    float64
		unitPrice int64
		wantErr   error
	}{
		{"负重量", -1.0, 100, ErrInvalidWeight},
		{"负单价", 1.0, -100, ErrInvalidPrice},
		{"零重量零单价合法", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New("测试商品", tt.weight, "", tt.unitPrice)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("期望成功,实际失败: %v", err)
				}
				return
			}
			if err != tt.wantErr {
				t.Errorf("期望错误%v,实际%v", tt.wantErr, err)
			}
			if p != nil {
				t.Error("构造失败时不应该返回商品实例")
			}
			if !apperrors.HasCode(err, apperrors.ErrCodeInvalidArgument) {
				t.Errorf("期望错误码%d,实际%v", apperrors.ErrCodeInvalidArgument, err)
			}
		})
	}
}

// TestPriceFor 测试价格推导
// 性质:对任意数量q>=0,PriceFor(q) == 单价*q,WeightFor(q) == 重量*q
func TestPriceFor(t *testing.T) {
	p, err := New("挂件", 2.0, "测试用", 1000)
	if err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}

	for _, q := range []int{0, 1, 3, 100} {
		if got := p.PriceFor(q); got != 1000*int64(q) {
			t.Errorf("PriceFor(%d)期望%d,实际%d", q, 1000*int64(q), got)
		}
		if got := p.WeightFor(q); got != 2.0*float64(q) {
			t.Errorf("WeightFor(%d)期望%v,实际%v", q, 2.0*float64(q), got)
		}
	}
}
