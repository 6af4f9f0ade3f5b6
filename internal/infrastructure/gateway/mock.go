package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/xiebiao/eshop/internal/domain/payment"
)

// mockGateway 支付网关Mock实现
// 教学要点:
// 1. 真实网关是外部协作方,领域层只依赖payment.Gateway接口
// 2. Mock实现总是结算成功,返回模拟的结算流水号
// 3. delay用于模拟网关耗时,配合context演示超时取消
type mockGateway struct {
	delay time.Duration
}

// NewMockGateway 创建Mock支付网关
func NewMockGateway(delay time.Duration) payment.Gateway {
	return &mockGateway{delay: delay}
}

// Settle 模拟结算
func (g *mockGateway) Settle(ctx context.Context, method payment.Method, amount int64) (*payment.Settlement, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return &payment.Settlement{
		ReferenceNo: generateReferenceNo(method),
		Amount:      amount,
	}, nil
}

// generateReferenceNo 生成结算流水号
// 格式: PAY + 支付方式编码 + 时间戳 + 6位随机数
func generateReferenceNo(method payment.Method) string {
	return fmt.Sprintf("PAY%s%d%06d", method.Code(), time.Now().Unix(), rand.Intn(1000000))
}
