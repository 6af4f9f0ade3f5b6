package payment

import (
	"context"
)

// Settlement 结算结果
// 第三方流水号由网关返回;Mock模式下为模拟值
type Settlement struct {
	ReferenceNo string // 渠道流水号
	Amount      int64  // 实际结算金额(分)
}

// Gateway 支付网关协作方接口
// 设计说明:
// 1. 结算发生在领域核心之外:应用层先调用网关结算,
//    成功后才构造Payment变体并创建订单
// 2. 由domain层定义接口,infrastructure层实现(依赖倒置)
// 3. 本核心不包含任何渠道协议细节,真实接入时替换实现即可
type Gateway interface {
	// Settle 按指定方式结算金额,失败返回ErrSettlementFailed
	Settle(ctx context.Context, method Method, amount int64) (*Settlement, error)
}
