package order

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/customer"
	"github.com/xiebiao/eshop/internal/domain/order"
	"github.com/xiebiao/eshop/internal/domain/payment"
	"github.com/xiebiao/eshop/internal/domain/product"
)

// MaxQuantityPerItem 单条明细的购买数量上限
// 应用层策略:领域层的明细不限数量,上限属于下单边界
const MaxQuantityPerItem = 999

// PlaceOrderUseCase 下单用例
// 教学要点:这是整个项目最核心的用例
// 流程:校验明细 → 加载客户和商品 → 按商品当前价计算金额 →
// 支付网关结算 → 构造支付方式 → 创建订单聚合 → 持久化 → 通知
type PlaceOrderUseCase struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	gateway      payment.Gateway
	notifier     order.Notifier
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	gateway payment.Gateway,
	notifier order.Notifier,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		gateway:      gateway,
		notifier:     notifier,
	}
}

// PlaceOrderRequest 下单请求DTO
type PlaceOrderRequest struct {
	CustomerID uint             // 下单客户ID
	Payment    PaymentSpec      // 支付方式描述
	Items      []PlaceOrderItem // 订单明细
}

// PlaceOrderItem 订单明细项
type PlaceOrderItem struct {
	ProductID uint // 商品ID
	Quantity  int  // 购买数量
}

// PaymentSpec 支付方式描述
// Method决定哪些专属字段生效;金额不由前端传递,
// 按商品当前价实时计算(防止改价攻击)
type PaymentSpec struct {
	Method        string // credit | cash | wire_transfer | alipay | weixin
	CardNumber    string // 信用卡:卡号
	CardType      string // 信用卡:卡类型
	ExpireDate    string // 信用卡:过期日期
	CashTendered  int64  // 现金:实收金额(分)
	BankID        string // 银行转账:银行ID
	BankName      string // 银行转账:银行名称
	AccountNumber string // 支付宝/微信:账号
}

// Execute 执行下单用例
//
// 教学要点:失败原子性
// 任何一步失败(明细非法、客户/商品不存在、结算被拒),
// 订单都不会产生,客户的订单号列表也不会被触碰——
// 登记动作在订单工厂内部,只在全部校验通过后发生
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	// 1. 明细边界校验
	if len(req.Items) == 0 {
		return nil, order.ErrEmptyItems
	}
	for _, item := range req.Items {
		if item.Quantity < 1 || item.Quantity > MaxQuantityPerItem {
			return nil, order.ErrInvalidQuantity
		}
	}

	// 2. 解析支付方式(先于任何加载,参数错误最早失败)
	method, err := payment.ParseMethod(req.Payment.Method)
	if err != nil {
		return nil, err
	}

	// 3. 加载客户
	cust, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	// 4. 加载商品并计算订单金额
	// 教学要点:使用"商品当前价"而非前端传递的价格
	var total int64
	products := make([]*product.Product, len(req.Items))
	for i, item := range req.Items {
		p, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		products[i] = p
		total += p.PriceFor(item.Quantity)
	}

	// 5. 支付网关结算(协作方调用,发生在核心之外)
	settlement, err := uc.gateway.Settle(ctx, method, total)
	if err != nil {
		return nil, err
	}

	// 6. 构造支付方式变体(记录已结算金额和方式专属字段)
	pay, err := buildPayment(method, settlement.Amount, req.Payment)
	if err != nil {
		return nil, err
	}

	// 7. 创建订单聚合(工厂内登记到客户)
	newOrder, err := order.New(cust, pay)
	if err != nil {
		return nil, err
	}
	for i, item := range req.Items {
		lineItem, err := order.NewLineItem(item.Quantity, products[i])
		if err != nil {
			return nil, err
		}
		newOrder.AddLineItem(lineItem)
	}

	// 8. 持久化
	if err := uc.orderRepo.Create(ctx, newOrder); err != nil {
		return nil, err
	}

	// 9. 通知(失败不影响下单结果,由实现方自行记录)
	uc.notifier.OrderPlaced(ctx, newOrder)

	return ToOrderResponse(newOrder), nil
}

// buildPayment 按支付方式描述构造变体
// 封闭集合:switch穷举全部五种方式,新增方式编译期即可发现遗漏
func buildPayment(method payment.Method, amount int64, spec PaymentSpec) (payment.Payment, error) {
	switch method {
	case payment.MethodCredit:
		return payment.NewCredit(amount, spec.CardNumber, spec.CardType, spec.ExpireDate)
	case payment.MethodCash:
		return payment.NewCash(amount, spec.CashTendered)
	case payment.MethodWireTransfer:
		return payment.NewWireTransfer(amount, spec.BankID, spec.BankName)
	case payment.MethodAliPay:
		return payment.NewAliPay(amount, spec.AccountNumber)
	case payment.MethodWeixinPay:
		return payment.NewWeixinPay(amount, spec.AccountNumber)
	default:
		return nil, payment.ErrUnknownMethod
	}
}
