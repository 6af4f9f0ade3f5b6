package payment

// Payment 支付方式(封闭多态)
//
// 教学要点:
// 1. 支付方式是封闭的变体集合:信用卡/现金/银行转账/支付宝/微信支付
// 2. Go没有sealed class,用"接口+私有标记方法"实现封闭集:
//    isPayment()是小写方法,包外类型无法实现该接口,
//    新增支付方式必须修改本包(结构性变更,不是运行时注册)
// 3. 金额在构造时固定,各变体构造后不可变,变体之间不可互相转换
// 4. 结算发生在核心之外(支付网关协作方),这里只记录已结算的金额和
//    方式专属字段,不做任何渠道调用
type Payment interface {
	// Amount 已结算金额(分),所有变体语义一致
	Amount() int64

	// Method 支付方式枚举值
	Method() Method

	// isPayment 封闭标记:禁止包外新增变体
	isPayment()
}

// base 各变体共享的金额字段
// 私有嵌入:变体通过嵌入获得Amount()和isPayment(),自身只声明专属字段
type base struct {
	amount int64 // 已结算金额(分)
}

func (b base) Amount() int64 { return b.amount }

func (base) isPayment() {}

// newBase 共享构造校验:金额不允许为负数
func newBase(amount int64) (base, error) {
	if amount < 0 {
		return base{}, ErrInvalidAmount
	}
	return base{amount: amount}, nil
}

// =========================================
// Credit 信用卡支付
// =========================================

type Credit struct {
	base
	cardNumber string // 卡号
	cardType   string // 卡类型(如Visa、Master)
	expireDate string // 过期日期
}

// NewCredit 创建信用卡支付
// 卡号/卡类型/过期日期为必要字符串,格式校验属于支付网关职责,
// 核心只记录(与历史模型行为一致)
func NewCredit(amount int64, cardNumber, cardType, expireDate string) (*Credit, error) {
	b, err := newBase(amount)
	if err != nil {
		return nil, err
	}
	return &Credit{base: b, cardNumber: cardNumber, cardType: cardType, expireDate: expireDate}, nil
}

func (*Credit) Method() Method { return MethodCredit }

// CardNumber 卡号
func (c *Credit) CardNumber() string { return c.cardNumber }

// CardType 卡类型
func (c *Credit) CardType() string { return c.cardType }

// ExpireDate 过期日期
func (c *Credit) ExpireDate() string { return c.expireDate }

// =========================================
// Cash 现金支付
// =========================================

type Cash struct {
	base
	cashTendered int64 // 实收现金(分)
}

// NewCash 创建现金支付
// 注意:不强制cashTendered >= amount——历史模型不做该检查,
// 找零规则属于收银台,不属于本核心
func NewCash(amount, cashTendered int64) (*Cash, error) {
	b, err := newBase(amount)
	if err != nil {
		return nil, err
	}
	return &Cash{base: b, cashTendered: cashTendered}, nil
}

func (*Cash) Method() Method { return MethodCash }

// CashTendered 实收现金(分)
func (c *Cash) CashTendered() int64 { return c.cashTendered }

// =========================================
// WireTransfer 银行转账
// =========================================

type WireTransfer struct {
	base
	bankID   string // 银行ID
	bankName string // 银行名称
}

// NewWireTransfer 创建银行转账支付
func NewWireTransfer(amount int64, bankID, bankName string) (*WireTransfer, error) {
	b, err := newBase(amount)
	if err != nil {
		return nil, err
	}
	return &WireTransfer{base: b, bankID: bankID, bankName: bankName}, nil
}

func (*WireTransfer) Method() Method { return MethodWireTransfer }

// BankID 银行ID
func (w *WireTransfer) BankID() string { return w.bankID }

// BankName 银行名称
func (w *WireTransfer) BankName() string { return w.bankName }

// =========================================
// AliPay 支付宝支付
// =========================================

type AliPay struct {
	base
	accountNumber string // 支付宝账号
}

// NewAliPay 创建支付宝支付
func NewAliPay(amount int64, accountNumber string) (*AliPay, error) {
	b, err := newBase(amount)
	if err != nil {
		return nil, err
	}
	return &AliPay{base: b, accountNumber: accountNumber}, nil
}

func (*AliPay) Method() Method { return MethodAliPay }

// AccountNumber 支付宝账号
func (a *AliPay) AccountNumber() string { return a.accountNumber }

// =========================================
// WeixinPay 微信支付
// =========================================

type WeixinPay struct {
	base
	accountNumber string // 微信账号
}

// NewWeixinPay 创建微信支付
func NewWeixinPay(amount int64, accountNumber string) (*WeixinPay, error) {
	b, err := newBase(amount)
	if err != nil {
		return nil, err
	}
	return &WeixinPay{base: b, accountNumber: accountNumber}, nil
}

func (*WeixinPay) Method() Method { return MethodWeixinPay }

// AccountNumber 微信账号
func (w *WeixinPay) AccountNumber() string { return w.accountNumber }
