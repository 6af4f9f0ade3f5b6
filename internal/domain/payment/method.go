package payment

// Method 支付方式枚举
// 教学要点:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 从1开始而非0:0是Go的零值,容易与"未设置"混淆
type Method int

const (
	MethodCredit       Method = 1 // 信用卡
	MethodCash         Method = 2 // 现金
	MethodWireTransfer Method = 3 // 银行转账
	MethodAliPay       Method = 4 // 支付宝
	MethodWeixinPay    Method = 5 // 微信支付
)

// String 实现Stringer接口(方便日志输出)
func (m Method) String() string {
	switch m {
	case MethodCredit:
		return "信用卡"
	case MethodCash:
		return "现金"
	case MethodWireTransfer:
		return "银行转账"
	case MethodAliPay:
		return "支付宝"
	case MethodWeixinPay:
		return "微信支付"
	default:
		return "未知方式"
	}
}

// Code 支付方式的接口标识(HTTP请求/响应中使用)
func (m Method) Code() string {
	switch m {
	case MethodCredit:
		return "credit"
	case MethodCash:
		return "cash"
	case MethodWireTransfer:
		return "wire_transfer"
	case MethodAliPay:
		return "alipay"
	case MethodWeixinPay:
		return "weixin"
	default:
		return "unknown"
	}
}

// ParseMethod 从接口标识解析支付方式
func ParseMethod(code string) (Method, error) {
	switch code {
	case "credit":
		return MethodCredit, nil
	case "cash":
		return MethodCash, nil
	case "wire_transfer":
		return MethodWireTransfer, nil
	case "alipay":
		return MethodAliPay, nil
	case "weixin":
		return MethodWeixinPay, nil
	default:
		return 0, ErrUnknownMethod
	}
}
