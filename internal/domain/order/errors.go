package order

import (
	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrNilCustomer 订单缺少客户
	// 场景:创建订单时客户引用为空,订单不会被创建
	ErrNilCustomer = apperrors.New(apperrors.ErrCodeInvalidArgument, "订单必须关联客户")

	// ErrNilPayment 订单缺少支付方式
	ErrNilPayment = apperrors.New(apperrors.ErrCodeInvalidArgument, "订单必须关联支付方式")

	// ErrNilProduct 订单明细缺少商品
	ErrNilProduct = apperrors.New(apperrors.ErrCodeInvalidArgument, "订单明细必须关联商品")

	// ErrInvalidQuantity 购买数量非法
	// 场景:应用层下单边界校验,数量<=0或超过单笔上限
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "购买数量必须大于0")

	// ErrEmptyItems 订单明细为空
	// 场景:下单时未传入任何商品
	ErrEmptyItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")
)

// errInvalidTransition 非法的状态转换
// 教学要点:错误是动态构造的,消息中携带当前状态和目标状态;
// 调用方用错误码(ErrCodeInvalidTransition)判断类型,不比较消息
func errInvalidTransition(from, to OrderStatus) error {
	return apperrors.Newf(apperrors.ErrCodeInvalidTransition,
		"订单状态不允许从[%s]转换到[%s]", from, to)
}
