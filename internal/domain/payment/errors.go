package payment

import (
	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// 支付领域错误定义
var (
	// ErrInvalidAmount 支付金额非法
	ErrInvalidAmount = apperrors.New(apperrors.ErrCodeInvalidArgument, "支付金额不能为负数")

	// ErrUnknownMethod 未知的支付方式
	ErrUnknownMethod = apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的支付方式")

	// ErrSettlementFailed 支付结算失败
	// 场景:支付网关协作方拒绝结算,订单不会创建
	ErrSettlementFailed = apperrors.New(apperrors.ErrCodeSettlementFailed, "支付结算失败")
)
