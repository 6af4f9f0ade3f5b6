package product

import (
	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrInvalidWeight 重量非法
	ErrInvalidWeight = apperrors.New(apperrors.ErrCodeInvalidArgument, "商品重量不能为负数")

	// ErrInvalidPrice 单价非法
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidArgument, "商品单价不能为负数")
)
