package customer

import (
	apperrors "github.com/xiebiao/eshop/pkg/errors"
)

// 客户领域错误定义
var (
	// ErrCustomerNotFound 客户不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "客户不存在")
)
