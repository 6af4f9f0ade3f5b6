package customer

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/customer"
)

// GetCustomerUseCase 客户查询用例
type GetCustomerUseCase struct {
	customerRepo customer.Repository
}

// NewGetCustomerUseCase 创建客户查询用例
func NewGetCustomerUseCase(customerRepo customer.Repository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

// Execute 根据ID查询客户(含订单号列表)
func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}
