package customer

import (
	"context"

	"github.com/xiebiao/eshop/internal/domain/customer"
)

// RegisterCustomerUseCase 客户登记用例
type RegisterCustomerUseCase struct {
	customerRepo customer.Repository
}

// NewRegisterCustomerUseCase 创建客户登记用例
func NewRegisterCustomerUseCase(customerRepo customer.Repository) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{customerRepo: customerRepo}
}

// RegisterCustomerRequest 登记请求DTO
type RegisterCustomerRequest struct {
	Name            string // 姓名
	Contact         string // 联系电话
	DeliveryAddress string // 邮寄地址
	Active          bool   // 是否激活
}

// CustomerResponse 客户响应DTO
type CustomerResponse struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	DeliveryAddress string   `json:"delivery_address"`
	Active          bool     `json:"active"`
	OrderNos        []string `json:"order_nos"`
	CreatedAt       string   `json:"created_at"`
}

// Execute 执行客户登记
// 客户独立于任何订单创建,不做格式校验(与历史模型一致)
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	c := customer.New(req.Name, req.Contact, req.DeliveryAddress, req.Active)

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return ToCustomerResponse(c), nil
}

// ToCustomerResponse 领域实体 → 响应DTO
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Contact:         c.Contact,
		DeliveryAddress: c.DeliveryAddress,
		Active:          c.Active,
		OrderNos:        c.OrderNos(),
		CreatedAt:       c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
