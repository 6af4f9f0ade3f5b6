package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/xiebiao/eshop/internal/application/customer"
	"github.com/xiebiao/eshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/eshop/pkg/errors"
	"github.com/xiebiao/eshop/pkg/response"
)

// CustomerHandler 客户HTTP处理器
type CustomerHandler struct {
	registerUseCase *appcustomer.RegisterCustomerUseCase
	getUseCase      *appcustomer.GetCustomerUseCase
}

// NewCustomerHandler 创建客户处理器
func NewCustomerHandler(
	registerUseCase *appcustomer.RegisterCustomerUseCase,
	getUseCase *appcustomer.GetCustomerUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		registerUseCase: registerUseCase,
		getUseCase:      getUseCase,
	}
}

// Register 客户登记
// @Summary      客户登记
// @Description  登记一名客户(独立于任何订单)
// @Tags         客户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterCustomerRequest true "客户信息"
// @Success      200 {object} response.Response{data=dto.CustomerResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// active缺省视为激活
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appcustomer.RegisterCustomerRequest{
		Name:            req.Name,
		Contact:         req.Contact,
		DeliveryAddress: req.DeliveryAddress,
		Active:          active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCustomerDTO(result))
}

// Get 客户详情
// @Summary      客户详情
// @Description  查询客户信息及其历史订单号
// @Tags         客户
// @Produce      json
// @Param        id path int true "客户ID"
// @Success      200 {object} response.Response{data=dto.CustomerResponse}
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /api/v1/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的客户ID")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toCustomerDTO(result))
}

// toCustomerDTO 应用层DTO → HTTP DTO
func toCustomerDTO(r *appcustomer.CustomerResponse) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              r.ID,
		Name:            r.Name,
		Contact:         r.Contact,
		DeliveryAddress: r.DeliveryAddress,
		Active:          r.Active,
		OrderNos:        r.OrderNos,
		CreatedAt:       r.CreatedAt,
	}
}
