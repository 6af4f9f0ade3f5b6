package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/eshop/internal/application/order"
	"github.com/xiebiao/eshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/eshop/pkg/errors"
	"github.com/xiebiao/eshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase *apporder.PlaceOrderUseCase
	getOrderUseCase   *apporder.GetOrderUseCase
	lifecycleUseCase  *apporder.LifecycleUseCase
	listOrdersUseCase *apporder.ListCustomerOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeOrderUseCase *apporder.PlaceOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	lifecycleUseCase *apporder.LifecycleUseCase,
	listOrdersUseCase *apporder.ListCustomerOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase: placeOrderUseCase,
		getOrderUseCase:   getOrderUseCase,
		lifecycleUseCase:  lifecycleUseCase,
		listOrdersUseCase: listOrdersUseCase,
	}
}

// PlaceOrder 下单
// @Summary      下单
// @Description  按当前商品价格结算并创建订单
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.PlaceOrderRequest true "下单信息"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "参数错误/明细非法"
// @Failure      404 {object} response.Response "客户或商品不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. HTTP DTO → 应用层请求
	items := make([]apporder.PlaceOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.PlaceOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	// 3. 调用应用层用例
	result, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		CustomerID: req.CustomerID,
		Payment: apporder.PaymentSpec{
			Method:        req.Payment.Method,
			CardNumber:    req.Payment.CardNumber,
			CardType:      req.Payment.CardType,
			ExpireDate:    req.Payment.ExpireDate,
			CashTendered:  req.Payment.CashTendered,
			BankID:        req.Payment.BankID,
			BankName:      req.Payment.BankName,
			AccountNumber: req.Payment.AccountNumber,
		},
		Items: items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 4. 构建HTTP响应
	response.Success(c, toOrderDTO(result))
}

// Get 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	result, err := h.getOrderUseCase.Execute(c.Request.Context(), c.Param("order_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOrderDTO(result))
}

// Pay 支付订单
// @Summary      支付订单
// @Description  订单状态: 已创建 → 已支付
// @Tags         订单
// @Produce      json
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "状态不允许流转"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no}/pay [post]
func (h *OrderHandler) Pay(c *gin.Context) {
	h.transition(c, h.lifecycleUseCase.Pay)
}

// Ship 订单发货
// @Summary      订单发货
// @Description  订单状态: 已支付 → 配送中
// @Tags         订单
// @Produce      json
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "状态不允许流转"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no}/ship [post]
func (h *OrderHandler) Ship(c *gin.Context) {
	h.transition(c, h.lifecycleUseCase.Ship)
}

// Deliver 确认送达
// @Summary      确认送达
// @Description  订单状态: 配送中 → 已送达
// @Tags         订单
// @Produce      json
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "状态不允许流转"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no}/deliver [post]
func (h *OrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.lifecycleUseCase.Deliver)
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  订单状态: 已创建/已支付 → 已取消
// @Tags         订单
// @Produce      json
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      400 {object} response.Response "状态不允许流转"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.lifecycleUseCase.Cancel)
}

// ListByCustomer 客户订单列表
// @Summary      客户订单列表
// @Description  按下单顺序分页查询客户的订单
// @Tags         订单
// @Produce      json
// @Param        id path int true "客户ID"
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "页大小" default(20)
// @Success      200 {object} response.Response{data=dto.ListOrdersResponse}
// @Failure      404 {object} response.Response "客户不存在"
// @Router       /api/v1/customers/{id}/orders [get]
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的客户ID")
		return
	}

	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), apporder.ListCustomerOrdersRequest{
		CustomerID: uint(id),
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.OrderResponse, len(result.List))
	for i, o := range result.List {
		list[i] = *toOrderDTO(o)
	}
	response.Success(c, &dto.ListOrdersResponse{
		List:  list,
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	})
}

// transition 状态流转的公共处理流程
func (h *OrderHandler) transition(
	c *gin.Context,
	action func(ctx context.Context, orderNo string) (*apporder.OrderResponse, error),
) {
	result, err := action(c.Request.Context(), c.Param("order_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOrderDTO(result))
}

// toOrderDTO 应用层DTO → HTTP DTO
func toOrderDTO(r *apporder.OrderResponse) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = dto.OrderItemResponse{
			ProductID:    item.ProductID,
			ProductTitle: item.ProductTitle,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal,
			SubtotalYuan: item.SubtotalYuan,
			Weight:       item.Weight,
		}
	}
	return &dto.OrderResponse{
		OrderNo:       r.OrderNo,
		CustomerID:    r.CustomerID,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		AmountYuan:    r.AmountYuan,
		Total:         r.Total,
		TotalYuan:     r.TotalYuan,
		TotalWeight:   r.TotalWeight,
		Items:         items,
		CreatedAt:     r.CreatedAt,
	}
}
