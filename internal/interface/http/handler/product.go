package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/eshop/internal/application/catalog"
	"github.com/xiebiao/eshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/eshop/pkg/errors"
	"github.com/xiebiao/eshop/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	publishUseCase *appcatalog.PublishProductUseCase
	listUseCase    *appcatalog.ListProductsUseCase
	getUseCase     *appcatalog.GetProductUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	publishUseCase *appcatalog.PublishProductUseCase,
	listUseCase *appcatalog.ListProductsUseCase,
	getUseCase *appcatalog.GetProductUseCase,
) *ProductHandler {
	return &ProductHandler{
		publishUseCase: publishUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
	}
}

// Publish 商品上架
// @Summary      商品上架
// @Description  登记一件可售卖商品(单价单位为分)
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.PublishProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/products [post]
func (h *ProductHandler) Publish(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.PublishProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.publishUseCase.Execute(c.Request.Context(), appcatalog.PublishProductRequest{
		Title:       req.Title,
		Weight:      req.Weight,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.Success(c, toProductDTO(result))
}

// List 商品列表
// @Summary      商品列表
// @Description  按上架顺序分页查询商品
// @Tags         商品
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "页大小" default(20)
// @Success      200 {object} response.Response{data=dto.ListProductsResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appcatalog.ListProductsRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ProductResponse, len(result.List))
	for i, p := range result.List {
		list[i] = *toProductDTO(p)
	}
	response.Success(c, &dto.ListProductsResponse{
		List:  list,
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	})
}

// Get 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的商品ID")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toProductDTO(result))
}

// toProductDTO 应用层DTO → HTTP DTO
func toProductDTO(p *appcatalog.ProductResponse) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Title:         p.Title,
		Weight:        p.Weight,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		UnitPriceYuan: p.UnitPriceYuan,
	}
}
