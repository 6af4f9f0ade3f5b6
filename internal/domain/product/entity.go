package product

// Product 商品实体
// DDD设计说明:
// 1. 商品是订单域的叶子对象:创建后不可变,被零个或多个订单明细引用
// 2. 单价使用int64存储"分"为单位(避免浮点数精度问题)
// 3. 重量保留float64(千克),重量不参与金额运算,不存在精度累积风险
// 4. 除ID外字段全部私有:不可变性由构造函数+只读访问器保证,
//    ID由仓储在保存时分配(业务上不属于商品属性)
type Product struct {
	ID uint // 商品ID(仓储分配)

	title       string // 名称
	weight      float64 // 单件重量(千克)
	description string // 描述
	unitPrice   int64  // 单价(分,1元=100分)
}

// New 创建商品(工厂方法)
// 业务规则:重量和单价不允许为负数
// 说明:这是对历史模型的加固——旧模型不做该校验,但负价格/负重量
// 没有任何合法业务含义,在构造点直接拒绝
func New(title string, weight float64, description string, unitPrice int64) (*Product, error) {
	if weight < 0 {
		return nil, ErrInvalidWeight
	}
	if unitPrice < 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		title:       title,
		weight:      weight,
		description: description,
		unitPrice:   unitPrice,
	}, nil
}

// Title 名称
func (p *Product) Title() string { return p.title }

// Weight 单件重量(千克)
func (p *Product) Weight() float64 { return p.weight }

// Description 描述
func (p *Product) Description() string { return p.description }

// UnitPrice 单价(分)
func (p *Product) UnitPrice() int64 { return p.unitPrice }

// PriceFor 计算指定数量的总价(分)
// 纯函数:单价 × 数量,quantity>=0由调用方保证
func (p *Product) PriceFor(quantity int) int64 {
	return p.unitPrice * int64(quantity)
}

// WeightFor 计算指定数量的总重量(千克)
func (p *Product) WeightFor(quantity int) float64 {
	return p.weight * float64(quantity)
}
