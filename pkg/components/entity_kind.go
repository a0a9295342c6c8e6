package components

// EntityKind 下落物类型（封闭枚举）
type EntityKind int

const (
	// KindCoin 普通代币：+1 分（乘倍率），+1 TOK
	KindCoin EntityKind = iota
	// KindHazard 危险币（骷髅）：-20 TOK，经典规则下再扣 1 条生命
	KindHazard
	// KindGoldenCoin 金币：+10 分（乘倍率），+10 TOK
	KindGoldenCoin
	// KindSlowTimeBonus 减速奖励：下落速度减半 10 秒
	KindSlowTimeBonus
	// KindMagnetBonus 磁铁奖励：捕获宽度翻倍 10 秒
	KindMagnetBonus
)

// EntityShape 渲染形状，仅供表现层使用
type EntityShape int

const (
	ShapeCircle EntityShape = iota
	ShapeSquare
)

// KindAttributes 每种下落物的常量属性
type KindAttributes struct {
	Name        string      // 稳定名称，用于日志、指标标签和购买命令
	Radius      float64     // 半径（像素）
	SpeedFactor float64     // 相对于当前速度的系数
	Icon        rune        // 图标字符（终端渲染和调试字体只支持 ASCII）
	Shape       EntityShape // 形状
	Color       uint32      // 主色 0xRRGGBB
}

// kindTable 下落物属性表
var kindTable = map[EntityKind]KindAttributes{
	KindCoin:          {Name: "coin", Radius: 8, SpeedFactor: 1.0, Icon: 'o', Shape: ShapeCircle, Color: 0xfacc15},
	KindHazard:        {Name: "hazard", Radius: 8, SpeedFactor: 1.2, Icon: 'x', Shape: ShapeCircle, Color: 0xef4444},
	KindGoldenCoin:    {Name: "golden", Radius: 10, SpeedFactor: 0.9, Icon: '$', Shape: ShapeCircle, Color: 0xffd700},
	KindSlowTimeBonus: {Name: "slowtime", Radius: 10, SpeedFactor: 0.8, Icon: 'S', Shape: ShapeSquare, Color: 0x22c55e},
	KindMagnetBonus:   {Name: "magnet", Radius: 10, SpeedFactor: 0.8, Icon: 'M', Shape: ShapeSquare, Color: 0x38bdf8},
}

// Attributes 返回该类型的常量属性
func (k EntityKind) Attributes() KindAttributes {
	return kindTable[k]
}

// String 返回稳定名称
func (k EntityKind) String() string {
	if attrs, ok := kindTable[k]; ok {
		return attrs.Name
	}
	return "unknown"
}

// IsToken 普通代币和金币（漏接会扣生命）
func (k EntityKind) IsToken() bool {
	return k == KindCoin || k == KindGoldenCoin
}

// IsBonus 减速或磁铁奖励
func (k EntityKind) IsBonus() bool {
	return k == KindSlowTimeBonus || k == KindMagnetBonus
}

// AllKinds 按枚举顺序返回所有类型
func AllKinds() []EntityKind {
	return []EntityKind{KindCoin, KindHazard, KindGoldenCoin, KindSlowTimeBonus, KindMagnetBonus}
}
