package components

// GameElement 所有可移动实体共享的基础数据
// 保存连续坐标（行、列）、创建时间和内部时间标记
//
// 设计说明:
// - 行是整数车道索引，列是连续坐标，向右增大
// - 不对坐标做任何校验，由调用方保证取值合法
// - InternalTime 用于基于时间的门控（如子弹每经过一个时间单位才前进一次）
type GameElement struct {
	row          int
	col          float64
	creationTime float64
	internalTime float64
}

// NewGameElement 创建基础元素，内部时间标记初始化为创建时间
func NewGameElement(row int, col, creationTime float64) GameElement {
	return GameElement{
		row:          row,
		col:          col,
		creationTime: creationTime,
		internalTime: creationTime,
	}
}

// Row 返回所在行
func (g *GameElement) Row() int { return g.row }

// SetRow 设置所在行
func (g *GameElement) SetRow(row int) { g.row = row }

// Col 返回所在列
func (g *GameElement) Col() float64 { return g.col }

// SetCol 设置所在列
func (g *GameElement) SetCol(col float64) { g.col = col }

// CreationTime 返回创建时间
func (g *GameElement) CreationTime() float64 { return g.creationTime }

// InternalTime 返回最近一次基于时间的状态更新时刻
func (g *GameElement) InternalTime() float64 { return g.internalTime }

// SetInternalTime 记录最近一次基于时间的状态更新时刻
func (g *GameElement) SetInternalTime(t float64) { g.internalTime = t }
