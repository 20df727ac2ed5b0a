package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理同一类实体
// 遍历顺序与创建顺序一致（命中判定依赖扫描顺序）
type EntityManager[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体ID
	order []EntityID
	// 实体ID -> 实体实例
	entities map[EntityID]T
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0),
		entities:          make(map[EntityID]T),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 登记实体并返回唯一ID
func (em *EntityManager[T]) CreateEntity(entity T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = entity
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// GetEntity 获取实体
func (em *EntityManager[T]) GetEntity(id EntityID) (T, bool) {
	entity, ok := em.entities[id]
	return entity, ok
}

// Has 检查实体是否存在
func (em *EntityManager[T]) Has(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// Len 返回当前实体数量（包含已标记但尚未清理的实体）
func (em *EntityManager[T]) Len() int {
	return len(em.order)
}

// PendingDestroy 返回已标记待删除的实体数量
func (em *EntityManager[T]) PendingDestroy() int {
	return len(em.entitiesToDestroy)
}

// Each 按创建顺序遍历实体，fn 返回 false 时停止
// 遍历期间调用 DestroyEntity 是安全的
func (em *EntityManager[T]) Each(fn func(id EntityID, entity T) bool) {
	for _, id := range em.order {
		entity, ok := em.entities[id]
		if !ok {
			continue
		}
		if !fn(id, entity) {
			return
		}
	}
}

// Entities 按创建顺序返回所有实体
func (em *EntityManager[T]) Entities() []T {
	result := make([]T, 0, len(em.order))
	for _, id := range em.order {
		result = append(result, em.entities[id])
	}
	return result
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回实际删除的数量
func (em *EntityManager[T]) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, ok := em.entities[id]; ok {
			delete(em.entities, id)
			removed++
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 保持剩余实体的相对顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if _, ok := em.entities[id]; ok {
			kept = append(kept, id)
		}
	}
	em.order = kept

	return removed
}
