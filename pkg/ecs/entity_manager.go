package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

type entry[T any] struct {
	id    EntityID
	value *T
}

// EntityManager 按创建顺序管理同一类实体
//
// 与按类型存放组件的 map 不同，这里保留生成顺序：
// 遍历顺序 = 创建顺序，碰撞结算依赖这一点保证结果稳定。
// 删除是延迟的：DestroyEntity 只做标记，RemoveMarkedEntities 统一清理。
type EntityManager[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体
	entities []entry[T]
	// 待删除的实体ID集合
	entitiesToDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make([]entry[T], 0),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 追加新实体并返回唯一ID
func (em *EntityManager[T]) CreateEntity(value T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	v := value
	em.entities = append(em.entities, entry[T]{id: id, value: &v})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	em.entitiesToDestroy[id] = struct{}{}
}

// IsMarked 检查实体是否已被标记删除
func (em *EntityManager[T]) IsMarked(id EntityID) bool {
	_, marked := em.entitiesToDestroy[id]
	return marked
}

// Get 获取实体数据
func (em *EntityManager[T]) Get(id EntityID) (*T, bool) {
	for _, e := range em.entities {
		if e.id == id {
			return e.value, true
		}
	}
	return nil, false
}

// RemoveMarkedEntities 清理所有标记删除的实体，保持剩余实体的相对顺序
func (em *EntityManager[T]) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	kept := em.entities[:0]
	for _, e := range em.entities {
		if _, marked := em.entitiesToDestroy[e.id]; !marked {
			kept = append(kept, e)
		}
	}
	// 释放尾部引用
	for i := len(kept); i < len(em.entities); i++ {
		em.entities[i] = entry[T]{}
	}
	em.entities = kept
	clear(em.entitiesToDestroy)
}

// Each 按创建顺序遍历所有实体（包括本轮已标记删除的实体）
func (em *EntityManager[T]) Each(fn func(id EntityID, value *T)) {
	for _, e := range em.entities {
		fn(e.id, e.value)
	}
}

// Values 按创建顺序返回所有实体数据的副本
func (em *EntityManager[T]) Values() []T {
	result := make([]T, 0, len(em.entities))
	for _, e := range em.entities {
		result = append(result, *e.value)
	}
	return result
}

// Len 返回实体数量（包括尚未清理的已标记实体）
func (em *EntityManager[T]) Len() int {
	return len(em.entities)
}

// Clear 删除所有实体，ID 计数不重置
func (em *EntityManager[T]) Clear() {
	em.entities = em.entities[:0]
	clear(em.entitiesToDestroy)
}
