// internal/types/types.go
package types

// EntityID — идентификатор сущности. Выдаётся монотонно, поэтому порядок
// идентификаторов совпадает с порядком создания.
type EntityID uint64
