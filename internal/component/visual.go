// internal/component/visual.go
package component

// AssetHandle — непрозрачный идентификатор визуального ресурса.
// Ядро только переносит его, не заглядывая внутрь.
type AssetHandle string

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer Timer
}
