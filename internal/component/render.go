// component/render.go
package component

// Renderable — компонент для отрисовки
type Renderable struct {
	Sprite AssetHandle
	Scale  float64
}
