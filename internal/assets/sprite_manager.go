package assets

import (
	"image"
	"image/color"
	"path/filepath"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const generatedSpriteSize = 128

// SpriteManager загружает и кэширует изображения по непрозрачным хэндлам.
// Если файла нет, спрайт рисуется программно.
type SpriteManager struct {
	dir     string
	sprites map[component.AssetHandle]*ebiten.Image
}

// NewSpriteManager создает менеджер, который ищет PNG в dir.
func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[component.AssetHandle]*ebiten.Image),
	}
}

// Load загружает спрайты для всех хэндлов.
func (m *SpriteManager) Load(handles ...component.AssetHandle) {
	for _, h := range handles {
		m.loadSingle(h)
	}
}

func (m *SpriteManager) loadSingle(h component.AssetHandle) {
	if _, ok := m.sprites[h]; ok {
		return
	}
	path := filepath.Join(m.dir, string(h)+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logging.Debug("sprite %s: %v, using generated image", h, err)
		img = generate(h)
	} else {
		logging.Info("Successfully loaded sprite %s from %s", h, path)
	}
	m.sprites[h] = img
}

// Get возвращает спрайт; незагруженный хэндл загружается по требованию.
func (m *SpriteManager) Get(h component.AssetHandle) *ebiten.Image {
	if _, ok := m.sprites[h]; !ok {
		m.loadSingle(h)
	}
	return m.sprites[h]
}

// Cleanup освобождает все изображения.
func (m *SpriteManager) Cleanup() {
	for h, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, h)
	}
}

// generate рисует заглушку: игрок — треугольник носом вверх, снаряд — маленький
// круг, всё остальное — круг цвета врага.
func generate(h component.AssetHandle) *ebiten.Image {
	switch h {
	case "player":
		img := ebiten.NewImage(generatedSpriteSize, generatedSpriteSize)
		drawTriangle(img, config.PlayerColor)
		return img
	case "bullet":
		img := ebiten.NewImage(20, 20)
		vector.DrawFilledCircle(img, 10, 10, 9, config.ProjectileColor, true)
		return img
	default:
		img := ebiten.NewImage(generatedSpriteSize, generatedSpriteSize)
		half := float32(generatedSpriteSize) / 2
		vector.DrawFilledCircle(img, half, half, half-4, config.EnemyColor, true)
		vector.StrokeCircle(img, half, half, half-4, 4, color.White, true)
		return img
	}
}

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func drawTriangle(dst *ebiten.Image, clr color.RGBA) {
	s := float32(generatedSpriteSize)
	var path vector.Path
	path.MoveTo(s/2, 4)
	path.LineTo(s-8, s-8)
	path.LineTo(s/2, s*0.7)
	path.LineTo(8, s-8)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
