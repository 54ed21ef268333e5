package tui

import "go-survivor/internal/config"

// Camera переводит мировые координаты в клетки терминала; игрок в центре экрана.
type Camera struct {
	CenterX, CenterY float64 // мировая точка в центре экрана
	Width, Height    int     // размер экрана в клетках
}

// WorldToCell возвращает клетку для мировой точки и признак, что она на экране.
func (c Camera) WorldToCell(x, y float64) (int, int, bool) {
	cx := c.Width/2 + roundDiv(x-c.CenterX, config.TUICellWidth)
	cy := c.Height/2 + roundDiv(y-c.CenterY, config.TUICellHeight)
	return cx, cy, cx >= 0 && cy >= 0 && cx < c.Width && cy < c.Height
}

// CellToWorld — центр клетки в мировых координатах.
func (c Camera) CellToWorld(cx, cy int) (float64, float64) {
	x := c.CenterX + float64(cx-c.Width/2)*config.TUICellWidth
	y := c.CenterY + float64(cy-c.Height/2)*config.TUICellHeight
	return x, y
}

func roundDiv(v, cell float64) int {
	q := v / cell
	if q < 0 {
		return -int(-q + 0.5)
	}
	return int(q + 0.5)
}
