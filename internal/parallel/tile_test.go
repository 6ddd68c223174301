package parallel

import "testing"

// =============================================================================
// Tile Tests
// =============================================================================

func TestTile_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		tile         Tile
		wantX, wantY int
		wantW, wantH int
	}{
		{
			name:  "first tile",
			tile:  Tile{X: 0, Y: 0, Width: 64, Height: 64},
			wantX: 0, wantY: 0, wantW: 64, wantH: 64,
		},
		{
			name:  "second row first column",
			tile:  Tile{X: 0, Y: 1, Width: 64, Height: 64},
			wantX: 0, wantY: 64, wantW: 64, wantH: 64,
		},
		{
			name:  "edge tile",
			tile:  Tile{X: 2, Y: 3, Width: 32, Height: 16},
			wantX: 128, wantY: 192, wantW: 32, wantH: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.tile.Bounds()
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("Bounds() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTile_Contains(t *testing.T) {
	tile := Tile{X: 1, Y: 1, Width: 10, Height: 20}

	tests := []struct {
		x, y int
		want bool
	}{
		{64, 64, true},
		{73, 83, true},
		{74, 64, false},
		{64, 84, false},
		{63, 70, false},
	}
	for _, tt := range tests {
		if got := tile.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// =============================================================================
// TileGrid Tests
// =============================================================================

func TestTileGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		tilesX, tilesY int
	}{
		{"exact single", 64, 64, 1, 1},
		{"exact multiple", 128, 192, 2, 3},
		{"partial edge", 100, 65, 2, 2},
		{"tiny", 1, 1, 1, 1},
		{"empty", 0, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(tt.width, tt.height)
			if g.TilesX() != tt.tilesX || g.TilesY() != tt.tilesY {
				t.Errorf("tiles = %dx%d, want %dx%d", g.TilesX(), g.TilesY(), tt.tilesX, tt.tilesY)
			}
			if g.TileCount() != tt.tilesX*tt.tilesY {
				t.Errorf("TileCount() = %d, want %d", g.TileCount(), tt.tilesX*tt.tilesY)
			}
		})
	}
}

func TestTileGrid_CoversEveryPixelOnce(t *testing.T) {
	const width, height = 150, 97
	g := NewTileGrid(width, height)

	hits := make([]int, width*height)
	for _, tile := range g.AllTiles() {
		x0, y0, w, h := tile.Bounds()
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				hits[y*width+x]++
			}
		}
	}

	for i, n := range hits {
		if n != 1 {
			t.Fatalf("pixel (%d, %d) covered %d times, want 1", i%width, i/width, n)
		}
	}
}

func TestTileGrid_IndexMatchesPosition(t *testing.T) {
	g := NewTileGrid(200, 130)
	for i, tile := range g.AllTiles() {
		if tile.Index != i {
			t.Errorf("tile (%d, %d).Index = %d, want %d", tile.X, tile.Y, tile.Index, i)
		}
		if got := g.TileAt(tile.X, tile.Y); got != tile {
			t.Errorf("TileAt(%d, %d) returned a different tile", tile.X, tile.Y)
		}
	}
}

func TestTileGrid_TileAtPixel(t *testing.T) {
	g := NewTileGrid(100, 100)

	tile := g.TileAtPixel(70, 10)
	if tile == nil || tile.X != 1 || tile.Y != 0 {
		t.Errorf("TileAtPixel(70, 10) = %+v, want tile (1, 0)", tile)
	}
	if edge := g.TileAt(1, 1); edge.Width != 36 || edge.Height != 36 {
		t.Errorf("edge tile size = %dx%d, want 36x36", edge.Width, edge.Height)
	}
	if g.TileAtPixel(100, 0) != nil {
		t.Error("TileAtPixel(100, 0) should be nil")
	}
	if g.TileAt(-1, 0) != nil {
		t.Error("TileAt(-1, 0) should be nil")
	}
}
