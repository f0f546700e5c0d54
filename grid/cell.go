package grid

import "github.com/lixenwraith/tilechase/vmath"

// Category classifies what a cell currently shows
type Category uint8

const (
	Plain Category = iota
	Trail
	Target
	Corrupt
	Player
	Chaser
	Nommer
	Runner
)

var categoryNames = [...]string{"plain", "trail", "target", "corrupt", "player", "chaser", "nommer", "runner"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// IsCharacter reports whether the category is an occupant glyph rather than a label
func (c Category) IsCharacter() bool {
	return c >= Player
}

// CorruptSeq is the sequence shown on a corrupted cell; no label can produce it
const CorruptSeq = "#"

// Cell is one tile of the grid
// Label and Seq are empty while the cell is vacated or shows an occupant glyph
type Cell struct {
	Pos      vmath.Pos
	Label    string
	Seq      string
	Glyph    string
	Category Category
}

// Labelled reports whether the cell currently carries a typeable label
func (c *Cell) Labelled() bool {
	return c.Seq != "" && c.Category != Corrupt && !c.Category.IsCharacter()
}

// Blocked reports whether nothing may step onto or type toward the cell
func (c *Cell) Blocked() bool {
	return c.Category.IsCharacter() || c.Category == Corrupt
}

// Vacate blanks the cell's text, leaving its category untouched
func (c *Cell) Vacate() {
	c.Label = ""
	c.Seq = ""
	c.Glyph = ""
}
