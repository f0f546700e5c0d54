package render

import "github.com/lixenwraith/tilechase/grid"

// Board colors
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbLabel      = RGB{192, 202, 245} // Plain tile text
	RgbTrailBg    = RGB{41, 46, 66}    // Tile left behind by a player
	RgbTargetBg   = RGB{224, 175, 104} // Edible tile
	RgbTargetFg   = RGB{26, 27, 38}
	RgbCorrupt    = RGB{86, 95, 137} // Tile eaten away by the nommer

	RgbPlayer1 = RGB{158, 206, 106} // Green
	RgbPlayer2 = RGB{125, 207, 255} // Cyan
	RgbChaser  = RGB{247, 118, 142} // Red
	RgbNommer  = RGB{255, 158, 100} // Orange
	RgbRunner  = RGB{187, 154, 247} // Purple
)

// Status bar colors
var (
	RgbStatusBg     = RGB{36, 40, 59}
	RgbStatusText   = RGB{169, 177, 214}
	RgbProgressFill = RGB{115, 218, 202}
	RgbProgressRest = RGB{65, 72, 104}
	RgbPausedBg     = RGB{224, 175, 104}
	RgbPausedFg     = RGB{26, 27, 38}
	RgbPrompt       = RGB{255, 255, 255}
	RgbHelp         = RGB{86, 95, 137}
)

var playerColors = []RGB{RgbPlayer1, RgbPlayer2}

// PlayerColor returns the glyph color for player num
func PlayerColor(num int) RGB {
	return playerColors[num%len(playerColors)]
}

// cellColors returns the unlit foreground and background for a tile category
func cellColors(cat grid.Category) (fg, bg RGB) {
	switch cat {
	case grid.Trail:
		return RgbLabel, RgbTrailBg
	case grid.Target:
		return RgbTargetFg, RgbTargetBg
	case grid.Corrupt:
		return RgbCorrupt, RgbBackground
	case grid.Chaser:
		return RgbChaser, RgbBackground
	case grid.Nommer:
		return RgbNommer, RgbBackground
	case grid.Runner:
		return RgbRunner, RgbBackground
	case grid.Player:
		return RgbPlayer1, RgbBackground
	}
	return RgbLabel, RgbBackground
}
