package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(26, 27, 38), HexToColor("#1a1b26"))
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), HexToColor("#fff"))
	assert.Equal(t, tcell.ColorDefault, HexToColor("not-a-color"))
}

func TestParseColorString(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(122, 162, 247), ParseColorString("#7aa2f7"))
	assert.Equal(t, tcell.NewRGBColor(10, 20, 30), ParseColorString("rgb(10, 20, 30)"))
	assert.Equal(t, tcell.ColorDefault, ParseColorString("rgb(300, 0, 0)"))
	assert.Equal(t, tcell.ColorDefault, ParseColorString(""))
}

func TestLoadThemeOrDefaultFallsBack(t *testing.T) {
	th := LoadThemeOrDefault("no-such-theme")
	assert.Equal(t, "tokyo-night", th.Name)

	th = LoadThemeOrDefault("default")
	assert.Equal(t, "default", th.Name)
}
