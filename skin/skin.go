package skin

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/beatline/parameter"
)

// Skin is the keyed visual property set for the playfield. Colors accept
// W3C names or #RRGGBB hex; glyphs take the first rune of the value.
type Skin struct {
	LineGlyph rune
	LineColor tcell.Color

	ReceptorGlyph rune
	ReceptorColor tcell.Color
	FlashColor    tcell.Color

	// ReceptorOffset is the rows kept between the receptor and the nearest
	// field edge
	ReceptorOffset int

	RailGlyph rune
	RailColor tcell.Color

	HudColor tcell.Color

	LaneWidth int
}

func defaults(v *viper.Viper) {
	v.SetDefault("line.glyph", "─")
	v.SetDefault("line.color", "#5fd7ff")
	v.SetDefault("receptor.glyph", "━")
	v.SetDefault("receptor.color", "#ffaf00")
	v.SetDefault("receptor.flashColor", "#ffffff")
	v.SetDefault("receptor.offset", parameter.ReceptorMargin)
	v.SetDefault("rail.glyph", "│")
	v.SetDefault("rail.color", "#444444")
	v.SetDefault("hud.color", "#9e9e9e")
	v.SetDefault("lane.width", parameter.DefaultLaneWidth)
}

// Default returns the built-in skin
func Default() *Skin {
	v := viper.New()
	defaults(v)
	return fromViper(v)
}

// Load reads a TOML skin file over the default battery, so files only
// carry the keys they change
func Load(path string) (*Skin, error) {
	v := viper.New()
	defaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading skin file: %w", err)
	}
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Skin {
	return &Skin{
		LineGlyph:      firstRune(v.GetString("line.glyph"), '─'),
		LineColor:      tcell.GetColor(v.GetString("line.color")),
		ReceptorGlyph:  firstRune(v.GetString("receptor.glyph"), '━'),
		ReceptorColor:  tcell.GetColor(v.GetString("receptor.color")),
		FlashColor:     tcell.GetColor(v.GetString("receptor.flashColor")),
		ReceptorOffset: v.GetInt("receptor.offset"),
		RailGlyph:      firstRune(v.GetString("rail.glyph"), '│'),
		RailColor:      tcell.GetColor(v.GetString("rail.color")),
		HudColor:       tcell.GetColor(v.GetString("hud.color")),
		LaneWidth:      v.GetInt("lane.width"),
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
