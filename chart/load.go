package chart

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/beatline/parameter"
)

// Load reads a TOML chart file. Sections that omit a signature get the
// default meter; the result is normalized and ready for generation.
//
// File shape:
//
//	title = "..."
//	length = 96000
//	[[sections]]
//	start = 0
//	bpm = 120
//	signature = 4
//	[[velocities]]
//	time = 16000
//	multiplier = 1.5
func Load(path string) (*Chart, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading chart file: %w", err)
	}

	c := &Chart{
		Title:  v.GetString("title"),
		Length: v.GetInt64("length"),
	}
	if err := v.UnmarshalKey("sections", &c.Sections); err != nil {
		return nil, fmt.Errorf("error decoding sections: %w", err)
	}
	if err := v.UnmarshalKey("velocities", &c.Velocities); err != nil {
		return nil, fmt.Errorf("error decoding velocities: %w", err)
	}

	// Loader convenience only; the generator treats signature <= 0 as
	// degenerate and skips, which is the wrong reading for authored files
	for i := range c.Sections {
		if c.Sections[i].Signature <= 0 {
			c.Sections[i].Signature = parameter.DefaultSignature
		}
	}

	c.Normalize()
	return c, nil
}
