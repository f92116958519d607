package config

import "sort"

var Presets = map[string]*EffectConfig{
	"binary": {
		Glyphs:      []string{"0", "1"},
		MinLifespan: 2000, LifespanJitter: 1000, CenteringOffset: 20,
		HorizontalJitter: 2.0 / 75.0, VerticalDrift: 1.0 / 400.0,
	},
	"hex": {
		Glyphs:      []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f"},
		MinLifespan: 1500, LifespanJitter: 1000, CenteringOffset: 20,
		HorizontalJitter: 2.0 / 75.0, VerticalDrift: 1.0 / 400.0,
	},
	"snow": {
		Glyphs:      []string{"*", "+", "·"},
		MinLifespan: 3000, LifespanJitter: 2000, CenteringOffset: 20,
		HorizontalJitter: 1.0 / 75.0, VerticalDrift: 1.0 / 800.0,
	},
}

func GetPreset(name string) *EffectConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
