package config

import "sort"

// Presets are named parameter sets. The demo entries keep the modulus small
// enough that the circle stays readable; the historical entries are classic
// generators meant for the analyze/compare commands, not for drawing.
var Presets = map[string]*Config{
	"clock": {
		Modulus: 60, Multiplier: 7, Increment: 3, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"star": {
		Modulus: 17, Multiplier: 5, Increment: 0, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"tailspin": {
		Modulus: 48, Multiplier: 6, Increment: 2, Seed: 11,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"fullsweep": {
		Modulus: 64, Multiplier: 5, Increment: 3, Seed: 0,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"minstd": {
		Modulus: 2147483647, Multiplier: 16807, Increment: 0, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"randu": {
		Modulus: 2147483648, Multiplier: 65539, Increment: 0, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"glibc": {
		Modulus: 2147483648, Multiplier: 1103515245, Increment: 12345, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"zx81": {
		Modulus: 65537, Multiplier: 75, Increment: 74, Seed: 0,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
	"ranqd1": {
		Modulus: 4294967296, Multiplier: 1664525, Increment: 1013904223, Seed: 1,
		DelayMs: DefaultDelayMs, Theme: DefaultTheme, Bins: DefaultBins,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
