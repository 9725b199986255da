package config

import "sort"

// Presets are built-in movement programs. Rotation counts for the turning
// programs assume the default geometry: a pivot turn changes heading by
// rotations * wheelCircumference / trackWidth radians, so 1.75 turns of a
// 20-unit wheel on a 70-unit track is a quarter turn.
var Presets = map[string][]MovementConfig{
	"demo": {
		{Direction: "forward", Wheels: "left", Rotations: 1},
		{Direction: "forward", Wheels: "right", Rotations: 1},
		{Direction: "forward", Wheels: "both", Rotations: 1},
		{Direction: "backward", Wheels: "left", Rotations: 1},
		{Direction: "backward", Wheels: "right", Rotations: 1},
		{Direction: "backward", Wheels: "both", Rotations: 1},
	},
	"square": {
		{Direction: "forward", Wheels: "both", Rotations: 3},
		{Direction: "forward", Wheels: "left", Rotations: 1.75},
		{Direction: "forward", Wheels: "both", Rotations: 3},
		{Direction: "forward", Wheels: "left", Rotations: 1.75},
		{Direction: "forward", Wheels: "both", Rotations: 3},
		{Direction: "forward", Wheels: "left", Rotations: 1.75},
		{Direction: "forward", Wheels: "both", Rotations: 3},
		{Direction: "forward", Wheels: "left", Rotations: 1.75},
	},
	"zigzag": {
		{Direction: "forward", Wheels: "both", Rotations: 2},
		{Direction: "forward", Wheels: "left", Rotations: 0.875},
		{Direction: "forward", Wheels: "both", Rotations: 2},
		{Direction: "forward", Wheels: "right", Rotations: 0.875},
		{Direction: "forward", Wheels: "both", Rotations: 2},
		{Direction: "forward", Wheels: "left", Rotations: 0.875},
		{Direction: "forward", Wheels: "both", Rotations: 2},
	},
	"line": {
		{Direction: "forward", Wheels: "both", Rotations: 4},
		{Direction: "backward", Wheels: "both", Rotations: 4},
	},
}

// GetPreset returns a copy of the named movement program, or nil if unknown.
func GetPreset(name string) []MovementConfig {
	prog, ok := Presets[name]
	if !ok {
		return nil
	}
	return append([]MovementConfig(nil), prog...)
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
