package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads a TOML batch configuration, applying DefaultConfig for
// every setting the file omits.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("runner: load config %s: %w", path, err)
	}
	cfg.normalize()

	return cfg, nil
}

// LoadCases reads every *.json file in dir, in sorted filename order, as
// one case each: {"tool": "...", "input": {...}}, named after the file.
func LoadCases(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("runner: read samples dir: %w", err)
	}

	var cases []Case
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("runner: read case %s: %w", e.Name(), err)
		}
		var raw struct {
			Tool  string          `json:"tool"`
			Input json.RawMessage `json:"input"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("runner: parse case %s: %w", e.Name(), err)
		}
		cases = append(cases, Case{
			Name:  strings.TrimSuffix(e.Name(), ".json"),
			Tool:  raw.Tool,
			Input: raw.Input,
		})
	}

	return cases, nil
}

// SampleCases returns the built-in smoke pair: one feasible belts network
// and one feasible factory plant.
func SampleCases() []Case {
	return []Case{
		{
			Name: "belts_sample",
			Tool: "belts",
			Input: json.RawMessage(`{
				"nodes": ["s1", "s2", "a", "b", "c", "sink"],
				"edges": [
					{"from":"s1","to":"a","lo":0,"hi":1000},
					{"from":"s2","to":"a","lo":0,"hi":1000},
					{"from":"a","to":"b","lo":0,"hi":1000},
					{"from":"b","to":"sink","lo":0,"hi":900},
					{"from":"a","to":"c","lo":0,"hi":1000},
					{"from":"c","to":"sink","lo":0,"hi":600}
				],
				"sources": {"s1":900, "s2":600},
				"sink": "sink",
				"node_caps": {}
			}`),
		},
		{
			Name: "factory_sample",
			Tool: "factory",
			Input: json.RawMessage(`{
				"machines": {
					"assembler_1": {"crafts_per_min": 30},
					"chemical": {"crafts_per_min": 60}
				},
				"recipes": {
					"iron_plate": {
						"machine": "chemical",
						"time_s": 3.2,
						"in": {"iron_ore": 1},
						"out": {"iron_plate": 1}
					},
					"copper_plate": {
						"machine": "chemical",
						"time_s": 3.2,
						"in": {"copper_ore": 1},
						"out": {"copper_plate": 1}
					},
					"green_circuit": {
						"machine": "assembler_1",
						"time_s": 0.5,
						"in": {"iron_plate": 1, "copper_plate": 3},
						"out": {"green_circuit": 1}
					}
				},
				"modules": {
					"assembler_1": {"prod": 0.1, "speed": 0.15},
					"chemical": {"prod": 0.2, "speed": 0.1}
				},
				"limits": {
					"raw_supply_per_min": {"iron_ore": 5000, "copper_ore": 5000},
					"max_machines": {"assembler_1": 300, "chemical": 300}
				},
				"target": {"item": "green_circuit", "rate_per_min": 1800}
			}`),
		},
	}
}
