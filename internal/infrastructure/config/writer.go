package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tomlSectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg to path as TOML with its sections sorted by name,
// so regenerated files diff cleanly.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeConfig renders cfg the way WriteConfigOrdered stores it.
func EncodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

type tomlSection struct {
	name  string
	lines []string
}

// sortTOMLSections reorders [section] blocks alphabetically. Keys before the
// first header stay on top.
func sortTOMLSections(content string) string {
	var preamble []string
	var sections []tomlSection

	for _, line := range strings.Split(content, "\n") {
		if match := tomlSectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, tomlSection{name: match[1], lines: []string{line}})
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(sections, func(a, b tomlSection) int {
		return strings.Compare(a.name, b.name)
	})

	blocks := make([]string, 0, len(sections)+1)
	if len(preamble) > 0 {
		blocks = append(blocks, strings.Join(preamble, "\n"))
	}
	for _, sec := range sections {
		blocks = append(blocks, strings.Join(sec.lines, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
