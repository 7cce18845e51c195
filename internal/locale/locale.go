// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale holds the operator-facing messages of the calculator,
// keyed by language tag. Built-in catalogs ship embedded; a user catalog
// file with the same YAML shape can override them.
package locale

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultLang is used when a requested language has no catalog.
const DefaultLang = "en"

//go:embed catalogs.yaml
var builtinData []byte

// Catalog is the set of messages for one language.
type Catalog struct {
	FirstPrompt  string `json:"first_prompt" yaml:"first_prompt"`
	SecondPrompt string `json:"second_prompt" yaml:"second_prompt"`
	InvalidInput string `json:"invalid_input" yaml:"invalid_input"`
}

var builtin = mustParse(builtinData)

func mustParse(data []byte) map[string]Catalog {
	catalogs, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("locale: built-in catalogs: %v", err))
	}
	if _, ok := catalogs[DefaultLang]; !ok {
		panic("locale: built-in catalogs missing " + DefaultLang)
	}
	return catalogs
}

func parse(data []byte) (map[string]Catalog, error) {
	var raw map[string]Catalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing catalogs: %w", err)
	}
	catalogs := make(map[string]Catalog, len(raw))
	for tag, c := range raw {
		catalogs[strings.ToLower(tag)] = c
	}
	return catalogs, nil
}

// Languages returns the tags of the built-in catalogs.
func Languages() []string {
	tags := make([]string, 0, len(builtin))
	for tag := range builtin {
		tags = append(tags, tag)
	}
	return tags
}

// Lookup returns the built-in catalog for lang. Region and encoding
// suffixes are ignored when the full tag has no catalog ("zh-CN" and
// "zh_CN.UTF-8" resolve to "zh"); unknown languages resolve to DefaultLang.
func Lookup(lang string) Catalog {
	if c, ok := find(builtin, lang); ok {
		return c
	}
	return builtin[DefaultLang]
}

// LoadFile reads a user catalog file and returns its entry for lang.
// Empty messages in the entry are filled from the built-in DefaultLang
// catalog. It is an error for the file to have no entry for lang.
func LoadFile(path, lang string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	catalogs, err := parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	c, ok := find(catalogs, lang)
	if !ok {
		return Catalog{}, fmt.Errorf("catalog %s has no entry for language %q", path, lang)
	}
	return c.withDefaults(builtin[DefaultLang]), nil
}

func find(catalogs map[string]Catalog, lang string) (Catalog, bool) {
	tag := strings.ToLower(strings.TrimSpace(lang))
	if tag == "" {
		tag = DefaultLang
	}
	if i := strings.IndexByte(tag, '.'); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if c, ok := catalogs[tag]; ok {
		return c, true
	}
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		c, ok := catalogs[tag[:i]]
		return c, ok
	}
	return Catalog{}, false
}

func (c Catalog) withDefaults(d Catalog) Catalog {
	if c.FirstPrompt == "" {
		c.FirstPrompt = d.FirstPrompt
	}
	if c.SecondPrompt == "" {
		c.SecondPrompt = d.SecondPrompt
	}
	if c.InvalidInput == "" {
		c.InvalidInput = d.InvalidInput
	}
	return c
}
