// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		wantPrompt string
	}{
		{"english", "en", "Please enter the first number: "},
		{"chinese", "zh", "请输入第一个数字: "},
		{"upper case", "ZH", "请输入第一个数字: "},
		{"region tag", "zh-CN", "请输入第一个数字: "},
		{"posix locale", "zh_CN.UTF-8", "请输入第一个数字: "},
		{"english region", "en_US.UTF-8", "Please enter the first number: "},
		{"empty", "", "Please enter the first number: "},
		{"unknown", "fr", "Please enter the first number: "},
		{"unknown region", "fr-CA", "Please enter the first number: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPrompt, Lookup(tt.lang).FirstPrompt)
		})
	}
}

func TestBuiltinCatalogs(t *testing.T) {
	en := Lookup("en")
	assert.Equal(t, Catalog{
		FirstPrompt:  "Please enter the first number: ",
		SecondPrompt: "Please enter the second number: ",
		InvalidInput: "Error: please enter a valid number",
	}, en)

	zh := Lookup("zh")
	assert.Equal(t, Catalog{
		FirstPrompt:  "请输入第一个数字: ",
		SecondPrompt: "请输入第二个数字: ",
		InvalidInput: "错误：请输入有效的数字",
	}, zh)

	assert.ElementsMatch(t, []string{"en", "zh"}, Languages())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yaml")
	writeFile(t, path, `
de:
  first_prompt: "Bitte die erste Zahl eingeben: "
  second_prompt: "Bitte die zweite Zahl eingeben: "
  invalid_input: "Fehler: bitte eine gültige Zahl eingeben"
ES:
  first_prompt: "Introduzca el primer número: "
`)

	de, err := LoadFile(path, "de_DE.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "Bitte die erste Zahl eingeben: ", de.FirstPrompt)
	assert.Equal(t, "Fehler: bitte eine gültige Zahl eingeben", de.InvalidInput)

	es, err := LoadFile(path, "es")
	require.NoError(t, err)
	assert.Equal(t, "Introduzca el primer número: ", es.FirstPrompt)
	assert.Equal(t, "Please enter the second number: ", es.SecondPrompt, "missing keys fall back to English")
	assert.Equal(t, "Error: please enter a valid number", es.InvalidInput)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		lang   string
		errMsg string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(dir, "does-not-exist.yaml")
			},
			lang:   "en",
			errMsg: "reading catalog",
		},
		{
			name: "malformed yaml",
			setup: func(t *testing.T) string {
				path := filepath.Join(dir, "bad.yaml")
				writeFile(t, path, "en: [unterminated")
				return path
			},
			lang:   "en",
			errMsg: "parsing catalogs",
		},
		{
			name: "language not present",
			setup: func(t *testing.T) string {
				path := filepath.Join(dir, "de-only.yaml")
				writeFile(t, path, "de:\n  first_prompt: \"Zahl: \"\n")
				return path
			},
			lang:   "ja",
			errMsg: `no entry for language "ja"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.setup(t), tt.lang)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
