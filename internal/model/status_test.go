package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRGBHex(t *testing.T) {
	t.Parallel()

	if got := (RGB{214, 245, 214}).Hex(); got != "D6F5D6" {
		t.Fatalf("Hex = %q", got)
	}
	if got := (RGB{0, 0, 0}).Hex(); got != "000000" {
		t.Fatalf("Hex = %q", got)
	}
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Fatalf("%q 应当合法", s)
		}
	}
	if Status("gone").Valid() {
		t.Fatal("未知状态不应合法")
	}
}

func TestLoadColorTable_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	colors, err := LoadColorTable(filepath.Join(t.TempDir(), "colors.json"))
	if err != nil {
		t.Fatalf("LoadColorTable: %v", err)
	}
	if colors[StatusReserved] != (RGB{214, 245, 214}) {
		t.Fatalf("reserved = %+v", colors[StatusReserved])
	}
}

func TestLoadColorTable_OverridesAndIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "colors.json")
	content := `{"reserved": [0, 128, 0], "påhittad": [1, 2, 3]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写配色: %v", err)
	}

	colors, err := LoadColorTable(path)
	if err != nil {
		t.Fatalf("LoadColorTable: %v", err)
	}
	if colors[StatusReserved] != (RGB{0, 128, 0}) {
		t.Fatalf("reserved = %+v", colors[StatusReserved])
	}
	// 未覆盖的状态保持默认色
	if colors[StatusDeclined] != (RGB{255, 230, 230}) {
		t.Fatalf("declined = %+v", colors[StatusDeclined])
	}
}

func TestLoadColorTable_BadFileFallsBackWithError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	bad := filepath.Join(dir, "trasig.json")
	if err := os.WriteFile(bad, []byte("inte json"), 0644); err != nil {
		t.Fatalf("写配色: %v", err)
	}
	colors, err := LoadColorTable(bad)
	if err == nil {
		t.Fatal("格式错误应当返回错误")
	}
	if colors[StatusUnknown] != (RGB{255, 255, 255}) {
		t.Fatalf("出错时要回退到默认配色: %+v", colors)
	}

	short := filepath.Join(dir, "kort.json")
	if err := os.WriteFile(short, []byte(`{"reserved": [1, 2]}`), 0644); err != nil {
		t.Fatalf("写配色: %v", err)
	}
	if _, err := LoadColorTable(short); err == nil {
		t.Fatal("非三元组应当返回错误")
	}

	outOfRange := filepath.Join(dir, "stor.json")
	if err := os.WriteFile(outOfRange, []byte(`{"reserved": [1, 2, 300]}`), 0644); err != nil {
		t.Fatalf("写配色: %v", err)
	}
	if _, err := LoadColorTable(outOfRange); err == nil {
		t.Fatal("超出 0-255 应当返回错误")
	}
}
