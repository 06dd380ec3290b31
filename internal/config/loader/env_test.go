package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	env := map[string]string{
		"GLYPHPAINT_WIDTH":     " 80 ",
		"GLYPHPAINT_LOG_LEVEL": "debug",
		"GLYPHPAINT_SAVE_DIR":  "",
		"OTHER_WIDTH":          "1",
	}
	l := NewEnvLoader("GLYPHPAINT_")
	l.SetLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	got := l.Load()
	want := []Override{
		{Env: "GLYPHPAINT_WIDTH", Path: "canvas.width", Value: "80"},
		{Env: "GLYPHPAINT_LOG_LEVEL", Path: "log.level", Value: "debug"},
		{Env: "GLYPHPAINT_SAVE_DIR", Path: "save.dir", Value: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Load()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEnvLoader_CursorGlyph(t *testing.T) {
	l := NewEnvLoader("GP_")
	l.SetLookup(func(k string) (string, bool) {
		if k == "GP_CURSOR_GLYPH" {
			return "@", true
		}
		return "", false
	})

	got := l.Load()
	if len(got) != 1 || got[0].Path != "cursor.glyph" || got[0].Value != "@" {
		t.Errorf("Load() = %+v", got)
	}
}
