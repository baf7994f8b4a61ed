package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := `
# comment
BALLS_COUNT=5
export BALLS_TITLE="my balls"
BALLS_SPRITE='assets/ball.gif'
=novalue
garbage
 BALLS_TICK = 30ms
`
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{
		"BALLS_COUNT":  "5",
		"BALLS_TITLE":  "my balls",
		"BALLS_SPRITE": "assets/ball.gif",
		"BALLS_TICK":   "30ms",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BALLS_TEST_NEW=1\nBALLS_TEST_KEEP=file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BALLS_TEST_KEEP", "process")
	t.Setenv("BALLS_TEST_NEW", "")
	os.Unsetenv("BALLS_TEST_NEW")

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(set) != 1 || set[0] != "BALLS_TEST_NEW" {
		t.Errorf("set = %v", set)
	}
	if os.Getenv("BALLS_TEST_NEW") != "1" {
		t.Error("new variable not set")
	}
	if os.Getenv("BALLS_TEST_KEEP") != "process" {
		t.Error("process environment overwritten")
	}
}

func TestLoad_Missing(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil || set != nil {
		t.Errorf("Load(missing) = %v, %v", set, err)
	}
}
