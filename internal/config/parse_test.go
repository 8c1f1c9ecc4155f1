package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ArrowOS-Revived/android-vendor-qcom-opensource-system-bt/internal/logging"
)

func mustParse(t *testing.T, text string) *Config {
	t.Helper()
	cfg, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	return cfg
}

func TestParseDefaultSectionAndMerge(t *testing.T) {
	cfg := mustParse(t, "x=1\n[A]\ny=2\n[A]\nz=3\n")

	if got, want := cfg.Sections(), []string{DefaultSection, "A"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}
	if got := cfg.GetString(DefaultSection, "x", ""); got != "1" {
		t.Errorf("Global.x = %q, want 1", got)
	}
	if got, want := cfg.Keys("A"), []string{"y", "z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(A) = %v, want %v", got, want)
	}
	if !cfg.HasSection("A") {
		t.Error("HasSection(A) = false")
	}
	if cfg.HasSection("B") {
		t.Error("HasSection(B) = true")
	}
}

func TestParseMergeKeepsFirstSeenOrder(t *testing.T) {
	cfg := mustParse(t, "[A]\na=1\n[B]\nb=1\n[A]\nc=1\na=2\n")

	if got, want := cfg.Sections(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}
	if got, want := cfg.Keys("A"), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(A) = %v, want %v", got, want)
	}
	if got := cfg.GetString("A", "a", ""); got != "2" {
		t.Errorf("duplicate key: got %q, want last value 2", got)
	}
}

func TestParseWhitespaceAndComments(t *testing.T) {
	text := strings.Join([]string{
		"# leading comment",
		"   ; another comment",
		"",
		"  name   =   value with spaces   ",
		"\t[Adapter]\t",
		"empty =",
		"url = http://host/?a=b&c=d",
		"   # indented comment",
	}, "\n")

	cfg := mustParse(t, text)

	if got := cfg.GetString(DefaultSection, "name", ""); got != "value with spaces" {
		t.Errorf("name = %q", got)
	}
	if v, ok := cfg.Lookup("Adapter", "empty"); !ok || v != "" {
		t.Errorf("empty = %q, %v; want empty value present", v, ok)
	}
	if got := cfg.GetString("Adapter", "url", ""); got != "http://host/?a=b&c=d" {
		t.Errorf("value with '=' = %q", got)
	}
	if cfg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cfg.Len())
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	text := "good=1\nthis line has no separator\n[unterminated\n[]\n= no key\n[S]\nk=v\n"

	cfg := mustParse(t, text)

	if got, want := cfg.Sections(), []string{DefaultSection, "S"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}
	if got, want := cfg.Keys(DefaultSection), []string{"good"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(Global) = %v, want %v", got, want)
	}
}

func TestParseDropsEmptySections(t *testing.T) {
	cfg := mustParse(t, "[Empty]\n[Full]\nk=v\n[AlsoEmpty]\n# nothing\n")

	if cfg.HasSection("Empty") || cfg.HasSection("AlsoEmpty") {
		t.Error("headers without entries should not produce sections")
	}
	if got := collect(cfg); !reflect.DeepEqual(got, []string{"Full"}) {
		t.Errorf("iteration = %v, want [Full]", got)
	}
}

func TestParseSectionOrderFollowsFirstHeader(t *testing.T) {
	cfg := mustParse(t, "[A]\n[B]\nb=1\n[A]\na=1\n")

	if got, want := cfg.Sections(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}
}

func TestParseExplicitGlobalHeaderMerges(t *testing.T) {
	cfg := mustParse(t, "a=1\n[Global]\nb=2\n")

	if got, want := cfg.Keys(DefaultSection), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(Global) = %v, want %v", got, want)
	}
}

func TestParseCRLFAndBOM(t *testing.T) {
	cfg := mustParse(t, "\ufeffa=1\r\n[S]\r\nb=2\r\n")

	if got := cfg.GetString(DefaultSection, "a", ""); got != "1" {
		t.Errorf("a = %q, want 1", got)
	}
	if got := cfg.GetString("S", "b", ""); got != "2" {
		t.Errorf("b = %q, want 2", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestParseSkipsOversizedLine(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	junk := "junk" + strings.Repeat("x", 2<<20)
	text := "[A]\ngood=1\n" + junk + "\n[B]\nk=v\n"

	cfg, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	skipped := logs.FilterField(zap.String("reason", "line too long")).All()
	if len(skipped) != 1 {
		t.Fatalf("expected one 'line too long' entry, got %d", len(skipped))
	}
	if line := skipped[0].ContextMap()["line"]; line != int64(3) {
		t.Errorf("skipped line number = %v, want 3", line)
	}
	if got, want := cfg.Sections(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}
	if got := cfg.GetString("A", "good", ""); got != "1" {
		t.Errorf("A.good = %q, want 1", got)
	}
	if got := cfg.GetString("B", "k", ""); got != "v" {
		t.Errorf("B.k = %q, want v", got)
	}
	if got := cfg.Keys("A"); len(got) != 1 {
		t.Errorf("Keys(A) = %v, oversized line leaked into the config", got)
	}
}

func TestParseOversizedAssignmentIsDropped(t *testing.T) {
	long := "big=" + strings.Repeat("v", maxLineSize)
	cfg := mustParse(t, "[A]\n"+long+"\nsmall=1")

	if cfg.HasKey("A", "big") {
		t.Error("oversized assignment should be skipped")
	}
	if got := cfg.GetString("A", "small", ""); got != "1" {
		t.Errorf("A.small = %q, want 1 (last line without newline)", got)
	}
}

func TestParseReadError(t *testing.T) {
	cfg, err := Parse(failingReader{})
	if err == nil {
		t.Fatal("Parse() should fail when the reader fails")
	}
	if cfg != nil {
		t.Error("Parse() should return a nil config on read failure")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error should wrap the read error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bt_config.conf")
	if err := os.WriteFile(path, []byte("[Adapter]\nAddress = 00:11:22:33:44:55\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.GetString("Adapter", "Address", ""); got != "00:11:22:33:44:55" {
		t.Errorf("Address = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	if cfg != nil {
		t.Error("Load() of a missing file should return nil config")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error should wrap fs.ErrNotExist")
	}
}

func TestLoadDirectory(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err == nil || cfg != nil {
		t.Fatalf("Load(dir) = %v, %v; want nil config and error", cfg, err)
	}
	if IsNotFound(err) {
		t.Error("a directory is not a missing file")
	}
}
