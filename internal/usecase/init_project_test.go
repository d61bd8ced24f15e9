package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/3-lines-studio/landgen/internal/adapters/cli"
	"github.com/3-lines-studio/landgen/internal/adapters/fs"
	"github.com/3-lines-studio/landgen/internal/config"
	"github.com/3-lines-studio/landgen/internal/templates"
)

func TestInitProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "worldcup")
	var buf bytes.Buffer
	svc := NewInitService(fs.NewOSFileSystem(), cli.NewWriterOutput(&buf))

	out := svc.InitProject(InitInput{ProjectDir: dir})
	if !out.Success {
		t.Fatalf("InitProject() error = %v", out.Error)
	}

	for _, name := range []string{"landgen.yaml", "template.html", "components/hero.html", "locale/en.json", "locale/zh-CN.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	en := readFile(t, filepath.Join(dir, "locale", "en.json"))
	if !strings.Contains(en, `"title": "worldcup"`) {
		t.Errorf("site name not substituted:\n%s", en)
	}
	if !strings.Contains(buf.String(), "(generated)") {
		t.Errorf("expected generated files in output:\n%s", buf.String())
	}
}

func TestInitProjectThenGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "worldcup")
	osfs := fs.NewOSFileSystem()
	if out := NewInitService(osfs, cli.NewWriterOutput(&bytes.Buffer{})).InitProject(InitInput{ProjectDir: dir}); !out.Success {
		t.Fatalf("InitProject() error = %v", out.Error)
	}

	cfg, err := config.Load(filepath.Join(dir, "landgen.yaml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	svc, _ := newTestService(osfs)
	gen := svc.Generate(context.Background(), SiteFromConfig(cfg))
	if !gen.Success || len(gen.Warnings()) != 0 {
		t.Fatalf("Generate() = %+v", gen)
	}

	cn := readFile(t, filepath.Join(dir, "public", "index_cn.html"))
	for _, want := range []string{`<html lang="zh-CN">`, "<title>worldcup</title>", "一键开启 2026 世界杯", `href="assets/css/hero.css"`} {
		if !strings.Contains(cn, want) {
			t.Errorf("index_cn.html missing %q:\n%s", want, cn)
		}
	}
	if strings.Contains(cn, "{hero.") {
		t.Errorf("dangling placeholders in starter output:\n%s", cn)
	}
}

func TestInitProjectNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"keep.txt": "x"})

	out := NewInitService(fs.NewOSFileSystem(), cli.NewWriterOutput(&bytes.Buffer{})).InitProject(InitInput{ProjectDir: dir})
	if !errors.Is(out.Error, ErrDirNotEmpty) {
		t.Errorf("Error = %v, want ErrDirNotEmpty", out.Error)
	}
}

func TestInitProjectInvalidStarter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	out := NewInitService(fs.NewOSFileSystem(), cli.NewWriterOutput(&bytes.Buffer{})).InitProject(InitInput{ProjectDir: dir, Starter: "spa"})
	if !errors.Is(out.Error, templates.ErrInvalidStarter) {
		t.Errorf("Error = %v, want ErrInvalidStarter", out.Error)
	}
}
