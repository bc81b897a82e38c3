package cli

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func decodePNGFile(t *testing.T, path string) (width, height int) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("%s is not valid PNG: %v", path, err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestLinkCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	if err := runCommand(t, "link", "example.com", "-o", out); err != nil {
		t.Fatalf("link command failed: %v", err)
	}

	w, h := decodePNGFile(t, out)
	if w != 250 || h != 250 {
		t.Errorf("output = %dx%d, want 250x250", w, h)
	}
}

func TestLinkCommandStyleFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	err := runCommand(t, "link", "example.com", "-o", out,
		"--target-px", "512", "--color", "#336699", "--level", "Q")
	if err != nil {
		t.Fatalf("link command failed: %v", err)
	}

	if w, h := decodePNGFile(t, out); w != 512 || h != 512 {
		t.Errorf("output = %dx%d, want 512x512", w, h)
	}
}

func TestLinkCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"config out of range", []string{"link", "example.com", "--target-px", "50"}},
		{"bad color", []string{"link", "example.com", "--color", "red"}},
		{"bad level", []string{"link", "example.com", "--level", "X"}},
		{"missing logo file", []string{"link", "example.com", "--logo", "does-not-exist.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", filepath.Join(t.TempDir(), "out.png"))
			if err := runCommand(t, args...); err == nil {
				t.Error("command succeeded, want error")
			}
		})
	}
}

func TestVCardCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")

	err := runCommand(t, "vcard",
		"--first-name", "Ada", "--last-name", "Lovelace",
		"--email", "ada@example.com", "-o", out)
	if err != nil {
		t.Fatalf("vcard command failed: %v", err)
	}

	if w, h := decodePNGFile(t, out); w != 250 || h != 250 {
		t.Errorf("output = %dx%d, want 250x250", w, h)
	}
}

func TestStyleConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(cfgPath, []byte("target_px = 512\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// File alone sets the size.
	out := filepath.Join(dir, "a.png")
	if err := runCommand(t, "link", "example.com", "--config", cfgPath, "-o", out); err != nil {
		t.Fatalf("link command failed: %v", err)
	}
	if w, _ := decodePNGFile(t, out); w != 512 {
		t.Errorf("config file width = %d, want 512", w)
	}

	// An explicit flag wins over the file.
	out = filepath.Join(dir, "b.png")
	err := runCommand(t, "link", "example.com", "--config", cfgPath, "--target-px", "300", "-o", out)
	if err != nil {
		t.Fatalf("link command failed: %v", err)
	}
	if w, _ := decodePNGFile(t, out); w != 300 {
		t.Errorf("flag override width = %d, want 300", w)
	}
}
