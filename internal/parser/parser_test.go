package parser

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const shaderSource = `vec3 shade(vec3 n) {
    vec3 c = n;
    return c;
}
`

func TestNewContextFromSource(t *testing.T) {
	p := New()
	defer p.Close()

	pc, err := NewContextFromSource(context.Background(), p, "test.fsh", []byte(shaderSource))
	if err != nil {
		t.Fatalf("NewContextFromSource failed: %v", err)
	}
	defer pc.Close()

	root := pc.RootNode()
	if root == nil {
		t.Fatal("expected a root node")
	}
	if root.Type() != "translation_unit" {
		t.Errorf("root kind = %s, want translation_unit", root.Type())
	}
	if pc.LineMap().LineCount() != 5 {
		t.Errorf("LineCount = %d, want 5", pc.LineMap().LineCount())
	}
}

func TestNewContextReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "composite.fsh")
	if err := os.WriteFile(path, []byte(shaderSource), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	p := New()
	defer p.Close()

	pc, err := NewContext(context.Background(), p, path)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	defer pc.Close()

	if pc.Path() != path {
		t.Errorf("Path = %s, want %s", pc.Path(), path)
	}
	if string(pc.Source()) != shaderSource {
		t.Error("source snapshot does not match file contents")
	}
}

func TestNewContextMissingFile(t *testing.T) {
	p := New()
	defer p.Close()

	_, err := NewContext(context.Background(), p, filepath.Join(t.TempDir(), "missing.fsh"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSerializesCallers(t *testing.T) {
	p := New()
	defer p.Close()

	// The parser instance must be exclusively held during a parse; hammer it
	// from several goroutines to let the race detector catch violations.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pc, err := NewContextFromSource(context.Background(), p, "x.fsh", []byte(shaderSource))
			if err != nil {
				t.Errorf("parse failed: %v", err)
				return
			}
			pc.Close()
		}()
	}
	wg.Wait()
}
