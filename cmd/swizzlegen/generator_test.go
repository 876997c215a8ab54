package main

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableCounts(t *testing.T) {
	for dim, want := range map[int]int{2: 4, 3: 24, 4: 120} {
		if got := len(Table(dim)); got != want {
			t.Errorf("Table(%d): got %d swizzles, want %d", dim, got, want)
		}
	}
}

func TestTableOrder(t *testing.T) {
	var names []string
	for _, s := range Table(3)[:6] {
		names = append(names, s.Name)
	}
	want := []string{"XY", "XYZ", "XZ", "XZY", "YX", "YXZ"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Table(3) order mismatch (-want +got):\n%s", diff)
	}

	// The rgba alphabet follows xyzw and mirrors its order.
	table := Table(3)
	if got := table[12].Name; got != "RG" {
		t.Errorf("Table(3)[12]: got %s, want RG", got)
	}
	if diff := cmp.Diff(table[1].Indices, table[13].Indices); diff != "" {
		t.Errorf("XYZ and RGB select different components (-xyz +rgb):\n%s", diff)
	}
}

func TestTableEntries(t *testing.T) {
	for dim := 2; dim <= 4; dim++ {
		seen := make(map[string]bool)
		for _, s := range Table(dim) {
			if seen[s.Name] {
				t.Errorf("Table(%d): duplicate swizzle %s", dim, s.Name)
			}
			seen[s.Name] = true

			if len(s.Name) != len(s.Indices) {
				t.Errorf("Table(%d): %s has %d indices", dim, s.Name, len(s.Indices))
			}
			used := make(map[int]bool)
			for _, p := range s.Indices {
				if p < 0 || p >= dim {
					t.Errorf("Table(%d): %s selects out-of-range component %d", dim, s.Name, p)
				}
				if used[p] {
					t.Errorf("Table(%d): %s repeats component %d", dim, s.Name, p)
				}
				used[p] = true
			}
		}
	}
}

func TestRenderSection(t *testing.T) {
	section, err := renderSection(3)
	if err != nil {
		t.Fatalf("renderSection(3) failed: %v", err)
	}

	expected := []string{
		"// Vector3 swizzles.",
		"func (v Vector3[T]) XZY() Vector3[T] { return Vector3[T]{v[0], v[2], v[1]} }",
		"func (v *Vector3[T]) SetXZY(s Vector3[T]) { v[0], v[2], v[1] = s[0], s[1], s[2] }",
		"func (v Vector3[T]) BR() Vector2[T] { return Vector2[T]{v[2], v[0]} }",
		"func (v *Vector3[T]) SetBR(s Vector2[T]) { v[2], v[0] = s[0], s[1] }",
	}
	for _, want := range expected {
		if !strings.Contains(section, want) {
			t.Errorf("renderSection(3) is missing %q", want)
		}
	}
	if strings.Contains(section, "XW") {
		t.Errorf("renderSection(3) references a fourth component")
	}
}

func TestRenderSectionUnsupportedDim(t *testing.T) {
	for _, dim := range []int{0, 1, 5} {
		if _, err := renderSection(dim); err == nil {
			t.Errorf("renderSection(%d): expected error", dim)
		}
	}
}

func TestRender(t *testing.T) {
	src := string(Render("vec", []string{"// a\n", "// b\n"}))
	want := "// Code generated by swizzlegen. DO NOT EDIT.\n\npackage vec\n\n// a\n// b\n"
	if src != want {
		t.Errorf("Render: got %q, want %q", src, want)
	}
}

func TestGeneratorRun(t *testing.T) {
	tmpDir := t.TempDir()
	gen := &Generator{
		OutputDir: tmpDir,
		Package:   "linalg",
		FileName:  "swizzle_gen.go",
		Dims:      []int{2, 3},
	}
	if err := gen.Run(context.Background()); err != nil {
		t.Fatalf("Generator.Run() failed: %v", err)
	}

	filename := filepath.Join(tmpDir, "swizzle_gen.go")
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	if !strings.HasPrefix(string(content), "// Code generated by swizzlegen. DO NOT EDIT.") {
		t.Errorf("Generated file lacks the generated-code header")
	}

	file, err := parser.ParseFile(token.NewFileSet(), filename, content, 0)
	if err != nil {
		t.Fatalf("Generated file does not parse: %v", err)
	}
	if file.Name.Name != "linalg" {
		t.Errorf("Generated package: got %s, want linalg", file.Name.Name)
	}

	var funcs int
	for _, decl := range file.Decls {
		if _, ok := decl.(*ast.FuncDecl); ok {
			funcs++
		}
	}
	// A getter and a setter per swizzle.
	if want := 2 * (4 + 24); funcs != want {
		t.Errorf("Generated %d functions, want %d", funcs, want)
	}
}

func TestGeneratorRunErrors(t *testing.T) {
	tmpDir := t.TempDir()

	gen := &Generator{OutputDir: tmpDir, Package: "linalg", FileName: "out.go"}
	if err := gen.Run(context.Background()); err == nil {
		t.Errorf("Run with no dims: expected error")
	}

	gen.Dims = []int{2, 7}
	if err := gen.Run(context.Background()); err == nil {
		t.Errorf("Run with dim 7: expected error")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "out.go")); !os.IsNotExist(err) {
		t.Errorf("Run wrote output despite failing")
	}
}

func TestRootCmd(t *testing.T) {
	tmpDir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--output", tmpDir, "--package", "vec", "--file", "sw.go", "--dims", "4"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("swizzlegen failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "sw.go"))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	if !strings.Contains(string(content), "package vec") {
		t.Errorf("Generated file has the wrong package clause")
	}
	if !strings.Contains(string(content), "func (v *Vector4[T]) SetWZYX(s Vector4[T]) {") {
		t.Errorf("Generated file is missing SetWZYX")
	}
}
