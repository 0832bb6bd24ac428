package ui

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	SetColor(false)
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestMatrix(t *testing.T) {
	buf := capture(t)
	Matrix([]string{"v1", "v2"}, [][]int{{0, 1}, {0, 0}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "     v1 v2" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "  v1  0  1" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestMatrixEmpty(t *testing.T) {
	buf := capture(t)
	Matrix(nil, nil)
	if !strings.Contains(buf.String(), "no nodes") {
		t.Errorf("expected placeholder, got %q", buf.String())
	}
}

func TestTable(t *testing.T) {
	buf := capture(t)
	Table([]string{"Node", "Degree"}, [][]string{{"v1", "2"}, {"v10", "0"}})

	out := buf.String()
	if !strings.Contains(out, "Node  Degree") {
		t.Errorf("expected aligned header, got %q", out)
	}
	if !strings.Contains(out, "  v10   0") {
		t.Errorf("expected aligned row, got %q", out)
	}

	buf.Reset()
	Table([]string{"A"}, nil)
	if buf.Len() != 0 {
		t.Error("empty table should print nothing")
	}
}
