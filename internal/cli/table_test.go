package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Age")

	table.AddRow("Alice", "30")
	table.AddRow("Bob")
	table.AddRow("Charlie", "25", "Extra")

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("BASE", "COLOR")
	table.AddRow("#ff5733", "#ffffff")
	table.AddRow("#fff", "#1f2937")

	want := "" +
		"BASE     COLOR\n" +
		"-------  -------\n" +
		"#ff5733  #ffffff\n" +
		"#fff     #1f2937\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderIgnoresANSIWidth(t *testing.T) {
	table := NewTable("SWATCH", "HEX")
	table.AddRow("\033[48;2;255;87;51m  \033[0m", "#ff5733")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	// The swatch is two cells wide, so the header width (6) wins.
	if !strings.HasSuffix(lines[2], "  \033[0m      #ff5733") {
		t.Errorf("row not aligned on visible width: %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
