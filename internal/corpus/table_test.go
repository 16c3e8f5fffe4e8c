package corpus

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadTable_xlsx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Questions", "Answers"},
		{"What is anxiety?", "A feeling of worry."},
		{"How much sleep do I need?", "Around eight hours."},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	table, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Column("questions") != 0 || table.Column("answers") != 1 {
		t.Errorf("unexpected columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(table.Rows))
	}
}

func TestTable_columnMissing(t *testing.T) {
	table := &Table{Columns: []string{"questions", "answers"}}
	if got := table.Column("label"); got != -1 {
		t.Errorf("expected -1 for missing column, got %d", got)
	}
}
