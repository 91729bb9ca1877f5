package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}

	return path
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.csv", "A,B,C\n1,2,3\n4,5,6\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	if got := table.Rows[1].Get("B"); got != "5" {
		t.Errorf("row[1][B] = %q, want %q", got, "5")
	}
}

func TestLoadTable_TrimsHeadersAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.csv", "\uFEFFA , B\n1,2\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Headers[0] != "A" || table.Headers[1] != "B" {
		t.Errorf("headers not trimmed: %v", table.Headers)
	}
}

func TestLoadTable_RaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.csv", "A,B,C\n1,2\n1,2,3,4\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Ragged != 2 {
		t.Errorf("Ragged = %d, want 2", table.Ragged)
	}

	if got := table.Rows[0].Get("C"); got != "" {
		t.Errorf("short row should pad C with empty, got %q", got)
	}

	if got := table.Rows[1].Get("C"); got != "3" {
		t.Errorf("long row should keep C=3, got %q", got)
	}
}

func TestLoadTable_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.csv", "")

	if _, err := LoadTable(path); err == nil {
		t.Error("expected error for file with no header row")
	}
}

func TestRowGet_CaseInsensitiveFallback(t *testing.T) {
	row := Row{"OrderID": "10"}

	if got := row.Get("orderid"); got != "10" {
		t.Errorf("Get(orderid) = %q, want %q", got, "10")
	}

	if got := row.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "order details.CSV", "a\n")

	path, err := FindFile(dir, "Order Details.csv", "OrderDetails.csv")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}

	if filepath.Base(path) != "order details.CSV" {
		t.Errorf("unexpected match: %s", path)
	}
}

func TestFindFile_Missing(t *testing.T) {
	if _, err := FindFile(t.TempDir(), "Customers.csv"); err == nil {
		t.Error("expected ErrFileNotFound for empty directory")
	}

	if _, err := FindFile(filepath.Join(t.TempDir(), "nope"), "Customers.csv"); err == nil {
		t.Error("expected ErrFileNotFound for missing directory")
	}
}

func TestResolveColumn(t *testing.T) {
	headers := []string{"Order ID", "Product", "Unit Price", "Quantity Sold"}

	cases := []struct {
		name     string
		want     string
		fallback string
		expect   string
	}{
		{"exact case-insensitive wins", "order id", "orderid", "Order ID"},
		{"substring match", "price", "unitprice", "Unit Price"},
		{"substring prefers file order", "quantity", "quantity", "Quantity Sold"},
		{"fallback when nothing matches", "freight", "shippingfee", "shippingfee"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveColumn(headers, tc.want, tc.fallback); got != tc.expect {
				t.Errorf("ResolveColumn(%q) = %q, want %q", tc.want, got, tc.expect)
			}
		})
	}
}

func TestResolveColumn_ExactBeatsSubstring(t *testing.T) {
	// "ID" appears as a substring of "Order ID" first in file order, but the
	// exact header later in the row must win.
	headers := []string{"Order ID", "ID"}

	if got := ResolveColumn(headers, "id", "id"); got != "ID" {
		t.Errorf("ResolveColumn(id) = %q, want exact match %q", got, "ID")
	}
}

func TestWriteTable_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	err := WriteTable(path, []string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}})
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Len() != 2 || table.Rows[1].Get("b") != "4" {
		t.Errorf("round trip mismatch: %+v", table.Rows)
	}
}
