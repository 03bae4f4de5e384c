package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing csv fixture: %v", err)
	}
	return path
}

func TestParseFileCSV(t *testing.T) {
	path := writeCSV(t, `word,definition,synonyms,antonyms,example
abate,to lessen,diminish;subside,intensify,The storm abated.
candid,frank and honest,open;sincere,evasive,She gave a candid answer.
`)

	words, rowErrors, err := ParseFile(path, DefaultImportConfig())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Text != "abate" || words[0].Definition != "to lessen" {
		t.Errorf("first word = %+v", words[0])
	}
	if words[1].ExampleSentence != "She gave a candid answer." {
		t.Errorf("second example = %q", words[1].ExampleSentence)
	}
	if words[0].Row != 2 {
		t.Errorf("first word row = %d, want 2", words[0].Row)
	}
}

func TestParseFileSkipsBlankAndReportsBadRows(t *testing.T) {
	path := writeCSV(t, `word,definition
abate,to lessen
,,,,
,orphaned definition
candid,frank
`)

	words, rowErrors, err := ParseFile(path, DefaultImportConfig())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2 (blank row skipped, bad row rejected)", len(words))
	}
	if len(rowErrors) != 1 {
		t.Fatalf("got %d row errors, want 1: %v", len(rowErrors), rowErrors)
	}
}

func TestParseFileTrimsWhitespace(t *testing.T) {
	path := writeCSV(t, "word,definition\n  abate  ,  to lessen  \n")

	words, _, err := ParseFile(path, DefaultImportConfig())
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}
	if words[0].Text != "abate" || words[0].Definition != "to lessen" {
		t.Errorf("trimming failed: %+v", words[0])
	}
}

func TestParseFileRejectsUnknownExtension(t *testing.T) {
	if _, _, err := ParseFile("words.txt", DefaultImportConfig()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
