package seed

import "testing"

func TestParseCatalog_RejectsUnknownRole(t *testing.T) {
	_, err := parseCatalog([]byte("faqs:\n  - question: q\n    answer: a\n    category: c\n    target_role: [burgemeester]\n"))
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestParseCatalog_BadYAML(t *testing.T) {
	if _, err := parseCatalog([]byte("programs: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
