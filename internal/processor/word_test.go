package processor

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/quintus/internal/cli"
	"codeberg.org/snonux/quintus/internal/testutil"
)

func TestProcessWord(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	var buf bytes.Buffer
	if err := p.ProcessWord(&buf, "θεός"); err != nil {
		t.Fatalf("ProcessWord() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Word: θεός", "Normalized: τεοσ", "Onset: τ", "Total: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "_τ") {
		t.Errorf("Onset key should not be listed among sounds:\n%s", out)
	}
}

func TestProcessWord_Digraphs(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	var buf bytes.Buffer
	if err := p.ProcessWord(&buf, "οὐρανοῦ"); err != nil {
		t.Fatalf("ProcessWord() error = %v", err)
	}
	if !strings.Contains(buf.String(), "  ου  2\n") {
		t.Errorf("Expected ου counted twice:\n%s", buf.String())
	}
}

func TestProcessWord_InvalidWord(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	var buf bytes.Buffer
	if err := p.ProcessWord(&buf, "hello"); err == nil {
		t.Error("Expected error for non-Greek word")
	}
	if err := p.ProcessWord(&buf, ""); err == nil {
		t.Error("Expected error for empty word")
	}
}

func TestProcessWord_CustomRules(t *testing.T) {
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	testutil.CreateTestFile(t, rules, []byte("reversible: []\nirreversible: []\n"))

	flags := cli.NewFlags()
	flags.RulesFile = rules
	p, _ := newTestProcessor(t, flags)

	var buf bytes.Buffer
	if err := p.ProcessWord(&buf, "θεός"); err != nil {
		t.Fatalf("ProcessWord() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Normalized: θεος\n") {
		t.Errorf("Expected unmerged spelling:\n%s", buf.String())
	}
}

func TestListSounds(t *testing.T) {
	p, _ := newTestProcessor(t, cli.NewFlags())

	var buf bytes.Buffer
	if err := p.ListSounds(&buf); err != nil {
		t.Fatalf("ListSounds() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Reversible digraphs") {
		t.Errorf("Unexpected listing:\n%s", buf.String())
	}
}
