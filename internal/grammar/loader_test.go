package grammar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGrammar(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "nooa.grammar.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write grammar fixture: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error when no grammar file is present")
	}
	if !strings.Contains(err.Error(), "Grammar file not found") {
		t.Fatalf("expected 'Grammar file not found' message, got: %v", err)
	}
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: domain-naming
    severity: error
    rule: naming_pattern
    for: DOMAIN
    pattern: "^src/.*\\.ts$"
`)

	g, err := Load(dir)
	if err != nil {
		t.Fatalf("expected a valid grammar to load, got: %v", err)
	}
	if len(g.Roles) != 1 || g.Roles[0].Name != "DOMAIN" {
		t.Fatalf("expected one DOMAIN role, got: %+v", g.Roles)
	}
	if len(g.Rules) != 1 || g.Rules[0].Kind != KindNamingPattern {
		t.Fatalf("expected one naming_pattern rule, got: %+v", g.Rules)
	}
}

func TestLoad_DanglingRoleReference(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: bad-rule
    severity: error
    rule: naming_pattern
    for: NOT_A_ROLE
    pattern: "^src/.*\\.ts$"
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for a dangling role reference")
	}
	if !strings.Contains(err.Error(), "NOT_A_ROLE") {
		t.Fatalf("expected error naming the offending role, got: %v", err)
	}
}

func TestLoad_DuplicateRuleName(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: dup
    severity: error
    rule: naming_pattern
    for: DOMAIN
    pattern: "^src/.*\\.ts$"
  - name: dup
    severity: warning
    rule: file_size
    for: DOMAIN
    max_lines: 100
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for a duplicate rule name")
	}
	if !strings.Contains(err.Error(), "dup") {
		t.Fatalf("expected error naming the duplicate rule, got: %v", err)
	}
}

func TestLoad_InvalidRegex(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/("
rules: []
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for an invalid role regex")
	}
}

func TestLoad_NumericRangeViolation(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: too-small
    severity: error
    rule: file_size
    for: DOMAIN
    max_lines: 0
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for max_lines < 1")
	}
}

func TestLoad_CircularDependencyMutualExclusion(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: no-cycles
    severity: error
    rule: dependency
    from: ALL
    to:
      circular: true
`)

	g, err := Load(dir)
	if err != nil {
		t.Fatalf("expected circular dependency rule to load, got: %v", err)
	}
	if !g.Rules[0].Dependency.Circular {
		t.Fatal("expected Circular to be true")
	}
	if !g.Rules[0].Dependency.To.Empty() {
		t.Fatal("expected To to be empty when circular is set")
	}
}
