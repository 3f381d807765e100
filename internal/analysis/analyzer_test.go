package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func writeFixture(t *testing.T, dir, relPath, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %q: %v", relPath, err)
	}
}

// Analyze reads the grammar document from the real filesystem (§4.1
// discovery always uses os.ReadFile), so these end-to-end fixtures live
// under t.TempDir() rather than an afero.MemMapFs.

func TestAnalyze_CleanProject(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
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
	writeFixture(t, dir, "src/a.ts", "export class A {}\n")
	writeFixture(t, dir, "src/b.ts", "export class B {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected an empty violation list, got %+v", violations)
	}
}

func TestAnalyze_ForbiddenDependency(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/domain/"
  - name: INFRA
    path: "^src/infra/"
rules:
  - name: no-infra-from-domain
    severity: error
    rule: dependency
    type: forbidden
    from: DOMAIN
    to: INFRA
`)
	writeFixture(t, dir, "src/domain/u.ts", "import { db } from '../infra/db'\nexport class U {}\n")
	writeFixture(t, dir, "src/infra/db.ts", "export class Db {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %d: %+v", len(violations), violations)
	}
}

func TestAnalyze_CircularDependency(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: ALL_FILES
    path: ".*"
rules:
  - name: no-cycles
    severity: error
    rule: dependency
    from: ALL
    to:
      circular: true
`)
	writeFixture(t, dir, "a.ts", "import { b } from './b'\nexport class A {}\n")
	writeFixture(t, dir, "b.ts", "import { a } from './a'\nexport class B {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected exactly one cycle violation, got %d: %+v", len(violations), violations)
	}
}

func TestAnalyze_Synonyms(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: no-synonyms
    severity: warning
    rule: find_synonyms
    for: DOMAIN
    similarity_threshold: 0.9
    thesaurus:
      - ["service", "repository"]
`)
	writeFixture(t, dir, "src/user-service.ts", "export class UserService {}\n")
	writeFixture(t, dir, "src/user-repository.ts", "export class UserRepository {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected exactly one synonym violation, got %d: %+v", len(violations), violations)
	}
}

func TestAnalyze_UnreferencedIgnoresEntryPoint(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: APP
    path: "\\.ts$"
rules:
  - name: no-orphans
    severity: warning
    rule: detect_unreferenced
    for: APP
    ignore_patterns:
      - "^main\\.ts$"
`)
	writeFixture(t, dir, "main.ts", "export class Main {}\n")
	writeFixture(t, dir, "orphan.ts", "export class Orphan {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 1 || !strings.HasSuffix(violations[0].File, "orphan.ts") {
		t.Fatalf("expected exactly one violation for orphan.ts, got %+v", violations)
	}
}

func TestAnalyze_TestCoverageSeesSiblingSpecFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: DOMAIN
    path: "^src/"
rules:
  - name: require-tests
    severity: error
    rule: test_coverage
    from: DOMAIN
    to:
      test_file: required
`)
	writeFixture(t, dir, "src/covered.ts", "export class Covered {}\n")
	writeFixture(t, dir, "src/covered.spec.ts", "test\n")
	writeFixture(t, dir, "src/uncovered.ts", "export class Uncovered {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 1 || !strings.HasSuffix(violations[0].File, "uncovered.ts") {
		t.Fatalf("expected exactly one violation for uncovered.ts, got %+v", violations)
	}
}

func TestAnalyze_MinimumTestRatioCountsEnumeratedSpecFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "nooa.grammar.yaml", `
version: "1"
language: typescript
roles:
  - name: ALL_FILES
    path: ".*"
rules:
  - name: ratio
    severity: error
    rule: minimum_test_ratio
    global:
      test_ratio: 0.5
`)
	writeFixture(t, dir, "src/a.ts", "export class A {}\n")
	writeFixture(t, dir, "src/a.spec.ts", "test\n")
	writeFixture(t, dir, "src/b.ts", "export class B {}\n")
	writeFixture(t, dir, "src/b.spec.ts", "test\n")

	a := NewAnalyzer(afero.NewOsFs())
	violations, err := a.Analyze(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected a satisfied 1:1 test ratio to pass, got %+v", violations)
	}
}

func TestAnalyze_MissingGrammarIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "src/a.ts", "export class A {}\n")

	a := NewAnalyzer(afero.NewOsFs())
	_, err := a.Analyze(dir)
	if err == nil {
		t.Fatal("expected a fatal error when no grammar file is present")
	}
	if !strings.Contains(err.Error(), "Grammar file not found") {
		t.Fatalf("expected the error to mention 'Grammar file not found', got: %v", err)
	}
}
