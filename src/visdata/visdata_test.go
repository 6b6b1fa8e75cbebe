package visdata

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const header = "uCo,vCo,VisAmp,Sigma,Model\n"

func TestLoadBaselineLength(t *testing.T) {
	path := writeTable(t, header+"3e9,4e9,0.5,0.01,0.45\n")
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.Len() != 1 {
		t.Fatalf("rows=%d want 1", tab.Len())
	}
	// 3,4 -> 5 after the 1e-9 coordinate scaling
	if math.Abs(tab.Baseline[0]-5.0) > 1e-12 {
		t.Fatalf("baseline=%v want 5.0", tab.Baseline[0])
	}
	// raw coordinates preserved for model evaluation
	if tab.U[0] != 3e9 || tab.V[0] != 4e9 {
		t.Fatalf("raw coords not preserved: %v %v", tab.U[0], tab.V[0])
	}
}

func TestLoadAbsoluteAmplitude(t *testing.T) {
	path := writeTable(t, header+"1e9,0,-0.7,0.02,0.65\n")
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.VisAmp[0] != 0.7 {
		t.Fatalf("VisAmp=%v want 0.7 (absolute value)", tab.VisAmp[0])
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeTable(t, "uCo,vCo,VisAmp,Sigma\n1,2,3,4\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected schema error")
	}
	if !strings.Contains(err.Error(), `"Model"`) {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestLoadCaseSensitiveNames(t *testing.T) {
	path := writeTable(t, "uco,vco,visamp,sigma,model\n1,2,3,4,5\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("lowercased header must not satisfy the case-sensitive schema")
	}
}

func TestLoadBadNumber(t *testing.T) {
	path := writeTable(t, header+"1,2,abc,4,5\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), `"VisAmp"`) {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestLoadNoRows(t *testing.T) {
	path := writeTable(t, header)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty table")
	}
}

func TestLoadExtraColumnsIgnored(t *testing.T) {
	path := writeTable(t, "idx,uCo,vCo,VisAmp,Sigma,Model\n7,3e9,4e9,0.5,0.01,0.45\n")
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tab.Model[0] != 0.45 {
		t.Fatalf("Model=%v want 0.45", tab.Model[0])
	}
}

func TestValidatePositive(t *testing.T) {
	path := writeTable(t, header+"1e9,0,0.5,0.01,0.45\n2e9,0,0,0.01,0.45\n")
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	err = tab.ValidatePositive()
	if err == nil {
		t.Fatalf("zero amplitude must violate the log-axis precondition")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("error should name the row: %v", err)
	}
}
