package sdk

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func listedSelector(t *testing.T, family Family) (*Selector, *fakeManager) {
	t.Helper()

	mgr := &fakeManager{listResult: &ExecResult{Output: sampleListing, ExitOK: true}}
	sel := NewSelector(mgr, family)
	if _, err := sel.Execute(context.Background(), nil); err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	return sel, mgr
}

func TestSelectorValidateArity(t *testing.T) {
	sel := NewSelector(&fakeManager{}, FamilyBuildTools)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, nil},
		{"one arg", []string{"-i"}, ErrUsage},
		{"three args", []string{"-i", "1", "2"}, ErrUsage},
		{"four args", []string{"-i", "1", "2", "3"}, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sel.Validate(tt.args)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Errorf("Validate(%q) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestSelectorValidateIndices(t *testing.T) {
	sel, _ := listedSelector(t, FamilyBuildTools)
	// 2 available, 1 installed

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"install first", []string{"-i", "1"}, nil},
		{"install last", []string{"-i", "2"}, nil},
		{"install past end", []string{"-i", "3"}, ErrIndexOutOfBounds},
		{"install zero", []string{"-i", "0"}, ErrIndexOutOfBounds},
		{"install negative", []string{"-i", "-1"}, ErrIndexOutOfBounds},
		{"uninstall first", []string{"-u", "1"}, nil},
		{"uninstall past end", []string{"-u", "2"}, ErrIndexOutOfBounds},
		{"unknown flag", []string{"-x", "1"}, ErrUnknownFlag},
		{"unknown flag wins over bad index", []string{"-x", "99"}, ErrUnknownFlag},
		{"non-numeric index", []string{"-i", "one"}, ErrInvalidIndex},
		{"empty index", []string{"-u", ""}, ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sel.Validate(tt.args)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate(%q) = %v, want nil", tt.args, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate(%q) = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestSelectorValidateBeforeListing(t *testing.T) {
	sel := NewSelector(&fakeManager{}, FamilyAll)

	if err := sel.Validate([]string{"-i", "1"}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Validate before any listing = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestSelectorValidateSingleAvailable(t *testing.T) {
	mgr := &fakeManager{listResult: &ExecResult{
		Output: "Available Packages\n  build-tools;30.0.3 | 30.0.3\nInstalled packages\n  build-tools;29.0.3 | 29.0.3\n",
		ExitOK: true,
	}}
	sel := NewSelector(mgr, FamilyBuildTools)
	if _, err := sel.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	if err := sel.Validate([]string{"-i", "1"}); err != nil {
		t.Errorf("Validate(-i 1) = %v, want nil", err)
	}
	if err := sel.Validate([]string{"-i", "2"}); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Validate(-i 2) = %v, want ErrIndexOutOfBounds", err)
	}
}

func TestSelectorUsageMessage(t *testing.T) {
	sel := NewSelector(&fakeManager{}, FamilyBuildTools)
	err := sel.Validate([]string{"-i"})
	want := "usage: buildtools [-i <index> | -u <index>]"
	if err == nil || err.Error() != want {
		t.Errorf("usage error = %v, want %q", err, want)
	}
}

func TestSelectorExecuteList(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyBuildTools)

	catalog := sel.Catalog()
	if len(catalog.Available) != 2 || len(catalog.Installed) != 1 {
		t.Fatalf("catalog = %+v, want 2 available and 1 installed", catalog)
	}
	if !reflect.DeepEqual(mgr.calls, []string{"list"}) {
		t.Errorf("calls = %v, want [list]", mgr.calls)
	}
}

func TestSelectorListReplacesCatalog(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyBuildTools)

	mgr.listResult = &ExecResult{Output: "Installed packages\n  build-tools;35.0.0 | 35.0.0\n", ExitOK: true}
	res, err := sel.Execute(context.Background(), []string{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Action != ActionList {
		t.Errorf("Action = %s, want list", res.Action)
	}

	catalog := sel.Catalog()
	if len(catalog.Available) != 0 {
		t.Errorf("Available = %q, want empty after replacement", catalog.Available)
	}
	if !reflect.DeepEqual(catalog.Installed, []string{"build-tools;35.0.0 | 35.0.0"}) {
		t.Errorf("Installed = %q", catalog.Installed)
	}
}

func TestSelectorListFailureKeepsCatalog(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyBuildTools)

	mgr.listResult = &ExecResult{Output: "Error: JAVA_HOME is not set", ExitCode: 1}
	if _, err := sel.Execute(context.Background(), nil); !errors.Is(err, ErrListFailed) {
		t.Fatalf("Execute() error = %v, want ErrListFailed", err)
	}
	if len(sel.Catalog().Available) != 2 {
		t.Error("failed listing should not replace the catalog")
	}

	mgr.err = errToolMissing
	if _, err := sel.Execute(context.Background(), nil); !errors.Is(err, errToolMissing) {
		t.Errorf("Execute() error = %v, want start error", err)
	}
}

func TestSelectorExecuteInstall(t *testing.T) {
	tests := []struct {
		name    string
		result  *ExecResult
		outcome Outcome
	}{
		{"installed", &ExecResult{Output: "[====] 100% Unzipping... build-tools", ExitOK: true}, OutcomeInstalled},
		{"updated", &ExecResult{Output: "[====] 100% Computing updates...", ExitOK: true}, OutcomeUpdated},
		{"license", &ExecResult{Output: "Failed to install: license is not accepted", ExitCode: 1}, OutcomeLicenseRequired},
		{"unrecognised failure", &ExecResult{Output: "something odd", ExitCode: 3}, OutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, mgr := listedSelector(t, FamilyBuildTools)
			mgr.installResult = tt.result

			res, err := sel.Execute(context.Background(), []string{"-i", "2"})
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if res.Action != ActionInstall {
				t.Errorf("Action = %s, want install", res.Action)
			}
			if res.Package != "build-tools;34.0.0" {
				t.Errorf("Package = %q, want build-tools;34.0.0", res.Package)
			}
			if res.Outcome != tt.outcome {
				t.Errorf("Outcome = %s, want %s", res.Outcome, tt.outcome)
			}
			if mgr.calls[len(mgr.calls)-1] != "install build-tools;34.0.0" {
				t.Errorf("last call = %q", mgr.calls[len(mgr.calls)-1])
			}
		})
	}
}

func TestSelectorExecuteUninstall(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyAll)

	res, err := sel.Execute(context.Background(), []string{"-u", "2"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Package != "platform-tools" {
		t.Errorf("Package = %q, want platform-tools", res.Package)
	}
	if res.Outcome != OutcomeUninstalled {
		t.Errorf("Outcome = %s, want uninstalled", res.Outcome)
	}

	mgr.removeResult = &ExecResult{Output: "Unable to find package platform-tools", ExitOK: true}
	res, err = sel.Execute(context.Background(), []string{"-u", "2"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Outcome != OutcomeNotFound {
		t.Errorf("Outcome = %s, want not-found", res.Outcome)
	}
}

func TestSelectorExecuteContractViolation(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyBuildTools)

	for _, args := range [][]string{{"-i"}, {"-i", "1", "x"}, {"-i", "9"}, {"-q", "1"}} {
		if _, err := sel.Execute(context.Background(), args); !errors.Is(err, ErrContractViolation) {
			t.Errorf("Execute(%q) = %v, want ErrContractViolation", args, err)
		}
	}
	if len(mgr.calls) != 1 {
		t.Errorf("rejected executions should not call sdkmanager: %v", mgr.calls)
	}
}

func TestSelectorStaleIndex(t *testing.T) {
	sel, mgr := listedSelector(t, FamilyBuildTools)

	// The SDK changes behind the selector's back; index 1 still refers to
	// the first row of the last listing.
	mgr.listResult = &ExecResult{Output: "Available Packages\n  build-tools;99.0.0 | 99.0.0\n", ExitOK: true}

	res, err := sel.Execute(context.Background(), []string{"-i", "1"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Package != "build-tools;30.0.3" {
		t.Errorf("Package = %q, want identifier from the last listing", res.Package)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		result   *ExecResult
		wantCall string
		want     Outcome
	}{
		{"install", ActionInstall, &ExecResult{Output: "done", ExitOK: true}, "install emulator", OutcomeInstalled},
		{"install license", ActionInstall, &ExecResult{Output: "license is not accepted"}, "install emulator", OutcomeLicenseRequired},
		{"uninstall", ActionUninstall, &ExecResult{ExitOK: true}, "uninstall emulator", OutcomeUninstalled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := &fakeManager{installResult: tt.result, removeResult: tt.result}

			res, err := Apply(context.Background(), mgr, tt.action, "emulator")
			if err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if res.Outcome != tt.want || res.Package != "emulator" || res.Action != tt.action {
				t.Errorf("Apply() = %+v, want %s", res, tt.want)
			}
			if len(mgr.calls) != 1 || mgr.calls[0] != tt.wantCall {
				t.Errorf("calls = %v, want [%s]", mgr.calls, tt.wantCall)
			}
		})
	}

	if _, err := Apply(context.Background(), &fakeManager{}, ActionList, "emulator"); !errors.Is(err, ErrContractViolation) {
		t.Errorf("Apply(list) = %v, want ErrContractViolation", err)
	}
}
