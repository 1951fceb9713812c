package sdk

import (
	"context"
	"errors"
	"testing"
)

func TestLicenseAcceptorDeclined(t *testing.T) {
	mgr := &fakeManager{}
	var asked string
	confirm := func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	}

	report, err := NewLicenseAcceptor(mgr, confirm, false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if report.Result != LicensesDeclined {
		t.Errorf("Result = %v, want LicensesDeclined", report.Result)
	}
	if asked != LicensePrompt {
		t.Errorf("prompt = %q, want %q", asked, LicensePrompt)
	}
	if len(mgr.calls) != 0 {
		t.Errorf("declining should not run sdkmanager, got calls %v", mgr.calls)
	}
}

func TestLicenseAcceptorAccepted(t *testing.T) {
	mgr := &fakeManager{licenseResult: &ExecResult{Output: "All SDK package licenses accepted", ExitOK: true}}
	confirm := func(string) (bool, error) { return true, nil }

	report, err := NewLicenseAcceptor(mgr, confirm, false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if report.Result != LicensesAccepted {
		t.Errorf("Result = %v, want LicensesAccepted", report.Result)
	}
	if report.Output != "All SDK package licenses accepted" {
		t.Errorf("Output = %q", report.Output)
	}
	if len(mgr.calls) != 1 || mgr.calls[0] != "licenses" {
		t.Errorf("calls = %v, want [licenses]", mgr.calls)
	}
}

func TestLicenseAcceptorAutoConfirm(t *testing.T) {
	mgr := &fakeManager{}
	confirm := func(string) (bool, error) {
		t.Fatal("confirm should not be called with autoConfirm")
		return false, nil
	}

	report, err := NewLicenseAcceptor(mgr, confirm, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if report.Result != LicensesAccepted {
		t.Errorf("Result = %v, want LicensesAccepted", report.Result)
	}
}

func TestLicenseAcceptorFailure(t *testing.T) {
	mgr := &fakeManager{err: errToolMissing}
	confirm := func(string) (bool, error) { return true, nil }

	report, err := NewLicenseAcceptor(mgr, confirm, false).Execute(context.Background())
	if !errors.Is(err, errToolMissing) {
		t.Fatalf("Execute() error = %v, want %v", err, errToolMissing)
	}
	if report == nil || report.Result != LicensesFailed {
		t.Errorf("report = %+v, want LicensesFailed", report)
	}
}

func TestLicenseAcceptorPromptError(t *testing.T) {
	mgr := &fakeManager{}
	promptErr := errors.New("interrupted")
	confirm := func(string) (bool, error) { return false, promptErr }

	if _, err := NewLicenseAcceptor(mgr, confirm, false).Execute(context.Background()); !errors.Is(err, promptErr) {
		t.Errorf("Execute() error = %v, want %v", err, promptErr)
	}
	if len(mgr.calls) != 0 {
		t.Errorf("calls = %v, want none", mgr.calls)
	}
}

func TestAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{" y \n", true},
		{"yes", false},
		{"n", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Affirmative(tt.answer); got != tt.want {
			t.Errorf("Affirmative(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}
