package cli

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"sdkshell/internal/history"
	"sdkshell/pkg/sdk"
)

// installFirst lists build-tools and installs the first available one.
func installFirst(t *testing.T, env *testEnv) {
	t.Helper()
	cmd := &packageCommand{app: env.app, selector: env.app.Selector(sdk.FamilyBuildTools)}
	ctx := context.Background()

	if err := runCommand(ctx, cmd, nil); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if err := runCommand(ctx, cmd, []string{"-i", "1"}); err != nil {
		t.Fatalf("install error: %v", err)
	}
	env.manager.calls = nil
	env.out.Reset()
}

func TestRollbackCommand(t *testing.T) {
	env := newTestEnv(t)
	env.answer = true
	installFirst(t, env)

	if err := runCommand(context.Background(), &rollbackCommand{app: env.app}, nil); err != nil {
		t.Fatalf("rollback error: %v", err)
	}

	if !reflect.DeepEqual(env.manager.calls, []string{"uninstall build-tools;30.0.3"}) {
		t.Errorf("calls = %v, want uninstall without a listing", env.manager.calls)
	}
	out := env.out.String()
	for _, want := range []string{"Rolling back:", "Reverse operation: uninstall build-tools;30.0.3", "[+] Package uninstalled: build-tools;30.0.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	entries := env.history(t)
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(entries))
	}
	if e := entries[0]; e.Operation != history.OpUninstall || e.Package != "build-tools;30.0.3" || e.Family != "buildtools" || !e.Success {
		t.Errorf("rollback entry = %+v", e)
	}
}

func TestRollbackCommandDeclined(t *testing.T) {
	env := newTestEnv(t)
	installFirst(t, env)
	env.answer = false

	err := runCommand(context.Background(), &rollbackCommand{app: env.app}, nil)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("rollback error = %v, want ErrAborted", err)
	}
	if len(env.manager.calls) != 0 {
		t.Errorf("declined rollback ran sdkmanager: %v", env.manager.calls)
	}
}

func TestRollbackCommandNothingToUndo(t *testing.T) {
	env := newTestEnv(t)
	env.answer = true

	// License acceptance is recorded but cannot be reversed.
	if err := runCommand(context.Background(), &licensesCommand{app: env.app}, nil); err != nil {
		t.Fatalf("licenses error: %v", err)
	}

	err := runCommand(context.Background(), &rollbackCommand{app: env.app}, nil)
	if !errors.Is(err, ErrNothingToRollback) {
		t.Errorf("rollback error = %v, want ErrNothingToRollback", err)
	}

	env.app.openHistory = nil
	if _, err := env.app.lastReversible(); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("lastReversible() = %v, want ErrHistoryDisabled", err)
	}
}

func TestRollbackCommandValidate(t *testing.T) {
	cmd := &rollbackCommand{}
	if err := cmd.Validate(nil); err != nil {
		t.Errorf("Validate(nil) = %v", err)
	}
	if err := cmd.Validate([]string{"1"}); !errors.Is(err, sdk.ErrUsage) {
		t.Errorf("Validate([1]) = %v, want ErrUsage", err)
	}
}
