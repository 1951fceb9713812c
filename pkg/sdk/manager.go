package sdk

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Answer is the affirmative reply fed to sdkmanager prompts.
const Answer = "y\n"

// Runner executes external programs and captures their standard output.
type Runner interface {
	// Query runs a command that changes nothing and returns its stdout. It
	// runs even when the runner is in dry-run mode.
	Query(ctx context.Context, name string, args ...string) (string, error)

	// Output runs a command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// OutputWithInput runs a command with a fixed stdin and returns its stdout.
	OutputWithInput(ctx context.Context, input, name string, args ...string) (string, error)

	// FeedUntilExit writes answer to the command's stdin repeatedly until the
	// process stops reading, and returns its stdout.
	FeedUntilExit(ctx context.Context, answer, name string, args ...string) (string, error)
}

// ExecResult is the captured result of one sdkmanager invocation.
type ExecResult struct {
	Output   string
	ExitOK   bool
	ExitCode int
}

// Manager is the sdkmanager surface the selector and license acceptor use.
type Manager interface {
	// List runs sdkmanager --list.
	List(ctx context.Context) (*ExecResult, error)

	// Install runs sdkmanager --install for one package, confirming once.
	Install(ctx context.Context, pkg string) (*ExecResult, error)

	// Uninstall runs sdkmanager --uninstall for one package.
	Uninstall(ctx context.Context, pkg string) (*ExecResult, error)

	// AcceptLicenses runs sdkmanager --licenses, answering yes to every prompt.
	AcceptLicenses(ctx context.Context) (*ExecResult, error)
}

// SDKManager invokes the sdkmanager binary through a Runner.
type SDKManager struct {
	binary string
	runner Runner
}

// NewSDKManager creates a manager for the sdkmanager binary at the given path.
func NewSDKManager(binary string, runner Runner) *SDKManager {
	return &SDKManager{
		binary: binary,
		runner: runner,
	}
}

// Binary returns the sdkmanager path in use.
func (m *SDKManager) Binary() string {
	return m.binary
}

// List runs sdkmanager --list.
func (m *SDKManager) List(ctx context.Context) (*ExecResult, error) {
	out, err := m.runner.Query(ctx, m.binary, "--list")
	return m.result(out, err)
}

// Install runs sdkmanager --install with a single affirmative answer.
func (m *SDKManager) Install(ctx context.Context, pkg string) (*ExecResult, error) {
	out, err := m.runner.OutputWithInput(ctx, Answer, m.binary, "--install", pkg)
	return m.result(out, err)
}

// Uninstall runs sdkmanager --uninstall.
func (m *SDKManager) Uninstall(ctx context.Context, pkg string) (*ExecResult, error) {
	out, err := m.runner.Output(ctx, m.binary, "--uninstall", pkg)
	return m.result(out, err)
}

// AcceptLicenses runs sdkmanager --licenses and keeps answering yes until it exits.
func (m *SDKManager) AcceptLicenses(ctx context.Context) (*ExecResult, error) {
	out, err := m.runner.FeedUntilExit(ctx, Answer, m.binary, "--licenses")
	return m.result(out, err)
}

// result turns a runner error into an ExecResult. A non-zero exit is not an
// error; the output is still classified by the caller.
func (m *SDKManager) result(out string, err error) (*ExecResult, error) {
	if err == nil {
		return &ExecResult{Output: out, ExitOK: true}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExecResult{Output: out, ExitCode: exitErr.ExitCode()}, nil
	}

	return nil, fmt.Errorf("failed to run %s: %w", m.binary, err)
}

// unavailable is a Manager for a host where sdkmanager could not be resolved.
type unavailable struct {
	err error
}

// Unavailable returns a Manager whose every call fails with err. Commands that
// never run sdkmanager keep working around it.
func Unavailable(err error) Manager {
	return unavailable{err: err}
}

func (u unavailable) List(ctx context.Context) (*ExecResult, error) { return nil, u.err }

func (u unavailable) Install(ctx context.Context, pkg string) (*ExecResult, error) {
	return nil, u.err
}

func (u unavailable) Uninstall(ctx context.Context, pkg string) (*ExecResult, error) {
	return nil, u.err
}

func (u unavailable) AcceptLicenses(ctx context.Context) (*ExecResult, error) { return nil, u.err }
