package sdk

import (
	"context"
	"errors"
)

// fakeManager records calls and returns canned results.
type fakeManager struct {
	listResult    *ExecResult
	installResult *ExecResult
	removeResult  *ExecResult
	licenseResult *ExecResult
	err           error

	calls []string
}

func (f *fakeManager) List(ctx context.Context) (*ExecResult, error) {
	f.calls = append(f.calls, "list")
	return f.respond(f.listResult)
}

func (f *fakeManager) Install(ctx context.Context, pkg string) (*ExecResult, error) {
	f.calls = append(f.calls, "install "+pkg)
	return f.respond(f.installResult)
}

func (f *fakeManager) Uninstall(ctx context.Context, pkg string) (*ExecResult, error) {
	f.calls = append(f.calls, "uninstall "+pkg)
	return f.respond(f.removeResult)
}

func (f *fakeManager) AcceptLicenses(ctx context.Context) (*ExecResult, error) {
	f.calls = append(f.calls, "licenses")
	return f.respond(f.licenseResult)
}

func (f *fakeManager) respond(res *ExecResult) (*ExecResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if res == nil {
		return &ExecResult{ExitOK: true}, nil
	}
	return res, nil
}

var errToolMissing = errors.New("sdkmanager: executable file not found")
