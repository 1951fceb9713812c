package sdk

import (
	"context"
	"strings"
)

// LicensePrompt is the question asked before accepting licenses.
const LicensePrompt = "Do you want to accept licenses?"

// LicenseResult is the outcome of a license acceptance run.
type LicenseResult int

const (
	LicensesDeclined LicenseResult = iota
	LicensesAccepted
	LicensesFailed
)

// LicenseReport is returned by LicenseAcceptor.Execute.
type LicenseReport struct {
	Result LicenseResult
	Output string
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// LicenseAcceptor drives sdkmanager --licenses after asking the user.
type LicenseAcceptor struct {
	manager     Manager
	confirm     ConfirmFunc
	autoConfirm bool
}

// NewLicenseAcceptor creates a license acceptor. With autoConfirm set the
// question is skipped.
func NewLicenseAcceptor(manager Manager, confirm ConfirmFunc, autoConfirm bool) *LicenseAcceptor {
	return &LicenseAcceptor{
		manager:     manager,
		confirm:     confirm,
		autoConfirm: autoConfirm,
	}
}

// Execute asks for confirmation and, if given, accepts every pending license.
// Declining never starts sdkmanager.
func (l *LicenseAcceptor) Execute(ctx context.Context) (*LicenseReport, error) {
	accept := l.autoConfirm
	if !accept {
		var err error
		accept, err = l.confirm(LicensePrompt)
		if err != nil {
			return nil, err
		}
	}
	if !accept {
		return &LicenseReport{Result: LicensesDeclined}, nil
	}

	res, err := l.manager.AcceptLicenses(ctx)
	if err != nil {
		return &LicenseReport{Result: LicensesFailed}, err
	}
	return &LicenseReport{Result: LicensesAccepted, Output: res.Output}, nil
}

// Affirmative reports whether a typed answer means yes ("y", any case).
func Affirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
