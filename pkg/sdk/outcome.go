package sdk

import "strings"

// Outcome is the classified result of an install or uninstall.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeLicenseRequired
	OutcomeUpdated
	OutcomeInstalled
	OutcomeNotFound
	OutcomeUninstalled
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLicenseRequired:
		return "license-required"
	case OutcomeUpdated:
		return "updated"
	case OutcomeInstalled:
		return "installed"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeUninstalled:
		return "uninstalled"
	}
	return "unknown"
}

// Success reports whether the outcome means the requested change happened.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeUpdated, OutcomeInstalled, OutcomeUninstalled:
		return true
	}
	return false
}

// outputRule maps a marker in sdkmanager output to an outcome.
type outputRule struct {
	marker  string
	outcome Outcome
}

// Rules are checked in order; the first match wins.
var (
	installRules = []outputRule{
		{marker: "license is not accepted", outcome: OutcomeLicenseRequired},
		{marker: "100% Computing updates", outcome: OutcomeUpdated},
		{marker: "Failed to find package", outcome: OutcomeNotFound},
	}

	uninstallRules = []outputRule{
		{marker: "Unable to find package", outcome: OutcomeNotFound},
	}
)

// ClassifyInstall maps the output of sdkmanager --install to an outcome.
func ClassifyInstall(res *ExecResult) Outcome {
	return classify(installRules, res, OutcomeInstalled)
}

// ClassifyUninstall maps the output of sdkmanager --uninstall to an outcome.
func ClassifyUninstall(res *ExecResult) Outcome {
	return classify(uninstallRules, res, OutcomeUninstalled)
}

// classify returns the first matching rule's outcome. Without a match, a clean
// exit gives the success outcome and a failed exit gives OutcomeUnknown.
func classify(rules []outputRule, res *ExecResult, success Outcome) Outcome {
	if res == nil {
		return OutcomeUnknown
	}

	for _, r := range rules {
		if strings.Contains(res.Output, r.marker) {
			return r.outcome
		}
	}

	if res.ExitOK {
		return success
	}
	return OutcomeUnknown
}
