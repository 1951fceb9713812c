package sdk

import (
	"context"
	"fmt"
)

// Flags accepted by package commands.
const (
	FlagInstall   = "-i"
	FlagUninstall = "-u"
)

// Action is what a selector execution did.
type Action string

const (
	ActionList      Action = "list"
	ActionInstall   Action = "install"
	ActionUninstall Action = "uninstall"
)

// Result describes one selector execution.
type Result struct {
	Action  Action
	Catalog *Catalog // Set for ActionList
	Package string   // Identifier acted on, for install and uninstall
	Outcome Outcome
	Output  string // Raw sdkmanager output
}

// Selector keeps the most recent listing for one package family and resolves
// 1-based indices from that listing into package identifiers.
//
// Indices are always resolved against the last listing. Nothing detects that
// the SDK changed since then.
type Selector struct {
	manager Manager
	family  Family
	catalog *Catalog
}

// NewSelector creates a selector with an empty catalog.
func NewSelector(manager Manager, family Family) *Selector {
	return &Selector{
		manager: manager,
		family:  family,
		catalog: &Catalog{Available: []string{}, Installed: []string{}},
	}
}

// Family returns the package family the selector lists.
func (s *Selector) Family() Family {
	return s.family
}

// Catalog returns a copy of the last listing.
func (s *Selector) Catalog() *Catalog {
	return s.catalog.Clone()
}

// Usage returns the argument synopsis for the selector's command.
func (s *Selector) Usage() string {
	return fmt.Sprintf("%s [%s <index> | %s <index>]", s.family, FlagInstall, FlagUninstall)
}

// Validate checks command arguments against the current catalog.
// Accepted shapes are no arguments, or a flag followed by a 1-based index.
func (s *Selector) Validate(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
		_, err := s.catalog.Lookup(args[0], args[1])
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUsage, s.Usage())
	}
}

// Execute lists packages when called without arguments, or installs or
// uninstalls the package selected by a flag and index. Callers validate first.
func (s *Selector) Execute(ctx context.Context, args []string) (*Result, error) {
	switch len(args) {
	case 0:
		catalog, err := s.Refresh(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Action: ActionList, Catalog: catalog}, nil
	case 2:
		descriptor, err := s.catalog.Lookup(args[0], args[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContractViolation, err)
		}
		pkg := Identifier(descriptor)
		if args[0] == FlagInstall {
			return s.install(ctx, pkg)
		}
		return s.uninstall(ctx, pkg)
	default:
		return nil, fmt.Errorf("%w: %d arguments", ErrContractViolation, len(args))
	}
}

// Refresh runs a fresh listing and replaces the catalog with it.
func (s *Selector) Refresh(ctx context.Context) (*Catalog, error) {
	res, err := s.manager.List(ctx)
	if err != nil {
		return nil, err
	}
	if !res.ExitOK {
		return nil, fmt.Errorf("%w: exit status %d", ErrListFailed, res.ExitCode)
	}

	s.catalog = ParseCatalog(res.Output, s.family)
	return s.catalog.Clone(), nil
}

func (s *Selector) install(ctx context.Context, pkg string) (*Result, error) {
	return Apply(ctx, s.manager, ActionInstall, pkg)
}

func (s *Selector) uninstall(ctx context.Context, pkg string) (*Result, error) {
	return Apply(ctx, s.manager, ActionUninstall, pkg)
}

// Apply installs or uninstalls a package by identifier and classifies what
// sdkmanager reported. It needs no listing.
func Apply(ctx context.Context, manager Manager, action Action, pkg string) (*Result, error) {
	var (
		res *ExecResult
		err error
	)

	switch action {
	case ActionInstall:
		res, err = manager.Install(ctx, pkg)
	case ActionUninstall:
		res, err = manager.Uninstall(ctx, pkg)
	default:
		return nil, fmt.Errorf("%w: action %s", ErrContractViolation, action)
	}
	if err != nil {
		return nil, err
	}

	outcome := ClassifyInstall(res)
	if action == ActionUninstall {
		outcome = ClassifyUninstall(res)
	}

	return &Result{
		Action:  action,
		Package: pkg,
		Outcome: outcome,
		Output:  res.Output,
	}, nil
}
