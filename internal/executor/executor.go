// Package executor runs external commands and captures their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Executor runs commands with optional dry-run and debug logging.
type Executor struct {
	dryRun bool
	logger *log.Logger
	stdout io.Writer // Where dry-run notices go
	stderr io.Writer // Where child stderr goes
}

// New creates a new Executor. A nil logger discards diagnostics.
func New(dryRun bool, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Executor{
		dryRun: dryRun,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects dry-run notices and child stderr. A full-screen view
// passes io.Discard for both while it owns the terminal.
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Query runs a command that changes nothing and returns its stdout. It runs
// even in dry-run mode. The command's stderr is held back and only written
// out when the command fails.
func (e *Executor) Query(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug("querying", "cmd", commandLine(name, args))

	err := cmd.Run()
	if err != nil && stderr.Len() > 0 {
		e.stderr.Write(stderr.Bytes())
	}
	return stdout.String(), cancelled(ctx, err)
}

// Output runs a command and returns its stdout.
func (e *Executor) Output(ctx context.Context, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = e.stderr

	e.logger.Debug("executing", "cmd", commandLine(name, args))

	err := cmd.Run()
	return stdout.String(), cancelled(ctx, err)
}

// OutputWithInput runs a command with input as its stdin and returns its stdout.
func (e *Executor) OutputWithInput(ctx context.Context, input, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = e.stderr

	e.logger.Debug("executing", "cmd", commandLine(name, args), "stdin", strings.TrimSpace(input))

	err := cmd.Run()
	return stdout.String(), cancelled(ctx, err)
}

// FeedUntilExit starts a command and writes answer to its stdin over and over
// until the command stops reading. Its stdout is returned once it exits.
//
// A broken pipe while writing means the command has taken every answer it
// wanted and is not an error, unless ctx was cancelled and the pipe broke
// because the command was killed.
func (e *Executor) FeedUntilExit(ctx context.Context, answer, name string, args ...string) (string, error) {
	if e.dryRun {
		e.printDryRun(name, args)
		return "", nil
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = e.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", fmt.Errorf("failed to open stdin: %w", err)
	}

	e.logger.Debug("executing", "cmd", commandLine(name, args), "feed", strings.TrimSpace(answer))

	if err := cmd.Start(); err != nil {
		return "", err
	}

	writes, feedErr := FeedAnswers(ctx, stdin, answer)
	stdin.Close()
	e.logger.Debug("answer feed finished", "writes", writes)

	waitErr := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil && (feedErr != nil || waitErr != nil) {
		return stdout.String(), ctxErr
	}
	if feedErr != nil {
		return stdout.String(), fmt.Errorf("failed to answer prompts: %w", feedErr)
	}
	return stdout.String(), waitErr
}

// FeedAnswers writes answer to w until a write fails or ctx is done. It
// returns the number of completed writes. A broken or closed pipe ends the
// loop without error.
func FeedAnswers(ctx context.Context, w io.Writer, answer string) (int, error) {
	data := []byte(answer)
	writes := 0

	for {
		if err := ctx.Err(); err != nil {
			return writes, err
		}

		if _, err := w.Write(data); err != nil {
			if IsBrokenPipe(err) {
				return writes, nil
			}
			return writes, err
		}
		writes++
	}
}

// IsBrokenPipe reports whether err means the reading end of a pipe is gone.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	return isPlatformBrokenPipe(err)
}

// cancelled replaces the exit error of a command killed by ctx with the
// context's own error.
func cancelled(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Fprintf(e.stdout, "[dry-run] Would execute: %s\n", commandLine(name, args))
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
