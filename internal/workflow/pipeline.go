package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mrz1836/prpflow/internal/backend"
	"github.com/mrz1836/prpflow/internal/command"
	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/errors"
	"github.com/mrz1836/prpflow/internal/tui"
)

// Step names used in diagnostics.
const (
	StepCreate  = "create"
	StepVerify  = "verify-path"
	StepExecute = "execute"
	StepCommit  = "commit"
	StepOpenPR  = "open-pr"
)

// Options are the caller-supplied knobs for a pipeline run.
type Options struct {
	// Feature is the change description given to the create command.
	// Required unless SkipCreate is set.
	Feature string

	// PRPPath is a pre-existing PRP document path. Required with SkipCreate.
	PRPPath string

	// SkipCreate uses PRPPath directly instead of invoking the create command.
	SkipCreate bool

	// NoCommit skips the commit step. Skipping commit also skips open-pr.
	NoCommit bool

	// NoPR skips the open-pr step.
	NoPR bool

	// PRTitle overrides the configured default pull request title.
	PRTitle string
}

// Pipeline runs the PRP workflow: create → verify-path → execute → commit →
// open-pr, strictly sequential with two skip edges. Every failure is terminal
// for the run; completed steps are never rolled back.
type Pipeline struct {
	cfg      *config.Config
	resolver *command.Resolver
	runner   backend.Runner
	out      tui.Output
	logger   zerolog.Logger
}

// NewPipeline creates a Pipeline. Each pipeline carries a fresh run ID that
// tags every step's log entries.
func NewPipeline(cfg *config.Config, resolver *command.Resolver, runner backend.Runner, out tui.Output, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		resolver: resolver,
		runner:   runner,
		out:      out,
		logger:   logger.With().Str("run_id", uuid.NewString()).Logger(),
	}
}

// Run executes the pipeline with the given options.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	prpPath, err := p.createStep(ctx, opts)
	if err != nil {
		return err
	}

	if err = p.verifyPath(prpPath); err != nil {
		return err
	}

	if err = p.executeStep(ctx, prpPath); err != nil {
		return err
	}

	if opts.NoCommit {
		p.stepSkipped(StepCommit, "--no-commit")
		p.stepSkipped(StepOpenPR, "commit was skipped")
		p.out.Success("workflow complete (commit and PR skipped)")
		return nil
	}

	if err = p.commitStep(ctx); err != nil {
		return err
	}

	if opts.NoPR {
		p.stepSkipped(StepOpenPR, "--no-pr")
		p.out.Success("workflow complete (PR skipped)")
		return nil
	}

	if err = p.openPRStep(ctx, opts); err != nil {
		return err
	}

	p.out.Success("workflow complete")
	return nil
}

// validateOptions rejects invalid flag combinations before any subprocess is
// spawned.
func validateOptions(opts Options) error {
	if opts.SkipCreate && opts.PRPPath == "" {
		return errors.Wrap(errors.ErrInvalidFlags, "--skip-create requires --prp-path")
	}
	if !opts.SkipCreate && opts.Feature == "" {
		return errors.Wrap(errors.ErrInvalidFlags, "a feature description is required unless --skip-create is set")
	}
	return nil
}

// createStep produces the PRP document path, either from the caller or by
// invoking the create command and extracting the path from captured output.
func (p *Pipeline) createStep(ctx context.Context, opts Options) (string, error) {
	if opts.SkipCreate {
		p.stepSkipped(StepCreate, "--skip-create")
		return opts.PRPPath, nil
	}

	p.stepStarted(StepCreate, p.cfg.Workflow.CreateCommand)
	result, err := p.invokeCommand(ctx, p.cfg.Workflow.CreateCommand, opts.Feature, backend.ModeCapture)
	if err != nil {
		return "", p.stepFailed(StepCreate, err)
	}

	// The create step is the only one whose output is captured; echo it so
	// the operator can read the backend's report, not just the extracted path.
	if output := strings.TrimRight(result.Output, "\n"); output != "" {
		p.out.Info(output)
	}

	prpPath, err := ExtractPRPPath(result.Output)
	if err != nil {
		return "", p.stepFailed(StepCreate, err)
	}

	p.stepDone(StepCreate)
	p.out.Info("created PRP document: " + prpPath)
	return prpPath, nil
}

// verifyPath confirms the PRP document exists on disk before execute runs.
// The create step may have reported success while writing nothing; this stops
// execute from silently operating on a nonexistent artifact.
func (p *Pipeline) verifyPath(prpPath string) error {
	resolved := prpPath
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(p.cfg.Paths.ProjectRoot, resolved)
	}
	if info, err := os.Stat(resolved); err != nil || info.IsDir() {
		return p.stepFailed(StepVerify,
			errors.Wrapf(errors.ErrMissingArtifact, "%s", resolved))
	}
	p.logger.Debug().Str("step", StepVerify).Str("prp_path", resolved).Msg("prp document verified")
	return nil
}

// executeStep invokes the execute command with the PRP path, output streaming.
func (p *Pipeline) executeStep(ctx context.Context, prpPath string) error {
	p.stepStarted(StepExecute, p.cfg.Workflow.ExecuteCommand)
	if _, err := p.invokeCommand(ctx, p.cfg.Workflow.ExecuteCommand, prpPath, backend.ModeStream); err != nil {
		return p.stepFailed(StepExecute, err)
	}
	p.stepDone(StepExecute)
	return nil
}

// commitStep invokes the commit command with no arguments.
func (p *Pipeline) commitStep(ctx context.Context) error {
	p.stepStarted(StepCommit, p.cfg.Workflow.CommitCommand)
	if _, err := p.invokeCommand(ctx, p.cfg.Workflow.CommitCommand, "", backend.ModeStream); err != nil {
		return p.stepFailed(StepCommit, err)
	}
	p.stepDone(StepCommit)
	return nil
}

// openPRStep invokes the open-pr command with the pull request title.
func (p *Pipeline) openPRStep(ctx context.Context, opts Options) error {
	title := opts.PRTitle
	if title == "" {
		title = p.cfg.Workflow.PRTitle
	}
	p.stepStarted(StepOpenPR, p.cfg.Workflow.OpenPRCommand)
	if _, err := p.invokeCommand(ctx, p.cfg.Workflow.OpenPRCommand, title, backend.ModeStream); err != nil {
		return p.stepFailed(StepOpenPR, err)
	}
	p.stepDone(StepOpenPR)
	return nil
}

// invokeCommand resolves a command, expands its template with the arguments,
// and invokes the backend in the given mode.
func (p *Pipeline) invokeCommand(ctx context.Context, name, arguments string, mode backend.Mode) (*backend.Result, error) {
	path, err := p.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := command.LoadTemplate(path)
	if err != nil {
		return nil, err
	}

	req := &backend.Request{
		Prompt:       command.Expand(tmpl.Body, arguments),
		Mode:         mode,
		AllowedTools: tmpl.Meta.AllowedTools,
		WorkingDir:   p.cfg.Paths.ProjectRoot,
	}
	return p.runner.Invoke(ctx, req)
}

// Step diagnostics go to the logger (stderr) so an operator can follow
// progress separately from any captured data stream.

func (p *Pipeline) stepStarted(step, commandName string) {
	p.logger.Info().Str("step", step).Str("command", commandName).Msg("step started")
	p.out.Info(fmt.Sprintf("→ %s (%s)", step, commandName))
}

func (p *Pipeline) stepDone(step string) {
	p.logger.Info().Str("step", step).Msg("step complete")
}

func (p *Pipeline) stepSkipped(step, reason string) {
	p.logger.Info().Str("step", step).Str("reason", reason).Msg("step skipped")
	p.out.Warning(fmt.Sprintf("skipped %s (%s)", step, reason))
}

func (p *Pipeline) stepFailed(step string, err error) error {
	p.logger.Error().Err(err).Str("step", step).Msg("step failed")
	return errors.Wrapf(err, "step %s failed", step)
}
