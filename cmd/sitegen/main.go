package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ridgeline.build/ridgeline-web/internal/config"
	"ridgeline.build/ridgeline-web/internal/di"
	"ridgeline.build/ridgeline-web/internal/observability"
	"ridgeline.build/ridgeline-web/internal/publish"
)

// configOptions is extended by tests to isolate config from the host environment.
var configOptions []config.Option

// newBucket opens the publish target. Tests replace it with an in-memory bucket.
var newBucket = func(ctx context.Context, name, endpoint string) (publish.Bucket, func() error, error) {
	b, err := publish.NewGCSBucket(ctx, name, endpoint)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Close, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build     audit the site and export it as static files")
	fmt.Fprintln(w, "  audit     check every page and report issues")
	fmt.Fprintln(w, "  routes    list every route")
	fmt.Fprintln(w, "  publish   upload an export directory to a bucket")
}

// run executes one subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	cmd, rest := args[0], args[1:]

	var handler func(context.Context, *env, []string) int
	switch cmd {
	case "build":
		handler = runBuild
	case "audit":
		handler = runAudit
	case "routes":
		handler = runRoutes
	case "publish":
		handler = runPublish
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		usage(stderr)
		return 2
	}

	cfg, err := config.Load(ctx, configOptions...)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(stderr, "invalid configuration: %v\n", verr.Fields())
		} else {
			fmt.Fprintf(stderr, "load config: %v\n", err)
		}
		return 1
	}
	logger := observability.NewConsoleLogger(cfg.Logging.Level, stderr).Named("sitegen")
	defer func() {
		_ = logger.Sync()
	}()
	ctx = observability.WithLogger(ctx, logger)

	return handler(ctx, &env{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}, rest)
}

type env struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func (e *env) container(ctx context.Context) (*di.Container, bool) {
	c, err := di.NewContainer(ctx, e.cfg, e.logger)
	if err != nil {
		fmt.Fprintf(e.stderr, "load site: %v\n", err)
		return nil, false
	}
	return c, true
}

func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("sitegen "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func parse(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

func runBuild(ctx context.Context, e *env, args []string) int {
	fs := e.flags("build")
	out := fs.String("out", e.cfg.Export.Dir, "output directory")
	force := fs.Bool("force", false, "export even when the audit reports errors")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	c, ok := e.container(ctx)
	if !ok {
		return 1
	}
	report, err := c.Audit(ctx)
	if err != nil {
		fmt.Fprintf(e.stderr, "audit: %v\n", err)
		return 1
	}
	if err := report.Err(); err != nil {
		printReport(e.stderr, report)
		if !*force {
			return 1
		}
		e.logger.Warn("exporting despite audit errors", zap.Error(err))
	}

	ex, err := c.Exporter()
	if err != nil {
		fmt.Fprintf(e.stderr, "export: %v\n", err)
		return 1
	}
	m, err := ex.Export(ctx, *out)
	if err != nil {
		fmt.Fprintf(e.stderr, "export: %v\n", err)
		return 1
	}
	fmt.Fprintf(e.stdout, "%s %d pages, %d assets -> %s (build %s)\n",
		styles(e.stdout).ok.Render("built"), len(m.Pages), m.Assets, *out, m.BuildID)
	return 0
}

func runAudit(ctx context.Context, e *env, args []string) int {
	fs := e.flags("audit")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	c, ok := e.container(ctx)
	if !ok {
		return 1
	}
	report, err := c.Audit(ctx)
	if err != nil {
		fmt.Fprintf(e.stderr, "audit: %v\n", err)
		return 1
	}
	if *asJSON {
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(e.stderr, "encode report: %v\n", err)
			return 1
		}
	} else {
		printReport(e.stdout, report)
	}
	if report.Err() != nil {
		return 1
	}
	return 0
}

func runRoutes(ctx context.Context, e *env, args []string) int {
	fs := e.flags("routes")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	c, ok := e.container(ctx)
	if !ok {
		return 1
	}
	for _, p := range c.Site.Pages() {
		fmt.Fprintf(e.stdout, "%s\t%s\t%s\n", p.Route, p.Kind, p.Lang)
	}
	return 0
}

func runPublish(ctx context.Context, e *env, args []string) int {
	fs := e.flags("publish")
	dir := fs.String("dir", e.cfg.Export.Dir, "export directory to upload")
	bucket := fs.String("bucket", e.cfg.Publish.Bucket, "destination bucket")
	prefix := fs.String("prefix", e.cfg.Publish.Prefix, "object name prefix")
	dryRun := fs.Bool("dry-run", false, "list uploads without performing them")
	if code, ok := parse(fs, args); !ok {
		return code
	}

	opts := publish.Options{
		Prefix:      *prefix,
		Concurrency: e.cfg.Export.Concurrency,
		DryRun:      *dryRun,
		Logger:      e.logger.Named("publish"),
	}
	var target publish.Bucket
	if !*dryRun {
		if *bucket == "" {
			fmt.Fprintln(e.stderr, "publish: -bucket or SITE_PUBLISH_BUCKET is required")
			return 2
		}
		b, closeFn, err := newBucket(ctx, *bucket, e.cfg.Publish.Endpoint)
		if err != nil {
			fmt.Fprintf(e.stderr, "publish: %v\n", err)
			return 1
		}
		defer func() {
			if err := closeFn(); err != nil {
				e.logger.Warn("bucket close error", zap.Error(err))
			}
		}()
		target = b
	}

	actions, err := publish.New(target, opts).Publish(ctx, *dir)
	if err != nil {
		fmt.Fprintf(e.stderr, "%v\n", err)
		return 1
	}
	st := styles(e.stdout)
	verb := "uploaded"
	if *dryRun {
		verb = "would upload"
	}
	for _, a := range actions {
		fmt.Fprintf(e.stdout, "%s %s %s\n", st.muted.Render(verb), a.Object.Name, st.muted.Render(a.Object.ContentType))
	}
	fmt.Fprintf(e.stdout, "%s %d objects\n", st.ok.Render(verb), len(actions))
	return 0
}
