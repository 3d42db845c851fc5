// Command nobrain prints the password for a domain, derived from a master
// secret and an optional secondary secret file. Nothing is stored.
//
//	nobrain [flags] <domain>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/zoobzio/nobrain"
	"github.com/zoobzio/nobrain/keyfile"
	"github.com/zoobzio/nobrain/present"
	"github.com/zoobzio/nobrain/prompt"
	"github.com/zoobzio/nobrain/secret"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options holds the parsed command line.
type options struct {
	domain      string
	username    string
	confirm     bool
	noNewline   bool
	noKeyfile   bool
	keyfilePath string
	configPath  string
	verbose     bool
	showVersion bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "nobrain: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "nobrain %s\n", version)
		return 0
	}

	logger := newLogger(stderr, opts.verbose)
	if err := derive(ctx, opts, stdin, stdout, stderr, logger); err != nil {
		fmt.Fprintf(stderr, "nobrain: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs reads flags and the domain argument.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("nobrain", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: nobrain [flags] <domain>\n\nFlags:\n%s", flags.FlagUsages())
	}

	flags.StringVarP(&opts.username, "user", "u", "", "add a username")
	flags.BoolVarP(&opts.confirm, "confirm", "c", false, "ask for master key confirmation")
	flags.BoolVarP(&opts.noNewline, "no-newline", "n", false, "print only the password without linebreak")
	flags.BoolVar(&opts.noKeyfile, "no-keyfile", false, "derive without the secondary secret file")
	flags.StringVar(&opts.keyfilePath, "keyfile", "", "secondary secret file (default $"+keyfile.Env+" or ~/"+keyfile.FileName+")")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default $"+nobrain.ConfigEnv+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log derivation metadata to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}

	switch flags.NArg() {
	case 0:
		return opts, errors.New("domain is required")
	case 1:
		opts.domain = flags.Arg(0)
	default:
		return opts, fmt.Errorf("unexpected argument: %s", flags.Arg(1))
	}
	if opts.domain == "" {
		return opts, nobrain.ErrEmptyDomain
	}
	return opts, nil
}

// newLogger logs text to a terminal and JSON otherwise. Without verbose
// only warnings and errors are emitted.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// derive acquires the secrets, derives the password and prints it.
// On any failure nothing is written to stdout.
func derive(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	cfg, err := nobrain.ResolveConfig(opts.configPath)
	if err != nil {
		return err
	}
	engine, err := nobrain.Use(cfg)
	if err != nil {
		return err
	}
	logger.Debug("engine ready",
		"transform", cfg.Transform,
		"digest_size", cfg.DigestSize,
		"max_iterations", cfg.MaxIterations,
	)

	prompter := prompt.New(stdin, stderr)

	var secondary *secret.Buffer
	if !opts.noKeyfile {
		path := opts.keyfilePath
		if path == "" {
			path = cfg.Keyfile.Path
		}
		store, err := keyfile.New(path, cfg.Keyfile.Placeholder)
		if err != nil {
			return err
		}
		var created bool
		secondary, created, err = store.Load(ctx, prompter)
		if err != nil {
			return err
		}
		defer secondary.Close()
		if created {
			logger.Warn("created secondary secret file with placeholder value", "path", store.Path)
		}
		logger.Debug("secondary secret loaded", "path", store.Path, "present", secondary != nil)
	}

	var master *secret.Buffer
	if opts.confirm {
		master, err = prompter.SecretConfirmed("Master key", "Confirm master key")
	} else {
		master, err = prompter.Secret("Master key")
	}
	if err != nil {
		return err
	}
	defer master.Close()

	req := nobrain.Request{
		Domain:   opts.domain,
		Username: opts.username,
		Master:   master.Bytes(),
	}
	if secondary != nil {
		req.Secondary = secondary.Bytes()
	}

	res, err := engine.DerivePassword(ctx, req)
	if err != nil {
		return err
	}
	logger.Debug("password derived", "domain", opts.domain, "iterations", res.Iterations)

	return present.Write(stdout, present.Report{
		Domain:     opts.domain,
		Username:   opts.username,
		Iterations: res.Iterations,
		Password:   res.Password,
	}, opts.noNewline)
}
