package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/LFroesch/cdnav/internal/browser"
	"github.com/LFroesch/cdnav/internal/config"
	"github.com/LFroesch/cdnav/internal/fileops"
	"github.com/LFroesch/cdnav/internal/logger"
	"github.com/LFroesch/cdnav/internal/shell"
	"github.com/LFroesch/cdnav/internal/watch"
)

var version = "dev"

type options struct {
	configPath string
	target     string
	cdFile     string
	selectName string
	noWatch    bool
	debug      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cdnav [dir]",
		Short: "Browse directories in the terminal and cd to where you stop",
		Long: `cdnav lists a directory, lets you move through the tree with the arrow
keys and create, rename or delete entries on the way. On Enter or Esc it
prints a cd command for the directory on screen; wrap it with
'cdnav init <shell>' so your shell follows.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/cdnav/config.yaml)")
	flags.StringVar(&opts.target, "target", "", "where to send the cd command: stdout, file or clipboard")
	flags.StringVar(&opts.cdFile, "cd-file", "", "file written when target is file")
	flags.StringVarP(&opts.selectName, "select", "s", "", "preselect the entry that best matches this name")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not refresh when the directory changes on disk")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(NewInitCmd())
	return rootCmd
}

// NewInitCmd prints the shell wrapper.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init <bash|zsh|fish>",
		Short:     "Print a shell function that follows cdnav's cd command",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := shell.InitScript(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Load()
	}

	if opts.target != "" {
		switch opts.target {
		case config.TargetStdout, config.TargetFile, config.TargetClipboard:
			cfg.Shell.Target = opts.target
		default:
			return nil, fmt.Errorf("unknown target %q", opts.target)
		}
	}
	if opts.cdFile != "" {
		cfg.Shell.CdFile = opts.cdFile
	}
	if cfg.Shell.Target == config.TargetFile && cfg.Shell.CdFile == "" {
		return nil, fmt.Errorf("target %q needs --cd-file", config.TargetFile)
	}
	if opts.noWatch {
		cfg.Watch = false
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newApp builds the model for dir. Everything that can fail happens here,
// before the terminal switches to raw mode.
func newApp(cfg *config.Config, dir, selectName string) (*model, error) {
	lister, err := fileops.NewLister(cfg.HidePatterns)
	if err != nil {
		return nil, err
	}

	state, err := browser.New(dir, browser.Options{
		List:   lister.List,
		Opener: browser.OpenerFunc(open.Start),
	})
	if err != nil {
		return nil, err
	}

	var watcher *watch.Watcher
	if cfg.Watch {
		w, err := watch.New()
		if err != nil {
			logger.Warn("Directory watching disabled: %v", err)
		} else if err := w.Watch(state.Dir()); err != nil {
			logger.Warn("Directory watching disabled: %v", err)
			w.Close()
		} else {
			watcher = w
		}
	}

	missed := selectName != "" && !state.View().SelectMatch(selectName)

	m := newModel(state, cfg, watcher, lipgloss.NewRenderer(uiOutput(cfg.Shell.Target)))
	if missed {
		m.setStatus(fmt.Sprintf("no match for %q", selectName))
	}
	return m, nil
}

// uiOutput is where the UI is drawn. With the stdout target, stdout carries
// the cd command (usually into a pipe), so the UI goes to stderr.
func uiOutput(target string) *os.File {
	if target == config.TargetStdout {
		return os.Stderr
	}
	return os.Stdout
}

// finish emits the cd command unless the user aborted.
func finish(m *model, w io.Writer) error {
	if m.watcher != nil {
		m.watcher.Close()
	}
	if m.state.Aborted() {
		logger.Info("Aborted in %s", m.state.Dir())
		return nil
	}
	logger.Info("Handing off %s via %s", m.state.Dir(), m.cfg.Shell.Target)
	return shell.Emit(m.cfg.Shell.Target, m.cfg.Shell.CdFile, m.state.Dir(), w)
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("Bad log level %q: %v", cfg.LogLevel, err)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	m, err := newApp(cfg, dir, opts.selectName)
	if err != nil {
		logger.Error("Startup failed: %v", err)
		return err
	}

	final, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithOutput(uiOutput(cfg.Shell.Target)),
	).Run()
	if err != nil {
		logger.Error("Program exited with error: %v", err)
		if m.watcher != nil {
			m.watcher.Close()
		}
		return err
	}
	return finish(final.(*model), cmd.OutOrStdout())
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cdnav:", err)
		os.Exit(1)
	}
}
