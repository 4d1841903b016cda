// Package cmd implements the fave subcommands: run, render and curve.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/fave/cmd/fave/internal/config"
	"github.com/go-drift/fave/pkg/animation"
)

// Set by -ldflags at release time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is one fave subcommand.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "fave",
	Short: "fave - elastic favorite button bursts",
	Long: `fave previews the favorite button burst: an expanding ring, a ring of
sparks and an elastic icon bounce. It can open an interactive window, export
frames as PNG images or print the sampled easing curve.

Use "fave <command> --help" for more information about a command.`,
	Usage: "fave <command> [flags]",
}

var commands = make(map[string]*Command)

// configDir overrides the directory fave.yaml is loaded from.
var configDir string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// --config may appear anywhere; help and version only lead.
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("fave version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 < len(args) {
				configDir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--config=") {
				configDir = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig resolves fave.yaml from --config or the nearest project root.
func loadConfig() (*config.Resolved, error) {
	dir := configDir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// parseFPS accepts finite rates in (0, animation.MaxFPS].
func parseFPS(value string) (float64, error) {
	fps, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if !(fps > 0 && fps <= animation.MaxFPS) {
		return 0, fmt.Errorf("want a rate in (0, %g]", animation.MaxFPS)
	}
	return fps, nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config DIR         Directory containing fave.yaml (default: nearest parent)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fave run                  Open an interactive preview window")
	fmt.Println("  fave render -o frames     Export one burst as PNG frames")
	fmt.Println("  fave curve --fps 30       Print the icon bounce samples")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
