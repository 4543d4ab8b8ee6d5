package commands

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start a session that keeps the data store open between commands",
		Long: `Start an interactive session where several commands run against the same
store and Google login. Type 'help' for the command list, 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🗓  Dienstplan interactive session")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			commands := sessionCommands(cmd.Parent())
			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}

				parts, err := splitCommandLine(strings.TrimSpace(scanner.Text()))
				if err != nil {
					fmt.Printf("❌ Error parsing command: %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}

				switch parts[0] {
				case "exit", "quit":
					fmt.Println("👋 Tschüss!")
					return nil
				case "help":
					printSessionHelp(commands)
					continue
				}

				target, ok := commands[parts[0]]
				if !ok {
					fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", parts[0])
					continue
				}

				app.Logger.Debug("interactive command", zap.Strings("args", parts))
				if err := runInSession(target, parts[1:]); err != nil {
					fmt.Printf("❌ Error: %v\n\n", err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			return nil
		},
	}
}

// sessionCommands collects the root's subcommands that make sense inside a session
func sessionCommands(root *cobra.Command) map[string]*cobra.Command {
	commands := make(map[string]*cobra.Command)
	for _, sub := range root.Commands() {
		switch sub.Name() {
		case "interactive", "completion", "help":
			continue
		}
		commands[sub.Name()] = sub
	}
	return commands
}

// runInSession resets the command's flags and calls RunE directly so the
// root's PersistentPreRunE does not open the store a second time
func runInSession(target *cobra.Command, args []string) error {
	var resetErr error
	target.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		if err := flag.Value.Set(flag.DefValue); err != nil && resetErr == nil {
			resetErr = fmt.Errorf("invalid flags: failed to reset --%s: %w", flag.Name, err)
		}
	})
	if resetErr != nil {
		return resetErr
	}

	if err := target.ParseFlags(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	args = target.Flags().Args()

	if target.Args != nil {
		if err := target.Args(target, args); err != nil {
			return err
		}
	}

	if target.RunE != nil {
		return target.RunE(target, args)
	}
	if target.Run != nil {
		target.Run(target, args)
	}
	return nil
}

func printSessionHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Printf("  %-42s %s\n", commands[name].Use, commands[name].Short)
	}

	fmt.Printf("\n  %-42s %s\n", "help", "Show this help message")
	fmt.Printf("  %-42s %s\n\n", "exit, quit", "Leave the session")
}

// splitCommandLine splits a line into arguments. Single or double quotes
// group words, so names with spaces can be passed as one argument.
func splitCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", quote)
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
