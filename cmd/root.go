package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simon/tsh/internal/deps"
	"github.com/simon/tsh/internal/finder"
	"github.com/simon/tsh/internal/selector"
	"github.com/simon/tsh/internal/tmux"
)

func SetVersionInfo(version, commit string) {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
}

var rootCmd = &cobra.Command{
	Use:   "tsh [name...]",
	Short: "Select a directory with fzf and open a tmux session for it",
	Long: `Searches for candidate directories, pipes them through fzf for an
interactive pick, then attaches to (or creates) a tmux session named
after the chosen directory.

With positional name arguments, every directory matching one of the
names under the home directory becomes a search root. With -d, the
given directory is searched instead. With neither, the home directory
is searched.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Check("fzf", "tmux"); err != nil {
			return err
		}

		base, _ := cmd.Flags().GetString("dir")

		dirs, err := enumerate(args, base)
		if err != nil {
			return err
		}

		choice, ok, err := selector.New("fzf").Pick(dirs)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No directory selected. Exiting.")
			return nil
		}

		return tmux.Connect(choice)
	},
}

// enumerate produces the candidate directory list for one of the three
// search modes: named search, custom base, or default (home) base.
func enumerate(names []string, customBase string) ([]string, error) {
	enum := finder.NewEnumerator()

	if len(names) > 0 {
		base, err := finder.DefaultBase()
		if err != nil {
			return nil, err
		}

		roots, err := enum.NamedRoots(base, names)
		if err != nil {
			return nil, err
		}

		fmt.Printf("Searching in directories: %s\n", strings.Join(roots, ", "))
		return enum.UnderAll(roots)
	}

	if customBase != "" {
		fmt.Printf("Searching in custom directory: %s\n", customBase)
		return enum.Under(customBase)
	}

	base, err := finder.DefaultBase()
	if err != nil {
		return nil, err
	}
	fmt.Println("Searching in home directory...")
	return enum.Under(base)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("dir", "d", "", "Custom base directory to search in")
}
