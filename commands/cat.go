package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/sgrep/core/vos"
)

// Cat concatenates FILEs or piped standard input to standard output. In the
// playground it's the quickest way to look at what a search will see.
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	return cmd.RunE(virtOS, func() error {
		sources, closeSources, err := OpenEachFileOrStdin(virtOS, cmd.Flags().Args())
		if err != nil {
			return err
		}
		defer closeSources()

		for _, src := range sources {
			if _, err := io.Copy(virtOS.Stdout(), src.Reader); err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
		}
		return nil
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddCmd(Cat, "cat")
}
