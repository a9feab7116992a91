package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/pkg/key"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the vbind version, build details and the size of the key
registry compiled into this binary.`,
		Run: func(cmd *cobra.Command, args []string) {
			if !short {
				printBanner()
			}
			writeVersion(cmd.OutOrStdout(), short)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}

// buildVersion is the ldflags version, or the module version when the binary
// was built with go install.
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func writeVersion(w io.Writer, short bool) {
	v := buildVersion()
	if short {
		fmt.Fprintln(w, v)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Version:    %s\n", v)
	fmt.Fprintf(w, "  Commit:     %s\n", commit)
	fmt.Fprintf(w, "  Built:      %s\n", date)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  Keys:       %d attributes, %d style properties\n",
		key.Count(key.KindAttribute), key.Count(key.KindStyle))
	fmt.Fprintln(w)
}
