// Command typebind-admin is a small cobra-based companion to typebind,
// exercising spf13/cobra for the help/version tree rather than the
// flag-based dispatch the main binary uses (SPEC_FULL.md §10: the teacher
// carries cobra only as an indirect, unused dependency; this is its call
// site).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:   "typebind-admin",
		Short: "typebind companion tool: version and environment info",
		Long: "typebind-admin surfaces version/build metadata for the typebind " +
			"toolchain. The type-binding generator itself is the `typebind` " +
			"binary; this one only introspects it.",
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("typebind-admin %s (commit %s)\n", version, commit)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "env",
		Short: "Print TYPEBIND_CRATE_ROOT and TYPEBIND_PATH_MAPPER (typebind itself reads neither)",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range []string{"TYPEBIND_CRATE_ROOT", "TYPEBIND_PATH_MAPPER"} {
				fmt.Printf("%s=%s\n", name, os.Getenv(name))
			}
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
