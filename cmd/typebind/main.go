// Command typebind translates Rust-like serde-tagged data models into TIDL
// (a restricted TypeScript declaration subset).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/typebind/internal/config"
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/exporter"
	"github.com/sunholo/typebind/internal/pathmap"
	"github.com/sunholo/typebind/internal/pipeline"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/spawner"
	"github.com/sunholo/typebind/internal/tidlast"
)

var (
	Version = "dev"
	Commit  = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		output      = flag.String("o", "", "Output directory (generate/check)")
		pathMapper  = flag.String("p", "", "Path-mapper JSON file")
		crateName   = flag.String("crate", "crate", "Source crate name, for `crate::` use-tree substitution")
		format      = flag.String("format", "yaml", "Dump format for the config command: yaml or json")
		header      = flag.String("header", "standard", "Header banner for generated files: none, standard, or custom text")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)
	switch command {
	case "generate":
		requireArg(command, 2)
		exitWith(runGenerate(flag.Arg(1), *output, *pathMapper, *crateName, *header))
	case "check":
		requireArg(command, 2)
		exitWith(runCheck(flag.Arg(1), *output, *pathMapper, *crateName, *header))
	case "config":
		requireArg(command, 2)
		exitWith(runConfigDump(flag.Arg(1), *format))
	case "batch":
		requireArg(command, 2)
		exitWith(runBatch(flag.Arg(1)))
	case "repl":
		runRepl()
	case "help":
		printHelp()
	case "version":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func requireArg(command string, n int) {
	if flag.NArg() < n {
		fmt.Fprintf(os.Stderr, "%s: %s requires an <input> path\n", red("Error"), command)
		os.Exit(1)
	}
}

func runGenerate(input, output, pathMapperFile, crateName, header string) error {
	if output == "" {
		return errkind.MalformedInput{Detail: "missing -o output directory"}
	}
	p, err := buildPipeline(input, pathMapperFile, crateName)
	if err != nil {
		return err
	}
	exp := &exporter.File{Root: output, Header: headerStyleFromFlag(header)}
	return p.Run(nil, exp)
}

func runCheck(input, output, pathMapperFile, crateName, header string) error {
	if output == "" {
		return errkind.MalformedInput{Detail: "missing -o output directory"}
	}
	p, err := buildPipeline(input, pathMapperFile, crateName)
	if err != nil {
		return err
	}
	exp := &exporter.Check{Root: output, Header: headerStyleFromFlag(header)}
	return p.Run(nil, exp)
}

// headerStyleFromFlag maps the -header flag's value to a tidlast.HeaderStyle:
// "none" suppresses the banner, "standard" (the default) uses the fixed
// "Code generated" banner, and anything else is used verbatim as a custom
// banner.
func headerStyleFromFlag(value string) tidlast.HeaderStyle {
	switch value {
	case "", "standard":
		return tidlast.HeaderStyle{Standard: true}
	case "none":
		return tidlast.HeaderStyle{None: true}
	default:
		return tidlast.HeaderStyle{Custom: value}
	}
}

// runConfigDump loads a typebind.yaml batch config and prints it back in
// either format, so a generated or hand-edited batch file can be sanity
// checked without running a translation.
func runConfigDump(path, format string) error {
	batch, err := config.LoadBatch(path)
	if err != nil {
		return err
	}
	out, err := config.DumpConfig(batch, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// runBatch loads a typebind.yaml multi-root config and translates every
// root in turn, each into its own output directory, stopping at the first
// root that fails.
func runBatch(path string) error {
	batch, err := config.LoadBatch(path)
	if err != nil {
		return err
	}
	for _, root := range batch.Roots {
		crateName := root.CrateName
		if crateName == "" {
			crateName = "crate"
		}
		p, err := buildPipeline(root.Input, root.PathMapper, crateName)
		if err != nil {
			return err
		}
		header := headerStyleFromFlag(root.Header)
		switch root.Mode {
		case "check":
			err = p.Run(nil, &exporter.Check{Root: root.Output, Header: header})
		case "", "generate":
			err = p.Run(nil, &exporter.File{Root: root.Output, Header: header})
		default:
			err = errkind.MalformedInput{Detail: "unknown batch root mode: " + root.Mode}
		}
		if err != nil {
			return fmt.Errorf("root %s: %w", root.Input, err)
		}
		fmt.Printf("%s %s -> %s\n", green("done:"), root.Input, root.Output)
	}
	return nil
}

func buildPipeline(input, pathMapperFile, crateName string) (*pipeline.Pipeline, error) {
	var mapper *pathmap.Mapper
	if pathMapperFile != "" {
		m, err := config.LoadPathMapper(pathMapperFile)
		if err != nil {
			return nil, err
		}
		mapper = m
	}

	fs := spawner.NewFilesystem(rootDirOf(input), crateName, rootModuleNameOf(input), stubParse)
	return pipeline.New(fs, mapper, nil), nil
}

// stubParse is the only place the front-end Rust parser's absence is felt:
// parsing real source is an external collaborator per spec.md §1, so
// `typebind generate`/`check` report a clear error rather than silently
// emitting nothing. Embedders with a real parser supply their own
// spawner.ParseModule instead of going through this binary's main().
func stubParse(path []string, content []byte) ([]source.Item, error) {
	return nil, errkind.MalformedInput{Detail: "no front-end parser wired: supply a spawner.ParseModule"}
}

func exitWith(err error) {
	if err == nil {
		fmt.Println(green("done"))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), err.Error())
	os.Exit(exitCodeFor(err))
}

func exitCodeFor(err error) int {
	var k errkind.Kinded
	if !errors.As(err, &k) {
		return 1
	}
	switch {
	case errkind.IsIdentError(k.ErrCode()):
		return 2
	case errkind.IsImportError(k.ErrCode()):
		return 3
	case errkind.IsSolverError(k.ErrCode()):
		return 4
	case errkind.IsSynthesisError(k.ErrCode()):
		return 5
	case errkind.IsCLIError(k.ErrCode()):
		return 6
	default:
		return 1
	}
}

func printVersion() {
	fmt.Printf("typebind %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("commit: %s\n", Commit)
	}
}

func printHelp() {
	fmt.Println(bold("typebind — serde-to-TIDL type binding generator"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  typebind <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <input> -o <dir>   Emit TIDL files\n", cyan("generate"))
	fmt.Printf("  %s <input> -o <dir>   Compare generated output against <dir>\n", cyan("check"))
	fmt.Printf("  %s                    Start the interactive REPL\n", cyan("repl"))
	fmt.Printf("  %s <file>             Print a typebind.yaml batch config back in --format\n", cyan("config"))
	fmt.Printf("  %s <file>              Translate every root in a typebind.yaml batch config\n", cyan("batch"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -o <dir>        Output directory")
	fmt.Println("  -p <file>       Path-mapper JSON file")
	fmt.Println("  --crate <name>  Source crate name (for `crate::` imports)")
	fmt.Println("  --format <fmt>  Dump format for `config`: yaml (default) or json")
	fmt.Println("  --header <h>    Header banner: none, standard (default), or custom text")
	fmt.Println()
	fmt.Printf("Run %s for the secondary help/version tree.\n", yellow("typebind-admin help"))
}
