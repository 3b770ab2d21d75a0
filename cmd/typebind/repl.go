package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// runRepl is a supplemental interactive shell (SPEC_FULL.md §11): rather
// than evaluating source code (this system doesn't execute anything, per
// spec.md §1's non-goals), its commands drive the same generate/check paths
// as the non-interactive CLI against whatever input/output/mapper the user
// has set, so a path mapper or output layout can be iterated on without
// re-invoking the binary each time.
func runRepl() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".typebind_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	line.SetCompleter(func(s string) []string {
		cmds := []string{":generate", ":check", ":set", ":show", ":help", ":quit"}
		var out []string
		for _, c := range cmds {
			if strings.HasPrefix(c, s) {
				out = append(out, c)
			}
		}
		return out
	})

	fmt.Println(bold("typebind repl"))
	fmt.Println(cyan(":help") + " for commands, " + cyan(":quit") + " to exit")

	var input, output, mapperFile, crate = "", "", "", "crate"

	for {
		text, err := line.Prompt(cyan("typebind> "))
		if err != nil {
			break // EOF or Ctrl-D
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		fields := strings.Fields(text)
		switch fields[0] {
		case ":quit", ":q":
			return
		case ":help":
			printReplHelp()
		case ":set":
			if len(fields) < 3 {
				fmt.Println(red("usage: :set <input|output|mapper|crate> <value>"))
				continue
			}
			switch fields[1] {
			case "input":
				input = fields[2]
			case "output":
				output = fields[2]
			case "mapper":
				mapperFile = fields[2]
			case "crate":
				crate = fields[2]
			default:
				fmt.Println(red("unknown setting: " + fields[1]))
			}
		case ":show":
			fmt.Printf("input=%q output=%q mapper=%q crate=%q\n", input, output, mapperFile, crate)
		case ":generate":
			if err := runGenerate(input, output, mapperFile, crate, "standard"); err != nil {
				fmt.Println(red("Error: ") + err.Error())
			} else {
				fmt.Println(green("generated"))
			}
		case ":check":
			if err := runCheck(input, output, mapperFile, crate, "standard"); err != nil {
				fmt.Println(red("Error: ") + err.Error())
			} else {
				fmt.Println(green("up to date"))
			}
		default:
			fmt.Println(yellow("unknown command, try :help"))
		}
	}
}

func printReplHelp() {
	fmt.Println("  :set input <path>    set the input file")
	fmt.Println("  :set output <dir>    set the output directory")
	fmt.Println("  :set mapper <file>   set the path-mapper JSON file")
	fmt.Println("  :set crate <name>    set the source crate name")
	fmt.Println("  :show                print the current settings")
	fmt.Println("  :generate            run generate with current settings")
	fmt.Println("  :check               run check with current settings")
	fmt.Println("  :quit                exit")
}
