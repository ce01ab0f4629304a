package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/example/inkover/internal/engine"
	"github.com/example/inkover/internal/ui"
)

// interactiveCmd opens an annotation window and drives it from stdin, so the
// window can be controlled from scripts or a second terminal.
type interactiveCmd struct {
	annotate *annotateCmd
	*root
	fs *flag.FlagSet
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	a := &annotateCmd{root: r, fs: fs}
	i := &interactiveCmd{annotate: a, root: r, fs: fs}
	fs.Usage = usageFunc(i)
	fs.StringVar(&a.file, "file", "", "background image file to annotate")
	fs.BoolVar(&a.fromClipboard, "from-clipboard", false, "read the background image from the clipboard")
	fs.IntVar(&a.width, "width", 800, "blank canvas width when no background is given")
	fs.IntVar(&a.height, "height", 600, "blank canvas height when no background is given")
	fs.StringVar(&a.output, "output", "", "output file path")
	fs.BoolVar(&a.shadow, "shadow", r.config.Shadow, "apply a drop shadow when exporting")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	eng, err := i.annotate.buildEngine()
	if err != nil {
		return err
	}

	var mu sync.Mutex
	colorIdx := configColorIndex(i.root)
	widthIdx := configWidthIndex(i.root)

	session := ui.New(
		ui.WithEngine(eng),
		ui.WithExporter(i.annotate.buildExporter()),
		ui.WithTheme(i.activeTheme),
		ui.WithColorIndex(colorIdx),
		ui.WithWidthIndex(widthIdx),
		ui.WithSettingsListener(func(ci, wi int) {
			mu.Lock()
			colorIdx = ci
			widthIdx = wi
			mu.Unlock()
		}),
	)

	go func() {
		fmt.Fprintln(os.Stdout, "Enter commands (type 'help' for a list, 'quit' to close)")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(os.Stdout, "> ")
			if !scanner.Scan() {
				return
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			args := strings.Fields(line)
			switch args[0] {
			case "help":
				fmt.Fprintln(os.Stdout, "commands: tool <name>, color <name|hex>, width <px>, undo, redo, clear, save, pdf, copy, paste, quit")
			case "tool":
				if len(args) != 2 {
					fmt.Fprintln(os.Stderr, "usage: tool <pen|rect|circle|arrow|text|eraser>")
					continue
				}
				tool, err := engine.ParseTool(args[1])
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				session.ApplyTool(tool)
			case "color":
				if len(args) != 2 {
					fmt.Fprintln(os.Stderr, "usage: color <name|#RRGGBB>")
					continue
				}
				c, err := parseColor(args[1])
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				idx := ui.EnsurePaletteColor(c, args[1])
				mu.Lock()
				wi := widthIdx
				mu.Unlock()
				session.ApplySettings(idx, wi)
			case "width":
				if len(args) != 2 {
					fmt.Fprintln(os.Stderr, "usage: width <pixels>")
					continue
				}
				px, err := strconv.Atoi(args[1])
				if err != nil || px < 1 {
					fmt.Fprintln(os.Stderr, "width must be a positive integer")
					continue
				}
				idx := ui.EnsureWidth(px)
				mu.Lock()
				ci := colorIdx
				mu.Unlock()
				session.ApplySettings(ci, idx)
			case "undo", "redo", "clear", "save", "pdf", "copy", "paste":
				session.Invoke(args[0])
			case "quit", "exit":
				session.Invoke("quit")
				return
			default:
				fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
			}
		}
	}()

	session.Run()
	return nil
}
