package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/anchorlayout/core/dimen"
	"github.com/npillmayer/anchorlayout/engine/anchor"
	"github.com/npillmayer/anchorlayout/engine/dom"
	"github.com/npillmayer/anchorlayout/engine/dom/htmldom"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	doc    *htmldom.Document
	engine *anchor.Engine
	repl   *readline.Instance
	out    io.Writer     // for 'html'; defaults to stdout
	limit  time.Duration // time limit for settling the layout, 0 = none
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	LAYOUT
	SHOW
	SET
	ATTR
	RESIZE
	CYCLES
	HTML
)

// Command is a parsed command line.
type Command struct {
	code int
	args []string
}

var commands = map[string]struct {
	code    int
	minArgs int
	maxArgs int
}{
	"quit":   {QUIT, 0, 0},
	"help":   {HELP, 0, 1},
	"layout": {LAYOUT, 0, 0},
	"show":   {SHOW, 0, 1},
	"set":    {SET, 3, 3},
	"attr":   {ATTR, 2, 3},
	"resize": {RESIZE, 2, 2},
	"cycles": {CYCLES, 0, 0},
	"html":   {HTML, 0, 0},
}

func parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	c, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown command %q, try 'help'", fields[0])
	}
	args := fields[1:]
	// the last argument of set and attr may contain spaces
	if len(args) > c.maxArgs && c.maxArgs > 0 {
		args = append(args[:c.maxArgs-1], strings.Join(args[c.maxArgs-1:], " "))
	}
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return nil, core.Error(core.EINVALID, "wrong number of arguments for %s", fields[0])
	}
	tracer().Debugf("parse command = %s %v", fields[0], args)
	return &Command{code: c.code, args: args}, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LAYOUT:
		ctx, stop := intp.interruptible()
		err := intp.engine.Layout(ctx)
		stop()
		if err != nil {
			return false, unsettled(err)
		}
		intp.show("")
	case SHOW:
		intp.show(optArg(cmd.args, 0))
	case SET:
		n, err := intp.element(cmd.args[0])
		if err != nil {
			return false, err
		}
		n.SetStyle(cmd.args[1], cmd.args[2])
		return false, intp.settle()
	case ATTR:
		n, err := intp.element(cmd.args[0])
		if err != nil {
			return false, err
		}
		if len(cmd.args) == 2 {
			n.RemoveAttribute(cmd.args[1])
		} else {
			n.SetAttribute(cmd.args[1], cmd.args[2])
		}
		return false, intp.settle()
	case RESIZE:
		w, err1 := strconv.Atoi(cmd.args[0])
		h, err2 := strconv.Atoi(cmd.args[1])
		if err := errors.Join(err1, err2); err != nil {
			return false, core.WrapError(err, core.EINVALID, "viewport size must be numeric")
		}
		intp.doc.ResizeViewport(dimen.Dimen(w), dimen.Dimen(h))
		return false, intp.settle()
	case CYCLES:
		cycles := intp.engine.Cycles()
		if len(cycles) == 0 {
			pterm.Info.Println("no link cycles")
		}
		for _, c := range cycles {
			names := make([]string, len(c))
			for i, el := range c {
				names[i] = el.String()
			}
			pterm.Printfln("cycle: %s", strings.Join(names, " <-> "))
		}
	case HTML:
		out := intp.out
		if out == nil {
			out = os.Stdout
		}
		return false, intp.doc.Render(out)
	}
	return false, nil
}

// settle runs the loop until all pending recomputations are done. Link
// cycles never settle; <ctrl>C or the time limit stops them.
func (intp *Intp) settle() error {
	ctx, stop := intp.interruptible()
	defer stop()
	return unsettled(intp.doc.Loop().Drain(ctx))
}

func (intp *Intp) interruptible() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if intp.limit <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, intp.limit)
	return ctx, func() {
		cancel()
		stop()
	}
}

func unsettled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return core.WrapError(err, core.EINTERNAL, "layout did not settle, try 'cycles'")
	}
	return err
}

func (intp *Intp) element(selector string) (*htmldom.Node, error) {
	n, err := intp.doc.Query(selector)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, core.Error(core.EMISSING, "no element matches %q", selector)
	}
	return n.(*htmldom.Node), nil
}

// show prints the geometry of elements as a table. Without a selector, all
// elements known to the engine are listed.
func (intp *Intp) show(selector string) {
	var nodes []dom.Node
	if selector == "" {
		for _, el := range intp.engine.Elements() {
			if !el.Node().IsViewport() {
				nodes = append(nodes, el.Node())
			}
		}
	} else {
		var err error
		if nodes, err = intp.doc.QueryAll(nil, selector); err != nil {
			pterm.Error.Println(core.UserMessage(err))
			return
		}
	}
	data := pterm.TableData{{"element", "position", "left", "top", "width", "height", "links"}}
	for _, n := range nodes {
		data = append(data, intp.row(n))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

func (intp *Intp) row(n dom.Node) []string {
	off, sz := n.Offset(), n.Size()
	var links []string
	if el, ok := intp.engine.Lookup(n); ok {
		for _, name := range anchor.AllNames {
			a := el.Anchor(name)
			if a.Target() == nil {
				continue
			}
			l := name.String() + "->" + a.Target().String()
			if off, ok := a.Offset(); ok && off != dimen.Origin {
				l += ":" + off.String()
			}
			links = append(links, l)
		}
	}
	return []string{
		n.Name(),
		n.Positioning().String(),
		dimen.Format(off.X),
		dimen.Format(off.Y),
		dimen.Format(sz.W),
		dimen.Format(sz.H),
		strings.Join(links, " "),
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	layout                      resolve all linked elements
	show [selector]             show geometry of elements
	set <selector> <prop> <v>   set an inline style property
	attr <selector> <name> [v]  set an attribute, or remove it if v is missing
	resize <width> <height>     resize the viewport
	cycles                      list groups of elements linked in a cycle
	html                        print the document
	quit                        leave
	`)
}

func optArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
