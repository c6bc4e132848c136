/*
Command anchorcli is an interactive shell for the anchor layout engine.

It loads an HTML document, links all elements carrying anchor attributes
and lets the user inspect and modify the layout:

	anchorcli -file page.html -width 1280 -height 800

Enter 'help' at the prompt for a list of commands.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/npillmayer/anchorlayout/core"
	"github.com/npillmayer/anchorlayout/engine/anchor"
	"github.com/npillmayer/anchorlayout/engine/dom/htmldom"
	"github.com/npillmayer/anchorlayout/engine/runloop"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'anchor.cli'
func tracer() tracing.Trace {
	return tracing.Select("anchor.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	filename := flag.String("file", "", "HTML file to load (default: demo page)")
	width := flag.Int("width", htmldom.DefaultViewportWidth, "Viewport width in px")
	height := flag.Int("height", htmldom.DefaultViewportHeight, "Viewport height in px")
	noauto := flag.Bool("noauto", false, "Do not switch linked elements to absolute positioning")
	flag.Parse()

	// set up configuration and logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.anchor.cli":       *tlevel,
		"trace.anchor.engine":    *tlevel,
		"trace.anchor.dom":       "Error",
		"trace.anchor.loop":      "Error",
		"anchor.viewport-width":  strconv.Itoa(*width),
		"anchor.viewport-height": strconv.Itoa(*height),
	}
	if *noauto {
		conf["anchor.auto-transform"] = "false"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)
	pterm.Info.Println("Welcome to the anchor layout CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load the document and link its elements
	intp, err := load(*filename)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	if err := intp.engine.Layout(context.Background()); err != nil {
		core.UserError(err)
	}
	intp.show("")
	//
	// set up REPL
	repl, err := readline.New("anchor > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// load parses an HTML file, or the demo page if filename is empty, and
// initializes a layout engine for it.
func load(filename string) (*Intp, error) {
	loop := runloop.New()
	var doc *htmldom.Document
	var err error
	if filename == "" {
		doc, err = htmldom.ParseString(demoPage, loop, htmldom.ViewportFromConfig())
	} else {
		var f *os.File
		if f, err = os.Open(filename); err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot open %s", filename)
		}
		defer f.Close()
		doc, err = htmldom.Parse(f, loop, htmldom.ViewportFromConfig())
	}
	if err != nil {
		return nil, err
	}
	engine := anchor.New(doc, loop, anchor.OptionsFromConfig()...)
	if err := engine.Init(nil); err != nil {
		pterm.Error.Println(err.Error())
	}
	return &Intp{doc: doc, engine: engine}, nil
}

const demoPage = `<html><body>
<div id="header" lefttop="window" righttop="window" style="height: 60px"></div>
<div id="menu" lefttop="#header.leftbottom:0,8" style="width: 180px; height: 400px"></div>
<div id="content" lefttop="#menu.righttop:8,0" rightbottom="window:-8,-8"></div>
<div id="badge" center="#content" style="width: 80px; height: 24px"></div>
</body></html>`
