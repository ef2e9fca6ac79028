// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command plumbreg reads installation paths from the start-up
// configuration and fingerprints files.
//
// Usage:
//
//	plumbreg [--app=plumb] [--trace=error] path <name>...
//	plumbreg sum <file>...
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"gopkg.in/alecthomas/kingpin.v2"

	"code.hybscloud.com/plumb/checksum"
	"code.hybscloud.com/plumb/registry"
)

func main() {
	app := kingpin.New("plumbreg", "Installation path and fingerprint helper.")
	appTag := app.Flag("app", "Application tag used to locate the configuration.").Default("plumb").String()
	level := app.Flag("trace", "Trace level.").Default("error").Enum("error", "info", "debug")

	pathCmd := app.Command("path", "Print resolved installation paths.")
	names := pathCmd.Arg("name", "Installation entry names, e.g. root or sdk.").Required().Strings()

	sumCmd := app.Command("sum", "Print XXH64 fingerprints of files.")
	files := sumCmd.Arg("file", "Files to fingerprint.").Required().ExistingFiles()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	conf := registry.LoadConfig(*appTag)
	conf.Set("tracelevel.root", *level)
	conf.Set("tracelevel.plumb", *level)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		app.Fatalf("tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	var err error
	switch cmd {
	case pathCmd.FullCommand():
		err = printPaths(os.Stdout, registry.New(conf), *names)
	case sumCmd.FullCommand():
		err = printSums(os.Stdout, *files)
	}
	if err != nil {
		app.Fatalf("%v", err)
	}
}

func printPaths(w io.Writer, r *registry.Reader, names []string) error {
	key := color.New(color.FgCyan).SprintFunc()
	for _, name := range names {
		p, err := r.InstallPath(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", key(name), p)
	}
	return nil
}

func printSums(w io.Writer, files []string) error {
	sum := color.New(color.FgGreen).SprintfFunc()
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		s, n, err := checksum.SumReader(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(w, "%s  %8d  %s\n", sum("%016x", s), n, name)
	}
	return nil
}
