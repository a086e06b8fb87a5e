// Package main provides the CLI entrypoint for plural-binder.
//
// plural-binder classifies the element side of collection-valued attributes
// in an object-relational mapping:
//   - check:   validate a YAML mapping document and assemble the metamodel
//   - inspect: print the element classification of every plural attribute
//   - dump:    print the assembled element bindings in full
//   - suggest: derive a mapping document from tagged Go structs
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"

	"plural-binder/internal/analyze"
	"plural-binder/internal/binding"
	"plural-binder/internal/diagnostic"
	"plural-binder/internal/logger"
	"plural-binder/internal/mapping"
)

const usage = `usage: plural-binder <command> [flags] <args>

commands:
  check   <mapping.yaml>    validate and assemble a mapping document
  inspect <mapping.yaml>    print the element classification table
  dump    <mapping.yaml>    print every element binding in full
  suggest <package>...      derive a mapping document from tagged structs
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	mode        string
	emptyValues string
	output      string
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd := args[0]

	var opts options

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", "prod", "log mode: prod or dev")
	fs.StringVar(&opts.emptyValues, "empty-values", "", "override the empty_values policy: associations, allow or reject")
	fs.StringVar(&opts.output, "o", "", "suggest: write the document to this file instead of stdout")

	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	log, err := logger.New(opts.mode)
	if err != nil {
		fmt.Fprintf(stderr, "init logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	log = log.With("command", cmd)

	switch cmd {
	case "check", "inspect", "dump":
		err = runModel(cmd, fs.Args(), opts, log, stdout, stderr)
	case "suggest":
		err = runSuggest(fs.Args(), opts, log, stdout, stderr)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func runModel(cmd string, args []string, opts options, log *logger.Logger, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes exactly one mapping file", errUsage, cmd)
	}

	mf, err := mapping.LoadFile(args[0])
	if err != nil {
		return err
	}

	if opts.emptyValues != "" {
		mf.Options.EmptyValues = opts.emptyValues
	}

	model, diags := mapping.Assemble(mf, log.With("file", args[0]))
	printDiagnostics(stderr, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
	}

	views := viewsOf(model)

	switch cmd {
	case "inspect":
		return writeTable(stdout, views)
	case "dump":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		cfg.Fdump(stdout, views)
	default:
		fmt.Fprintf(stdout, "%s: ok, %d plural attribute(s)\n", args[0], model.Len())
	}

	return nil
}

func runSuggest(args []string, opts options, log *logger.Logger, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: suggest needs at least one package", errUsage)
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(args...)
	if err != nil {
		return err
	}

	pkgPaths := make([]string, 0, len(graph.Packages))
	for path := range graph.Packages {
		pkgPaths = append(pkgPaths, path)
	}
	slices.Sort(pkgPaths)

	mf, diags := mapping.Suggest(graph, pkgPaths...)
	printDiagnostics(stderr, diags)
	log.Info("mapping suggested", "packages", len(pkgPaths), "entities", len(mf.Entities), "skipped", len(diags.Infos))

	if opts.output != "" {
		return mapping.WriteFile(mf, opts.output)
	}

	data, err := mapping.Marshal(mf)
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)
	return err
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// elementView is the flattened, printable form of one element binding.
type elementView struct {
	Role        string
	Collection  string
	Nature      string
	Association bool
	Cascadeable bool
	Nullable    bool
	NonNullable bool
	Derived     bool
	Fetch       string
	Entity      string
	Type        string
	Values      []string
}

func viewsOf(model *binding.Metamodel) []elementView {
	views := make([]elementView, 0, model.Len())

	for _, p := range model.PluralAttributes() {
		e := p.ElementBinding()

		values := make([]string, 0, e.RelationalValueBindings().Len())
		for _, v := range e.RelationalValueBindings().All() {
			values = append(values, v.String())
		}

		views = append(views, elementView{
			Role:        p.Role(),
			Collection:  p.CollectionNature().String(),
			Nature:      e.Nature().String(),
			Association: e.Nature().IsAssociation(),
			Cascadeable: e.Nature().IsCascadeable(),
			Nullable:    e.IsNullable(),
			NonNullable: e.HasNonNullableValue(),
			Derived:     e.HasDerivedValue(),
			Fetch:       e.FetchMode().String(),
			Entity:      e.ReferencedEntity(),
			Type:        e.TypeDescriptor().ExplicitTypeName,
			Values:      values,
		})
	}

	return views
}

func writeTable(w io.Writer, views []elementView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ROLE\tCOLLECTION\tNATURE\tASSOC\tCASCADE\tNULLABLE\tNON-NULL\tDERIVED\tFETCH\tENTITY\tVALUES")

	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\t%t\t%t\t%t\t%s\t%s\t%s\n",
			v.Role, v.Collection, v.Nature,
			v.Association, v.Cascadeable,
			v.Nullable, v.NonNullable, v.Derived,
			v.Fetch, dash(v.Entity), dash(strings.Join(v.Values, ",")))
	}

	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
