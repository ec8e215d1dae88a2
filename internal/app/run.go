package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/embeddedci/boardcat/internal/board"
	"github.com/embeddedci/boardcat/internal/catalog"
	"github.com/embeddedci/boardcat/internal/ctxlog"
	"github.com/embeddedci/boardcat/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// targetsJSONName is the catalog file searched for when --targets-json
// points at a directory instead of a file.
const targetsJSONName = "targets.json"

// Run executes the command selected by the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", cfg.Command)

	switch cfg.Command {
	case "list":
		return a.runList(ctx)
	case "lookup":
		return a.runLookup(ctx, cfg)
	case "resolve":
		return a.runResolve(ctx, cfg)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// runList prints a table of every board visible in the configured
// database mode.
func (a *App) runList(ctx context.Context) error {
	boards, err := a.db.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list boards: %w", err)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOARD TYPE\tBOARD NAME\tPRODUCT CODE\tTARGET TYPE\tSLUG")
	for _, b := range boards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.BoardType, b.BoardName, b.ProductCode, b.TargetType, b.Slug)
	}
	return tw.Flush()
}

// runLookup finds a single board by product code or by (slug, target
// type) pair and prints it as JSON.
func (a *App) runLookup(ctx context.Context, cfg *Config) error {
	var (
		b   board.Board
		err error
	)
	switch {
	case cfg.ProductCode != "":
		b, err = a.db.ByProductCode(ctx, cfg.ProductCode)
	case cfg.Slug != "" && cfg.TargetType != "":
		b, err = a.db.ByOnlineID(ctx, cfg.Slug, cfg.TargetType)
	default:
		return fmt.Errorf("lookup requires either --product-code, or --slug together with --target-type")
	}
	if err != nil {
		return fmt.Errorf("board lookup failed: %w", err)
	}

	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, string(out))
	return nil
}

// runResolve flattens the attribute hierarchy for one named target from
// the catalog and prints the result, labels included, as JSON.
func (a *App) runResolve(ctx context.Context, cfg *Config) error {
	logger := ctxlog.FromContext(ctx)

	if len(cfg.Args) != 1 {
		return fmt.Errorf("resolve requires exactly one TARGET_NAME argument")
	}
	name := cfg.Args[0]

	path, err := a.locateTargetsJSON(cfg.TargetsJSONPath)
	if err != nil {
		return err
	}
	logger.Debug("Resolving target attributes.", "target", name, "targets_json", path)

	cat, err := catalog.LoadCatalog(path)
	if err != nil {
		return err
	}

	resolved, err := cat.Resolve(name)
	if err != nil {
		return err
	}

	out, err := renderResolved(resolved)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, string(out))
	return nil
}

// locateTargetsJSON accepts either a targets.json path or a directory to
// search for one, mirroring how the catalog file lives somewhere inside
// an OS source tree.
func (a *App) locateTargetsJSON(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resolve requires --targets-json")
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access %q: %w", path, err)
	}
	if info.IsDir() {
		return fsutil.FindFileByName(path, targetsJSONName)
	}
	return path, nil
}

// renderResolved serializes a resolved attribute set as indented JSON,
// with the label set under a "labels" key alongside the attributes.
func renderResolved(resolved *catalog.Resolved) ([]byte, error) {
	attrs := make(map[string]cty.Value, len(resolved.Attributes)+1)
	for key, val := range resolved.Attributes {
		attrs[key] = val
	}

	// Labels always contain at least the target's own name.
	labels := make([]cty.Value, len(resolved.Labels))
	for i, label := range resolved.Labels {
		labels[i] = cty.StringVal(label)
	}
	attrs["labels"] = cty.ListVal(labels)

	obj := cty.ObjectVal(attrs)
	raw, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resolved attributes: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
