package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/piyushdaiya/wallet-classifier/internal/config"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
	"github.com/piyushdaiya/wallet-classifier/internal/validator"
	"github.com/piyushdaiya/wallet-classifier/internal/watchlist"
)

type classifyOptions struct {
	file      string
	format    string
	explain   bool
	watchlist bool
	workers   int
}

func newClassifyCommand() *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify [address...]",
		Short: "Classify one or more wallet addresses",
		Long: `Classify prints, for each address, the chain it belongs to or
"Unknown or Invalid Address". Addresses come from the arguments and, with
--file, from a file holding one address per line ("-" reads stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read addresses from a file, one per line")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "json", "output format: json or table")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "include the outcome of every chain rule")
	cmd.Flags().BoolVar(&opts.watchlist, "watchlist", false, "also query the watchlist engine")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "number of addresses classified concurrently")
	return cmd
}

func runClassify(cmd *cobra.Command, opts *classifyOptions, args []string) error {
	if opts.format != "json" && opts.format != "table" {
		return fmt.Errorf("unknown format %q: want json or table", opts.format)
	}
	if opts.workers < 1 {
		return fmt.Errorf("--workers must be at least 1")
	}

	addresses := make([]string, 0, len(args))
	for _, a := range args {
		addresses = append(addresses, strings.TrimSpace(a))
	}
	if opts.file != "" {
		fromFile, err := readAddresses(cmd.InOrStdin(), opts.file)
		if err != nil {
			return err
		}
		addresses = append(addresses, fromFile...)
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no address given: usage %s", cmd.UseLine())
	}

	var client *watchlist.Client
	if opts.watchlist {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client = watchlist.NewClient(cfg.EngineURL)
	}

	results := classifyAll(cmd.Context(), validator.NewClassifier(), client, addresses, opts)
	return render(cmd.OutOrStdout(), opts.format, results)
}

func readAddresses(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// classifyAll keeps input order in the returned slice.
func classifyAll(ctx context.Context, c *validator.Classifier, client *watchlist.Client, addresses []string, opts *classifyOptions) []*core.ValidationResult {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]*core.ValidationResult, len(addresses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			res := c.Profile(address, opts.explain)
			if client != nil {
				annotateWatchlist(ctx, client, res)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func annotateWatchlist(ctx context.Context, client *watchlist.Client, res *core.ValidationResult) {
	remote, err := client.Check(ctx, res.Address)
	if err != nil {
		log.WithField("component", "cli").WithError(err).Warnf("Watchlist check skipped for %s", res.Address)
		return
	}
	res.Sanctioned = remote.Sanctioned
	res.Currency = remote.Currency
	res.Source = remote.Source
}

func render(w io.Writer, format string, results []*core.ValidationResult) error {
	if format == "table" {
		renderTable(w, results)
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if len(results) == 1 {
		return encoder.Encode(results[0])
	}
	return encoder.Encode(results)
}

func renderTable(w io.Writer, results []*core.ValidationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Address", "Network", "Valid", "Sanctioned", "Details"})
	table.SetAutoWrapText(false)

	for _, r := range results {
		sanctioned := "-"
		if r.Sanctioned != nil {
			sanctioned = strconv.FormatBool(*r.Sanctioned)
			if *r.Sanctioned {
				sanctioned += " (" + r.Source + " " + r.Currency + ")"
			}
		}
		details := r.ValidationDetails
		if r.ChecksumAddress != "" && r.ChecksumAddress != r.Address {
			details += "; EIP-55 form " + r.ChecksumAddress
		}
		table.Append([]string{r.Address, r.Network.String(), strconv.FormatBool(r.IsValid), sanctioned, details})
	}
	table.Render()
}
