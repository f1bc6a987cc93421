package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mawngo/mincluster/internal/mincluster"
	"github.com/muesli/clusters"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

func Init() *slog.LevelVar {
	level := &slog.LevelVar{}
	logger := slog.New(
		console.NewHandler(os.Stderr, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	slog.SetDefault(logger)
	cobra.EnableCommandSorting = false
	return level
}

type CLI struct {
	command *cobra.Command
}

// NewCLI create new CLI instance and set up application config.
func NewCLI() *CLI {
	level := Init()

	f := flags{
		Clusters:     3,
		DistanceAlgo: "Absolute",
		Format:       "text",
	}

	command := cobra.Command{
		Use:           "mincluster [files...]",
		Short:         "Partition numbers or vectors into k clusters by farthest-first head selection",
		Long:          "Reads one element per line from the given files, directories or stdin (none or \"-\").\nA line holding several comma or space separated numbers is a vector.\nRepeated values or rows count once, whatever the distance algo.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			debug, err := cmd.PersistentFlags().GetBool("debug")
			if err != nil {
				return err
			}
			if debug {
				level.Set(slog.LevelDebug)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if f.Format != "text" && f.Format != "json" {
				return fmt.Errorf("unknown output format %q", f.Format)
			}

			data, err := readDataset(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			points, err := parsePoints(f.Predict, data.Dim)
			if err != nil {
				return err
			}

			seed := f.Seed
			if seed == 0 {
				seed = now.UnixNano()
			}
			slog.Debug("Start partitioning",
				slog.Int("k", f.Clusters),
				slog.Int("elements", len(data.Rows)),
				slog.Int("dim", data.Dim),
				slog.String("dalgo", f.DistanceAlgo),
				slog.Int64("seed", seed),
			)

			cc, predict, err := partition(data, f, seed)
			if err != nil {
				return err
			}

			r := newReport(cc)
			for _, p := range points {
				c, err := predict(p)
				if err != nil {
					return err
				}
				r.Predictions = append(r.Predictions, prediction{Point: p, Cluster: c})
			}
			if err := r.write(cmd.OutOrStdout(), f.Format); err != nil {
				return err
			}
			slog.Info("Clustering completed",
				slog.Int("k", len(cc)),
				slog.Int("elements", len(data.Rows)),
				slog.Duration("took", time.Since(now)))
			return nil
		},
	}

	command.Flags().IntVarP(&f.Clusters, "clusters", "k", f.Clusters, "Number of clusters")
	command.Flags().Int64Var(&f.Seed, "seed", f.Seed, "Seed of the first head selection [0=random]")
	command.Flags().StringVar(&f.DistanceAlgo, "dalgo", f.DistanceAlgo, "Distance algo [Absolute,EuclideanDistance,EuclideanDistanceSquared,ManhattanDistance,ChebyshevDistance]")
	command.Flags().StringVarP(&f.Format, "format", "f", f.Format, "Output format [text,json]")
	command.Flags().StringArrayVarP(&f.Predict, "predict", "p", f.Predict, "Point to assign to the nearest cluster, may be repeated")
	command.PersistentFlags().Bool("debug", false, "Enable debug mode")
	command.Flags().SortFlags = false
	return &CLI{&command}
}

// partition runs the scalar builder for one-dimensional input measured with Absolute,
// and the observation adapter over distinct rows for everything else.
func partition(data dataset, f flags, seed int64) (clusters.Clusters, func(clusters.Coordinates) (int, error), error) {
	options := []mincluster.Option{
		mincluster.WithSeed(seed),
		mincluster.WithLogger(slog.Default()),
	}

	if f.DistanceAlgo == "Absolute" {
		if data.Dim > 1 {
			return nil, nil, fmt.Errorf("distance algo Absolute needs one-dimensional input, got %d dimensions", data.Dim)
		}
		values := make([]float64, len(data.Rows))
		for i, row := range data.Rows {
			values[i] = row[0]
		}
		s, err := mincluster.NewBuilder[float64](f.Clusters, options...).Fit(values)
		if err != nil {
			return nil, nil, err
		}
		cc := make(clusters.Clusters, s.K())
		for i := range cc {
			cc[i].Center = clusters.Coordinates{s.Head(i)}
			for _, m := range s.Cluster(i) {
				cc[i].Observations = append(cc[i].Observations, clusters.Coordinates{m})
			}
		}
		return cc, func(p clusters.Coordinates) (int, error) { return s.Predict(p[0]) }, nil
	}

	fn, ok := mincluster.VectorDistance(f.DistanceAlgo)
	if !ok {
		return nil, nil, fmt.Errorf("unknown distance algo %q", f.DistanceAlgo)
	}
	cc, err := mincluster.Partition(f.Clusters, data.distinct().observations(), fn, options...)
	if err != nil {
		return nil, nil, err
	}
	return cc, func(p clusters.Coordinates) (int, error) {
		l := 0
		n := fn(p, cc[0].Center)
		for i := 1; i < len(cc); i++ {
			if d := fn(p, cc[i].Center); d < n {
				n = d
				l = i
			}
		}
		return l, nil
	}, nil
}

type flags struct {
	Clusters     int
	Seed         int64
	DistanceAlgo string
	Format       string
	Predict      []string
}

func (cli *CLI) Execute() {
	if err := cli.command.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
