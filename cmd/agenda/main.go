// Command agenda imports settlement records into a name-keyed registry and a
// priority queue, then runs lookups, traversals and exports on them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/gops/agent"
	"github.com/sirupsen/logrus"

	"github.com/neganovalexey/agenda/agenda"
	"github.com/neganovalexey/agenda/config"
	aio "github.com/neganovalexey/agenda/io"
	"github.com/neganovalexey/agenda/municipality"
	"github.com/neganovalexey/agenda/traverse"
)

type options struct {
	configPath string
	logFile    string
	importFile string
	loadFile   string
	generate   int
	order      string
	find       string
	delete     string
	top        bool
	exportFile string
	walk       string
	list       bool
}

func parseFlags() *options {
	opts := &options{}
	flag.StringVar(&opts.configPath, "config", "", "YAML config file")
	flag.StringVar(&opts.logFile, "log", "", "log file (stderr when empty)")
	flag.StringVar(&opts.importFile, "import", "", "records file imported into the registry")
	flag.StringVar(&opts.loadFile, "load", "", "records file loaded into the priority queue")
	flag.IntVar(&opts.generate, "generate", 0, "number of random records to add")
	flag.StringVar(&opts.order, "order", "", "priority queue ordering: total or name")
	flag.StringVar(&opts.find, "find", "", "settlement name to look up")
	flag.StringVar(&opts.delete, "delete", "", "settlement name to delete")
	flag.BoolVar(&opts.top, "top", false, "print the highest priority record")
	flag.StringVar(&opts.exportFile, "export", "", "file receiving the drained priority queue")
	flag.StringVar(&opts.walk, "walk", "", "print registry and queue in dfs or bfs order")
	flag.BoolVar(&opts.list, "list", false, "list record files in the data dir")
	flag.Parse()
	return opts
}

func initLogging(cfg *config.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.Level = cfg.Level()
	if cfg.LogFile == "" {
		log.Formatter = &logrus.TextFormatter{ForceColors: true}
		return log, nil
	}
	out, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	log.Out = out
	log.Formatter = &logrus.TextFormatter{}
	return log, nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "agenda:", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	overrideConfig(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := initLogging(cfg)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.WithError(err).Warn("gops agent is not started")
		} else {
			defer agent.Close()
		}
	}

	ctx := context.Background()
	storage, err := aio.New(aio.Config{Root: cfg.DataDir, Ctx: ctx, Log: log})
	if err != nil {
		return err
	}
	if opts.list {
		if err := listFiles(ctx, storage); err != nil {
			return err
		}
	}

	acfg := agenda.Config{
		Storage:       storage,
		Order:         cfg.Order,
		ExpectedItems: cfg.ExpectedItems,
		Seed:          cfg.Seed,
		Log:           log,
	}
	registry := agenda.NewRegistry(acfg)
	queue, err := agenda.NewPriorityQueue(acfg)
	if err != nil {
		return err
	}

	if cfg.ImportFile != "" {
		res, err := registry.Import(ctx, cfg.ImportFile)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d records from %s\n", res.Count, cfg.ImportFile)
	}
	if err := fillQueue(ctx, queue, registry, opts.loadFile); err != nil {
		return err
	}

	if opts.generate > 0 {
		generated, err := registry.Generate(opts.generate)
		if err != nil {
			return err
		}
		for _, m := range generated {
			if err := queue.Add(m); err != nil {
				return err
			}
		}
		fmt.Printf("generated %d records\n", len(generated))
	}

	if opts.find != "" {
		m, err := registry.Find(opts.find)
		if err != nil {
			return err
		}
		fmt.Println(m)
	}
	if opts.delete != "" {
		m, err := registry.Delete(opts.delete)
		if err != nil {
			return err
		}
		fmt.Println("deleted", m)
	}

	if opts.walk != "" {
		mode, err := traverse.ParseMode(opts.walk)
		if err != nil {
			return err
		}
		printAll("registry", mode, registry.Iterate(mode))
		printAll("queue", mode, queue.Iterate(mode))
	}

	if opts.top {
		m, err := queue.Top()
		if err != nil {
			return err
		}
		fmt.Printf("top by %s: %s\n", queue.Order(), m)
	}

	if cfg.ExportFile != "" {
		res, err := queue.Export(ctx, cfg.ExportFile)
		if err != nil {
			return err
		}
		fmt.Printf("exported %d records to %s\n", res.Count, cfg.ExportFile)
	}
	return nil
}

// overrideConfig lets command line flags win over config file and environment
func overrideConfig(cfg *config.Config, opts *options) {
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.importFile != "" {
		cfg.ImportFile = opts.importFile
	}
	if opts.exportFile != "" {
		cfg.ExportFile = opts.exportFile
	}
	if opts.order != "" {
		cfg.Order = opts.order
	}
}

// fillQueue loads the queue from file, or copies registry records when no file is given
func fillQueue(ctx context.Context, queue *agenda.PriorityQueue, registry *agenda.Registry, loadFile string) error {
	if loadFile != "" {
		res, err := queue.Load(ctx, loadFile)
		if err != nil {
			return err
		}
		fmt.Printf("loaded %d records from %s\n", res.Count, loadFile)
		return nil
	}
	var err error
	registry.Iterate(traverse.DepthFirst).ForEach(func(m *municipality.Municipality) bool {
		err = queue.Add(m)
		return err == nil
	})
	return err
}

func listFiles(ctx context.Context, storage aio.Storage) error {
	return storage.ListObjects(ctx, "", func(path string, size int64, created time.Time) error {
		fmt.Printf("%s\t%d\t%s\n", path, size, created.Format(time.RFC3339))
		return nil
	})
}

func printAll(title string, mode traverse.Mode, it traverse.Iter[*municipality.Municipality]) {
	fmt.Printf("%s (%s):\n", title, mode)
	for m := range traverse.Seq(it) {
		fmt.Println("  ", m)
	}
}
