package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"coursedb/pkg/config"
	"coursedb/pkg/repl"
	"coursedb/pkg/schedule"
	"coursedb/pkg/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coursedb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to coursedb.yaml (default: search configs/ and cwd)")
	dataPath := fs.String("file", "", "Schedule file (overrides data.path)")
	delim := fs.String("delim", "", "Field delimiter (overrides data.delimiter)")
	snapshotPath := fs.String("snapshot", "", "SQLite snapshot file (overrides storage.snapshot_path)")
	fromSnapshot := fs.Bool("from-snapshot", false, "Build the index from the snapshot instead of the schedule file")
	quiet := fs.Bool("quiet", false, "Suppress log output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetOutput(stderr)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return 1
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *delim != "" {
		cfg.Data.Delimiter = *delim
	}
	if *snapshotPath != "" {
		cfg.Storage.SnapshotPath = *snapshotPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return 1
	}

	var sched *schedule.Schedule
	if *fromSnapshot {
		sched, err = loadSnapshot(cfg.Storage.SnapshotPath)
		if err != nil {
			fmt.Fprintf(stderr, "Snapshot error: %v\n", err)
			return 1
		}
	} else {
		f, err := os.Open(cfg.Data.Path)
		if err != nil {
			fmt.Fprintln(stderr, "Error opening file.")
			return 1
		}
		s, stats, err := schedule.Load(f, cfg.Delim())
		f.Close()
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", cfg.Data.Path, err)
			return 1
		}
		log.Printf("[Loader] %s: %s", cfg.Data.Path, stats)
		sched = s

		if cfg.Storage.SnapshotPath != "" {
			if err := saveSnapshot(cfg.Storage.SnapshotPath, sched); err != nil {
				fmt.Fprintf(stderr, "Snapshot error: %v\n", err)
				return 1
			}
		}
	}

	if err := repl.Run(stdin, stdout, sched); err != nil {
		fmt.Fprintf(stderr, "Input error: %v\n", err)
		return 1
	}
	return 0
}

func saveSnapshot(path string, sched *schedule.Schedule) error {
	b, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.SaveSchedule(sched); err != nil {
		return err
	}
	log.Printf("[Snapshot] Wrote %d records to %s", sched.Len(), path)
	return nil
}

func loadSnapshot(path string) (*schedule.Schedule, error) {
	if path == "" {
		return nil, fmt.Errorf("-from-snapshot needs a snapshot path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	b, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	sched, err := b.LoadSchedule()
	if err != nil {
		return nil, err
	}
	log.Printf("[Snapshot] Restored %d records from %s", sched.Len(), path)
	return sched, nil
}
