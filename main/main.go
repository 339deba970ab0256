// Command main is a profiling harness for the vector and allocator
// primitives. It is developer tooling, not a user-facing program.
package main

import (
	"flag"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var cfg Config
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configFile := fs.String("config.file", "", "Optional yaml file; flags given on the command line win.")
	cfg.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			level.Error(logger).Log("msg", "loading config", "err", err)
			os.Exit(1)
		}
		// Re-apply explicit flags over the file.
		_ = fs.Parse(os.Args[1:])
	}
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, levelOption(cfg.LogLevel))

	if cfg.PprofAddr != "" {
		go func() {
			level.Info(logger).Log("msg", "serving pprof", "addr", cfg.PprofAddr)
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				level.Error(logger).Log("msg", "pprof server stopped", "err", err)
			}
		}()
	}

	var dump io.Writer
	if cfg.DumpPath != "" {
		f, err := os.Create(cfg.DumpPath)
		if err != nil {
			level.Error(logger).Log("msg", "creating dump", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		dump = f
	}

	runtime.MemProfileRate = 1
	reg := prometheus.NewRegistry()
	start := time.Now()
	res, err := run(cfg, reg, logger, dump)
	if err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "run complete", "rounds", res.Rounds, "pushed", res.Pushed, "elapsed", time.Since(start))

	if cfg.HeapProfile != "" {
		f, err := os.Create(cfg.HeapProfile)
		if err != nil {
			level.Error(logger).Log("msg", "creating heap profile", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			level.Error(logger).Log("msg", "writing heap profile", "err", err)
			os.Exit(1)
		}
	}
	if cfg.Hold {
		time.Sleep(5 * time.Minute)
	}
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
