package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/klauspost/compress/zstd"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rawbytedev/proof/pkg/alloc"
	"github.com/rawbytedev/proof/pkg/vec"
)

// result summarizes a run.
type result struct {
	Rounds int
	Pushed int
	Dumped int64
}

// run performs cfg.Iterations rounds: carve cfg.Vectors vectors from one
// slab, fill each with cfg.Fill bytes, then free them all. When dump is not
// nil the last round's vectors are written to it through zstd before they
// are freed.
func run(cfg Config, reg prometheus.Registerer, logger log.Logger, dump io.Writer) (result, error) {
	slab, err := alloc.NewSlab(alloc.NewRegion(cfg.Vectors*vec.Capacity), vec.StorageLayout)
	if err != nil {
		return result{}, err
	}
	a := alloc.NewInstrumented(slab, alloc.InstrumentOptions{
		Name:       "harness",
		Registerer: reg,
		Logger:     logger,
	})

	payload := make([]byte, cfg.Fill)
	for i := range payload {
		payload[i] = byte(i)
	}

	var res result
	vs := make([]*vec.Vec1024, 0, cfg.Vectors)
	for round := 0; round < cfg.Iterations; round++ {
		for i := 0; i < cfg.Vectors; i++ {
			v, err := vec.New(a)
			if err != nil {
				return res, fmt.Errorf("round %d vector %d: %w", round, i, err)
			}
			for _, b := range payload {
				v.Push(b)
			}
			res.Pushed += v.Len()
			vs = append(vs, v)
		}

		if dump != nil && round == cfg.Iterations-1 {
			n, err := writeDump(dump, vs)
			if err != nil {
				return res, err
			}
			res.Dumped = n
			level.Info(logger).Log("msg", "dumped vectors", "vectors", len(vs), "bytes", n)
		}

		for _, v := range vs {
			v.Free()
		}
		vs = vs[:0]
		res.Rounds++
		if stats := slab.Stats(); stats.Live != 0 {
			return res, fmt.Errorf("round %d: %d vectors still live after free", round, stats.Live)
		}
	}
	level.Debug(logger).Log("msg", "run finished", "rounds", res.Rounds, "pushed", res.Pushed)
	return res, nil
}

func writeDump(w io.Writer, vs []*vec.Vec1024) (int64, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return 0, err
	}
	var total int64
	for _, v := range vs {
		n, err := v.WriteTo(enc)
		total += n
		if err != nil {
			enc.Close()
			return total, fmt.Errorf("dump: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return total, fmt.Errorf("dump: %w", err)
	}
	return total, nil
}
