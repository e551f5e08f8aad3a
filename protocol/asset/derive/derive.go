// Package derive computes many asset identities in parallel.
package derive

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"chain-shielded/crypto/keys"
	"chain-shielded/log"
	"chain-shielded/metrics"
	"chain-shielded/protocol/asset"
	"chain-shielded/sync/idempotency"
)

func init() {
	log.SkipFunc("chain-shielded/protocol/asset/derive.logFailure")
}

// Request names one asset to derive.
type Request struct {
	Owner    keys.PublicAddress
	Name     string
	Metadata string
}

// Result holds the derived asset, or the error that prevented it.
type Result struct {
	Asset *asset.Asset
	Err   error
}

// Deriver fans asset derivation out over a pool of workers.
// The zero value uses GOMAXPROCS workers and the default
// metrics registry.
type Deriver struct {
	Workers  int
	Registry metrics.Registry
}

// requests that encode to the same fields derive the same asset
type key struct {
	owner    keys.PublicAddress
	name     [asset.NameLength]byte
	metadata [asset.MetadataLength]byte
}

func keyFor(req Request) key {
	return key{
		owner:    req.Owner,
		name:     asset.EncodeName(strings.TrimSpace(req.Name)),
		metadata: asset.EncodeMetadata(req.Metadata),
	}
}

// Derive calls asset.New for each request and returns the results
// in request order. Identical requests are derived once and share
// the resulting *asset.Asset.
//
// If ctx is canceled, requests not yet started fail with ctx.Err();
// requests already running complete normally.
func (d *Deriver) Derive(ctx context.Context, reqs []Request) []Result {
	defer metrics.RecordElapsed(time.Now())

	results := make([]Result, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	var (
		okCount     = metrics.Counter(d.Registry, "asset.derive.ok")
		failedCount = metrics.Counter(d.Registry, "asset.derive.failed")
		elapsed     = metrics.Timer(d.Registry, "asset.derive.elapsed")
		group       idempotency.Group[key, *asset.Asset]
	)

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				start := time.Now()
				a, err, _ := group.Once(keyFor(reqs[i]), func() (*asset.Asset, error) {
					return asset.New(reqs[i].Owner, reqs[i].Name, reqs[i].Metadata)
				})
				elapsed.UpdateSince(start)
				results[i] = Result{Asset: a, Err: err}
			}
		}()
	}

feed:
	for i := range reqs {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i, r := range results {
		switch {
		case r.Asset != nil:
			okCount.Inc(1)
		case r.Err == nil:
			// never handed to a worker
			results[i].Err = ctx.Err()
			failedCount.Inc(1)
		default:
			failedCount.Inc(1)
			if r.Err != ctx.Err() {
				logFailure(ctx, i, reqs[i], r.Err)
			}
		}
	}
	return results
}

// logFailure logs err against request i.
// Log entries report Derive as their caller.
func logFailure(ctx context.Context, i int, req Request, err error) {
	ctx = log.AddPrefixkv(ctx, "request", i, "name", req.Name)
	log.Error(ctx, err, "deriving asset")
}
