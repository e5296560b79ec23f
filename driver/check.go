package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
)

// CheckResult is one file's diagnostics-only outcome.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CheckDir collects diagnostics for every matching file under dir without
// keeping the trees. With a non-nil cache, files whose content hash has an
// entry are served from disk; everything else is parsed and the result
// written back. Cache I/O failures fall back to a normal parse.
func CheckDir(ctx context.Context, dir string, cache *DiskCache, opts Options) ([]CheckResult, error) {
	files, err := listFiles(dir, opts.ext())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				bag := diag.NewBag(opts.MaxDiagnostics)

				if loadErr, hadError := loadErrors[path]; hadError {
					bag.Add(diag.NewError(diag.IOLoadFile, source.Span{},
						"failed to load file: "+loadErr.Error()).WithFile(path))
					results[i] = CheckResult{Path: path, Bag: bag}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				var payload DiskPayload
				if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
					restoreDiags(payload.Diags, file, path, bag)
					results[i] = CheckResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
					return nil
				}

				parsed := parseOne(file, path, bag, opts)
				results[i] = CheckResult{Path: path, FileID: fileID, Bag: parsed.Bag}

				// Best effort; a failed write only costs the next run a parse.
				_ = cache.Put(file.Hash, &DiskPayload{
					Path:      path,
					Hash:      file.Hash,
					HadErrors: bag.HasErrors(),
					Diags:     cacheDiags(bag),
				})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
