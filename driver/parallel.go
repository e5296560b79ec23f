package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/TyOverby/snoot/ast"
	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/lexer"
	"github.com/TyOverby/snoot/parser"
	"github.com/TyOverby/snoot/source"
)

// Options configures a directory or file-list parse.
type Options struct {
	// Ext filters directory walks; defaults to ".sexp".
	Ext string
	// MaxDiagnostics caps each file's bag; zero means unlimited.
	MaxDiagnostics int
	// Jobs bounds parallelism; zero or negative means GOMAXPROCS.
	Jobs int
	// QuotedAtoms and ReaderPrefixes are handed to each file's lexer.
	QuotedAtoms    bool
	ReaderPrefixes []rune
}

func (o Options) ext() string {
	if o.Ext == "" {
		return ".sexp"
	}
	return o.Ext
}

// ParseDirResult is one file's parse outcome. A file that failed to load
// has nil Roots and an I/O diagnostic in its bag.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Roots  []*ast.Node
	Bag    *diag.Bag
}

// listFiles returns the sorted list of matching files under dir. Sorting
// keeps result order deterministic across runs.
func listFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every matching file under dir in parallel.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	files, err := listFiles(dir, opts.ext())
	if err != nil {
		return nil, nil, err
	}
	return parsePaths(ctx, source.NewFileSetWithBase(dir), files, opts)
}

// ParseFiles parses the given files in parallel, in the given order.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	return parsePaths(ctx, source.NewFileSet(), paths, opts)
}

func parsePaths(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: FileSet registration is not concurrent-safe,
	// and load errors become per-file diagnostics rather than aborting the
	// whole pass.
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

	// Each goroutine writes only results[i]; no mutex needed.
	results := make([]ParseDirResult, len(files))

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
					results[i] = ParseDirResult{Path: path, Bag: bag}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)
				results[i] = parseOne(file, path, bag, opts)
				results[i].FileID = fileID
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func parseOne(file *source.File, path string, bag *diag.Bag, opts Options) ParseDirResult {
	lx := lexer.NewFromFile(file, lexer.Options{
		Reporter:       diag.BagReporter{Bag: bag, File: path},
		QuotedAtoms:    opts.QuotedAtoms,
		ReaderPrefixes: opts.ReaderPrefixes,
	})
	res := parser.Parse(lx, parser.Options{FileName: path, Bag: bag})
	return ParseDirResult{Path: path, Roots: res.Roots, Bag: bag}
}
