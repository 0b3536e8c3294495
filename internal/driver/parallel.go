package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"notal/internal/source"
)

// CheckDirResult is the outcome for one file of a directory run.
type CheckDirResult struct {
	Path      string
	Result    *Result
	FromCache bool
	Err       error
}

// listNtlFiles returns every *.ntl file under dir, sorted so directory
// runs are deterministic regardless of walk or goroutine order.
func listNtlFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ntl") {
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

// CheckDir checks every *.ntl file under dir, up to jobs files in
// parallel (GOMAXPROCS when jobs <= 0). Each file gets its own engine and
// parser; results land at fixed indices, so output order matches the
// sorted file list. A non-nil cache short-circuits files whose content
// hash already has a stored verdict.
func CheckDir(ctx context.Context, dir string, opts CheckOptions, jobs int, cache *DiskCache) ([]CheckDirResult, error) {
	files, err := listNtlFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]CheckDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkOne(path, opts, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string, opts CheckOptions, cache *DiskCache) CheckDirResult {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return CheckDirResult{Path: path, Err: err}
	}
	file := fileSet.Get(fileID)

	if cache != nil {
		var payload DiskPayload
		if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
			return CheckDirResult{
				Path:      path,
				FromCache: true,
				Result: &Result{
					FileSet: fileSet,
					File:    file,
					Engine:  engineFromPayload(&payload, file, opts),
				},
			}
		}
	}

	res := checkFile(fileSet, fileID, opts)
	if cache != nil {
		// best effort; a failed write never fails the check
		_ = cache.Put(file.Hash, payloadFromEngine(path, res.Engine))
	}
	return CheckDirResult{Path: path, Result: res}
}
