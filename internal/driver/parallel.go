package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tsig/internal/diag"
	"tsig/internal/source"
)

// Stage и Status описывают прогресс обработки одного файла для UI.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLoad
	StageParse
	StageConvert
	StageDone
)

type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event — одно изменение прогресса. File пустой для общих событий стадии.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// DirOptions настраивает параллельную экстракцию каталога.
type DirOptions struct {
	MaxDiagnostics int
	Jobs           int
	Exts           []string    // расширения файлов, по умолчанию .ts/.mts/.cts
	Cache          *DiskCache  // nil — без кэша
	Events         chan<- Event // nil — без прогресса
}

// DirResult — результат обработки одного файла каталога.
type DirResult struct {
	Path    string
	Entries []DocEntry
	Bag     *diag.Bag
	Cached  bool
}

var defaultExts = []string{".ts", ".mts", ".cts"}

// ListSourceFiles возвращает отсортированный список исходников в каталоге.
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = defaultExts
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// ExtractDir обрабатывает все исходники каталога параллельно.
// Индексы результатов уникальны на горутину, мьютекс не нужен.
func ExtractDir(ctx context.Context, dir string, opts DirOptions) ([]DirResult, error) {
	files, err := ListSourceFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Events, Event{File: path, Stage: StageLoad, Status: StatusWorking})
			results[i] = extractOne(path, opts)

			status := StatusDone
			if results[i].Bag != nil && results[i].Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Events, Event{File: path, Stage: StageDone, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func extractOne(path string, opts DirOptions) DirResult {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOReadFailed,
			Message:  "failed to load file: " + err.Error(),
		})
		return DirResult{Path: path, Bag: bag}
	}
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, cerr := opts.Cache.Get(file.Hash, &payload); cerr == nil && hit {
			return DirResult{
				Path:    path,
				Entries: payload.Entries,
				Bag:     diag.NewBag(opts.MaxDiagnostics),
				Cached:  true,
			}
		}
	}

	emit(opts.Events, Event{File: path, Stage: StageParse, Status: StatusWorking})
	res, err := extractLoaded(fileSet, fileID, path, opts.MaxDiagnostics)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOReadFailed,
			Message:  err.Error(),
		})
		return DirResult{Path: path, Bag: bag}
	}

	// кэшируем только чистые результаты: диагностики не сериализуются
	if opts.Cache != nil && !res.Bag.HasErrors() {
		_ = opts.Cache.Put(file.Hash, &DiskPayload{
			Schema:  diskCacheSchemaVersion,
			Path:    path,
			Entries: res.Entries,
		})
	}

	return DirResult{Path: path, Entries: res.Entries, Bag: res.Bag}
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
