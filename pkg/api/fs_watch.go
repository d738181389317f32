package api

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/sarpt/playlist-web-api/pkg/catalog"
)

const catalogExtension = ".json"

// watchCatalogPaths starts watching catalog directories, or parent directories of catalog files.
// Files are watched through their directories since editors often replace files instead of writing them.
func (s *Server) watchCatalogPaths() error {
	watched := map[string]bool{}

	for _, path := range s.catalogPaths {
		dir := path
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			dir = filepath.Dir(path)
		}

		if watched[dir] {
			continue
		}

		err = s.fsWatcher.Add(dir)
		if err != nil {
			return err
		}

		watched[dir] = true
		s.outLog.Printf("watching '%s' for catalog changes\n", dir)
	}

	return nil
}

func (s *Server) handleFsEvent(event fsnotify.Event) error {
	if !shouldReloadCatalogs(event.Op) || !s.isCatalogPath(event.Name) {
		return nil
	}

	s.outLog.Printf("reloading catalogs due to change of '%s'\n", event.Name)
	return s.reloadCatalogs()
}

// reloadCatalogs replaces genres with catalogs read from scratch.
// Catalogs that could not be loaded are skipped, the rest is applied regardless.
func (s *Server) reloadCatalogs() error {
	c, err := catalog.LoadFiles(catalog.Default(), catalogFiles(s.catalogPaths))
	s.statesRepository.Genres().Replace(c)
	s.outLog.Printf("catalog genres after reload: %s\n", strings.Join(c.Genres(), ", "))

	return err
}

func (s *Server) isCatalogPath(name string) bool {
	for _, path := range s.catalogPaths {
		if filepath.Clean(path) == filepath.Clean(name) {
			return true
		}

		if filepath.Clean(filepath.Dir(name)) == filepath.Clean(path) && isCatalogFile(name) {
			return true
		}
	}

	return false
}

func (s *Server) watchForFsChanges() {
	go func() {
		for {
			select {
			case event, ok := <-s.fsWatcher.Events:
				if !ok {
					return
				}

				err := s.handleFsEvent(event)
				if err != nil {
					s.errLog.Printf("could not handle event '%s' due to an error: %s\n", event, err)
				}
			case err, ok := <-s.fsWatcher.Errors:
				if !ok {
					return
				}

				s.errLog.Printf("fs watcher returned an error: %s\n", err)
			}
		}
	}()
}

// catalogFiles expands directories among paths to the catalog files they contain, sorted by name.
func catalogFiles(paths []string) []string {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			continue
		}

		var dirFiles []string
		for _, entry := range entries {
			if entry.IsDir() || !isCatalogFile(entry.Name()) {
				continue
			}

			dirFiles = append(dirFiles, filepath.Join(path, entry.Name()))
		}
		sort.Strings(dirFiles)

		files = append(files, dirFiles...)
	}

	return files
}

func isCatalogFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), catalogExtension)
}

func shouldReloadCatalogs(op fsnotify.Op) bool {
	return op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
