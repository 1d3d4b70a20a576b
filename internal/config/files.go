package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// CollectFiles resolves the final set of SystemVerilog sources for a run:
// explicit targets (files or directories), plus entries from filelist files.
// The result is deduplicated, absolute, and sorted. Missing or non-.sv
// entries are logged as warnings and skipped; collection itself never fails
// on a bad entry.
func (c *Config) CollectFiles(targets, filelists []string, recursive bool, logger *log.Logger) ([]string, error) {
	fileSet := make(map[string]bool)

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			logger.Warn("skipping missing target", "path", target, "err", err)
			continue
		}
		if info.IsDir() {
			found, err := c.collectDir(target, recursive)
			if err != nil {
				return nil, fmt.Errorf("scanning directory %s: %w", target, err)
			}
			for _, f := range found {
				fileSet[f] = true
			}
			continue
		}
		if !isSourceFile(target) {
			logger.Warn("skipping non-SystemVerilog file", "path", target)
			continue
		}
		c.addFile(fileSet, target)
	}

	for _, list := range filelists {
		entries, err := readFilelist(list)
		if err != nil {
			logger.Warn("skipping unreadable filelist", "path", list, "err", err)
			continue
		}
		for _, entry := range entries {
			if !isSourceFile(entry) {
				logger.Warn("skipping non-SystemVerilog filelist entry", "path", entry)
				continue
			}
			if _, err := os.Stat(entry); err != nil {
				logger.Warn("skipping missing filelist entry", "path", entry, "err", err)
				continue
			}
			c.addFile(fileSet, entry)
		}
	}

	result := make([]string, 0, len(fileSet))
	for f := range fileSet {
		result = append(result, f)
	}
	sort.Strings(result)
	return result, nil
}

// collectDir gathers .sv files under dir, either the immediate entries or the
// whole tree.
func (c *Config) collectDir(dir string, recursive bool) ([]string, error) {
	var found []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if isSourceFile(path) && !c.ShouldIgnoreFile(path) {
				found = append(found, absPath(path))
			}
		}
		return found, nil
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if info.IsDir() {
			return nil
		}
		if isSourceFile(path) && !c.ShouldIgnoreFile(path) {
			found = append(found, absPath(path))
		}
		return nil
	})
	return found, err
}

func (c *Config) addFile(fileSet map[string]bool, path string) {
	if c.ShouldIgnoreFile(path) {
		return
	}
	fileSet[absPath(path)] = true
}

// readFilelist parses one file per line; blank lines and lines starting with
// # or // are skipped.
func readFilelist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func isSourceFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".sv"
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
