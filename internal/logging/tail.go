package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LatestFile returns the newest daily log under logDir, or "" when there is
// none. Daily names sort chronologically.
func LatestFile(logDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(logDir, "recipebox-*.log"))
	if err != nil {
		return "", fmt.Errorf("list logs: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// Tail returns at most maxLines trailing lines of the newest daily log.
// maxLines <= 0 returns every line. A missing directory yields no lines.
func Tail(logDir string, maxLines int) ([]string, error) {
	path, err := LatestFile(logDir)
	if err != nil || path == "" {
		return nil, err
	}
	return tailFile(path, maxLines)
}

func tailFile(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	// Ring buffer over the last maxLines lines
	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
