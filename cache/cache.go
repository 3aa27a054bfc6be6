package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// The cache is a plain directory of files, one per entry, grouped by
// namespace. An entry's age is its file mtime; expiry is checked on read.

// Path returns the cache file path for a key within a namespace.
func Path(namespace, key string) string {
	hash := hashKey(namespace + key)
	short := hash[:16]
	safeKey := sanitizeKey(key)
	return filepath.Join("cache", namespace, fmt.Sprintf("%s_%s.json", safeKey, short))
}

func hashKey(s string) string {
	hash := xxhash.Sum64String(s)
	return fmt.Sprintf("%016x", hash)
}

// sanitizeKey keeps file names readable while the hash guarantees uniqueness.
func sanitizeKey(key string) string {
	replaced := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, key)
	if len(replaced) > 60 {
		replaced = replaced[:60]
	}
	return replaced
}

func ensureDir(namespace string) error {
	return os.MkdirAll(filepath.Join("cache", namespace), 0755)
}

// Write stores a payload under namespace/key.
func Write(namespace, key string, payload []byte) error {
	if err := ensureDir(namespace); err != nil {
		return err
	}
	return os.WriteFile(Path(namespace, key), payload, 0644)
}

// Read returns the cached payload if it exists and is younger than maxAge.
func Read(namespace, key string, maxAge time.Duration) ([]byte, bool) {
	path := Path(namespace, key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > maxAge {
		return nil, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return content, true
}

// Clear removes one entry.
func Clear(namespace, key string) error {
	err := os.Remove(Path(namespace, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearNamespace removes every entry of a namespace.
func ClearNamespace(namespace string) error {
	return os.RemoveAll(filepath.Join("cache", namespace))
}

// ClearOld removes cache files older than maxAge across all namespaces.
func ClearOld(maxAge time.Duration) error {
	return filepath.Walk("cache", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			os.Remove(path)
		}
		return nil
	})
}
