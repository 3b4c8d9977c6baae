// Package cache stores transient search results on disk, keyed by query and source.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/where"
)

// TTL bounds how long a cached search result stays valid.
const TTL = 7 * 24 * time.Hour

// GenerateKey hashes a query and source pair into a stable cache identifier.
func GenerateKey(query, source string) string {
	normalized := strings.ToLower(strings.ReplaceAll(query, " ", "")) + source
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Read decodes the cached entry for key into target.
// Returns false when the entry is absent, expired or unreadable.
func Read(key string, target interface{}) bool {
	fs := filesystem.API()
	path := filepath.Join(where.Cache(), key)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, target) == nil
}

// Write persists data under key, swapping the file in atomically.
func Write(key string, data interface{}) error {
	fs := filesystem.API()
	path := filepath.Join(where.Cache(), key)

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := fs.WriteFile(tmp, encoded, os.FileMode(0644)); err != nil {
		return err
	}
	return fs.Rename(tmp, path)
}

// CollectGarbage removes expired entries. Callers run it in the background.
func CollectGarbage() {
	fs := filesystem.API()
	dir := where.Cache()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if time.Since(entry.ModTime()) > TTL {
			_ = fs.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}
