// Package scripts provides compilation and refresh machinery for Lua-based track source modules.
package scripts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/drumtake-cli/drumtake/network"
)

// ErrUpToDate is returned by UpdateSource when the local script already matches the remote.
var ErrUpToDate = errors.New("source script is up to date")

// UpdateSource fetches a source script from a remote URL, compares content hashes,
// and atomically swaps the local file when they differ.
func UpdateSource(remoteURL, localPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s fetching %s", resp.Status, remoteURL)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	remoteHashRaw := sha256.Sum256(bodyBytes)
	remoteHash := hex.EncodeToString(remoteHashRaw[:])

	localBytes, err := os.ReadFile(localPath)
	if err == nil {
		localHashRaw := sha256.Sum256(localBytes)
		localHash := hex.EncodeToString(localHashRaw[:])
		if localHash == remoteHash {
			return ErrUpToDate
		}
	}

	tmpPath := localPath + ".tmp"
	if err := os.WriteFile(tmpPath, bodyBytes, 0644); err != nil {
		return err
	}

	// Atomic swap prevents a half-written script from ever being compiled.
	if err := os.Rename(tmpPath, localPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	Invalidate(localPath)
	return nil
}
