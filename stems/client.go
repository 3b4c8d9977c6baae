// Package stems provides a client for a hosted stem-separation service.
package stems

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/auth"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/log"
	"github.com/drumtake-cli/drumtake/network"
)

// ErrNoServiceURL is returned when no separation service base URL is configured.
var ErrNoServiceURL = errors.New("no separation service URL configured, set separator.url")

// Client talks to the hosted separation service.
type Client struct {
	baseURL string
	http    *http.Client

	// sleep is overridable in tests to skip real poll delays.
	sleep func(time.Duration)
}

// NewClient builds a Client from the configured base URL.
func NewClient() (*Client, error) {
	baseURL := viper.GetString(key.SeparatorURL)
	if baseURL == "" {
		return nil, ErrNoServiceURL
	}

	return &Client{
		baseURL: baseURL,
		http:    network.Client,
		sleep:   time.Sleep,
	}, nil
}

// authorize attaches the stored API key, when present.
func (c *Client) authorize(req *http.Request) {
	apiKey, err := auth.GetKey()
	if err != nil || apiKey == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
}

// Submit uploads an audio file and creates a separation job.
func (c *Client) Submit(audioPath string) (*Job, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if err := writer.WriteField("stem", viper.GetString(key.SeparatorStem)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/jobs", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit separation job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("separation service returned %s", resp.Status)
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("parse job response: %w", err)
	}

	log.Infof("submitted separation job %s for %s", job.ID, audioPath)
	return &job, nil
}

// Status fetches the current state of a job.
func (c *Client) Status(jobID string) (*Job, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/jobs/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll separation job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("separation service returned %s", resp.Status)
	}

	var job Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("parse job response: %w", err)
	}
	return &job, nil
}

// Wait polls a job until it reaches a terminal state.
// onProgress, when non-nil, is invoked after every poll.
func (c *Client) Wait(jobID string, onProgress func(*Job)) (*Job, error) {
	interval := time.Duration(viper.GetInt(key.SeparatorPollInterval)) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	for {
		job, err := c.Status(jobID)
		if err != nil {
			return nil, err
		}

		if onProgress != nil {
			onProgress(job)
		}

		if job.State.Terminal() {
			if job.State == StateFailed {
				return job, fmt.Errorf("separation job %s failed: %s", job.ID, job.Error)
			}
			return job, nil
		}

		c.sleep(interval)
	}
}

// DownloadStem fetches an isolated stem of a finished job into outputPath.
func (c *Client) DownloadStem(job *Job, stem, outputPath string) error {
	if job.State != StateDone {
		return fmt.Errorf("job %s is not done", job.ID)
	}

	url, ok := job.Stems[stem]
	if !ok {
		return fmt.Errorf("job %s has no %q stem", job.ID, stem)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download stem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("separation service returned %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}

	tmpPath := outputPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write stem: %w", err)
	}
	out.Close()

	return os.Rename(tmpPath, outputPath)
}

// Separate runs the whole submit, wait, download cycle for the configured stem.
// Returns the path of the downloaded stem file.
func (c *Client) Separate(audioPath, outputDir string, onProgress func(*Job)) (string, error) {
	job, err := c.Submit(audioPath)
	if err != nil {
		return "", err
	}

	job, err = c.Wait(job.ID, onProgress)
	if err != nil {
		return "", err
	}

	stem := viper.GetString(key.SeparatorStem)
	outputPath := filepath.Join(outputDir, stem+filepath.Ext(audioPath))
	if err := c.DownloadStem(job, stem, outputPath); err != nil {
		return "", err
	}

	if !viper.GetBool(key.SeparatorKeepOriginal) {
		if err := os.Remove(audioPath); err != nil {
			log.Warnf("failed to remove original audio: %v", err)
		}
	}

	return outputPath, nil
}
