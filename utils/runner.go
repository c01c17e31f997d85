package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// RunnerError carries the detail message the crawler runner returns on a
// non-2xx response.
type RunnerError struct {
	Detail   string
	HTTPCode int
}

func (e *RunnerError) Error() string {
	return fmt.Sprintf("runner error [%d]: %s", e.HTTPCode, e.Detail)
}

var runnerClient = &http.Client{Timeout: 15 * time.Second}

func RunnerBaseURL() string {
	if url := os.Getenv("RUNNER_URL"); url != "" {
		return url
	}
	return "http://localhost:5000"
}

// StartCrawler asks the runner to launch a scrape job. Callers fire this from
// a goroutine after the crawler row has been committed; a failed start is
// logged by the caller and never retried.
func StartCrawler(crawlerID uint64, metadata interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"metadata":  metadata,
		"crawlerId": crawlerID,
	})
	if err != nil {
		return err
	}

	resp, err := runnerClient.Post(RunnerBaseURL()+"/run-crawler", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return runnerErrorFromResponse(resp)
	}
	return nil
}

// StopCrawler asks the runner to stop the job for a crawler id. Unlike the
// start path this one is awaited and its failure reported to the caller.
func StopCrawler(crawlerID uint64) error {
	url := fmt.Sprintf("%s/stop-crawler/%d", RunnerBaseURL(), crawlerID)
	resp, err := runnerClient.Post(url, "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return runnerErrorFromResponse(resp)
	}
	return nil
}

func runnerErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &parsed)
	if parsed.Detail == "" {
		parsed.Detail = "Crawler runner request failed"
	}
	return &RunnerError{Detail: parsed.Detail, HTTPCode: resp.StatusCode}
}
