package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	clientCount   = 8
	actorCount    = 16
	queryCount    = 4
	roundsPerKey  = 50 // records per (client, actor, query) per request
	bytesPerRound = 100
)

// ### End - fixed configs

type group struct {
	ClientAddress string `json:"clientAddress"`
	ActorID       string `json:"actorId"`
	QueryID       string `json:"queryId"`
	Count         int64  `json:"count"`
	TotalBytes    string `json:"totalBytes"`
}

type aggregationResponse struct {
	RunID  string  `json:"runId"`
	Groups []group `json:"groups"`
	Report struct {
		LinesRead       int64            `json:"linesRead"`
		RecordsFiltered int64            `json:"recordsFiltered"`
		RecordsSkipped  map[string]int64 `json:"recordsSkipped"`
		Groups          int              `json:"groups"`
	} `json:"report"`
}

// main runs the e2e scenario: 001_parallel_aggregation
//
// It posts the same generated body to POST /aggregations from several concurrent
// clients and checks every response against the closed-form expected result.
//
// Each body holds, per (client, actor, query) key, roundsPerKey records whose byte
// counts are round*bytesPerRound, with every 10th record using the "-" byte
// sentinel. Every key is also shadowed by records with an undefined actor and by
// one malformed line, which must be filtered and skipped respectively.
//
// Expected results per response:
//   - clientCount*actorCount*queryCount groups, each with count == roundsPerKey
//   - totalBytes == bytesPerRound * sum(round for non-sentinel rounds)
//   - recordsFiltered == clientCount*queryCount*roundsPerKey
//   - recordsSkipped["MAP_1000"] == 1
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	parallel := getEnvInt("PARALLEL", 4)
	requests := getEnvInt("REQUESTS", 16)

	fmt.Println("Starting e2e scenario: 001_parallel_aggregation")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("REQUESTS: %d\n", requests)
	fmt.Println()

	body := generateBody()
	fmt.Printf("Generated body with %d lines\n", strings.Count(body, "\n"))

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error
	var succeeded int64

	for i := 1; i <= requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(requestIndex int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			err := sendAndVerify(baseURL, body)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("request %d: %w", requestIndex, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Request %d failed: %v\n", requestIndex, err)
				return
			}
			atomic.AddInt64(&succeeded, 1)
			fmt.Printf("Request %d verified\n", requestIndex)
		}(i)
	}
	wg.Wait()

	fmt.Println()
	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests failed\n", len(failures))
		os.Exit(1)
	}
	fmt.Printf("Verified requests: %d\n", atomic.LoadInt64(&succeeded))
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func generateBody() string {
	var b strings.Builder
	b.WriteString("malformed line without commas\n")
	for round := 1; round <= roundsPerKey; round++ {
		for c := 0; c < clientCount; c++ {
			for q := 0; q < queryCount; q++ {
				for a := 0; a < actorCount; a++ {
					bytesField := strconv.Itoa(round * bytesPerRound)
					if round%10 == 0 {
						bytesField = "-"
					}
					fmt.Fprintf(&b, "10.0.0.%d,u%d,%s,query%d\n", c, a, bytesField, q)
				}
				fmt.Fprintf(&b, "10.0.0.%d,-,%d,query%d\n", c, round, q)
			}
		}
	}
	return b.String()
}

func expectedTotalBytes() string {
	var total int64
	for round := 1; round <= roundsPerKey; round++ {
		if round%10 != 0 {
			total += int64(round * bytesPerRound)
		}
	}
	return strconv.FormatInt(total, 10)
}

func sendAndVerify(baseURL, body string) error {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/aggregations", bytes.NewReader([]byte(body)))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
	}

	var response aggregationResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	wantGroups := clientCount * actorCount * queryCount
	if len(response.Groups) != wantGroups {
		return fmt.Errorf("groups: want %d, got %d", wantGroups, len(response.Groups))
	}
	wantBytes := expectedTotalBytes()
	for _, g := range response.Groups {
		if g.Count != roundsPerKey || g.TotalBytes != wantBytes {
			return fmt.Errorf("group (%s,%s,%s): want <%d,%s>, got <%d,%s>",
				g.ClientAddress, g.ActorID, g.QueryID, roundsPerKey, wantBytes, g.Count, g.TotalBytes)
		}
	}
	if want := int64(clientCount * queryCount * roundsPerKey); response.Report.RecordsFiltered != want {
		return fmt.Errorf("recordsFiltered: want %d, got %d", want, response.Report.RecordsFiltered)
	}
	if got := response.Report.RecordsSkipped["MAP_1000"]; got != 1 {
		return fmt.Errorf("recordsSkipped[MAP_1000]: want 1, got %d", got)
	}
	return nil
}
