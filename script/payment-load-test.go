package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Payment is the add-payment request payload
type Payment struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CardID      string  `json:"cardId"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	CardStats          map[string]int
	Lock               sync.Mutex
}

// PaymentScenario is one payment shape fired at the API
type PaymentScenario struct {
	Description string
	Amount      float64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	cardIDsStr := flag.String("cards", "1,2,3", "Comma-separated list of card IDs to spread payments across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var cardIDs []string
	for _, id := range strings.Split(*cardIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			cardIDs = append(cardIDs, id)
		}
	}
	if len(cardIDs) == 0 {
		cardIDs = []string{"1"}
	}

	scenarios := []PaymentScenario{
		{"Coffee", 4.50},
		{"Lunch", 12.75},
		{"Groceries", 45.99},
		{"Fuel", 60.00},
		{"Subscription", 9.99},
	}

	fmt.Printf("Load testing payments across %d cards: %v\n", len(cardIDs), cardIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		CardStats:       make(map[string]int),
	}
	for _, id := range cardIDs {
		stats.CardStats[id] = 0
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(*baseURL, *delayMs, cardIDs, scenarios, jobs, results, stats)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(baseURL string, delayMs int, cardIDs []string,
	scenarios []PaymentScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		cardID := cardIDs[rand.Intn(len(cardIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.CardStats[cardID]++
		stats.Lock.Unlock()

		payment := Payment{
			Amount:      scenario.Amount,
			Description: scenario.Description,
			CardID:      cardID,
		}

		jsonData, err := json.Marshal(payment)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		req, err := http.NewRequest("POST", baseURL+"/wallet/payments", bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		start := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(start)

		result := TestResult{ResponseTime: responseTime}
		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n===== Results =====")
	fmt.Printf("Total time: %v\n", stats.TotalTime)
	fmt.Printf("Successful: %d / %d\n", stats.SuccessfulRequests, stats.TotalRequests)
	fmt.Printf("Failed: %d\n", stats.FailedRequests)
	fmt.Printf("Payments per second: %.2f\n", tps)
	fmt.Printf("Response times: min %v, avg %v, max %v\n", stats.MinResponseTime, avgResponseTime, stats.MaxResponseTime)
	fmt.Printf("Percentiles: p50 %v, p90 %v, p95 %v, p99 %v\n", p50, p90, p95, p99)

	fmt.Println("\nPayments per card:")
	for id, count := range stats.CardStats {
		fmt.Printf("  card %s: %d\n", id, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\nErrors:")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("  %s: %d\n", msg, count)
		}
	}
}
