package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest is the POST /transfer payload
type TransferRequest struct {
	FromUserID uint64 `json:"from_user_id"`
	ToUserID   uint64 `json:"to_user_id"`
	Amount     string `json:"amount"`
}

// User is one element of the GET /users response
type User struct {
	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Balance string `json:"balance"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	Lock          sync.Mutex
}

var amounts = []string{"0.01", "1.00", "2.50", "7.33", "10.00", "25.00"}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 1000, "Total number of transfers to send")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	seed := flag.Int("seed", 0, "Number of users to create before the run (0 uses existing users)")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	if *seed > 0 {
		if err := seedUsers(client, *baseURL, *seed); err != nil {
			fmt.Println("Failed to seed users:", err)
			os.Exit(1)
		}
	}

	before, err := fetchUsers(client, *baseURL)
	if err != nil {
		fmt.Println("Failed to list users:", err)
		os.Exit(1)
	}
	if len(before) < 2 {
		fmt.Println("At least two users are required; run with -seed N")
		os.Exit(1)
	}

	fmt.Printf("Load testing %s across %d users\n", *baseURL, len(before))
	fmt.Printf("Concurrency: %d goroutines, %d transfers, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, before, jobs, stats)
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(startTime)

	after, err := fetchUsers(client, *baseURL)
	if err != nil {
		fmt.Println("Failed to list users after the run:", err)
		os.Exit(1)
	}

	printResults(stats)

	if !checkConservation(before, after) {
		os.Exit(1)
	}
}

func worker(client *http.Client, baseURL string, delayMs int, users []User, jobs <-chan int, stats *TestStats) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		from := users[rand.Intn(len(users))]
		to := users[rand.Intn(len(users))]

		body, err := json.Marshal(TransferRequest{
			FromUserID: from.ID,
			ToUserID:   to.ID,
			Amount:     amounts[rand.Intn(len(amounts))],
		})
		if err != nil {
			stats.record(TestResult{Error: err})
			continue
		}

		start := time.Now()
		resp, err := client.Post(baseURL+"/transfer", "application/json", bytes.NewReader(body))
		result := TestResult{ResponseTime: time.Since(start), Error: err}
		if err == nil {
			result.StatusCode = resp.StatusCode
			resp.Body.Close()
		}

		stats.record(result)
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Error != nil {
		s.ErrorCounts[result.Error.Error()]++
		return
	}
	s.StatusCounts[result.StatusCode]++
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
}

func seedUsers(client *http.Client, baseURL string, count int) error {
	type createUser struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Balance string `json:"balance"`
	}

	runID := time.Now().UnixNano()
	batch := make([]createUser, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, createUser{
			Name:    fmt.Sprintf("Load User %d", i+1),
			Email:   fmt.Sprintf("load-%d-%d@example.com", runID, i+1),
			Balance: "1000.00",
		})
	}

	body, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/users", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /users returned %d", resp.StatusCode)
	}
	return nil
}

func fetchUsers(client *http.Client, baseURL string) ([]User, error) {
	resp, err := client.Get(baseURL + "/users")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /users returned %d", resp.StatusCode)
	}

	var users []User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func total(users []User) decimal.Decimal {
	sum := decimal.Zero
	for _, u := range users {
		sum = sum.Add(decimal.RequireFromString(u.Balance))
	}
	return sum
}

// checkConservation compares the ledger total before and after the run.
// Other clients creating users during the run will show up as a mismatch.
func checkConservation(before, after []User) bool {
	fmt.Println("\n----------------- CONSERVATION -----------------")

	ok := true
	for _, u := range after {
		if decimal.RequireFromString(u.Balance).IsNegative() {
			fmt.Printf("User %d has a negative balance: %s\n", u.ID, u.Balance)
			ok = false
		}
	}

	totalBefore, totalAfter := total(before), total(after)
	fmt.Printf("Total before: %s\n", totalBefore.StringFixed(2))
	fmt.Printf("Total after:  %s\n", totalAfter.StringFixed(2))

	if !totalBefore.Equal(totalAfter) {
		fmt.Println("FAIL: total balance changed")
		return false
	}
	if ok {
		fmt.Println("OK: total balance conserved")
	}
	return ok
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:   %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:  %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:       %.2f req/s\n", float64(len(sorted))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P95:     %v\n", percentile(sorted, 95))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))
	if len(sorted) > 0 {
		fmt.Printf("Max:     %v\n", sorted[len(sorted)-1])
	}

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("%d: %d\n", code, stats.StatusCounts[code])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
