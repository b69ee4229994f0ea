package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client

	// last generated result, reused by the refine test
	lastResult string
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// two sequential model calls per generation
		client: &http.Client{Timeout: 3 * time.Minute},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the agent")
	testType := flag.String("test", "all", "Test type: all, health, agent-card, generate, refine, a2a")
	product := flag.String("product", "Eco Water Bottle", "Product or topic")
	audience := flag.String("audience", "Studierende", "Target audience")
	instruction := flag.String("instruction", "Mache die CTAs kuerzer.", "Refinement instruction")
	flag.Parse()

	client := NewTestClient(*baseURL)
	req := models.CampaignRequest{Product: *product, Audience: *audience}

	printHeader("Persona Marketing Agent - Test Suite")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	tests := map[string]func() bool{
		"health":     client.testHealthCheck,
		"agent-card": client.testAgentCard,
		"generate":   func() bool { return client.testGenerate(req) },
		"refine": func() bool {
			return client.testGenerate(req) && client.testRefine(*instruction)
		},
		"a2a": func() bool { return client.testA2A(req) },
	}

	if *testType == "all" {
		client.runAll([]string{"health", "agent-card", "generate", "refine", "a2a"}, tests, req, *instruction)
		return
	}

	fn, ok := tests[*testType]
	if !ok {
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, agent-card, generate, refine, a2a")
		os.Exit(1)
	}
	if !fn() {
		os.Exit(1)
	}
}

func (tc *TestClient) runAll(order []string, tests map[string]func() bool, req models.CampaignRequest, instruction string) {
	passed, failed := 0, 0
	for _, name := range order {
		fn := tests[name]
		if name == "refine" {
			// reuse the output of the generate test
			fn = func() bool { return tc.testRefine(instruction) }
		}
		if fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	body, status, err := tc.get("/health")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK || string(body) != "OK" {
		printError(fmt.Sprintf("Expected 200 OK, got %d '%s'", status, string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testAgentCard() bool {
	printTestHeader("Testing Agent Card Endpoint")

	body, status, err := tc.get("/.well-known/agent.json")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var card map[string]any
	if err := json.Unmarshal(body, &card); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	for _, field := range []string{"name", "description", "url", "version", "capabilities", "skills"} {
		if _, ok := card[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Agent card is valid")
	printJSON(body)
	return true
}

func (tc *TestClient) testGenerate(req models.CampaignRequest) bool {
	printTestHeader("Testing Persona and Messaging Generation")
	fmt.Printf("%sProduct:%s %s  %sAudience:%s %s\n\n", colorCyan, colorReset, req.Product, colorCyan, colorReset, req.Audience)

	result, ok := tc.postResult("/api/v1/generate", req)
	if !ok {
		return false
	}
	if !strings.HasPrefix(result, "---\nPERSONAS\n") || !strings.Contains(result, "\n\nMESSAGING\n") {
		printError("Result does not have the PERSONAS/MESSAGING layout")
		return false
	}

	tc.lastResult = result
	printSuccess("Generation completed successfully")
	printBlock(result)
	return true
}

func (tc *TestClient) testRefine(instruction string) bool {
	printTestHeader("Testing Refinement")

	if tc.lastResult == "" {
		printError("Nothing to refine, generation did not succeed")
		return false
	}

	result, ok := tc.postResult("/api/v1/refine", models.RefineRequest{CurrentOutput: tc.lastResult, Instruction: instruction})
	if !ok {
		return false
	}

	tc.lastResult = result
	printSuccess("Refinement completed successfully")
	printBlock(result)
	return true
}

func (tc *TestClient) testA2A(req models.CampaignRequest) bool {
	printTestHeader("Testing A2A message/send")

	request := map[string]any{
		"jsonrpc": "2.0",
		"id":      fmt.Sprintf("test-%d", time.Now().Unix()),
		"method":  "message/send",
		"params": map[string]any{
			"message": map[string]any{
				"kind": "message",
				"role": "user",
				"parts": []map[string]any{
					{"kind": "data", "data": req},
				},
			},
			"configuration": map[string]any{
				"blocking":            true,
				"acceptedOutputModes": []string{"text"},
			},
		},
	}

	body, status, err := tc.post("/a2a/marketing", request)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var response struct {
		Result struct {
			Status struct {
				State string `json:"state"`
			} `json:"status"`
		} `json:"result"`
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if response.Error != nil {
		printError("Request returned an error")
		printJSON(body)
		return false
	}
	if response.Result.Status.State != "completed" {
		printError(fmt.Sprintf("Expected state 'completed', got '%s'", response.Result.Status.State))
		printJSON(body)
		return false
	}

	printSuccess("A2A task completed successfully")
	return true
}

func (tc *TestClient) postResult(path string, payload any) (string, bool) {
	body, status, err := tc.post(path, payload)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return "", false
	}

	var resp models.ResultResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return "", false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d: %s", status, resp.Error))
		return "", false
	}
	return resp.Result, true
}

func (tc *TestClient) get(path string) ([]byte, int, error) {
	url := tc.baseURL + path
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

func (tc *TestClient) post(path string, payload any) ([]byte, int, error) {
	url := tc.baseURL + path
	fmt.Printf("POST %s\n", url)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	resp, err := tc.client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return body, resp.StatusCode, err
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printBlock(text string) {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(text)
	fmt.Println(strings.Repeat("=", 80))
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
