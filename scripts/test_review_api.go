package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// Smoke test for the review API. Needs a running server, a seeded
// database (cmd/seed) and a reviewer token in REVIEWER_TOKEN.
func main() {
	token := os.Getenv("REVIEWER_TOKEN")
	if token == "" {
		color.Red("REVIEWER_TOKEN is not set")
		os.Exit(1)
	}

	color.Cyan("Review API smoke test\n")

	// 1. Summary tiles
	color.Yellow("\n1. Get summary")
	resp, body, err := sendRequest("GET", "/review/v1/summary", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var summaryResp map[string]interface{}
	json.Unmarshal(body, &summaryResp)
	prettyPrint(summaryResp)

	// 2. Board, all scopes
	for _, scope := range []string{"ALL_PENDING", "TODAY", "OVERDUE"} {
		color.Yellow("\n2. Get board (scope=%s)", scope)
		resp, body, err = sendRequest("GET", "/review/v1/board?scope="+scope, token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
	}

	// Pull a pending session id off the board for the decision tests.
	var boardResp struct {
		Data struct {
			Today struct {
				Items []struct {
					SessionId string `json:"session_id"`
				} `json:"items"`
			} `json:"today"`
		} `json:"data"`
	}
	_, body, err = sendRequest("GET", "/review/v1/board", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	json.Unmarshal(body, &boardResp)

	var sessionID string
	if len(boardResp.Data.Today.Items) > 0 {
		sessionID = boardResp.Data.Today.Items[0].SessionId
		fmt.Printf("Using session: %s\n", sessionID)
	}

	// 3. Presets
	color.Yellow("\n3. Get grading presets")
	resp, body, err = sendRequest("GET", "/review/v1/presets", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var presetsResp map[string]interface{}
	json.Unmarshal(body, &presetsResp)
	prettyPrint(presetsResp)

	// 4. Pass a pending round
	if sessionID == "" {
		color.Red("Skipping decision tests: no pending session due today (run cmd/seed first)")
		return
	}

	color.Yellow("\n4. Pass session %s (+20)", sessionID)
	passReq := map[string]interface{}{
		"adjustment_xp": 20,
	}
	resp, body, err = sendRequest("POST", "/review/v1/"+sessionID+"/pass", token, passReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var passResp map[string]interface{}
	json.Unmarshal(body, &passResp)
	prettyPrint(passResp)

	// 5. A second pass on the same session must be rejected
	color.Yellow("\n5. Pass the same session again (expect 409)")
	resp, _, err = sendRequest("POST", "/review/v1/"+sessionID+"/pass", token, passReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusConflict {
		color.Green("Correctly rejected: %s", resp.Status)
	} else {
		color.Red("Expected 409, got: %s", resp.Status)
	}

	// 6. Revise without feedback must be rejected
	color.Yellow("\n6. Revise without feedback (expect 400)")
	resp, _, err = sendRequest("POST", "/review/v1/"+sessionID+"/revise", token, map[string]interface{}{})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusBadRequest {
		color.Green("Correctly rejected: %s", resp.Status)
	} else {
		color.Red("Expected 400, got: %s", resp.Status)
	}

	color.Cyan("\nDone.")
}
