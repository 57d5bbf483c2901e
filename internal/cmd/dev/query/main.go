// Dev tool: post a GraphQL query to a running gateway and print the result.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	var (
		endpoint  = flag.String("endpoint", "http://localhost:8080/graphql", "GraphQL endpoint to query")
		query     = flag.String("query", "{ stats { status count } }", "Query to execute")
		variables = flag.String("variables", "", "Variables as a JSON object (optional)")
		timeout   = flag.Duration("timeout", 10*time.Second, "Request timeout")
	)
	flag.Parse()

	payload := map[string]interface{}{
		"query": *query,
	}
	if *variables != "" {
		var vars map[string]interface{}
		if err := json.Unmarshal([]byte(*variables), &vars); err != nil {
			log.Fatalf("Invalid variables: %v", err)
		}
		payload["variables"] = vars
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to encode request: %v", err)
	}

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Post(*endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not JSON; print as-is
		fmt.Printf("%s (%s)\n", raw, resp.Status)
		return
	}

	fmt.Printf("%s\n%s\n", resp.Status, pretty.String())
}
