// Command mockjira serves canned Jira search responses for manual testing.
// It answers GET /rest/api/2/search with a JSON file picked from the data
// directory by the project key found in the jql parameter, sliced according
// to the maxResults parameter.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/containeroo/tinyflags"
)

var projectRE = regexp.MustCompile(`"([A-Za-z0-9-]+)"`)

func main() {
	var (
		flagPort    int
		flagDataDir string
	)

	tf := tinyflags.NewFlagSet("mockjira", tinyflags.ExitOnError)
	tf.IntVar(&flagPort, "port", 8081, "Port to listen on").Value()
	tf.StringVar(&flagDataDir, "data-dir", "./data", "Directory holding search result JSON files").Value()

	if err := tf.Parse(os.Args[1:]); err != nil {
		log.Fatal("flag parse error:", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/search", func(w http.ResponseWriter, r *http.Request) {
		logRequest(r)
		handleSearch(w, r, flagDataDir)
	})

	addr := ":" + strconv.Itoa(flagPort)
	log.Printf("mock Jira listening on %s (data-dir: %s)", addr, flagDataDir)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// handleSearch serves <token>.json where token is the first quoted value in
// the jql parameter, falling back to default.json.
func handleSearch(w http.ResponseWriter, r *http.Request, dataDir string) {
	if r.Header.Get("Authorization") == "" {
		http.Error(w, `{"errorMessages":["missing token"]}`, http.StatusUnauthorized)
		return
	}

	token := "default"
	if m := projectRE.FindStringSubmatch(r.URL.Query().Get("jql")); len(m) == 2 {
		token = m[1]
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, token+".json"))
	if err != nil {
		http.Error(w, `{"errorMessages":["no such data file"]}`, http.StatusNotFound)
		return
	}

	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("maxResults")); err == nil && v > 0 {
		limit = v
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		http.Error(w, "invalid mock JSON: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if issues, ok := payload["issues"].([]any); ok {
		if _, ok := payload["total"]; !ok {
			payload["total"] = len(issues)
		}
		if len(issues) > limit {
			payload["issues"] = issues[:limit]
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// logRequest logs method, path, and query with the Authorization header redacted.
func logRequest(r *http.Request) {
	auth := "<none>"
	if r.Header.Get("Authorization") != "" {
		auth = "<redacted>"
	}
	log.Printf("REQ %s %s?%s auth=%s", r.Method, r.URL.Path, r.URL.RawQuery, auth)
}
