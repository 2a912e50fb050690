package reststore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const testServiceKey = "test-service-key"

// fakeREST is an in-memory PostgREST stand-in: table-scoped routes,
// eq./neq. filters, Prefer-driven upserts and representations, exact
// counts via Content-Range, and the nested selects the stores use.
type fakeREST struct {
	t *testing.T

	mu     sync.Mutex
	tables map[string][]map[string]any
}

func newFakeREST(t *testing.T) *fakeREST {
	return &fakeREST{
		t:      t,
		tables: make(map[string][]map[string]any),
	}
}

func (f *fakeREST) server() *httptest.Server {
	return httptest.NewServer(f)
}

func (f *fakeREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("apikey") != testServiceKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	table := strings.TrimPrefix(r.URL.Path, restPath)
	if table == r.URL.Path || table == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		f.handleGet(w, r, table)
	case http.MethodPost:
		f.handlePost(w, r, table)
	case http.MethodPatch:
		f.handlePatch(w, r, table)
	case http.MethodDelete:
		f.handleDelete(w, r, table)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// matches applies the eq./neq. operators from the query string.
func matches(row map[string]any, r *http.Request) bool {
	for key, values := range r.URL.Query() {
		switch key {
		case "select", "order", "limit", "offset", "items.order":
			continue
		}

		want := values[0]

		got := fmt.Sprintf("%v", row[key])
		if row[key] == nil {
			got = ""
		}

		switch {
		case strings.HasPrefix(want, "eq."):
			if got != strings.TrimPrefix(want, "eq.") {
				return false
			}
		case strings.HasPrefix(want, "neq."):
			if got == strings.TrimPrefix(want, "neq.") {
				return false
			}
		}
	}

	return true
}

func (f *fakeREST) filtered(table string, r *http.Request) []map[string]any {
	out := make([]map[string]any, 0)

	for _, row := range f.tables[table] {
		if matches(row, r) {
			out = append(out, row)
		}
	}

	return out
}

// embed resolves the nested selects used by the media and slider stores.
func (f *fakeREST) embed(table, sel string, rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))

	for _, row := range rows {
		row = cloneRow(row)

		if table == tableMediaItems && strings.Contains(sel, "category:media_categories") {
			if id, _ := row["category_id"].(string); id != "" {
				row["category"] = f.lookup(tableCategories, id)
			}
		}

		if table == tableSliders && strings.Contains(sel, "items:slider_items") {
			items := make([]map[string]any, 0)

			for _, item := range f.tables[tableSliderItems] {
				if item["slider_id"] == row["id"] {
					item = cloneRow(item)

					if strings.Contains(sel, "media_item:media_items") {
						if id, _ := item["media_item_id"].(string); id != "" {
							item["media_item"] = f.lookup(tableMediaItems, id)
						}
					}

					items = append(items, item)
				}
			}

			sort.Slice(items, func(i, j int) bool {
				return asInt(items[i]["sort_order"]) < asInt(items[j]["sort_order"])
			})

			row["items"] = items
		}

		out = append(out, row)
	}

	return out
}

func (f *fakeREST) lookup(table, id string) map[string]any {
	for _, row := range f.tables[table] {
		if row["id"] == id {
			return cloneRow(row)
		}
	}

	return nil
}

func (f *fakeREST) handleGet(w http.ResponseWriter, r *http.Request, table string) {
	rows := f.filtered(table, r)

	if strings.Contains(r.Header.Get("Prefer"), "count=exact") {
		w.Header().Set("Content-Range", fmt.Sprintf("0-0/%d", len(rows)))
	}

	rows = f.embed(table, r.URL.Query().Get("select"), rows)
	rows = paginate(rows, r)

	writeJSON(w, rows)
}

func (f *fakeREST) handlePost(w http.ResponseWriter, r *http.Request, table string) {
	var incoming []map[string]any
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	merge := strings.Contains(r.Header.Get("Prefer"), "merge-duplicates")

	for _, row := range incoming {
		replaced := false

		if merge {
			for i, existing := range f.tables[table] {
				if existing["id"] == row["id"] {
					f.tables[table][i] = row
					replaced = true

					break
				}
			}
		}

		if !replaced {
			f.tables[table] = append(f.tables[table], row)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	_ = json.NewEncoder(w).Encode(incoming)
}

func (f *fakeREST) handlePatch(w http.ResponseWriter, r *http.Request, table string) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated := make([]map[string]any, 0)

	for i, row := range f.tables[table] {
		if !matches(row, r) {
			continue
		}

		for k, v := range patch {
			row[k] = v
		}

		f.tables[table][i] = row
		updated = append(updated, row)
	}

	writeJSON(w, updated)
}

func (f *fakeREST) handleDelete(w http.ResponseWriter, r *http.Request, table string) {
	kept := make([]map[string]any, 0)
	removed := make([]map[string]any, 0)

	for _, row := range f.tables[table] {
		if matches(row, r) {
			removed = append(removed, row)
			continue
		}

		kept = append(kept, row)
	}

	f.tables[table] = kept

	writeJSON(w, removed)
}

func paginate(rows []map[string]any, r *http.Request) []map[string]any {
	q := r.URL.Query()

	if off := q.Get("offset"); off != "" {
		n := atoiOrZero(off)
		if n > len(rows) {
			n = len(rows)
		}

		rows = rows[n:]
	}

	if lim := q.Get("limit"); lim != "" {
		n := atoiOrZero(lim)
		if n < len(rows) {
			rows = rows[:n]
		}
	}

	return rows
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func cloneRow(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}

	return out
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}

	return 0
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(v)
}
