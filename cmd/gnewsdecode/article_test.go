package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchArticleMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><h1>Breaking News</h1><p>Body text.</p></body></html>"))
	}))
	defer server.Close()

	markdown, err := fetchArticleMarkdown(server.Client(), server.URL)
	if err != nil {
		t.Fatalf("fetchArticleMarkdown() error = %v", err)
	}
	if !strings.Contains(markdown, "Breaking News") {
		t.Errorf("markdown is missing the heading: %q", markdown)
	}
	if strings.Contains(markdown, "<h1>") {
		t.Errorf("markdown still contains HTML tags: %q", markdown)
	}
}

func TestFetchArticleMarkdownHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := fetchArticleMarkdown(server.Client(), server.URL); err == nil {
		t.Error("fetchArticleMarkdown() should fail on HTTP 403")
	}
}

func TestSaveArticle(t *testing.T) {
	dir := t.TempDir()

	filename, err := saveArticle(filepath.Join(dir, "out"), "https://example.com/some/story", "# Hello\n")
	if err != nil {
		t.Fatalf("saveArticle() error = %v", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading saved article: %v", err)
	}
	if string(content) != "# Hello\n" {
		t.Errorf("saved content = %q", content)
	}
	if !strings.HasSuffix(filename, ".md") {
		t.Errorf("filename %q should end in .md", filename)
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.example.com/tech/story-1", "example-com-tech-story-1"},
		{"https://example.com/", "example-com"},
		{"not a url", "article"},
	}

	for _, tt := range tests {
		result := generateSlug(tt.url)
		if result != tt.expected {
			t.Errorf("generateSlug(%q) = %q, want %q", tt.url, result, tt.expected)
		}
	}
}
