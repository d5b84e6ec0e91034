package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// fetchArticleMarkdown downloads the publisher article and converts its HTML
// to markdown.
func fetchArticleMarkdown(client *http.Client, articleURL string) (string, error) {
	resp, err := client.Get(articleURL)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", articleURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, articleURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(string(body))
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return markdown, nil
}

// saveArticle writes the markdown under outputDir, named by date and URL slug.
func saveArticle(outputDir, articleURL, markdown string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	filename := filepath.Join(outputDir,
		fmt.Sprintf("%s-%s.md", time.Now().Format("2006-01-02"), generateSlug(articleURL)))

	if err := os.WriteFile(filename, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("writing article file: %w", err)
	}

	return filename, nil
}

// generateSlug creates a filename slug from a URL
func generateSlug(articleURL string) string {
	re := regexp.MustCompile(`https?://(?:www\.)?([^/?#]+)([^?#]*)`)
	matches := re.FindStringSubmatch(articleURL)
	if len(matches) < 2 {
		return "article"
	}

	slug := strings.ToLower(matches[1] + matches[2])
	slug = regexp.MustCompile(`[^a-z0-9-]`).ReplaceAllString(slug, "-")
	slug = regexp.MustCompile(`-+`).ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}
	if slug == "" {
		return "article"
	}
	return slug
}
