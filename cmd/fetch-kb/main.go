// fetch-kb downloads a web page and extracts its readable text, ready
// to be fed to syllog-cli as a natural-language knowledge base.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

func main() {
	var (
		url     = flag.String("url", "", "Page to fetch (required)")
		outPath = flag.String("o", "", "Output file (default: stdout)")
		timeout = flag.Duration("timeout", 30*time.Second, "HTTP timeout")
	)
	flag.Parse()

	if *url == "" {
		log.Fatal("--url required")
	}

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Get(*url)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		log.Fatalf("HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	text := extractText(doc)
	if text == "" {
		log.Fatal("no readable text found")
	}

	if *outPath == "" {
		fmt.Println(text)
		return
	}
	if err := os.WriteFile(*outPath, []byte(text+"\n"), 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("✓ Wrote %d bytes to %s", len(text)+1, *outPath)
}

// extractText walks the parse tree collecting text nodes, skipping
// script and style subtrees. Block-level boundaries become newlines so
// sentences from different elements do not run together.
func extractText(doc *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteString("\n")
		}
	}
	walk(doc)

	// Collapse runs of blank lines left by nested block elements.
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "tr":
		return true
	}
	return false
}
