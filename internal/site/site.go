package site

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed content.json
var defaultContent []byte

// Content is the static copy shown on the landing page and page chrome
type Content struct {
	Brand        string       `json:"brand"`
	Hero         Hero         `json:"hero"`
	Features     []Feature    `json:"features"`
	Steps        []Feature    `json:"steps"`
	CallToAction CallToAction `json:"call_to_action"`
	Footer       []Link       `json:"footer"`
}

type Hero struct {
	Headline    string   `json:"headline"`
	Tagline     string   `json:"tagline"`
	Subline     string   `json:"subline"`
	Placeholder string   `json:"placeholder"`
	Button      string   `json:"button"`
	Examples    []string `json:"examples,omitempty"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CallToAction struct {
	Headline string `json:"headline"`
	Subline  string `json:"subline"`
	Button   string `json:"button"`
}

type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Default returns the built-in site copy
func Default() *Content {
	c, err := parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded site content: %v", err))
	}
	return c
}

// Load reads site copy from a JSON file with the same shape as the built-in one
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site content file: %w", err)
	}

	c, err := parse(data)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parse(data []byte) (*Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse site content JSON: %w", err)
	}
	if c.Brand == "" {
		return nil, fmt.Errorf("site content is missing a brand name")
	}
	return &c, nil
}
