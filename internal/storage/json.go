package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thedittmer/research-agent/internal/models"
)

type Storage struct {
	dataDir string
}

func NewStorage() (*Storage, error) {
	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return NewStorageDir(filepath.Join(homeDir, ".research-agent"))
}

// NewStorageDir opens storage rooted at the given directory, creating
// it if needed.
func NewStorageDir(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &Storage{dataDir: dataDir}, nil
}

func (s *Storage) DataDir() string {
	return s.dataDir
}

// SaveReport writes the report to a timestamped JSON file and returns
// its path. The write goes through a temporary file so a crash never
// leaves a half-written report behind.
func (s *Storage) SaveReport(report *models.ResearchReport) (string, error) {
	filename := fmt.Sprintf("report-%s.json", report.CreatedAt.Format("2006-01-02-15-04-05"))
	path := filepath.Join(s.dataDir, filename)
	tempPath := path + ".tmp"

	// Marshal with pretty printing for readability
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling report: %w", err)
	}

	// Write to temporary file first
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return "", fmt.Errorf("error writing temporary report: %w", err)
	}

	// Rename temporary file to actual file (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		return "", fmt.Errorf("error saving report: %w", err)
	}

	return path, nil
}

// LoadReport reads a previously saved report.
func (s *Storage) LoadReport(path string) (*models.ResearchReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading report: %w", err)
	}

	report := &models.ResearchReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("error parsing report: %w", err)
	}

	if report.SearchResults == nil {
		report.SearchResults = make(map[string][]models.SearchResult)
	}
	if report.Posts == nil {
		report.Posts = make(map[models.Platform][]models.PlatformPost)
	}

	return report, nil
}

// SaveKeywords remembers the keywords of the most recent run.
func (s *Storage) SaveKeywords(keywords []string) error {
	path := filepath.Join(s.dataDir, "keywords.txt")

	// Create the content with comments
	content := "# Keywords from the most recent research run (one per line)\n" +
		"# Lines starting with # are comments\n\n"

	for _, keyword := range keywords {
		content += keyword + "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error saving keywords: %w", err)
	}

	return nil
}

// LoadKeywords returns the keywords of the most recent run, or an
// empty list if none were saved yet.
func (s *Storage) LoadKeywords() ([]string, error) {
	path := filepath.Join(s.dataDir, "keywords.txt")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading keywords file: %w", err)
	}

	var keywords []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			keywords = append(keywords, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error parsing keywords file: %w", err)
	}

	return keywords, nil
}
