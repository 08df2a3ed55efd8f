package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// jobSeparator divides postings inside a multi-posting text file.
const jobSeparator = "===="

// noiseSubstrings mark boilerplate lines from job board pages (LinkedIn,
// Indeed) that carry no posting content.
var noiseSubstrings = []string{
	"profile insights",
	"here’s how the job qualifications align with your profile",
	"job details",
	"full job description",
	"pulled from the full job description",
	"show more",
	"easy apply",
	"promoted by hirer",
	"responses managed off linkedin",
	"matches your job preferences",
	"&nbsp;",
}

// metaSubstrings mark posting metadata lines (repost banners, applicant
// counts).
var metaSubstrings = []string{"reposted", "clicked apply", "applicants"}

// titleKeywords are the tokens a line must contain to be considered a job
// title.
var titleKeywords = []string{
	"engineer", "developer", "software", "full stack", "full-stack",
	"backend", "front end", "frontend", "platform", "embedded", "mlops",
}

var ratingPattern = regexp.MustCompile(`^\d(\.\d)?$`)

// JobParser parses raw job posting text into structured JobRecords,
// extracting the skill set with the configured Extractor.
type JobParser struct {
	extractor *parsing.Extractor
}

// NewJobParser creates a JobParser. A nil extractor uses the default skill
// vocabulary.
func NewJobParser(extractor *parsing.Extractor) *JobParser {
	if extractor == nil {
		extractor = parsing.NewExtractor(nil, nil)
	}
	return &JobParser{extractor: extractor}
}

// ParseFile reads a postings file and parses every posting in it. Files with
// an .html or .htm extension are stripped to text first.
func (p *JobParser) ParseFile(path string) ([]*types.JobRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractJobText(text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	return p.Parse(text), nil
}

// Parse splits text on separator lines ("====") and parses each chunk into a
// JobRecord. Chunks that yield neither a title nor any text are dropped.
// IDs are assigned sequentially in document order.
func (p *JobParser) Parse(text string) []*types.JobRecord {
	chunks := strings.Split(normalizeText(text), jobSeparator)

	jobs := make([]*types.JobRecord, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		job := p.parseOne(len(jobs), chunk)
		if job != nil {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// parseOne builds a JobRecord from one posting chunk.
func (p *JobParser) parseOne(id int, text string) *types.JobRecord {
	title, company := extractTitleCompany(text)
	if title == "" {
		title = "Unknown role"
	}

	return &types.JobRecord{
		ID:      id,
		Title:   title,
		Company: company,
		Skills:  p.extractor.Extract(text),
		Text:    text,
	}
}

// extractTitleCompany applies job board layout heuristics to find the title
// and company lines of a posting.
func extractTitleCompany(text string) (title, company string) {
	lines := cleanLines(text)
	if len(lines) == 0 {
		return "", ""
	}

	// Drop obvious noise lines, keep order
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if !isNoiseLine(line) {
			filtered = append(filtered, line)
		}
	}

	titleIdx := -1

	// Indeed-style "Title - job post"
	for i, line := range filtered {
		if strings.Contains(strings.ToLower(line), "- job post") {
			title = strings.TrimSpace(strings.Split(line, "- job post")[0])
			titleIdx = i
			break
		}
	}

	// LinkedIn-style: first title-like line near the top
	if title == "" {
		limit := len(filtered)
		if limit > 25 {
			limit = 25
		}
		for i := 0; i < limit; i++ {
			if titleLike(filtered[i]) {
				title = filtered[i]
				titleIdx = i
				break
			}
		}
	}

	searchLimit := len(filtered)
	if searchLimit > 60 {
		searchLimit = 60
	}

	// "Save <title> at <company>"
	for _, line := range filtered[:searchLimit] {
		low := strings.ToLower(line)
		if strings.HasPrefix(low, "save ") && strings.Contains(low, " at ") {
			idx := strings.Index(low, " at ")
			company = strings.TrimSpace(line[idx+len(" at "):])
			company = strings.TrimSpace(strings.Split(company, " · ")[0])
			return title, company
		}
	}

	// "Company · Location"
	for _, line := range filtered[:searchLimit] {
		if strings.Contains(line, "·") {
			left := strings.TrimSpace(strings.Split(line, "·")[0])
			if left != "" && !isLocationOrMeta(line) && !isJobType(left) {
				return title, left
			}
		}
	}

	// Fallback: the line right after the title, unless it is clearly metadata
	if titleIdx >= 0 && titleIdx+1 < len(filtered) {
		next := filtered[titleIdx+1]
		if !isRating(next) && !isJobType(next) && !isLocationOrMeta(next) {
			company = next
		}
	}
	return title, company
}

func isNoiseLine(line string) bool {
	low := strings.ToLower(line)
	for _, noise := range noiseSubstrings {
		if strings.Contains(low, noise) {
			return true
		}
	}
	return false
}

func isRating(line string) bool {
	low := strings.ToLower(line)
	if strings.Contains(low, "out of 5 stars") {
		return true
	}
	return ratingPattern.MatchString(strings.TrimSpace(line))
}

func isJobType(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "full-time", "part-time", "contract", "permanent", "internship", "temporary":
		return true
	}
	return false
}

// provinceCodes catch "City, ON · ..." style location lines.
var provinceCodes = []string{"ON", "QC", "BC", "AB", "MB", "NS", "NB", "NL", "PE", "SK", "YT", "NT", "NU"}

func isLocationOrMeta(line string) bool {
	low := strings.ToLower(line)
	if strings.Contains(line, "·") {
		for _, meta := range metaSubstrings {
			if strings.Contains(low, meta) {
				return true
			}
		}
	}
	for _, code := range provinceCodes {
		if strings.Contains(line, code) &&
			(strings.Contains(line, "·") || strings.Contains(line, ",") || strings.Contains(line, "(")) {
			return true
		}
	}
	if strings.Contains(low, "hybrid") || strings.Contains(low, "remote") || strings.Contains(low, "on-site") {
		return true
	}
	return false
}

func titleLike(line string) bool {
	low := strings.ToLower(line)
	if isNoiseLine(line) || strings.HasPrefix(low, "save ") {
		return false
	}
	for _, meta := range metaSubstrings {
		if strings.Contains(low, meta) {
			return false
		}
	}
	if len(line) < 4 || len(line) > 90 {
		return false
	}
	for _, keyword := range titleKeywords {
		if strings.Contains(low, keyword) {
			return true
		}
	}
	return false
}
