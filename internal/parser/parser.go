package parser

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/eduardo/landingkit/internal/domain"
)

var jsonBlock = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// MarkdownParser reads a campaign draft from a markdown file holding a
// ```json fenced block, or from a plain .json file
type MarkdownParser struct {
	fs domain.FileSystemPort
}

func NewMarkdownParser(fs domain.FileSystemPort) *MarkdownParser {
	return &MarkdownParser{fs: fs}
}

func (p *MarkdownParser) Parse(filename string) (*domain.CampaignDraft, error) {
	content, err := p.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	jsonContent := content
	if !strings.EqualFold(filepath.Ext(filename), ".json") {
		matches := jsonBlock.FindSubmatch(content)
		if len(matches) < 2 {
			return nil, fmt.Errorf("%s: %w", filename, domain.ErrNoJSONBlock)
		}
		jsonContent = matches[1]
	}

	var draft domain.CampaignDraft
	if err := json.Unmarshal(jsonContent, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if draft.ID == "" {
		draft.ID = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return &draft, nil
}

// Render writes draft back into the markdown format Parse reads
func Render(draft *domain.CampaignDraft) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("# %s Campaign Draft\n\n```json\n%s\n```\n", draft.CampaignName, jsonBytes)), nil
}
