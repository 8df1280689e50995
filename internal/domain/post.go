package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	BlockParagraph = "paragraph"
	BlockHeading   = "heading"
	BlockImage     = "image"
	BlockCode      = "code"
)

// Block is one typed piece of a post body.
type Block struct {
	Type     string `json:"type"`
	Content  string `json:"content,omitempty"`
	Src      string `json:"src,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Level    int    `json:"level,omitempty"`
	Language string `json:"language,omitempty"`
}

// Body is a post's content. It decodes from either a flat string or an
// array of blocks and always encodes as an array.
type Body []Block

func (b *Body) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*b = Body{}
			return nil
		}
		*b = Body{{Type: BlockParagraph, Content: s}}
		return nil
	}
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return fmt.Errorf("post content: %w", err)
	}
	*b = blocks
	return nil
}

func (b Body) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Block(b))
}

// Images returns the image blocks in body order.
func (b Body) Images() []Block {
	var out []Block
	for _, blk := range b {
		if blk.Type == BlockImage {
			out = append(out, blk)
		}
	}
	return out
}

type Post struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Category   string    `json:"category,omitempty"`
	Tags       []string  `json:"tags"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    Body      `json:"content"`
	CoverImage string    `json:"coverImage"`
}

type PostSummary struct {
	ID         string    `json:"id"`
	CoverImage string    `json:"coverImage"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Date       time.Time `json:"date"`
	Excerpt    string    `json:"excerpt"`
}

func (p Post) Summary() PostSummary {
	return PostSummary{
		ID:         p.ID,
		CoverImage: p.CoverImage,
		Title:      p.Title,
		Author:     p.Author,
		Date:       p.Date,
		Excerpt:    p.Excerpt,
	}
}

// PostListing singles out the most recent post; Posts holds the rest, newest first.
type PostListing struct {
	LatestPost *PostSummary  `json:"latest_post"`
	Posts      []PostSummary `json:"posts"`
}
