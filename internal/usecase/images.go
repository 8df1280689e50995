package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"portfolio-api/internal/domain"
)

type ImageStatus struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Missing []string `json:"missing"`
	Total   int      `json:"total"`
}

// ImageReport checks every post's local image blocks against staticDir.
// Only sources under /images/ are checked.
func ImageReport(posts []domain.Post, staticDir string) []ImageStatus {
	out := make([]ImageStatus, 0, len(posts))
	for _, p := range posts {
		images := p.Content.Images()
		status := ImageStatus{ID: p.ID, Title: p.Title, Missing: []string{}, Total: len(images)}
		for _, img := range images {
			if !strings.HasPrefix(img.Src, "/images/") {
				continue
			}
			path := filepath.Join(staticDir, filepath.FromSlash(strings.TrimPrefix(img.Src, "/")))
			if _, err := os.Stat(path); err != nil {
				status.Missing = append(status.Missing, img.Src)
			}
		}
		out = append(out, status)
	}
	return out
}
