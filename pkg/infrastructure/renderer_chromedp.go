package infrastructure

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	cardWidth  = 1200
	cardHeight = 675
)

var cardTemplate = template.Must(template.New("card").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><style>
html,body{margin:0;width:{{.Width}}px;height:{{.Height}}px}
body{display:flex;align-items:center;justify-content:center;background:{{.Background}};font-family:system-ui,sans-serif}
body::after{content:"";position:fixed;inset:0;background:linear-gradient(135deg,rgba(255,255,255,.08),rgba(255,255,255,0))}
h1{color:#fff;font-size:64px;font-weight:700;text-align:center;padding:0 80px;line-height:1.15}
</style></head>
<body><h1>{{.Title}}</h1></body></html>`))

// ChromedpCardRenderer screenshots a gradient title card in headless Chrome.
type ChromedpCardRenderer struct {
	ChromePath string
	Timeout    time.Duration
}

func NewChromedpCardRenderer(chromePath string) *ChromedpCardRenderer {
	return &ChromedpCardRenderer{ChromePath: chromePath, Timeout: 30 * time.Second}
}

const defaultBackground = "#0ea5e9"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// CardHTML renders the card markup; titles longer than 60 runes are cut
// and backgrounds other than hex colors are replaced by the default.
func CardHTML(title string, background string) (string, error) {
	if !hexColor.MatchString(background) {
		background = defaultBackground
	}
	if r := []rune(title); len(r) > 60 {
		title = string(r[:60]) + "..."
	}
	if title == "" {
		title = "AI Post"
	}
	var buf bytes.Buffer
	err := cardTemplate.Execute(&buf, struct {
		Title         string
		Background    template.CSS
		Width, Height int
	}{title, template.CSS(background), cardWidth, cardHeight})
	return buf.String(), err
}

func (r *ChromedpCardRenderer) RenderCard(ctx context.Context, title string, background string) ([]byte, error) {
	html, err := CardHTML(title, background)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cover-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "card.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var png []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(cardWidth, cardHeight),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			png, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithFromSurface(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return png, nil
}
