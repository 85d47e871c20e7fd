package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"startup-validator/errs"
	"startup-validator/models"
	"startup-validator/parser"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

// ChromeScraper renders pages in headless Chrome and extracts their text
// locally. Used when no Firecrawl API key is configured.
type ChromeScraper struct {
	execPath string
	timeout  time.Duration
}

var _ Scraper = (*ChromeScraper)(nil)

// NewChromeScraper builds a headless-browser scraper. execPath may be empty
// to use the chromedp default lookup.
func NewChromeScraper(execPath string, timeout time.Duration) *ChromeScraper {
	return &ChromeScraper{execPath: execPath, timeout: timeout}
}

// Scrape renders pageURL and returns the readable text of the document.
func (s *ChromeScraper) Scrape(ctx context.Context, pageURL string) (models.ScrapeResult, error) {
	var out models.ScrapeResult

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(userAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)
	if s.execPath != "" {
		opts = append(opts, chromedp.ExecPath(s.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	runCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	runCtx, cancel = context.WithTimeout(runCtx, s.timeout)
	defer cancel()

	var htmlContent, title string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return out, errs.NewProviderError("chromedp", err)
	}

	out = models.ScrapeResult{
		URL:     pageURL,
		Title:   title,
		Content: parser.ExtractText(htmlContent),
		Source:  "chromedp",
	}
	return out, nil
}
