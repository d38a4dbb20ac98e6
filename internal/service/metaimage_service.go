package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/response"
)

const (
	// metaImageCacheTTL keeps extraction results warm; pages rarely
	// change their preview image
	metaImageCacheTTL = 15 * time.Minute

	// maxMetaFetchBytes bounds how much of a page is read looking for
	// meta tags; they live in <head>
	maxMetaFetchBytes = 512 * 1024

	metaFetchTimeout = 10 * time.Second
)

// MetaImageService extracts a representative preview image for a URL
type MetaImageService interface {
	GetMetaImage(ctx context.Context, rawURL string) (*dto.MetaImageResponse, error)
}

// metaImageServiceImpl is the implementation of MetaImageService
type metaImageServiceImpl struct {
	httpClient *http.Client
	cache      *redis.Client
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewMetaImageService creates a new instance of MetaImageService
func NewMetaImageService(cache *redis.Client, m *metrics.Metrics, logger *zap.Logger) MetaImageService {
	return &metaImageServiceImpl{
		httpClient: &http.Client{Timeout: metaFetchTimeout},
		cache:      cache,
		metrics:    m,
		logger:     logger,
	}
}

// GetMetaImage fetches the page and extracts its og:image or
// twitter:image. The URL is validated before any network traffic.
// Pages without a meta image fall back to the host favicon.
func (s *metaImageServiceImpl) GetMetaImage(ctx context.Context, rawURL string) (*dto.MetaImageResponse, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, response.NewValidationError("A valid absolute http or https URL is required")
	}

	cacheKey := "meta:image:" + rawURL
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.MetaImageResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	imageURL, err := s.fetchMetaImage(ctx, parsed)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch page", err.Error())
	}

	resp := &dto.MetaImageResponse{Success: true}
	if imageURL != "" {
		resolved := resolveImageURL(parsed, imageURL)
		resp.ImageURL = &resolved
	} else {
		favicon := parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
		resp.ImageURL = &favicon
		resp.FallbackUsed = true
		if s.metrics != nil {
			s.metrics.IncrementMetaImageFallback()
		}
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, metaImageCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache meta image result", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// fetchMetaImage downloads a bounded prefix of the page and walks its
// HTML for preview meta tags
func (s *metaImageServiceImpl) fetchMetaImage(ctx context.Context, pageURL *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "linkboard-api/1.0 (+link preview)")
	req.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if s.metrics != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		s.metrics.RecordExternalCall("page_scrape", http.MethodGet, status, time.Since(start), err)
	}
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return extractMetaImage(io.LimitReader(resp.Body, maxMetaFetchBytes)), nil
}

// extractMetaImage walks the HTML tokens for og:image and
// twitter:image. og:image wins when both are present.
func extractMetaImage(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)

	var twitterImage string
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return twitterImage
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "meta" {
				// Meta tags live in head; once the body starts there
				// is nothing left to find
				if token.Data == "body" {
					return twitterImage
				}
				continue
			}

			var property, name, content string
			for _, attr := range token.Attr {
				switch strings.ToLower(attr.Key) {
				case "property":
					property = strings.ToLower(attr.Val)
				case "name":
					name = strings.ToLower(attr.Val)
				case "content":
					content = strings.TrimSpace(attr.Val)
				}
			}

			if content == "" {
				continue
			}
			if property == "og:image" {
				return content
			}
			if twitterImage == "" && (name == "twitter:image" || property == "twitter:image") {
				twitterImage = content
			}
		}
	}
}

// resolveImageURL makes a relative image reference absolute against
// the page URL
func resolveImageURL(pageURL *url.URL, image string) string {
	ref, err := url.Parse(image)
	if err != nil {
		return image
	}
	return pageURL.ResolveReference(ref).String()
}
