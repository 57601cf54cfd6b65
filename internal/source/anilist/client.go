package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"awc_tracker/internal/domain"
)

const (
	DefaultBaseURL = "https://graphql.anilist.co"

	statusCompleted = "COMPLETED"
	statusCurrent   = "CURRENT"
)

const (
	mediaQuery   = `query ($id: Int) { Media(id: $id, type: ANIME) { id title { romaji english } coverImage { medium } genres tags { name } } }`
	listQuery    = `query ($userName: String) { MediaListCollection(userName: $userName, type: ANIME) { lists { entries { mediaId status } } } }`
	profileQuery = `query ($name: String) { User(name: $name) { name avatar { medium } bannerImage } }`
)

// Config holds AniList client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// APIError is a non-200 response.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("unexpected status: %d", e.StatusCode)
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, ", ")
	}
	return msg
}

// Client talks to the AniList GraphQL API. It never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "AWCTracker/1.0"
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger.With("source", "anilist"),
	}
}

// GetMediaByID looks up one anime. A missing record yields an error
// matching domain.ErrNotFound.
func (c *Client) GetMediaByID(ctx context.Context, id domain.MediaID) (*domain.Media, error) {
	var data mediaData
	msgs, err := c.do(ctx, mediaQuery, map[string]any{"id": int64(id)}, &data)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &domain.NotFoundError{Detail: detail(apiErr.Messages)}
		}
		return nil, err
	}
	if data.Media == nil {
		return nil, &domain.NotFoundError{Detail: detail(msgs)}
	}

	c.logger.Debug("fetched media", "id", id)
	return data.Media.toDomain(), nil
}

// GetUserListStatuses returns the ids on the user's anime list that are
// COMPLETED or CURRENT. Every other list status is left out.
func (c *Client) GetUserListStatuses(ctx context.Context, handle string) (domain.RemoteStatusSet, error) {
	if strings.TrimSpace(handle) == "" {
		return domain.RemoteStatusSet{}, domain.ErrHandleRequired
	}

	var data listData
	msgs, err := c.do(ctx, listQuery, map[string]any{"userName": handle}, &data)
	if err != nil {
		return domain.RemoteStatusSet{}, fmt.Errorf("fetch list of %s: %w", handle, err)
	}
	if len(msgs) > 0 {
		return domain.RemoteStatusSet{}, fmt.Errorf("fetch list of %s: %s", handle, strings.Join(msgs, ", "))
	}
	if data.MediaListCollection == nil {
		return domain.RemoteStatusSet{}, fmt.Errorf("fetch list of %s: %w", handle, &domain.NotFoundError{
			Detail: fmt.Sprintf("user %q not found or list private", handle),
		})
	}

	set := domain.NewRemoteStatusSet()
	total := 0
	for _, list := range data.MediaListCollection.Lists {
		for _, e := range list.Entries {
			total++
			switch e.Status {
			case statusCompleted:
				set.Completed[domain.MediaID(e.MediaID)] = struct{}{}
			case statusCurrent:
				set.Current[domain.MediaID(e.MediaID)] = struct{}{}
			}
		}
	}

	c.logger.Debug("fetched list statuses",
		"handle", handle,
		"entries", total,
		"completed", len(set.Completed),
		"current", len(set.Current),
	)
	return set, nil
}

// GetPublicProfile fetches the avatar and banner of a user.
func (c *Client) GetPublicProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	if strings.TrimSpace(handle) == "" {
		return nil, domain.ErrHandleRequired
	}

	var data userData
	msgs, err := c.do(ctx, profileQuery, map[string]any{"name": handle}, &data)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &domain.NotFoundError{Detail: fmt.Sprintf("user %q not found", handle)}
		}
		return nil, fmt.Errorf("fetch profile of %s: %w", handle, err)
	}
	if data.User == nil {
		return nil, &domain.NotFoundError{Detail: fmt.Sprintf("user %q not found: %s", handle, detail(msgs))}
	}

	p := &domain.Profile{Name: data.User.Name}
	if data.User.Avatar != nil && data.User.Avatar.Medium != nil {
		p.AvatarURL = *data.User.Avatar.Medium
	}
	if data.User.BannerImage != nil {
		p.BannerURL = *data.User.BannerImage
	}
	return p, nil
}

// do posts one GraphQL query and decodes data into out. GraphQL errors on
// a 200 response are returned as messages, not as an error.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) ([]string, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var gqlResp graphQLResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&gqlResp)

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: messages(gqlResp.Errors)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	if len(gqlResp.Data) > 0 && string(gqlResp.Data) != "null" {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return messages(gqlResp.Errors), nil
}

func messages(errs []graphQLError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func detail(msgs []string) string {
	if len(msgs) == 0 {
		return "Unknown reason"
	}
	return strings.Join(msgs, ", ")
}

func (m *Media) toDomain() *domain.Media {
	out := &domain.Media{
		ID:     domain.MediaID(m.ID),
		Genres: append([]string(nil), m.Genres...),
	}
	if m.Title.Romaji != nil {
		out.TitleRomaji = *m.Title.Romaji
	}
	if m.Title.English != nil {
		out.TitleEnglish = *m.Title.English
	}
	if m.CoverImage.Medium != nil {
		out.CoverImageURL = *m.CoverImage.Medium
	}
	for _, t := range m.Tags {
		out.Tags = append(out.Tags, domain.Tag{Name: t.Name})
	}
	return out
}
