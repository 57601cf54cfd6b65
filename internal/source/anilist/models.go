package anilist

import "encoding/json"

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the envelope of every AniList response.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type mediaData struct {
	Media *Media `json:"Media"`
}

type Media struct {
	ID    int64 `json:"id"`
	Title struct {
		Romaji  *string `json:"romaji"`
		English *string `json:"english"`
	} `json:"title"`
	CoverImage struct {
		Medium *string `json:"medium"`
	} `json:"coverImage"`
	Genres []string `json:"genres"`
	Tags   []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

type listData struct {
	MediaListCollection *struct {
		Lists []struct {
			Entries []ListEntry `json:"entries"`
		} `json:"lists"`
	} `json:"MediaListCollection"`
}

type ListEntry struct {
	MediaID int64  `json:"mediaId"`
	Status  string `json:"status"`
}

type userData struct {
	User *struct {
		Name   string `json:"name"`
		Avatar *struct {
			Medium *string `json:"medium"`
		} `json:"avatar"`
		BannerImage *string `json:"bannerImage"`
	} `json:"User"`
}
