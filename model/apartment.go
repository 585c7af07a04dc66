package model

import (
	"encoding/json"
	"regexp"
)

// Tried in order; the first match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?]+)`),
	regexp.MustCompile(`youtube\.com/v/([^?]+)`),
}

// ExtractVideoID pulls the YouTube video id out of a watch, short, embed or /v/ URL.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1], true
		}
	}
	return "", false
}

type Apartment struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Photo       string  `gorm:"size:500;not null" json:"photo"`
	VideoURL    *string `gorm:"size:500" json:"videoUrl"`
}

func (a Apartment) VideoID() (string, bool) {
	if a.VideoURL == nil {
		return "", false
	}
	return ExtractVideoID(*a.VideoURL)
}

func (a Apartment) HasVideo() bool {
	_, ok := a.VideoID()
	return ok
}

// MarshalJSON adds the derived video id so clients can build the embed player.
func (a Apartment) MarshalJSON() ([]byte, error) {
	type plain Apartment
	videoID, hasVideo := a.VideoID()
	return json.Marshal(struct {
		plain
		VideoID  string `json:"videoId,omitempty"`
		HasVideo bool   `json:"hasVideo"`
	}{plain(a), videoID, hasVideo})
}

type ApartmentInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Photo       string  `json:"photo" validate:"required,url"`
	VideoURL    *string `json:"videoUrl" validate:"omitempty,url"`
}
