package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url    string
		id     string
		hasVid bool
	}{
		{"https://www.youtube.com/watch?v=ABC123&t=5", "ABC123", true},
		{"https://youtube.com/watch?v=ABC123", "ABC123", true},
		{"https://youtu.be/XYZ789", "XYZ789", true},
		{"https://www.youtube.com/embed/EMB456?autoplay=1", "EMB456", true},
		{"https://www.youtube.com/v/OLD000?version=3", "OLD000", true},
		{"https://vimeo.com/12345", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		id, ok := ExtractVideoID(tt.url)
		if id != tt.id || ok != tt.hasVid {
			t.Errorf("ExtractVideoID(%q) = %q, %v; want %q, %v", tt.url, id, ok, tt.id, tt.hasVid)
		}
	}
}

func TestApartmentJSONCarriesVideoID(t *testing.T) {
	url := "https://youtu.be/XYZ789"
	data, err := json.Marshal(Apartment{DTO: DTO{ID: 3}, Name: "Ubwiza Loft", VideoURL: &url})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"id":3`, `"name":"Ubwiza Loft"`, `"videoId":"XYZ789"`, `"hasVideo":true`} {
		if !strings.Contains(s, want) {
			t.Errorf("json %s missing %s", s, want)
		}
	}

	data, _ = json.Marshal(Apartment{Name: "No Video"})
	if s := string(data); strings.Contains(s, "videoId") || !strings.Contains(s, `"hasVideo":false`) {
		t.Errorf("json without video = %s", s)
	}
}

func TestRoomTypeCapacity(t *testing.T) {
	tests := map[RoomType]int{RoomSingle: 2, RoomDouble: 4, RoomSuite: 4}
	for rt, want := range tests {
		if got := rt.Capacity(); got != want {
			t.Errorf("%s capacity = %d, want %d", rt, got, want)
		}
	}
	if RoomType("loft").Valid() {
		t.Error("unknown room type reported valid")
	}
}

func TestContactPreview(t *testing.T) {
	short := ContactMessage{Message: "Short note"}
	if short.Preview() != "Short note" {
		t.Errorf("preview = %q", short.Preview())
	}
	long := ContactMessage{Message: strings.Repeat("é", 60)}
	if got := long.Preview(); got != strings.Repeat("é", 50)+"..." {
		t.Errorf("preview = %q", got)
	}
}
