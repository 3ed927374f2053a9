package models

import "fmt"

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// Video is one playlist entry handed to the generation prompt.
type Video struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoURL"`
}

func WatchURL(videoID string) string {
	return fmt.Sprintf(watchURLFormat, videoID)
}

// GeneratedCourse is the envelope returned by playlist processing. It is not
// persisted.
type GeneratedCourse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Source string   `json:"source"`
	Raw    []string `json:"raw"`
	Course Course   `json:"course"`
}
