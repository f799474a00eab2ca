package helper

import "strings"

const youtubeEmbedPrefix = "https://www.youtube.com/embed/"

// YouTubeEmbedURL derives the canonical embed URL from a watch?v= or youtu.be
// link: the video id runs up to the next parameter separator. Anything that
// matches neither pattern is returned unchanged.
func YouTubeEmbedURL(raw string) string {
	if i := strings.Index(raw, "youtube.com/watch?v="); i >= 0 {
		id := raw[i+len("youtube.com/watch?v="):]
		if j := strings.Index(id, "&"); j >= 0 {
			id = id[:j]
		}
		return youtubeEmbedPrefix + id
	}
	if i := strings.Index(raw, "youtu.be/"); i >= 0 {
		id := raw[i+len("youtu.be/"):]
		if j := strings.Index(id, "?"); j >= 0 {
			id = id[:j]
		}
		return youtubeEmbedPrefix + id
	}
	return raw
}
