package helper

import "testing"

func TestYouTubeEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "watch URL with extra params",
			in:   "https://www.youtube.com/watch?v=abc123&t=5s",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "plain watch URL",
			in:   "https://www.youtube.com/watch?v=abc123",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "short URL with query",
			in:   "https://youtu.be/abc123?t=5",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "short URL without query",
			in:   "https://youtu.be/abc123",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "unrecognized URL passes through",
			in:   "https://vimeo.com/12345",
			want: "https://vimeo.com/12345",
		},
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YouTubeEmbedURL(tt.in); got != tt.want {
				t.Errorf("YouTubeEmbedURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
