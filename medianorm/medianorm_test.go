package medianorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "localhost URL rewritten to canonical host",
			input: "http://localhost:5000/media/x.png",
			want:  CanonicalHost + "/media/x.png",
		},
		{
			name:  "loopback IP rewritten to canonical host",
			input: "http://127.0.0.1:5000/media/pic.jpg",
			want:  CanonicalHost + "/media/pic.jpg",
		},
		{
			name:  "https localhost rewritten",
			input: "https://localhost/media/a.webp",
			want:  CanonicalHost + "/media/a.webp",
		},
		{
			name:  "media path passes through",
			input: "/media/x.png",
			want:  "/media/x.png",
		},
		{
			name:  "bare digit-leading filename gets prefix",
			input: "123abc.webp",
			want:  "/media/123abc.webp",
		},
		{
			name:  "uppercase extension still matches",
			input: "20230101-cover.JPG",
			want:  "/media/20230101-cover.JPG",
		},
		{
			name:  "letter-leading filename unchanged",
			input: "abc123.webp",
			want:  "abc123.webp",
		},
		{
			name:  "external URL unchanged",
			input: "https://cdn.example.com/y.png",
			want:  "https://cdn.example.com/y.png",
		},
		{
			name:  "malformed URL never panics",
			input: "http://local host/%zz",
			want:  "http://local host/%zz",
		},
		{
			name:  "empty input unchanged",
			input: "",
			want:  "",
		},
		{
			name:  "non-image bare filename unchanged",
			input: "123notes.txt",
			want:  "123notes.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
