package validation

import (
	"errors"
	"testing"

	errpkg "github.com/veranemoloko/cssgrab/internal/errors"
)

func TestPageURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "full URL",
			input:   "https://example.com",
			wantErr: false,
		},
		{
			name:    "bare host is left to the browser",
			input:   "example.com",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PageURL(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPageURL_EmptyIsErrEmptyURL(t *testing.T) {
	if err := PageURL(" "); !errors.Is(err, errpkg.ErrEmptyURL) {
		t.Errorf("expected ErrEmptyURL, got %v", err)
	}
}

func TestFetchablePageURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "http URL",
			input:   "http://example.com/page",
			wantErr: false,
		},
		{
			name:    "localhost is allowed",
			input:   "http://127.0.0.1:8080/",
			wantErr: false,
		},
		{
			name:    "missing scheme",
			input:   "example.com",
			wantErr: true,
		},
		{
			name:    "invalid scheme",
			input:   "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "missing host",
			input:   "https:///path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FetchablePageURL(tt.input)
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

type sample struct {
	Mode string `validate:"oneof=a b"`
}

func TestStruct(t *testing.T) {
	if err := Struct(sample{Mode: "a"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Struct(sample{Mode: "c"}); err == nil {
		t.Errorf("expected error, got nil")
	}
}
