package util

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveCatalogFiles(t *testing.T) {
	baseDir := filepath.FromSlash("/work/tree")
	tests := []struct {
		name        string
		args        []string
		configured  []string
		want        []string
		errContains string
	}{
		{
			name:       "args win over configuration",
			args:       []string{"po/fr.po"},
			configured: []string{"languages/arbricks-ar.po"},
			want:       []string{"po/fr.po"},
		},
		{
			name:       "configured relative path",
			configured: []string{"languages/arbricks-ar.po"},
			want:       []string{filepath.Join(baseDir, "languages/arbricks-ar.po")},
		},
		{
			name:       "configured absolute path",
			configured: []string{filepath.FromSlash("/abs/ar.po")},
			want:       []string{filepath.FromSlash("/abs/ar.po")},
		},
		{
			name:        "nothing to do",
			errContains: "no catalog given",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCatalogFiles(tt.args, tt.configured, baseDir)
			if tt.errContains != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
