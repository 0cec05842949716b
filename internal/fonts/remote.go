package fonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Remote looks up font files in the google/fonts repository (OFL folder) through the
// GitHub contents API. Only files served from RawPrefix are returned.
type Remote struct {
	APIBase   string
	RawPrefix string
	HTTP      *http.Client
}

// NewRemote returns a Remote pointing at github.com/google/fonts.
func NewRemote() *Remote {
	return &Remote{
		APIBase:   "https://api.github.com/repos/google/fonts/contents/ofl",
		RawPrefix: "https://raw.githubusercontent.com/google/fonts/",
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// FolderNames converts a family name to the folder names google/fonts may use,
// e.g. "Open Sans" -> ["opensans", "open-sans"].
func FolderNames(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	noSpaces := strings.ReplaceAll(lower, " ", "")
	out := []string{noSpaces}
	if hyphens := strings.ReplaceAll(lower, " ", "-"); hyphens != noSpaces {
		out = append(out, hyphens)
	}
	return out
}

// URL returns the download URL of a font file for family. Upright faces are preferred
// over italics.
func (r *Remote) URL(ctx context.Context, family string) (string, error) {
	folders := FolderNames(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("fonts: empty family name")
	}
	var lastErr error
	for _, folder := range folders {
		u, err := r.folderURL(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (r *Remote) folderURL(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.APIBase+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("fonts: %q not found", folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	var italic string
	for _, f := range files {
		if f.Type != "file" || !strings.HasPrefix(f.DownloadURL, r.RawPrefix) {
			continue
		}
		if !hasFontExt(f.Name) {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "italic") {
			if italic == "" {
				italic = f.DownloadURL
			}
			continue
		}
		return f.DownloadURL, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("fonts: no font file in %q", folder)
}

func hasFontExt(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}
