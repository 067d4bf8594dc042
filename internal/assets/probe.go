package assets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saherflow/flowportal/internal/progress"
)

// ProbeResult is the outcome of loading one slide reference.
type ProbeResult struct {
	Index int
	Ref   string
	OK    bool
	Err   error
}

// Prober checks whether slide images can be loaded, the way a browser would
// before falling back to the placeholder.
type Prober struct {
	Client   *http.Client
	AssetDir string
	Reporter progress.Reporter
}

// NewProber creates a Prober with a bounded HTTP client.
func NewProber(assetDir string, reporter progress.Reporter) *Prober {
	return &Prober{
		Client:   &http.Client{Timeout: 10 * time.Second},
		AssetDir: assetDir,
		Reporter: reporter,
	}
}

// Probe checks every reference in order. A failed reference is reported in
// its result, never as a returned error; the error return is only for a
// cancelled context.
func (p *Prober) Probe(ctx context.Context, refs []string) ([]ProbeResult, error) {
	if p.Reporter != nil {
		p.Reporter.Start(len(refs))
		defer p.Reporter.Finish()
	}

	results := make([]ProbeResult, 0, len(refs))
	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		err := p.probeOne(ctx, ref)
		results = append(results, ProbeResult{Index: i, Ref: ref, OK: err == nil, Err: err})
		if p.Reporter != nil {
			p.Reporter.Update(i+1, ref)
		}
	}
	return results, nil
}

func (p *Prober) probeOne(ctx context.Context, ref string) error {
	if rel, ok := LocalPath(ref); ok {
		info, err := os.Stat(filepath.Join(p.AssetDir, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", rel)
		}
		return nil
	}

	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return fmt.Errorf("unsupported reference %q", ref)
	}

	status, err := p.fetch(ctx, http.MethodHead, ref)
	if err != nil {
		return err
	}
	if status == http.StatusMethodNotAllowed {
		if status, err = p.fetch(ctx, http.MethodGet, ref); err != nil {
			return err
		}
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("status %d", status)
	}
	return nil
}

func (p *Prober) fetch(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
