package forward

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	units "github.com/docker/go-units"
	"github.com/oneconcern/corpusy/pkg/metrics"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultGDriveURL is the download endpoint of Google Drive
const DefaultGDriveURL = "https://drive.google.com/uc"

// GDriveOption configures the Google Drive forwarder
type GDriveOption func(*gdrive)

// WithHTTPClient overrides the default http client
func WithHTTPClient(client *http.Client) GDriveOption {
	return func(g *gdrive) {
		if client != nil {
			g.client = client
		}
	}
}

// WithBaseURL overrides the download endpoint
func WithBaseURL(base string) GDriveOption {
	return func(g *gdrive) {
		g.base = base
	}
}

// WithLogger sets the logger reporting progress
func WithLogger(l *zap.Logger) GDriveOption {
	return func(g *gdrive) {
		if l != nil {
			g.l = l
		}
	}
}

// WithFs sets the file system holding the temporary download
func WithFs(fs afero.Fs) GDriveOption {
	return func(g *gdrive) {
		if fs != nil {
			g.fs = fs
		}
	}
}

type gdrive struct {
	client *http.Client
	base   string
	l      *zap.Logger
	fs     afero.Fs
}

var confirmInForm = regexp.MustCompile(`confirm=([0-9A-Za-z_-]+)`)

// GDrive forwards a large file shared on Google Drive to destination.
//
// Large files are not served directly: a first request yields a confirmation token,
// which unlocks the actual transfer. The host does not report the size of the file,
// so progress is measured against sizeGB.
func GDrive(putter Putter, fileID, destination string, sizeGB float64, opts ...GDriveOption) Forwarder {
	g := &gdrive{
		client: http.DefaultClient,
		base:   DefaultGDriveURL,
		l:      zap.NewNop(),
		fs:     afero.NewOsFs(),
	}
	for _, apply := range opts {
		apply(g)
	}
	return func(ctx context.Context) error {
		return g.forward(ctx, putter, fileID, destination, int64(sizeGB*metrics.GB))
	}
}

func (g *gdrive) forward(ctx context.Context, putter Putter, fileID, destination string, expected int64) (err error) {
	tmp, err := afero.TempFile(g.fs, "", "corpusy-gdrive-")
	if err != nil {
		return ErrTransfer.Wrap(err)
	}
	defer func() {
		err = multierr.Combine(err, tmp.Close(), g.fs.Remove(tmp.Name()))
	}()

	if err = g.download(ctx, fileID, tmp, expected); err != nil {
		return err
	}
	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		return ErrTransfer.Wrap(err)
	}

	g.l.Info("forward: writing to destination", zap.String("to", destination))
	if err = putter.Put(ctx, destination, tmp); err != nil {
		return ErrTransfer.Wrap(err)
	}
	g.l.Info("forward: written", zap.String("to", destination))
	return nil
}

func (g *gdrive) download(ctx context.Context, fileID string, w io.Writer, expected int64) error {
	query := url.Values{}
	query.Set("export", "download")
	query.Set("id", fileID)
	landing := g.base + "?" + query.Encode()

	token, cookies, err := g.confirmationToken(ctx, landing)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, landing+"&confirm="+url.QueryEscape(token), nil)
	if err != nil {
		return ErrTransfer.Wrap(err)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return ErrTransfer.Wrap(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return ErrTransfer.Wrap(fmt.Errorf("google drive file %s: %s", fileID, resp.Status))
	}

	progress := newProgress(g.l, fileID, expected)
	if _, err = io.Copy(io.MultiWriter(w, progress), resp.Body); err != nil {
		return ErrTransfer.Wrap(err)
	}
	progress.done()
	return nil
}

// confirmationToken looks for the token in a download_warning cookie, then in the warning page
func (g *gdrive) confirmationToken(ctx context.Context, landing string) (string, []*http.Cookie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, landing, nil)
	if err != nil {
		return "", nil, ErrTransfer.Wrap(err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", nil, ErrTransfer.Wrap(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	cookies := resp.Cookies()
	for _, cookie := range cookies {
		if strings.Contains(cookie.Name, "download_warning") {
			return cookie.Value, cookies, nil
		}
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil, ErrTransfer.Wrap(err)
	}
	if match := confirmInForm.FindSubmatch(page); match != nil {
		return string(match[1]), cookies, nil
	}
	return "", nil, ErrConfirmationTokenMissing.Wrapf("no token at %s", landing)
}

// progress logs the transfer every tenth of the expected size
type progress struct {
	l        *zap.Logger
	expected int64
	written  int64
	next     int64
}

func newProgress(l *zap.Logger, fileID string, expected int64) *progress {
	p := &progress{
		l:        l.With(zap.String("file", fileID)),
		expected: expected,
	}
	p.next = p.step()
	return p
}

func (p *progress) step() int64 {
	if p.expected < 10 {
		return 1
	}
	return p.expected / 10
}

func (p *progress) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.expected > 0 && p.written >= p.next {
		p.report("forward: downloading")
		for p.next <= p.written {
			p.next += p.step()
		}
	}
	return len(b), nil
}

func (p *progress) report(msg string) {
	fields := []zap.Field{zap.String("received", units.HumanSize(float64(p.written)))}
	if p.expected > 0 {
		fields = append(fields,
			zap.String("expected", units.HumanSize(float64(p.expected))),
			zap.Float64("percent", 100*float64(p.written)/float64(p.expected)),
		)
	}
	p.l.Info(msg, fields...)
}

func (p *progress) done() {
	p.report("forward: downloaded")
}
