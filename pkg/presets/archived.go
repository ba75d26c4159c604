package presets

import (
	"context"
	"path/filepath"

	"github.com/oneconcern/corpusy/pkg/address"
	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/errors"
	"github.com/oneconcern/corpusy/pkg/forward"
)

var (
	// ErrUnknownItem is returned when an item does not belong to a corpus
	ErrUnknownItem = errors.New("unknown item")

	// ErrNoEnv is returned when a preset is built without environment
	ErrNoEnv = errors.New("no environment for corpus")
)

// archived is the common part of corpora distributed as a single archive
type archived struct {
	tag      string
	variant  string
	location address.Location
	download bool
	env      *Env
	fwd      forward.Forwarder
}

func newArchived(cfg corpus.Config, env *Env, tag, defaultVariant, archiveName string) (archived, error) {
	if env == nil {
		return archived{}, ErrNoEnv.Wrapf("%s", tag)
	}
	_, variant := address.ExtractNameAndVariant(cfg.Name, defaultVariant)
	return archived{
		tag:      tag,
		variant:  variant,
		location: address.ResolveWithLocal(env.LocalRoot, cfg.Root, tag, variant, archiveName),
		download: cfg.Download,
		env:      env,
	}, nil
}

// forwardFrom sets a plain copy from origin as forwarder
func (a *archived) forwardFrom(origin string) {
	a.fwd = forward.Copy(a.env.Transport, origin, a.location.Archive, a.env.logger())
}

func (a *archived) Corpus() string {
	return a.tag
}

func (a *archived) GetContents(ctx context.Context) error {
	return a.env.Acquirer.GetContents(ctx, a.location.Archive, a.location.Contents, a.download, a.fwd)
}

// Location of the archive and contents of this corpus
func (a *archived) Location() address.Location {
	return a.location
}

// contents joins path elements under the contents directory
func (a *archived) contents(elems ...string) string {
	return filepath.Join(append([]string{a.location.Contents}, elems...)...)
}

func (a *archived) check(id corpus.ItemID) error {
	if id.Corpus != a.tag {
		return ErrUnknownItem.Wrapf("item of corpus %q requested from %s", id.Corpus, a.tag)
	}
	return nil
}
