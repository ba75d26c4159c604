package presets

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// AdHoc turns a local directory into a corpus. Its data never comes from, nor goes to, an origin.
//
// Contents are expected as:
//
//	{contents}/{subtype}/{speaker}/{utterance}.wav
type AdHoc struct {
	archived
}

// NewAdHoc builds a handle over the local AdHoc contents directory
func NewAdHoc(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "AdHoc", "default", "not_exists.zip")
	if err != nil {
		return nil, err
	}
	return &AdHoc{archived: base}, nil
}

// GetContents is a no-op: contents are already local
func (c *AdHoc) GetContents(context.Context) error {
	return nil
}

// Identities lists the files found 3 levels under the contents directory.
// An unreadable directory yields no identities.
func (c *AdHoc) Identities() []corpus.ItemID {
	fs := c.env.fs()
	var ids []corpus.ItemID
	for _, subtype := range c.dirs(fs, c.location.Contents) {
		for _, speaker := range c.dirs(fs, filepath.Join(c.location.Contents, subtype)) {
			entries, err := afero.ReadDir(fs, filepath.Join(c.location.Contents, subtype, speaker))
			if err != nil {
				c.env.logger().Warn("could not list utterances", zap.String("speaker", speaker), zap.Error(err))
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
				ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: subtype, Speaker: speaker, Name: name})
			}
		}
	}
	return ids
}

func (c *AdHoc) dirs(fs afero.Fs, parent string) []string {
	entries, err := afero.ReadDir(fs, parent)
	if err != nil {
		c.env.logger().Warn("could not list ad hoc contents", zap.String("dir", parent), zap.Error(err))
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

func (c *AdHoc) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents(id.Subtype, id.Speaker, id.Name+".wav"), nil
}
