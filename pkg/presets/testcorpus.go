package presets

import (
	"context"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

// TestCorpus is a tiny corpus without any contents, used to exercise loading and composition.
//
// It has 2 subtypes, 2 speakers and 2 utterances, named after its prefixes
// and suffixed with the current version.
type TestCorpus struct {
	archived
	subtype, speaker, utterance string
	version                     string
}

// NewTEST builds the TEST corpus: sub{1,2} / spk{1,2} / uttr{1,2}
func NewTEST(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	return newTestCorpus(cfg, env, "TEST", "sub", "spk", "uttr")
}

// NewTESTbeta builds the TESTbeta corpus: subb{1,2} / spkb{1,2} / uttrb{1,2}
func NewTESTbeta(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	return newTestCorpus(cfg, env, "TESTbeta", "subb", "spkb", "uttrb")
}

func newTestCorpus(cfg corpus.Config, env *Env, tag, subtype, speaker, utterance string) (*TestCorpus, error) {
	base, err := newArchived(cfg, env, tag, "ver0_0_0", "none")
	if err != nil {
		return nil, err
	}
	return &TestCorpus{archived: base, subtype: subtype, speaker: speaker, utterance: utterance}, nil
}

// SwitchVersion suffixes every identity with version
func (c *TestCorpus) SwitchVersion(version string) *TestCorpus {
	c.version = version
	return c
}

// GetContents has nothing to acquire
func (c *TestCorpus) GetContents(context.Context) error {
	return nil
}

func (c *TestCorpus) Identities() []corpus.ItemID {
	ids := make([]corpus.ItemID, 0, 8)
	for _, sub := range []string{"1", "2"} {
		for _, spk := range []string{"1", "2"} {
			for _, uttr := range []string{"1", "2"} {
				ids = append(ids, corpus.ItemID{
					Corpus:  c.tag,
					Subtype: c.subtype + sub + c.version,
					Speaker: c.speaker + spk + c.version,
					Name:    c.utterance + uttr + c.version,
				})
			}
		}
	}
	return ids
}

func (c *TestCorpus) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents(id.Subtype, id.Speaker, id.Name+".wav"), nil
}
