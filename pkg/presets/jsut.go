package presets

import (
	"fmt"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

// JSUT, the Japanese speech corpus of Saruwatari-lab., University of Tokyo.
// A single female speaker.
type JSUT struct {
	archived
}

// NewJSUT builds a JSUT handle
func NewJSUT(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "JSUT", "ver1_1", "jsut_ver1.1.zip")
	if err != nil {
		return nil, err
	}
	c := &JSUT{archived: base}
	c.forwardFrom("http://ss-takashi.sakura.ne.jp/corpus/jsut_ver1.1.zip")
	return c, nil
}

// Identities of the basic5000 subset
func (c *JSUT) Identities() []corpus.ItemID {
	ids := make([]corpus.ItemID, 0, 5000)
	for i := 1; i <= 5000; i++ {
		ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: "basic5000", Speaker: "default", Name: fmt.Sprintf("BASIC5000_%04d", i)})
	}
	return ids
}

func (c *JSUT) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents("jsut_ver1.1", id.Subtype, "wav", id.Name+".wav"), nil
}
