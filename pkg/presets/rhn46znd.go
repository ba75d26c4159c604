package presets

import (
	"fmt"

	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/forward"
)

// RHN46ZND is the ROHAN4600 corpus read by Zundamon.
//
// The archive is distributed under individual agreement, so it is never forwarded:
// it must be placed at the archive address beforehand.
type RHN46ZND struct {
	archived
}

// NewRHN46ZND builds a ROHAN4600 handle
func NewRHN46ZND(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "RHN46ZND", "ver1_0_0", "ROHAN4600_zundamon_voice.zip")
	if err != nil {
		return nil, err
	}
	base.fwd = forward.Unavailable(fmt.Sprintf("ROHAN4600 requires an individual agreement, place it at %s", base.location.Archive))
	return &RHN46ZND{archived: base}, nil
}

func (c *RHN46ZND) Identities() []corpus.ItemID {
	ids := make([]corpus.ItemID, 0, 4600)
	for i := 1; i <= 4600; i++ {
		ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: "default", Speaker: "zundamon", Name: fmt.Sprintf("%04d", i)})
	}
	return ids
}

func (c *RHN46ZND) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents("ROHAN4600_zundamon_voice", "ROHAN4600_"+id.Name+".wav"), nil
}
