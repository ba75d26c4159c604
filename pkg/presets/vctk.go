package presets

import (
	"fmt"
	"strings"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

const vctkSpeakerPrefix = "vctk_"

// VCTK, the CSTR VCTK corpus: 109 English speakers
type VCTK struct {
	archived
}

type vctkUtterance struct {
	speaker string
	serial  int
}

// NewVCTK builds a VCTK handle
func NewVCTK(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "VCTK", "ver0_92", "VCTK-Corpus.tar.gz")
	if err != nil {
		return nil, err
	}
	c := &VCTK{archived: base}
	c.forwardFrom("http://www.udialogue.org/download/VCTK-Corpus.tar.gz")
	return c, nil
}

// Identities skip missing and broken utterances
func (c *VCTK) Identities() []corpus.ItemID {
	var ids []corpus.ItemID
	for i, speaker := range vctkSpeakers {
		missing := make(map[int]struct{}, len(vctkMissing[i]))
		for _, serial := range vctkMissing[i] {
			missing[serial] = struct{}{}
		}
		for serial := 1; serial <= vctkMaxUtterance[i]; serial++ {
			if _, skip := missing[serial]; skip {
				continue
			}
			if _, broken := vctkBroken[vctkUtterance{speaker: speaker, serial: serial}]; broken {
				continue
			}
			ids = append(ids, corpus.ItemID{
				Corpus:  c.tag,
				Subtype: "wav",
				Speaker: vctkSpeakerPrefix + speaker,
				Name:    fmt.Sprintf("%03d", serial),
			})
		}
	}
	return ids
}

func (c *VCTK) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	speaker := strings.TrimPrefix(id.Speaker, vctkSpeakerPrefix)
	return c.contents("VCTK-Corpus", "wav48", speaker, speaker+"_"+id.Name+".wav"), nil
}
