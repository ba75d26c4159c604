package presets

import (
	"fmt"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

// LJ speech: a single English speaker, reading 13,100 clips in 50 groups
type LJ struct {
	archived
}

// ljMaxSerial is the highest serial of each group
var ljMaxSerial = []int{
	186, 338, 349, 250, 300, 308, 243, 319, 304, 317, 293,
	296, 268, 340, 314, 446, 284, 398, 399, 108, 210, 203, 141, 143, 176,
	166, 180, 519, 213, 255, 233, 275, 214, 219, 210, 218, 269, 306, 248,
	240, 203, 251, 188, 239, 250, 254, 250, 289, 230, 278,
}

// ljMissing lists the serials absent from some groups
var ljMissing = map[int][]int{
	2: {115}, 3: {272}, 4: {53}, 5: {81}, 6: {37}, 8: {179},
	14: {145, 270, 284, 319}, 16: {83, 269, 270, 345, 372, 437}, 17: {275, 279},
	21: {13}, 27: {140}, 28: {135}, 34: {139}, 38: {195, 196},
	42: {34, 243}, 44: {46, 216}, 48: {108}, 49: {131},
}

// NewLJ builds a LJSpeech handle
func NewLJ(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "LJ", "ver1_1", "LJSpeech-1.1.tar.bz2")
	if err != nil {
		return nil, err
	}
	c := &LJ{archived: base}
	c.forwardFrom("https://data.keithito.com/data/speech/LJSpeech-1.1.tar.bz2")
	return c, nil
}

func (c *LJ) Identities() []corpus.ItemID {
	var ids []corpus.ItemID
	for i, max := range ljMaxSerial {
		group := i + 1
		missing := make(map[int]struct{}, len(ljMissing[group]))
		for _, serial := range ljMissing[group] {
			missing[serial] = struct{}{}
		}
		for serial := 1; serial <= max; serial++ {
			if _, skip := missing[serial]; skip {
				continue
			}
			ids = append(ids, corpus.ItemID{
				Corpus:  c.tag,
				Subtype: "default",
				Speaker: "lj_default",
				Name:    fmt.Sprintf("LJ%03d-%04d", group, serial),
			})
		}
	}
	return ids
}

func (c *LJ) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents("LJSpeech-1.1", "wavs", id.Name+".wav"), nil
}
