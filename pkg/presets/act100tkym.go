package presets

import (
	"fmt"

	"github.com/oneconcern/corpusy/pkg/corpus"
)

// directory names as they come out of the archive, mis-decoded from Shift_JIS
const (
	act100Dir1 = "é┬é¡éµé▌é┐éßé±âRü[âpâX Vol.1 É║ùDô¥îvâRü[âpâXüiJVSâRü[âpâXÅÇïÆüj"
	act100Dir2 = "01 WAVüiÄ√ÿ^Ä₧é╠ë╣ù╩é╠é▄é▄üj"
)

// Act100TKYM is the Tsukuyomi-chan corpus: the VOICEACTRESS100 script read by a single speaker
type Act100TKYM struct {
	archived
}

// NewAct100TKYM builds a Tsukuyomi-chan handle
func NewAct100TKYM(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "Act100TKYM", "ver1_0_0", "sozai-tyc-corpus1.zip")
	if err != nil {
		return nil, err
	}
	c := &Act100TKYM{archived: base}
	c.forwardFrom("https://tyc.rei-yumesaki.net/files/sozai-tyc-corpus1.zip")
	return c, nil
}

func (c *Act100TKYM) Identities() []corpus.ItemID {
	ids := make([]corpus.ItemID, 0, 100)
	for i := 1; i <= 100; i++ {
		ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: "default", Speaker: "act100tkym", Name: fmt.Sprintf("%03d", i)})
	}
	return ids
}

func (c *Act100TKYM) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	return c.contents(act100Dir1, act100Dir2, "VOICEACTRESS100_"+id.Name+".wav"), nil
}
