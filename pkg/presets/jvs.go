package presets

import (
	"fmt"
	"strconv"

	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/forward"
)

const (
	jvsDriveID = "19oAw8wWn3Y7z6CKChRdAyGOB9yupL_Xt"
	jvsSizeGB  = 3.29
)

// JVS, the Japanese versatile speech corpus: 100 speakers.
//
// Only the parallel100 subset is exposed:
//
//	jvs_ver1/jvs001/parallel100/wav24kHz16bit/VOICEACTRESS100_001.wav
type JVS struct {
	archived
}

// utterances left out: missing, 0 second long, or with coughs
var jvsExcluded = map[[2]string]struct{}{
	{"jvs030", "45"}: {},
	{"jvs074", "94"}: {},
	{"jvs089", "19"}: {},
	{"jvs009", "95"}: {},
	{"jvs098", "60"}: {},
	{"jvs098", "99"}: {},
}

// NewJVS builds a JVS handle. The archive is forwarded from Google Drive.
func NewJVS(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "JVS", "ver1_0_0", "jvs_ver1.zip")
	if err != nil {
		return nil, err
	}
	opts := append([]forward.GDriveOption{forward.WithLogger(env.logger()), forward.WithFs(env.fs())}, env.GDriveOptions...)
	base.fwd = forward.GDrive(env.Transport, jvsDriveID, base.location.Archive, jvsSizeGB, opts...)
	return &JVS{archived: base}, nil
}

// Identities are ordered by utterance, then by speaker
func (c *JVS) Identities() []corpus.ItemID {
	ids := make([]corpus.ItemID, 0, 100*100)
	for utt := 1; utt <= 100; utt++ {
		for spk := 1; spk <= 100; spk++ {
			speaker, name := fmt.Sprintf("jvs%03d", spk), strconv.Itoa(utt)
			if _, excluded := jvsExcluded[[2]string{speaker, name}]; excluded {
				continue
			}
			ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: "parallel100", Speaker: speaker, Name: name})
		}
	}
	return ids
}

func (c *JVS) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	serial, err := strconv.Atoi(id.Name)
	if err != nil {
		return "", ErrUnknownItem.Wrapf("JVS utterance %q", id.Name)
	}
	return c.contents("jvs_ver1", id.Speaker, "parallel100", "wav24kHz16bit", fmt.Sprintf("VOICEACTRESS100_%03d.wav", serial)), nil
}
