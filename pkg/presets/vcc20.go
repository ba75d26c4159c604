package presets

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oneconcern/corpusy/pkg/corpus"
	"github.com/oneconcern/corpusy/pkg/extract"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	vcc20Base          = "VCC2020-database-1.0.0"
	vcc20SpeakerPrefix = "vcc20_"
)

// VCC20, the Voice Conversion Challenge 2020 database.
//
// The release tarball holds one zip per subset, unpacked on first acquisition:
//
//	vcc2020_database_training_source.zip         => source/SE{F|M}{1|2}/E100{01..70}.wav
//	vcc2020_database_training_target_task1.zip   => target_task1/TE{F|M}{1|2}/
//	vcc2020_database_training_target_task2.zip   => target_task2/T{F|G|M}{F|M}1/
//	vcc2020_database_evaluation.zip              => vcc2020_database_evaluation/SE*/E300{01..25}.wav
//	vcc2020_database_groundtruth.zip             => vcc2020_database_groundtruth/
type VCC20 struct {
	archived
}

var vcc20Zips = []string{
	"vcc2020_database_training_source.zip",
	"vcc2020_database_training_target_task1.zip",
	"vcc2020_database_training_target_task2.zip",
	"vcc2020_database_evaluation.zip",
	"vcc2020_database_groundtruth.zip",
}

var vcc20Dirs = map[string]string{
	"train_source":       "source",
	"train_target_task1": "target_task1",
	"train_target_task2": "target_task2",
	"eval_source":        "vcc2020_database_evaluation",
	"groundtruth":        "vcc2020_database_groundtruth",
}

var (
	vcc20SourceSpeakers = []string{"SEF1", "SEF2", "SEM1", "SEM2"}
	vcc20Task1Speakers  = []string{"TEF1", "TEF2", "TEM1", "TEM2"}
	// cross-lingual targets: Finnish, German, Mandarin
	vcc20Task2Speakers = []string{"TFF1", "TFM1", "TGF1", "TGM1", "TMF1", "TMM1"}
)

// NewVCC20 builds a VCC2020 handle
func NewVCC20(cfg corpus.Config, env *Env) (corpus.Handle, error) {
	base, err := newArchived(cfg, env, "VCC20", "ver1_0_0", "VCC2020-database-1.0.0.tar.gz")
	if err != nil {
		return nil, err
	}
	c := &VCC20{archived: base}
	c.forwardFrom("https://github.com/nii-yamagishilab/VCC2020-database/archive/refs/tags/v1.0.0.tar.gz")
	return c, nil
}

// GetContents acquires the release, then unpacks the subset zips when they have not been yet
func (c *VCC20) GetContents(ctx context.Context) error {
	if err := c.archived.GetContents(ctx); err != nil {
		return err
	}
	fs := c.env.fs()
	root := c.contents(vcc20Base)
	children, err := afero.ReadDir(fs, root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}
	for _, child := range children {
		if child.IsDir() {
			return nil
		}
	}
	for _, name := range vcc20Zips {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.env.logger().Info("unpacking subset", zap.String("zip", name))
		if err := extract.Extract(fs, filepath.Join(root, name), root); err != nil {
			return fmt.Errorf("unpacking %s: %w", name, err)
		}
	}
	return nil
}

func (c *VCC20) Identities() []corpus.ItemID {
	var ids []corpus.ItemID
	add := func(subtype string, speakers []string, names func(speaker string) []string) {
		for _, speaker := range speakers {
			for _, name := range names(speaker) {
				ids = append(ids, corpus.ItemID{Corpus: c.tag, Subtype: subtype, Speaker: vcc20SpeakerPrefix + speaker, Name: name})
			}
		}
	}
	serials := func(prefix string, from, to int) []string {
		res := make([]string, 0, to-from+1)
		for i := from; i <= to; i++ {
			res = append(res, fmt.Sprintf("%s%03d", prefix, i))
		}
		return res
	}
	english := func(prefix string, from, to int) func(string) []string {
		return func(string) []string { return serials(prefix, from, to) }
	}
	// task2 utterances are named after the target language
	lingual := func(group string, from, to int) func(string) []string {
		return func(speaker string) []string { return serials(speaker[1:2]+group, from, to) }
	}

	add("train_source", vcc20SourceSpeakers, english("E10", 1, 70))
	add("train_target_task1", vcc20Task1Speakers, func(string) []string {
		return append(serials("E10", 51, 70), serials("E20", 1, 50)...)
	})
	add("train_target_task2", vcc20Task2Speakers, lingual("10", 1, 70))
	add("eval_source", vcc20SourceSpeakers, english("E30", 1, 25))
	add("groundtruth", vcc20Task1Speakers, english("E30", 1, 25))
	add("groundtruth", vcc20Task2Speakers, lingual("30", 1, 25))
	return ids
}

func (c *VCC20) ItemPath(id corpus.ItemID) (string, error) {
	if err := c.check(id); err != nil {
		return "", err
	}
	dir, ok := vcc20Dirs[id.Subtype]
	if !ok {
		return "", ErrUnknownItem.Wrapf("VCC20 subset %q", id.Subtype)
	}
	speaker := strings.TrimPrefix(id.Speaker, vcc20SpeakerPrefix)
	return c.contents(vcc20Base, dir, speaker, id.Name+".wav"), nil
}
