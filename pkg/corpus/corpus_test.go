package corpus

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCorpus emits subtypes x speakers x names items, like the TEST presets
type stubCorpus struct {
	tag      string
	speakers []string
	fail     error
	acquired *[]string
}

func (s stubCorpus) Corpus() string { return s.tag }

func (s stubCorpus) GetContents(context.Context) error {
	if s.acquired != nil {
		*s.acquired = append(*s.acquired, s.tag)
	}
	return s.fail
}

func (s stubCorpus) Identities() []ItemID {
	var ids []ItemID
	for _, sub := range []string{"sub1", "sub2"} {
		for _, spk := range s.speakers {
			for _, name := range []string{"uttr1", "uttr2"} {
				ids = append(ids, ItemID{Corpus: s.tag, Subtype: sub, Speaker: spk, Name: name})
			}
		}
	}
	return ids
}

func (s stubCorpus) ItemPath(id ItemID) (string, error) {
	return fmt.Sprintf("%s/%s/%s/%s.wav", s.tag, id.Subtype, id.Speaker, id.Name), nil
}

func testCorpus(tag string, speakers ...string) stubCorpus {
	return stubCorpus{tag: tag, speakers: speakers}
}

func TestIdentitiesPerSpeaker(t *testing.T) {
	groups := IdentitiesPerSpeaker(testCorpus("TEST", "spk2", "spk1"))
	require.Len(t, groups, 2)
	assert.Equal(t, "spk1", groups[0][0].Speaker)
	assert.Equal(t, "spk2", groups[1][0].Speaker)
	for _, group := range groups {
		assert.Len(t, group, 4)
	}
	assert.Equal(t, []ItemID{
		{Corpus: "TEST", Subtype: "sub1", Speaker: "spk1", Name: "uttr1"},
		{Corpus: "TEST", Subtype: "sub1", Speaker: "spk1", Name: "uttr2"},
		{Corpus: "TEST", Subtype: "sub2", Speaker: "spk1", Name: "uttr1"},
		{Corpus: "TEST", Subtype: "sub2", Speaker: "spk1", Name: "uttr2"},
	}, groups[0], "encounter order is kept within a group")
}

func TestComposeIdentities(t *testing.T) {
	composed, err := Compose(testCorpus("TEST", "spk1", "spk2"), testCorpus("TEST", "spk1", "spk2"), testCorpus("TESTbeta", "spkb1", "spkb2"))
	require.NoError(t, err)

	ids := composed.Identities()
	require.Len(t, ids, 24)
	assert.Equal(t, ids[:8], ids[8:16], "duplicates are kept")
	assert.Equal(t, "TESTbeta", ids[16].Corpus)
	assert.Equal(t, "TEST&TEST&TESTbeta", composed.Corpus())
}

func TestComposeRouting(t *testing.T) {
	composed, err := Compose(testCorpus("TEST", "spk1"), testCorpus("TEST", "spk1"), testCorpus("TESTbeta", "spkb1"))
	require.NoError(t, err)

	p, err := composed.ItemPath(ItemID{Corpus: "TESTbeta", Subtype: "sub1", Speaker: "spkb1", Name: "uttr1"})
	require.NoError(t, err)
	assert.Equal(t, "TESTbeta/sub1/spkb1/uttr1.wav", p)

	_, err = composed.ItemPath(ItemID{Corpus: "TESTZ", Subtype: "sub1", Speaker: "spk1", Name: "uttr1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIdentityRouting))
	assert.Contains(t, err.Error(), "['TEST', 'TEST', 'TESTbeta']")
}

func TestComposeSpeakerGroupsFlatten(t *testing.T) {
	composed, err := Compose(testCorpus("A", "spk1", "spk2"), testCorpus("B", "spk3", "spk4"), testCorpus("C", "spk5", "spk6"))
	require.NoError(t, err)

	groups := IdentitiesPerSpeaker(composed)
	require.Len(t, groups, 6)
	for _, group := range groups {
		assert.Len(t, group, 4)
		for _, id := range group {
			assert.Equal(t, group[0].Speaker, id.Speaker)
		}
	}

	merged, err := Compose(testCorpus("A", "shared"), testCorpus("B", "shared"))
	require.NoError(t, err)
	groups = IdentitiesPerSpeaker(merged)
	require.Len(t, groups, 1, "equal speakers of different corpora are grouped together")
	assert.Len(t, groups[0], 8)
	assert.Equal(t, "A", groups[0][0].Corpus)
	assert.Equal(t, "B", groups[0][7].Corpus)
}

func TestComposeGetContents(t *testing.T) {
	var acquired []string
	ok := func(tag string) stubCorpus {
		return stubCorpus{tag: tag, acquired: &acquired}
	}
	failing := stubCorpus{tag: "BROKEN", acquired: &acquired, fail: fmt.Errorf("archive unavailable")}

	composed, err := Compose(ok("A"), ok("B"))
	require.NoError(t, err)
	require.NoError(t, composed.GetContents(context.Background()))
	assert.Equal(t, []string{"A", "B"}, acquired)

	acquired = nil
	composed, err = Compose(ok("A"), failing, ok("C"))
	require.NoError(t, err)
	err = composed.GetContents(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROKEN")
	assert.Equal(t, []string{"A", "BROKEN"}, acquired, "the first failure aborts")
}

func TestComposeEmpty(t *testing.T) {
	_, err := Compose()
	assert.True(t, errors.Is(err, ErrEmptyComposition))
}

func TestComposeNested(t *testing.T) {
	inner, err := Compose(testCorpus("TEST", "spk1"), testCorpus("TESTbeta", "spkb1"))
	require.NoError(t, err)
	outer, err := Compose(inner, testCorpus("JSUT", "default"))
	require.NoError(t, err)

	assert.Len(t, outer.Identities(), 12)
	_, err = outer.ItemPath(ItemID{Corpus: "TEST", Subtype: "sub1", Speaker: "spk1", Name: "uttr1"})
	assert.True(t, errors.Is(err, ErrIdentityRouting), "a nested composition is routed by its joined tag")
}
