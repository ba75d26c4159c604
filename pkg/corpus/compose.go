package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/oneconcern/corpusy/pkg/errors"
)

var (
	// ErrIdentityRouting is returned when no member of a composition carries the corpus of an item
	ErrIdentityRouting = errors.New("identity routing failure")

	// ErrEmptyComposition is returned when composing no corpus at all
	ErrEmptyComposition = errors.New("empty composition")
)

// TagSeparator joins the tags of composed corpora
const TagSeparator = "&"

type composition struct {
	members []Handle
	tags    []string
}

// Compose merges corpora into a single handle.
//
// Identities are concatenated in member order, duplicates included.
// Item paths are resolved by the first member whose tag is the corpus of the item.
func Compose(handles ...Handle) (Handle, error) {
	if len(handles) == 0 {
		return nil, ErrEmptyComposition
	}
	c := &composition{
		members: make([]Handle, len(handles)),
		tags:    make([]string, len(handles)),
	}
	copy(c.members, handles)
	for i, h := range handles {
		c.tags[i] = h.Corpus()
	}
	return c, nil
}

func (c *composition) Corpus() string {
	return strings.Join(c.tags, TagSeparator)
}

// GetContents acquires the contents of all members, in order, stopping at the first failure
func (c *composition) GetContents(ctx context.Context) error {
	for i, member := range c.members {
		if err := member.GetContents(ctx); err != nil {
			return fmt.Errorf("contents of %s: %w", c.tags[i], err)
		}
	}
	return nil
}

func (c *composition) Identities() []ItemID {
	var ids []ItemID
	for _, member := range c.members {
		ids = append(ids, member.Identities()...)
	}
	return ids
}

func (c *composition) ItemPath(id ItemID) (string, error) {
	for i, tag := range c.tags {
		if tag == id.Corpus {
			return c.members[i].ItemPath(id)
		}
	}
	return "", ErrIdentityRouting.Wrapf("corpus %q is not among %s", id.Corpus, listTags(c.tags))
}

// listTags renders tags as ['A', 'B']
func listTags(tags []string) string {
	quoted := make([]string, len(tags))
	for i, tag := range tags {
		quoted[i] = "'" + tag + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
