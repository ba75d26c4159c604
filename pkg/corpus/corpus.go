// Package corpus defines corpus handles, the identities of their items, and their composition.
package corpus

import (
	"context"
	"sort"
)

// ItemID identifies an item within a corpus, or within a composition of corpora
type ItemID struct {
	Corpus  string
	Subtype string
	Speaker string
	Name    string
}

// Config of a corpus.
//
// Name may be composite, as in "JVS&JSUT==ver1_1". An empty Root stands for the local default root.
type Config struct {
	Name     string
	Root     string
	Download bool
}

// Handle is the capability set exposed by every corpus
type Handle interface {
	// Corpus is the tag carried by the ItemID of the items of this corpus
	Corpus() string

	// GetContents makes the contents of the corpus available on local storage
	GetContents(context.Context) error

	// Identities of all items, available whether contents have been acquired or not
	Identities() []ItemID

	// ItemPath locates an item within the contents
	ItemPath(ItemID) (string, error)
}

// IdentitiesPerSpeaker groups the identities of a corpus by speaker.
//
// Groups are sorted by speaker. Within a group, identities keep their relative order.
// A composition is grouped over its flattened identities: equal speaker strings from
// different corpora land in the same group.
func IdentitiesPerSpeaker(h Handle) [][]ItemID {
	groups := make(map[string][]ItemID)
	for _, id := range h.Identities() {
		groups[id.Speaker] = append(groups[id.Speaker], id)
	}
	speakers := make([]string, 0, len(groups))
	for speaker := range groups {
		speakers = append(speakers, speaker)
	}
	sort.Strings(speakers)

	result := make([][]ItemID, 0, len(speakers))
	for _, speaker := range speakers {
		result = append(result, groups[speaker])
	}
	return result
}
