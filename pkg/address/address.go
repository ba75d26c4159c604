// Package address computes where the archive and the extracted contents of a corpus live.
//
// Layout:
//
//	{archive root}/corpuses/{corpus}/{variant}/archive/{archive file}
//	{local root}/corpuses/{corpus}/{variant}/contents/
//
// The archive root may be any address understood by the transport (local path,
// gs://, s3://, ...). Contents are always local.
package address

import "strings"

const (
	// DefaultLocalRoot is the local directory under which contents are extracted,
	// and under which archives are stored when no root is given.
	DefaultLocalRoot = "./tmp"

	// VariantSeparator separates a corpus name from its variant, e.g. "VCTK==ver0_92"
	VariantSeparator = "=="

	corpusesDir = "corpuses"
)

// Location of the archive file and the contents directory of one corpus unit.
type Location struct {
	Archive  string
	Contents string
}

// Resolve the archive address and the contents directory of a corpus.
// When root is empty, the archive is placed under DefaultLocalRoot.
func Resolve(root, corpusName, variant, archiveName string) Location {
	return ResolveWithLocal(DefaultLocalRoot, root, corpusName, variant, archiveName)
}

// ResolveWithLocal is Resolve with an explicit local root for contents.
func ResolveWithLocal(localRoot, root, corpusName, variant, archiveName string) Location {
	if localRoot == "" {
		localRoot = DefaultLocalRoot
	}
	archiveRoot := root
	if archiveRoot == "" {
		archiveRoot = localRoot
	}
	archiveRoot = strings.TrimSuffix(archiveRoot, "/")
	localRoot = strings.TrimSuffix(localRoot, "/")

	rel := corpusesDir + "/" + corpusName + "/" + variant
	return Location{
		Archive:  archiveRoot + "/" + rel + "/archive/" + archiveName,
		Contents: localRoot + "/" + rel + "/contents",
	}
}

// ExtractNameAndVariant splits "Name==variant". Without separator, defaultVariant is returned.
func ExtractNameAndVariant(ref, defaultVariant string) (string, string) {
	name, variant, found := strings.Cut(ref, VariantSeparator)
	if !found {
		return ref, defaultVariant
	}
	return name, variant
}
