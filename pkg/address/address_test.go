package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	for _, toPin := range []struct {
		Title    string
		Root     string
		Expected Location
	}{
		{
			Title: "no root: archive stays local",
			Expected: Location{
				Archive:  "./tmp/corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip",
				Contents: "./tmp/corpuses/JVS/ver1_0_0/contents",
			},
		},
		{
			Title: "remote mirror",
			Root:  "s3://mirror/datasets",
			Expected: Location{
				Archive:  "s3://mirror/datasets/corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip",
				Contents: "./tmp/corpuses/JVS/ver1_0_0/contents",
			},
		},
		{
			Title: "trailing slash on root",
			Root:  "gs://mirror/",
			Expected: Location{
				Archive:  "gs://mirror/corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip",
				Contents: "./tmp/corpuses/JVS/ver1_0_0/contents",
			},
		},
	} {
		fixture := toPin
		t.Run(fixture.Title, func(t *testing.T) {
			first := Resolve(fixture.Root, "JVS", "ver1_0_0", "jvs_ver1.zip")
			second := Resolve(fixture.Root, "JVS", "ver1_0_0", "jvs_ver1.zip")
			assert.Equal(t, fixture.Expected, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestResolveWithLocal(t *testing.T) {
	loc := ResolveWithLocal("/data/", "", "LJ", "ver1_1", "LJSpeech-1.1.tar.bz2")
	assert.Equal(t, "/data/corpuses/LJ/ver1_1/archive/LJSpeech-1.1.tar.bz2", loc.Archive)
	assert.Equal(t, "/data/corpuses/LJ/ver1_1/contents", loc.Contents)

	assert.Equal(t, Resolve("", "LJ", "v", "a.zip"), ResolveWithLocal("", "", "LJ", "v", "a.zip"))
}

func TestExtractNameAndVariant(t *testing.T) {
	name, variant := ExtractNameAndVariant("VCTK", "ver1_0_0")
	assert.Equal(t, "VCTK", name)
	assert.Equal(t, "ver1_0_0", variant)

	name, variant = ExtractNameAndVariant("VCTK==ver1_0_0", "ver_default")
	assert.Equal(t, "VCTK", name)
	assert.Equal(t, "ver1_0_0", variant)

	name, variant = ExtractNameAndVariant("VCTK==", "ver_default")
	assert.Equal(t, "VCTK", name)
	assert.Equal(t, "", variant)
}
