package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	for _, toPin := range []struct {
		Raw      string
		Expected Address
	}{
		{Raw: "./tmp/corpuses/JSUT/ver1_1/archive/jsut_ver1.1.zip", Expected: Address{Scheme: SchemeLocal, Key: "./tmp/corpuses/JSUT/ver1_1/archive/jsut_ver1.1.zip"}},
		{Raw: "file:///data/jvs_ver1.zip", Expected: Address{Scheme: SchemeLocal, Key: "/data/jvs_ver1.zip"}},
		{Raw: "gs://corpora/corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip", Expected: Address{Scheme: SchemeGCS, Root: "corpora", Key: "corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip"}},
		{Raw: "S3://corpora/a/b.tar.gz", Expected: Address{Scheme: SchemeS3, Root: "corpora", Key: "a/b.tar.gz"}},
		{Raw: "https://data.keithito.com/data/speech/LJSpeech-1.1.tar.bz2", Expected: Address{Scheme: SchemeHTTPS, Root: "https://data.keithito.com", Key: "data/speech/LJSpeech-1.1.tar.bz2"}},
		{Raw: "http://127.0.0.1:8080/uc?id=xyz", Expected: Address{Scheme: SchemeHTTP, Root: "http://127.0.0.1:8080", Key: "uc?id=xyz"}},
	} {
		fixture := toPin
		t.Run(fixture.Raw, func(t *testing.T) {
			addr, err := ParseAddress(fixture.Raw)
			require.NoError(t, err)
			assert.Equal(t, fixture.Expected, addr)
		})
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, raw := range []string{
		"",
		"gs://bucket-only",
		"s3:///key",
		"https://host-only",
		"file://",
		"ftp://host/file",
	} {
		_, err := ParseAddress(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestAddressString(t *testing.T) {
	for _, raw := range []string{
		"gs://corpora/corpuses/JVS/ver1_0_0/archive/jvs_ver1.zip",
		"https://data.keithito.com/data/speech/LJSpeech-1.1.tar.bz2",
		"tmp/corpuses/LJ/ver1_1/archive/LJSpeech-1.1.tar.bz2",
	} {
		addr, err := ParseAddress(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, addr.String())
	}
}
